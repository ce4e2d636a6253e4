// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseFile_JSON(t *testing.T) {
	p := writeConfigFile(t, "config.json", `{
		"app": {
			"encryption_key": "json-secret",
			"password_hash_cost": 11,
			"token_sign_key": "jwt",
			"token_issuer": "json-issuer",
			"token_duration": "1h",
			"version": "0.9.0",
			"log_level": "error"
		},
		"storage": {"db": {"dsn": "postgres://json/db", "max_open_conns": 10, "max_idle_conns": 2}},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s", "shutdown_timeout": 5000000000},
		"client": {"http_address": "http://localhost:8080", "request_timeout": "2s"}
	}`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.EncryptionKey)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)
	assert.Equal(t, "jwt", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "0.9.0", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "postgres://json/db", cfg.Storage.DB.DSN)
	assert.Equal(t, 10, cfg.Storage.DB.MaxOpenConns)
	assert.Equal(t, 2, cfg.Storage.DB.MaxIdleConns)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Client.HTTPAddress)
	assert.Equal(t, 2*time.Second, cfg.Client.RequestTimeout)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseFile_YAML(t *testing.T) {
	p := writeConfigFile(t, "config.yaml", `
app:
  encryption_key: yaml-secret
  token_sign_key: jwt
  token_duration: 90m
storage:
  db:
    dsn: postgres://yaml/db
server:
  http_address: ":9000"
  request_timeout: 10s
`)

	cfg, err := parseFile(p)
	require.NoError(t, err)

	assert.Equal(t, "yaml-secret", cfg.App.EncryptionKey)
	assert.Equal(t, "jwt", cfg.App.TokenSignKey)
	assert.Equal(t, 90*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "postgres://yaml/db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{name: "malformed json", file: "c.json", body: `{"app":`, wantErr: "error decoding json configs"},
		{name: "malformed yaml", file: "c.yml", body: "app: [", wantErr: "error decoding yaml configs"},
		{name: "invalid duration", file: "c.json", body: `{"app":{"token_duration":"soon"}}`, wantErr: "error decoding json configs"},
		{name: "boolean duration", file: "c.yaml", body: "server:\n  request_timeout: true\n", wantErr: "invalid duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseFile(writeConfigFile(t, tt.file, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestParseFile_Missing(t *testing.T) {
	_, err := parseFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
