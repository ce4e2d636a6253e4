// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors [StructuredConfig] for JSON and YAML files.
type fileConfig struct {
	App struct {
		EncryptionKey    string   `json:"encryption_key" yaml:"encryption_key"`
		PasswordHashCost int      `json:"password_hash_cost" yaml:"password_hash_cost"`
		TokenSignKey     string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer      string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration    Duration `json:"token_duration" yaml:"token_duration"`
		Version          string   `json:"version" yaml:"version"`
		LogLevel         string   `json:"log_level" yaml:"log_level"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN          string `json:"dsn" yaml:"dsn"`
			MaxOpenConns int    `json:"max_open_conns" yaml:"max_open_conns"`
			MaxIdleConns int    `json:"max_idle_conns" yaml:"max_idle_conns"`
		} `json:"db" yaml:"db"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Client struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
	} `json:"client" yaml:"client"`
}

// parseFile reads a config file. The format is chosen by extension: .yaml and
// .yml are YAML, anything else is JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			EncryptionKey:    fc.App.EncryptionKey,
			PasswordHashCost: fc.App.PasswordHashCost,
			TokenSignKey:     fc.App.TokenSignKey,
			TokenIssuer:      fc.App.TokenIssuer,
			TokenDuration:    time.Duration(fc.App.TokenDuration),
			Version:          fc.App.Version,
			LogLevel:         fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN:          fc.Storage.DB.DSN,
				MaxOpenConns: fc.Storage.DB.MaxOpenConns,
				MaxIdleConns: fc.Storage.DB.MaxIdleConns,
			},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Client: Client{
			HTTPAddress:    fc.Client.HTTPAddress,
			RequestTimeout: time.Duration(fc.Client.RequestTimeout),
		},
	}
}

// Duration is a time.Duration that decodes from strings like "1h" or "30s"
// as well as from integer nanoseconds, in both JSON and YAML.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case nil:
		*d = 0
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	default:
		return errors.New("invalid duration")
	}

	return nil
}
