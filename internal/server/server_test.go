// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/mydocs/internal/config"
	"github.com/MKhiriev/mydocs/internal/handler"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticAppInfo struct{}

func (staticAppInfo) GetAppVersion(context.Context) string { return "1.2.3" }

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	handlers, err := handler.NewHandlers(&service.Services{AppInfoService: staticAppInfo{}}, cfg, logger.Nop())
	require.NoError(t, err)
	return handlers
}

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())
	return addr
}

func TestNewServer(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}

	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())

	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestRun_ServesUntilContextCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t), ShutdownTimeout: time.Second}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	url := fmt.Sprintf("http://%s/api/version/", cfg.HTTPAddress)
	var body []byte
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, err = io.ReadAll(resp.Body)
		return err == nil && resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)
	assert.Equal(t, "1.2.3", string(body))

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	occupied, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer occupied.Close()

	cfg := config.Server{HTTPAddress: occupied.Addr().String()}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())

	assert.Error(t, err)
}

func TestShutdownContext(t *testing.T) {
	ctx, cancel := (&server{shutdownTimeout: time.Minute}).shutdownContext()
	defer cancel()
	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)

	ctx, cancel = (&server{}).shutdownContext()
	defer cancel()
	_, ok = ctx.Deadline()
	assert.False(t, ok)
}
