// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"time"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/service"
)

// DefaultRequestTimeout bounds a request when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

type Handler struct {
	services *service.Services

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		requestTimeout: DefaultRequestTimeout,
		logger:         logger,
	}
}

// WithRequestTimeout overrides the per-request timeout. Non-positive values
// are ignored.
func (h *Handler) WithRequestTimeout(timeout time.Duration) *Handler {
	if timeout > 0 {
		h.requestTimeout = timeout
	}
	return h
}
