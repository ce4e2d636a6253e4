// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/mydocs/internal/config"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the REST implementation of [ServerAdapter]
// for the server at cfg.HTTPAddress. An address without a scheme is treated
// as plain http.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. The token is read from the
// Authorization response header; the user id comes from its subject claim.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	token, err := tokenFromJWT(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse token claims: %w", err)
	}

	h.SetToken(signed)
	h.logger.Debug().Int64("user_id", token.UserID).Msg("logged in")
	return token, nil
}

// tokenFromJWT reads the claims without verifying the signature. The
// signing key only exists on the server.
func tokenFromJWT(signed string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(signed, claims); err != nil {
		return models.Token{}, err
	}

	userID, err := models.UserIDFromClaims(claims)
	if err != nil {
		return models.Token{}, err
	}

	token := models.Token{SignedString: signed, UserID: userID}
	if claims.ExpiresAt != nil {
		token.ExpiresAt = claims.ExpiresAt.Time
	}
	return token, nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) ListPasswords(ctx context.Context, folderID *string) ([]models.Password, error) {
	req := h.authedRequest(ctx)
	if folderID != nil {
		req.SetQueryParam("folder_id", *folderID)
	}

	resp, err := req.Get("/api/passwords")
	if err != nil {
		return nil, fmt.Errorf("list passwords request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var passwords []models.Password
	if err = json.Unmarshal(resp.Body(), &passwords); err != nil {
		return nil, fmt.Errorf("decode passwords response: %w", err)
	}
	return passwords, nil
}

func (h *httpServerAdapter) RevealPassword(ctx context.Context, id string) (models.RevealedPassword, error) {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Get("/api/passwords/{id}/reveal")
	if err != nil {
		return models.RevealedPassword{}, fmt.Errorf("reveal password request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RevealedPassword{}, err
	}

	var revealed models.RevealedPassword
	if err = json.Unmarshal(resp.Body(), &revealed); err != nil {
		return models.RevealedPassword{}, fmt.Errorf("decode reveal response: %w", err)
	}
	return revealed, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
