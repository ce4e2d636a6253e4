// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the HTTP client mydocsctl uses to talk to a running
// mydocs server.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound] for
// 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/mydocs/models"
)

// ServerAdapter defines the calls mydocsctl makes against the server.
// Implementations attach the bearer token to authenticated requests and map
// non-2xx responses to the sentinel errors of this package.
type ServerAdapter interface {
	// SetToken stores the bearer token used by all authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Login authenticates with email and password and stores the returned
	// token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// ListPasswords lists the caller's active vault entries, optionally
	// filtered by folder. Secrets are never part of the listing.
	ListPasswords(ctx context.Context, folderID *string) ([]models.Password, error)

	// RevealPassword returns the decrypted secret of one vault entry.
	RevealPassword(ctx context.Context, id string) (models.RevealedPassword, error)
}
