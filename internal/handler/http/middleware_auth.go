// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/rs/zerolog"
)

// auth authenticates the request by its bearer token and stores the user id
// in the request context. Requests without a valid token get 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, ErrEmptyAuthorizationHeader, "request without token")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, err, "malformed authorization header")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "token rejected")
			return
		}

		log := logger.FromRequest(r)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Int64("user_id", token.UserID)
		})

		ctx = log.WithContext(utils.WithUserID(ctx, token.UserID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userID returns the id stored by the auth middleware.
func userID(r *http.Request) int64 {
	id, _ := utils.GetUserIDFromContext(r.Context())
	return id
}
