// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "user registration failed")
		return
	}

	logger.FromRequest(r).Info().Int64("id", registeredUser.UserID).Msg("user registered")
	h.issueToken(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request models.LoginRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	foundUser, err := h.services.AuthService.Login(r.Context(), request)
	if err != nil {
		writeError(w, r, err, "login failed")
		return
	}

	logger.FromRequest(r).Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")
	h.issueToken(w, r, foundUser, http.StatusOK)
}

// issueToken answers with a fresh JWT in both the Authorization header and
// the body.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, err, "creation of token failed")
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	writeJSON(w, r, models.TokenResponse{
		Token:     token.SignedString,
		ExpiresAt: token.ExpiresAt.Unix(),
	}, status)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetProfile(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "profile lookup failed")
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	var request models.UpdateProfileRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	user, err := h.services.AuthService.UpdateProfile(r.Context(), userID(r), request)
	if err != nil {
		writeError(w, r, err, "profile update failed")
		return
	}

	writeJSON(w, r, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var request models.ChangePasswordRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), userID(r), request); err != nil {
		writeError(w, r, err, "password change failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
