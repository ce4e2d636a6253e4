// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/mydocs/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listPasswords(w http.ResponseWriter, r *http.Request) {
	passwords, err := h.services.PasswordService.ListPasswords(r.Context(), userID(r), folderQuery(r))
	if err != nil {
		writeError(w, r, err, "listing passwords failed")
		return
	}

	writeJSON(w, r, nonNil(passwords), http.StatusOK)
}

func (h *Handler) createPassword(w http.ResponseWriter, r *http.Request) {
	var request models.CreatePasswordRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	password, err := h.services.PasswordService.CreatePassword(r.Context(), userID(r), request)
	if err != nil {
		writeError(w, r, err, "password creation failed")
		return
	}

	writeJSON(w, r, models.IDResponse{ID: password.ID}, http.StatusCreated)
}

func (h *Handler) getPassword(w http.ResponseWriter, r *http.Request) {
	password, err := h.services.PasswordService.GetPassword(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "password lookup failed")
		return
	}

	writeJSON(w, r, password, http.StatusOK)
}

func (h *Handler) updatePasswordContent(w http.ResponseWriter, r *http.Request) {
	var request models.UpdatePasswordContentRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	err := h.services.PasswordService.UpdatePasswordContent(r.Context(), userID(r), chi.URLParam(r, "id"), request.Content)
	if err != nil {
		writeError(w, r, err, "vault content update failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) revealPassword(w http.ResponseWriter, r *http.Request) {
	revealed, err := h.services.PasswordService.RevealPassword(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "reveal failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, revealed, http.StatusOK)
}
