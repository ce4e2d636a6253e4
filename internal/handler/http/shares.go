// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
	"github.com/go-chi/chi/v5"
)

// sharePasswordHeader carries the password of a protected share link.
const sharePasswordHeader = "X-Share-Password"

func (h *Handler) listShares(w http.ResponseWriter, r *http.Request) {
	links, err := h.services.ShareService.ListLinks(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "listing shares failed")
		return
	}

	writeJSON(w, r, nonNil(links), http.StatusOK)
}

func (h *Handler) createShare(w http.ResponseWriter, r *http.Request) {
	var request models.CreateShareRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	link, err := h.services.ShareService.GenerateLink(r.Context(), userID(r), request)
	if err != nil {
		writeError(w, r, err, "share link generation failed")
		return
	}

	logger.FromRequest(r).Info().
		Str("entity", string(link.Entity)).
		Str("entity_id", link.EntityID).
		Bool("protected", link.IsProtected()).
		Msg("share link issued")

	writeJSON(w, r, models.ShareLinkResponse{Token: link.Token}, http.StatusOK)
}

func (h *Handler) deleteShare(w http.ResponseWriter, r *http.Request) {
	if err := h.services.ShareService.DeleteLink(r.Context(), userID(r), chi.URLParam(r, "token")); err != nil {
		writeError(w, r, err, "share link delete failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// resolveShare is public. Protected links need the password in the
// X-Share-Password header.
func (h *Handler) resolveShare(w http.ResponseWriter, r *http.Request) {
	content, err := h.services.ShareService.Resolve(r.Context(), chi.URLParam(r, "token"), r.Header.Get(sharePasswordHeader))
	if err != nil {
		writeError(w, r, err, "share resolution failed")
		return
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, content, http.StatusOK)
}

func (h *Handler) verifySharePassword(w http.ResponseWriter, r *http.Request) {
	var request models.VerifySharePasswordRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	ok, err := h.services.ShareService.VerifyPassword(r.Context(), chi.URLParam(r, "token"), request.Password)
	if err != nil {
		writeError(w, r, err, "share password check failed")
		return
	}

	writeJSON(w, r, models.VerifySharePasswordResponse{Success: ok}, http.StatusOK)
}
