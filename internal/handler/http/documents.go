// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/mydocs/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.services.DocumentService.Dashboard(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "dashboard failed")
		return
	}

	dashboard.RecentNotes = nonNil(dashboard.RecentNotes)
	dashboard.RecentPasswords = nonNil(dashboard.RecentPasswords)
	writeJSON(w, r, dashboard, http.StatusOK)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	favorites, err := h.services.DocumentService.ListFavorites(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "listing favorites failed")
		return
	}

	writeJSON(w, r, nonNil(favorites), http.StatusOK)
}

func (h *Handler) listTrash(w http.ResponseWriter, r *http.Request) {
	trash, err := h.services.DocumentService.ListTrash(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "listing trash failed")
		return
	}

	writeJSON(w, r, nonNil(trash), http.StatusOK)
}

func (h *Handler) updateTitle(w http.ResponseWriter, r *http.Request) {
	entity, ok := entityParam(w, r)
	if !ok {
		return
	}

	var request models.UpdateTitleRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	err := h.services.DocumentService.UpdateTitle(r.Context(), userID(r), entity, chi.URLParam(r, "id"), request.Title)
	if err != nil {
		writeError(w, r, err, "title update failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) setFavorite(w http.ResponseWriter, r *http.Request) {
	entity, ok := entityParam(w, r)
	if !ok {
		return
	}

	var request models.SetFavoriteRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	err := h.services.DocumentService.SetFavorite(r.Context(), userID(r), entity, chi.URLParam(r, "id"), request.IsFavorite)
	if err != nil {
		writeError(w, r, err, "favorite update failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) moveToTrash(w http.ResponseWriter, r *http.Request) {
	h.documentAction(w, r, h.services.DocumentService.MoveToTrash, "move to trash failed")
}

func (h *Handler) restoreFromTrash(w http.ResponseWriter, r *http.Request) {
	h.documentAction(w, r, h.services.DocumentService.RestoreFromTrash, "restore from trash failed")
}

func (h *Handler) deletePermanently(w http.ResponseWriter, r *http.Request) {
	h.documentAction(w, r, h.services.DocumentService.DeletePermanently, "permanent delete failed")
}

// documentAction runs a DocumentService call addressed by /{entity}/{id} and
// answers 204.
func (h *Handler) documentAction(
	w http.ResponseWriter,
	r *http.Request,
	action func(ctx context.Context, userID int64, entity models.EntityType, id string) error,
	msg string,
) {
	entity, ok := entityParam(w, r)
	if !ok {
		return
	}

	if err := action(r.Context(), userID(r), entity, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, msg)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
