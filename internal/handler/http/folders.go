// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/mydocs/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	folders, err := h.services.FolderService.ListFolders(r.Context(), userID(r))
	if err != nil {
		writeError(w, r, err, "listing folders failed")
		return
	}

	writeJSON(w, r, nonNil(folders), http.StatusOK)
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	var request models.CreateFolderRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	folder, err := h.services.FolderService.CreateFolder(r.Context(), userID(r), request)
	if err != nil {
		writeError(w, r, err, "folder creation failed")
		return
	}

	writeJSON(w, r, models.IDResponse{ID: folder.ID}, http.StatusCreated)
}

func (h *Handler) getFolderContents(w http.ResponseWriter, r *http.Request) {
	contents, err := h.services.FolderService.GetFolderContents(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "folder lookup failed")
		return
	}

	contents.Notes = nonNil(contents.Notes)
	contents.Passwords = nonNil(contents.Passwords)
	writeJSON(w, r, contents, http.StatusOK)
}

func (h *Handler) updateFolder(w http.ResponseWriter, r *http.Request) {
	var request models.UpdateFolderRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	if err := h.services.FolderService.UpdateFolder(r.Context(), userID(r), chi.URLParam(r, "id"), request); err != nil {
		writeError(w, r, err, "folder update failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
