// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/mydocs/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.NoteService.ListNotes(r.Context(), userID(r), folderQuery(r))
	if err != nil {
		writeError(w, r, err, "listing notes failed")
		return
	}

	writeJSON(w, r, nonNil(notes), http.StatusOK)
}

// createNote accepts an empty body or {"folder_id": "..."}.
func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	var request models.CreateNoteRequest
	if !decodeBody(w, r, &request, true) {
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), userID(r), request.FolderID)
	if err != nil {
		writeError(w, r, err, "note creation failed")
		return
	}

	writeJSON(w, r, models.IDResponse{ID: note.ID}, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.GetNote(r.Context(), userID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "note lookup failed")
		return
	}

	writeJSON(w, r, note, http.StatusOK)
}

func (h *Handler) updateNoteContent(w http.ResponseWriter, r *http.Request) {
	var request models.UpdateNoteContentRequest
	if !decodeBody(w, r, &request, false) {
		return
	}

	err := h.services.NoteService.UpdateNoteContent(r.Context(), userID(r), chi.URLParam(r, "id"), request.Content)
	if err != nil {
		writeError(w, r, err, "note content update failed")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
