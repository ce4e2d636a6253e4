// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/models"
	"github.com/go-chi/chi/v5"
)

// decodeBody decodes the JSON body into dst and answers 400 on failure.
// An empty body is rejected unless allowEmpty is set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) bool {
	err := utils.DecodeJSON(r, dst)
	if err == nil || (allowEmpty && errors.Is(err, io.EOF)) {
		return true
	}

	writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "request body rejected")
	return false
}

// entityParam parses the {entity} path segment.
func entityParam(w http.ResponseWriter, r *http.Request) (models.EntityType, bool) {
	entity, ok := models.ParseEntityType(chi.URLParam(r, "entity"))
	if !ok {
		writeError(w, r, ErrUnknownEntity, "unknown entity in path")
	}
	return entity, ok
}

// folderQuery returns the optional ?folder_id= filter.
func folderQuery(r *http.Request) *string {
	if folderID := r.URL.Query().Get("folder_id"); folderID != "" {
		return &folderID
	}
	return nil
}

// periodQuery parses ?month=&year=. Both default to the current month when
// absent.
func periodQuery(w http.ResponseWriter, r *http.Request) (int, time.Month, bool) {
	now := time.Now()
	year, month := now.Year(), now.Month()

	query := r.URL.Query()
	if raw := query.Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, ErrInvalidPeriod, "bad year")
			return 0, 0, false
		}
		year = parsed
	}
	if raw := query.Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, ErrInvalidPeriod, "bad month")
			return 0, 0, false
		}
		month = time.Month(parsed)
	}

	return year, month, true
}

// writeJSON writes data and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("writing response failed")
	}
}
