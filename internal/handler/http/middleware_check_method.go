// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/mydocs/internal/logger"
)

// methodNotAllowed answers 404 for a known path requested with a method it
// does not support, so clients cannot probe which paths exist.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method is not supported on this path")

	http.NotFound(w, r)
}
