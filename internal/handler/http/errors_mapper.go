// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/service"
	"github.com/MKhiriev/mydocs/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidPeriod:               http.StatusBadRequest,
	ErrUnknownEntity:               http.StatusBadRequest,

	service.ErrInvalidCredentials:       http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:  http.StatusUnauthorized,
	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	service.ErrSharePasswordRequired:    http.StatusUnauthorized,
	service.ErrWrongSharePassword:       http.StatusUnauthorized,

	service.ErrWrongPassword: http.StatusForbidden,
	service.ErrNotFound:      http.StatusNotFound,
	service.ErrEmailTaken:    http.StatusConflict,

	service.ErrVaultContentUnreadable: http.StatusUnprocessableEntity,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Client errors carry
// the error text; server errors only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg(msg)
	http.Error(w, err.Error(), status)
}
