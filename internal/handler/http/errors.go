// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is reported when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPeriod is reported when month or year query parameters are
	// not numbers.
	ErrInvalidPeriod = errors.New("month and year query parameters must be numbers")

	// ErrUnknownEntity is reported for an {entity} path segment other than
	// notes, passwords or folders.
	ErrUnknownEntity = errors.New("unknown entity type")
)
