// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/mydocs/internal/store"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrWrongPassword       = errors.New("wrong password")
	ErrEmailTaken          = errors.New("email is already registered")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrNotFound covers both missing rows and rows owned by another user.
	ErrNotFound = errors.New("not found")

	// ErrVaultContentUnreadable is returned when a stored envelope cannot be
	// opened with the configured key.
	ErrVaultContentUnreadable = errors.New("content may be corrupted or the encryption key changed")

	ErrSharePasswordRequired = errors.New("share link is password protected")
	ErrWrongSharePassword    = errors.New("wrong share password")
)

// fromStore translates repository sentinels into service errors. Anything
// unrecognised is wrapped with msg.
func fromStore(err error, msg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, store.ErrReferencedEntityNotFound),
		errors.Is(err, store.ErrInvalidValue):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
