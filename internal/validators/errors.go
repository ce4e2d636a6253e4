// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail     = errors.New("invalid email")
	ErrEmptyPassword    = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrEmptyFullName    = errors.New("full name is required")

	ErrInvalidID    = errors.New("invalid id")
	ErrEmptyTitle   = errors.New("title is required")
	ErrEmptyName    = errors.New("name is required")
	ErrTooLong      = errors.New("value is too long")
	ErrEmptyContent = errors.New("content must be a JSON array")

	ErrInvalidAmount            = errors.New("amount must be greater than zero")
	ErrInvalidTransactionType   = errors.New("invalid transaction type")
	ErrInvalidTransactionStatus = errors.New("invalid transaction status")
	ErrInvalidDate              = errors.New("invalid date")

	ErrInvalidEntityType = errors.New("invalid entity type")
	ErrInvalidPermission = errors.New("invalid share permission")
)
