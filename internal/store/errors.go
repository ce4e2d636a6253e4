// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when registering an email that is
	// already taken.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a user lookup matches no row.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNotFound is returned when a workspace row does not exist or is not
	// owned by the requesting user. The two cases are deliberately
	// indistinguishable.
	ErrNotFound = errors.New("entity was not found")

	// ErrReferencedEntityNotFound is returned when a row references a folder
	// or category that does not exist.
	ErrReferencedEntityNotFound = errors.New("referenced entity was not found")

	// ErrLinkExists is returned when an entity already has a shared link
	// from the same owner.
	ErrLinkExists = errors.New("shared link already exists")

	// ErrInvalidValue is returned when PostgreSQL rejects a value through a
	// CHECK or type constraint.
	ErrInvalidValue = errors.New("invalid value")
)

// Low-level database operation errors. These wrap driver errors when a SQL
// operation fails before any domain logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
