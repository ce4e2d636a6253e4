// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithRetry_RetriesTransientErrors(t *testing.T) {
	db, mock := newMockDB(t)
	db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectExec("UPDATE notes").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectExec("UPDATE notes").WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := db.exec(context.Background(), "UPDATE notes SET title = $1", []any{"x"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}

func TestWithRetry_StopsOnPermanentErrors(t *testing.T) {
	db, mock := newMockDB(t)
	db.errorClassificator = NewPostgresErrorClassifier()

	mock.ExpectExec("UPDATE notes").WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := db.exec(context.Background(), "UPDATE notes SET title = $1", []any{"x"})
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(err))
}

func TestWithRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	db, _ := newMockDB(t)
	db.errorClassificator = NewPostgresErrorClassifier()

	calls := 0
	err := db.withRetry(context.Background(), func() error {
		calls++
		return pgError(pgerrcode.DeadlockDetected)
	})

	require.Error(t, err)
	assert.Equal(t, maxAttempts, calls)
}

func TestWithRetry_CancelledContext(t *testing.T) {
	db, _ := newMockDB(t)
	db.errorClassificator = NewPostgresErrorClassifier()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	calls := 0
	err := db.withRetry(ctx, func() error {
		calls++
		return pgError(pgerrcode.ConnectionFailure)
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestClassify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
	assert.Equal(t, Retryable, c.Classify(pgError(pgerrcode.CannotConnectNow)))
	assert.Equal(t, NonRetryable, c.Classify(pgError(pgerrcode.CheckViolation)))
}

func TestMapConstraintError(t *testing.T) {
	assert.ErrorIs(t, mapConstraintError(pgError(pgerrcode.ForeignKeyViolation), ErrExecutingStatement), ErrReferencedEntityNotFound)
	assert.ErrorIs(t, mapConstraintError(pgError(pgerrcode.InvalidTextRepresentation), ErrExecutingStatement), ErrInvalidValue)

	err := mapConstraintError(errors.New("boom"), ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrInvalidValue)
}
