// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/mydocs/internal/config"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/migrations"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const (
	maxAttempts  = 3
	retryBackoff = 50 * time.Millisecond
)

// DB is the shared PostgreSQL handle used by every repository.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnectPostgres opens a pgx-backed connection pool, applies the pool
// limits from cfg and pings the server.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return NewDB(conn, log), nil
}

// NewDB wraps an open *sql.DB.
func NewDB(conn *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 conn,
		logger:             log,
		errorClassificator: NewPostgresErrorClassifier(),
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// withRetry runs op until it succeeds, fails with a non-retryable error, or
// maxAttempts is reached. The wait between attempts grows linearly.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil || attempt == maxAttempts || db.errorClassificator == nil ||
			db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("retrying database operation")

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
}

// exec runs a statement with retries and returns the number of affected rows.
func (db *DB) exec(ctx context.Context, query string, args []any) (int64, error) {
	var affected int64
	err := db.withRetry(ctx, func() error {
		res, err := db.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})

	return affected, err
}

// query runs a SELECT with retries.
func (db *DB) query(ctx context.Context, query string, args []any) (*sql.Rows, error) {
	var rows *sql.Rows
	err := db.withRetry(ctx, func() error {
		var err error
		rows, err = db.QueryContext(ctx, query, args...)
		return err
	})

	return rows, err
}

// queryRow runs a single-row query with retries and scans it into dest.
func (db *DB) queryRow(ctx context.Context, query string, args []any, dest ...any) error {
	return db.withRetry(ctx, func() error {
		return db.QueryRowContext(ctx, query, args...).Scan(dest...)
	})
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// execOwned runs an UPDATE or DELETE that must hit exactly one owned row.
// Zero affected rows means the row is missing or belongs to someone else and
// is reported as [ErrNotFound].
func (db *DB) execOwned(ctx context.Context, query string, args []any) error {
	affected, err := db.exec(ctx, query, args)
	if err != nil {
		return mapConstraintError(err, ErrExecutingStatement)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// collectRows scans every row with scan and closes rows.
func collectRows[T any](rows *sql.Rows, scan func(rowScanner, *T) error) ([]T, error) {
	defer rows.Close()

	items := make([]T, 0, 16)
	for rows.Next() {
		var item T
		if err := scan(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// notFoundOr maps sql.ErrNoRows to ErrNotFound and wraps anything else.
func notFoundOr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
