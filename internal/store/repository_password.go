// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
)

// passwordRepository is the PostgreSQL-backed implementation of
// [PasswordRepository]. The envelope column is written and read as an opaque
// string.
type passwordRepository struct {
	*DB
	logger *logger.Logger
}

// NewPasswordRepository constructs a [PasswordRepository] backed by db.
func NewPasswordRepository(db *DB, logger *logger.Logger) PasswordRepository {
	return &passwordRepository{DB: db, logger: logger}
}

func scanPassword(row rowScanner, p *models.Password) error {
	return row.Scan(&p.ID, &p.UserID, &p.FolderID, &p.Title, &p.Username, &p.Website,
		&p.Encrypted, &p.IsFavorite, &p.IsTrashed, &p.CreatedAt, &p.UpdatedAt)
}

// CreatePassword inserts a vault entry together with its initial envelope.
func (r *passwordRepository) CreatePassword(ctx context.Context, password models.Password) error {
	query, args, err := buildInsertPasswordQuery(password)
	if err != nil {
		return err
	}

	if _, err = r.exec(ctx, query, args); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "passwordRepository.CreatePassword").
			Int64("user_id", password.UserID).
			Msg("failed to insert password")
		return mapConstraintError(err, ErrExecutingStatement)
	}

	return nil
}

// ListPasswords returns the user's non-trashed vault entries, most recently
// updated first. The envelope is loaded but callers must not expose it.
func (r *passwordRepository) ListPasswords(ctx context.Context, userID int64, folderID *string) ([]models.Password, error) {
	query, args, err := buildListPasswordsQuery(userID, folderID)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "passwordRepository.ListPasswords").
			Int64("user_id", userID).
			Msg("failed to execute query for listing passwords")
		return nil, mapConstraintError(err, ErrExecutingQuery)
	}

	return collectRows(rows, scanPassword)
}

// GetPassword returns one vault entry including its envelope.
func (r *passwordRepository) GetPassword(ctx context.Context, userID int64, id string) (models.Password, error) {
	query, args, err := buildGetPasswordQuery(userID, id)
	if err != nil {
		return models.Password{}, err
	}

	var p models.Password
	err = r.withRetry(ctx, func() error {
		return scanPassword(r.QueryRowContext(ctx, query, args...), &p)
	})
	if err != nil {
		return models.Password{}, notFoundOr(err)
	}

	return p, nil
}

// UpdatePasswordEnvelope replaces the stored envelope wholesale.
func (r *passwordRepository) UpdatePasswordEnvelope(ctx context.Context, userID int64, id, envelope string) error {
	query, args, err := buildUpdatePasswordEnvelopeQuery(userID, id, envelope)
	if err != nil {
		return err
	}

	if err = r.execOwned(ctx, query, args); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "passwordRepository.UpdatePasswordEnvelope").
			Str("id", id).
			Msg("failed to update password envelope")
		return err
	}

	return nil
}
