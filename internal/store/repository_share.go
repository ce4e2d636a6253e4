// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
	"github.com/jackc/pgerrcode"
)

// shareRepository is the PostgreSQL-backed implementation of
// [ShareRepository].
type shareRepository struct {
	*DB
	logger *logger.Logger
}

// NewShareRepository constructs a [ShareRepository] backed by db.
func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	return &shareRepository{DB: db, logger: logger}
}

func scanLink(row rowScanner, link *models.SharedLink) error {
	var entity, permission string
	if err := row.Scan(&link.Token, &link.UserID, &link.EntityID, &entity, &permission,
		&link.PasswordHash, &link.CreatedAt); err != nil {
		return err
	}
	link.Entity = models.EntityType(entity)
	link.Permission = models.SharePermission(permission)
	return nil
}

func scanLinkWithTitle(row rowScanner, link *models.SharedLink) error {
	var entity, permission string
	if err := row.Scan(&link.Token, &link.UserID, &link.EntityID, &entity, &permission,
		&link.PasswordHash, &link.CreatedAt, &link.EntityTitle); err != nil {
		return err
	}
	link.Entity = models.EntityType(entity)
	link.Permission = models.SharePermission(permission)
	return nil
}

// FindLink returns the user's existing link for an entity.
func (r *shareRepository) FindLink(ctx context.Context, userID int64, entityID string, entity models.EntityType) (models.SharedLink, error) {
	query, args, err := buildFindLinkQuery(userID, entityID, entity)
	if err != nil {
		return models.SharedLink{}, err
	}

	return r.getLink(ctx, query, args)
}

// GetLinkByToken resolves a public token. It is the only lookup that is not
// scoped to an owner.
func (r *shareRepository) GetLinkByToken(ctx context.Context, token string) (models.SharedLink, error) {
	query, args, err := buildGetLinkByTokenQuery(token)
	if err != nil {
		return models.SharedLink{}, err
	}

	return r.getLink(ctx, query, args)
}

func (r *shareRepository) getLink(ctx context.Context, query string, args []any) (models.SharedLink, error) {
	var link models.SharedLink
	err := r.withRetry(ctx, func() error {
		return scanLink(r.QueryRowContext(ctx, query, args...), &link)
	})
	if err != nil {
		return models.SharedLink{}, notFoundOr(err)
	}

	return link, nil
}

// CreateLink inserts link and returns it with its creation time.
func (r *shareRepository) CreateLink(ctx context.Context, link models.SharedLink) (models.SharedLink, error) {
	query, args, err := buildInsertLinkQuery(link)
	if err != nil {
		return models.SharedLink{}, err
	}

	if err = r.queryRow(ctx, query, args, &link.CreatedAt); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shareRepository.CreateLink").
			Str("entity", string(link.Entity)).
			Str("entity_id", link.EntityID).
			Msg("failed to insert shared link")
		return models.SharedLink{}, mapLinkError(err)
	}

	return link, nil
}

// ReplaceLink deletes the link identified by oldToken and inserts link in a
// single transaction, so the entity is never left without a link.
func (r *shareRepository) ReplaceLink(ctx context.Context, oldToken string, link models.SharedLink) (models.SharedLink, error) {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeleteLinkQuery(link.UserID, oldToken)
	if err != nil {
		return models.SharedLink{}, err
	}
	insertQuery, insertArgs, err := buildInsertLinkQuery(link)
	if err != nil {
		return models.SharedLink{}, err
	}

	tx, err := r.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		log.Err(err).Str("func", "shareRepository.ReplaceLink").Msg("failed to begin transaction")
		return models.SharedLink{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "shareRepository.ReplaceLink").Msg("failed to delete previous link")
		return models.SharedLink{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.QueryRowContext(ctx, insertQuery, insertArgs...).Scan(&link.CreatedAt); err != nil {
		log.Err(err).Str("func", "shareRepository.ReplaceLink").Msg("failed to insert replacement link")
		return models.SharedLink{}, mapLinkError(err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "shareRepository.ReplaceLink").Msg("failed to commit transaction")
		return models.SharedLink{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return link, nil
}

// DeleteLink revokes one of the user's links.
func (r *shareRepository) DeleteLink(ctx context.Context, userID int64, token string) error {
	query, args, err := buildDeleteLinkQuery(userID, token)
	if err != nil {
		return err
	}

	return r.execOwned(ctx, query, args)
}

// ListLinks returns the user's links, newest first, with the title of the
// entity each one points to.
func (r *shareRepository) ListLinks(ctx context.Context, userID int64) ([]models.SharedLink, error) {
	query, args, err := buildListLinksQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shareRepository.ListLinks").
			Int64("user_id", userID).
			Msg("failed to execute query for listing shared links")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, scanLinkWithTitle)
}

// mapLinkError reports a second link for the same entity as [ErrLinkExists].
func mapLinkError(err error) error {
	if postgresError(err) == pgerrcode.UniqueViolation {
		return ErrLinkExists
	}
	return mapConstraintError(err, ErrExecutingStatement)
}
