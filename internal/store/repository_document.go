// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
)

// documentRepository runs the statements shared by notes, passwords and
// folders. The table and title column come from [models.EntityType], never
// from user input.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	return &documentRepository{DB: db, logger: logger}
}

func (r *documentRepository) UpdateTitle(ctx context.Context, userID int64, entity models.EntityType, id, title string) error {
	return r.setColumn(ctx, userID, entity, id, entity.TitleColumn(), title)
}

// SetFavorite toggles the favorite flag. Folders have no such flag.
func (r *documentRepository) SetFavorite(ctx context.Context, userID int64, entity models.EntityType, id string, isFavorite bool) error {
	if !entity.SupportsFavorite() {
		return fmt.Errorf("%w: %s cannot be marked favorite", ErrInvalidValue, entity)
	}
	return r.setColumn(ctx, userID, entity, id, "is_favorite", isFavorite)
}

func (r *documentRepository) SetTrashed(ctx context.Context, userID int64, entity models.EntityType, id string, isTrashed bool) error {
	return r.setColumn(ctx, userID, entity, id, "is_trashed", isTrashed)
}

func (r *documentRepository) setColumn(ctx context.Context, userID int64, entity models.EntityType, id, column string, value any) error {
	query, args, err := buildSetDocumentColumnQuery(userID, entity, id, column, value)
	if err != nil {
		return err
	}

	if err = r.execOwned(ctx, query, args); err != nil {
		logger.FromContext(ctx).Debug().Err(err).
			Str("func", "documentRepository.setColumn").
			Str("entity", string(entity)).
			Str("column", column).
			Str("id", id).
			Msg("document update failed")
		return err
	}

	return nil
}

// Delete removes the row permanently.
func (r *documentRepository) Delete(ctx context.Context, userID int64, entity models.EntityType, id string) error {
	query, args, err := buildDeleteDocumentQuery(userID, entity, id)
	if err != nil {
		return err
	}

	if err = r.execOwned(ctx, query, args); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.Delete").
			Str("entity", string(entity)).
			Str("id", id).
			Msg("failed to delete document")
		return err
	}

	return nil
}

func scanSummary(entity models.EntityType) func(rowScanner, *models.DocumentSummary) error {
	return func(row rowScanner, s *models.DocumentSummary) error {
		s.Entity = entity
		return row.Scan(&s.ID, &s.Title, &s.IsFavorite, &s.UpdatedAt)
	}
}

func (r *documentRepository) GetSummary(ctx context.Context, userID int64, entity models.EntityType, id string) (models.DocumentSummary, error) {
	query, args, err := buildGetSummaryQuery(userID, entity, id)
	if err != nil {
		return models.DocumentSummary{}, err
	}

	var summary models.DocumentSummary
	scan := scanSummary(entity)
	err = r.withRetry(ctx, func() error {
		return scan(r.QueryRowContext(ctx, query, args...), &summary)
	})
	if err != nil {
		return models.DocumentSummary{}, notFoundOr(err)
	}

	return summary, nil
}

func (r *documentRepository) ListSummaries(ctx context.Context, userID int64, entity models.EntityType, filter models.SummaryFilter) ([]models.DocumentSummary, error) {
	query, args, err := buildListSummariesQuery(userID, entity, filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.ListSummaries").
			Str("entity", string(entity)).
			Msg("failed to execute query for listing documents")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return collectRows(rows, scanSummary(entity))
}

// Count returns the number of non-trashed rows of entity owned by userID.
func (r *documentRepository) Count(ctx context.Context, userID int64, entity models.EntityType) (int, error) {
	query, args, err := buildCountDocumentsQuery(userID, entity)
	if err != nil {
		return 0, err
	}

	var count int
	if err = r.queryRow(ctx, query, args, &count); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "documentRepository.Count").
			Str("entity", string(entity)).
			Msg("failed to count documents")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
