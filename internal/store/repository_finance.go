// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
)

// financeRepository is the PostgreSQL-backed implementation of
// [FinanceRepository].
type financeRepository struct {
	*DB
	logger *logger.Logger
}

// NewFinanceRepository constructs a [FinanceRepository] backed by db.
func NewFinanceRepository(db *DB, logger *logger.Logger) FinanceRepository {
	return &financeRepository{DB: db, logger: logger}
}

func scanTransaction(row rowScanner, t *models.Transaction) error {
	var txType, status string
	if err := row.Scan(&t.ID, &t.UserID, &t.CategoryID, &t.Description, &t.AmountCents,
		&txType, &status, &t.Date, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return err
	}
	t.Type = models.TransactionType(txType)
	t.Status = models.TransactionStatus(status)
	return nil
}

func scanCategory(row rowScanner, c *models.Category) error {
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Color, &c.CreatedAt); err != nil {
		return err
	}
	c.IsGlobal = c.UserID == nil
	return nil
}

// ListTransactions returns transactions dated in [from, to), newest first.
func (r *financeRepository) ListTransactions(ctx context.Context, userID int64, from, to models.Date) ([]models.Transaction, error) {
	query, args, err := buildListTransactionsQuery(userID, from, to)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "financeRepository.ListTransactions").
			Int64("user_id", userID).
			Str("from", from.String()).
			Msg("failed to execute query for listing transactions")
		return nil, mapConstraintError(err, ErrExecutingQuery)
	}

	return collectRows(rows, scanTransaction)
}

func (r *financeRepository) CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	query, args, err := buildInsertTransactionQuery(transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	var created models.Transaction
	err = r.withRetry(ctx, func() error {
		return scanTransaction(r.QueryRowContext(ctx, query, args...), &created)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "financeRepository.CreateTransaction").
			Int64("user_id", transaction.UserID).
			Msg("failed to insert transaction")
		return models.Transaction{}, mapConstraintError(err, ErrExecutingStatement)
	}

	return created, nil
}

func (r *financeRepository) UpdateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error) {
	query, args, err := buildUpdateTransactionQuery(transaction)
	if err != nil {
		return models.Transaction{}, err
	}

	var updated models.Transaction
	err = r.withRetry(ctx, func() error {
		return scanTransaction(r.QueryRowContext(ctx, query, args...), &updated)
	})
	if err != nil {
		if postgresError(err) == "" {
			return models.Transaction{}, notFoundOr(err)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "financeRepository.UpdateTransaction").
			Str("id", transaction.ID).
			Msg("failed to update transaction")
		return models.Transaction{}, mapConstraintError(err, ErrExecutingStatement)
	}

	return updated, nil
}

func (r *financeRepository) UpdateTransactionStatus(ctx context.Context, userID int64, id string, status models.TransactionStatus) error {
	query, args, err := buildUpdateTransactionStatusQuery(userID, id, status)
	if err != nil {
		return err
	}

	return r.execOwned(ctx, query, args)
}

func (r *financeRepository) DeleteTransaction(ctx context.Context, userID int64, id string) error {
	query, args, err := buildDeleteTransactionQuery(userID, id)
	if err != nil {
		return err
	}

	return r.execOwned(ctx, query, args)
}

// ListCategories returns the global categories together with the user's own.
func (r *financeRepository) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	query, args, err := buildListCategoriesQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "financeRepository.ListCategories").
			Int64("user_id", userID).
			Msg("failed to execute query for listing categories")
		return nil, mapConstraintError(err, ErrExecutingQuery)
	}

	return collectRows(rows, scanCategory)
}

func (r *financeRepository) CreateCategory(ctx context.Context, userID int64, category models.Category) (models.Category, error) {
	query, args, err := buildInsertCategoryQuery(category, userID)
	if err != nil {
		return models.Category{}, err
	}

	var created models.Category
	err = r.withRetry(ctx, func() error {
		return scanCategory(r.QueryRowContext(ctx, query, args...), &created)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "financeRepository.CreateCategory").
			Int64("user_id", userID).
			Msg("failed to insert category")
		return models.Category{}, mapConstraintError(err, ErrExecutingStatement)
	}

	return created, nil
}

// UpdateCategory renames or recolors one of the user's own categories. Global
// categories are reported as [ErrNotFound].
func (r *financeRepository) UpdateCategory(ctx context.Context, userID int64, id, name, color string) (models.Category, error) {
	query, args, err := buildUpdateCategoryQuery(userID, id, name, color)
	if err != nil {
		return models.Category{}, err
	}

	var updated models.Category
	err = r.withRetry(ctx, func() error {
		return scanCategory(r.QueryRowContext(ctx, query, args...), &updated)
	})
	if err != nil {
		if postgresError(err) == "" {
			return models.Category{}, notFoundOr(err)
		}
		return models.Category{}, mapConstraintError(err, ErrExecutingStatement)
	}

	return updated, nil
}

// DeleteCategory removes one of the user's own categories. Transactions that
// referenced it keep existing with a NULL category.
func (r *financeRepository) DeleteCategory(ctx context.Context, userID int64, id string) error {
	query, args, err := buildDeleteCategoryQuery(userID, id)
	if err != nil {
		return err
	}

	return r.execOwned(ctx, query, args)
}
