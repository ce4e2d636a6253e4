// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/models"
)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#6b7280"

type financeService struct {
	financeRepository store.FinanceRepository
	ids               IDGenerator

	logger *logger.Logger
}

// NewFinanceService returns the finance service without request validation.
// Use NewFinanceValidationService to wrap it.
func NewFinanceService(financeRepository store.FinanceRepository, ids IDGenerator, logger *logger.Logger) FinanceService {
	return &financeService{
		financeRepository: financeRepository,
		ids:               ids,
		logger:            logger,
	}
}

// ListTransactions returns the transactions dated within the given month.
func (s *financeService) ListTransactions(ctx context.Context, userID int64, year int, month time.Month) ([]models.Transaction, error) {
	from, to := models.MonthRange(year, month)

	transactions, err := s.financeRepository.ListTransactions(ctx, userID, from, to)
	if err != nil {
		return nil, fromStore(err, "listing transactions failed")
	}

	return transactions, nil
}

func (s *financeService) CreateTransaction(ctx context.Context, userID int64, request models.TransactionRequest) (models.Transaction, error) {
	transaction := request.ToTransaction(userID)
	transaction.ID = s.ids.Generate()
	transaction.Description = strings.TrimSpace(transaction.Description)

	created, err := s.financeRepository.CreateTransaction(ctx, transaction)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("transaction creation failed")
		return models.Transaction{}, fromStore(err, "transaction creation failed")
	}

	return created, nil
}

func (s *financeService) UpdateTransaction(ctx context.Context, userID int64, id string, request models.TransactionRequest) (models.Transaction, error) {
	transaction := request.ToTransaction(userID)
	transaction.ID = id
	transaction.Description = strings.TrimSpace(transaction.Description)

	updated, err := s.financeRepository.UpdateTransaction(ctx, transaction)
	if err != nil {
		return models.Transaction{}, fromStore(err, "transaction update failed")
	}

	return updated, nil
}

func (s *financeService) UpdateTransactionStatus(ctx context.Context, userID int64, id string, status models.TransactionStatus) error {
	return fromStore(s.financeRepository.UpdateTransactionStatus(ctx, userID, id, status), "transaction status update failed")
}

func (s *financeService) DeleteTransaction(ctx context.Context, userID int64, id string) error {
	return fromStore(s.financeRepository.DeleteTransaction(ctx, userID, id), "transaction delete failed")
}

// MonthlySummary totals the month's transactions by type and by status.
func (s *financeService) MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (models.MonthlySummary, error) {
	transactions, err := s.ListTransactions(ctx, userID, year, month)
	if err != nil {
		return models.MonthlySummary{}, err
	}

	return models.Summarize(year, month, transactions), nil
}

func (s *financeService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	categories, err := s.financeRepository.ListCategories(ctx, userID)
	if err != nil {
		return nil, fromStore(err, "listing categories failed")
	}

	return categories, nil
}

func (s *financeService) CreateCategory(ctx context.Context, userID int64, request models.CategoryRequest) (models.Category, error) {
	category := models.Category{
		ID:    s.ids.Generate(),
		Name:  strings.TrimSpace(request.Name),
		Color: colorOrDefault(request.Color),
	}

	created, err := s.financeRepository.CreateCategory(ctx, userID, category)
	if err != nil {
		return models.Category{}, fromStore(err, "category creation failed")
	}

	return created, nil
}

// UpdateCategory changes one of the user's own categories. Global categories
// are reported as ErrNotFound.
func (s *financeService) UpdateCategory(ctx context.Context, userID int64, id string, request models.CategoryRequest) (models.Category, error) {
	updated, err := s.financeRepository.UpdateCategory(ctx, userID, id, strings.TrimSpace(request.Name), colorOrDefault(request.Color))
	if err != nil {
		return models.Category{}, fromStore(err, "category update failed")
	}

	return updated, nil
}

func (s *financeService) DeleteCategory(ctx context.Context, userID int64, id string) error {
	return fromStore(s.financeRepository.DeleteCategory(ctx, userID, id), "category delete failed")
}

func colorOrDefault(color string) string {
	if color = strings.TrimSpace(color); color == "" {
		return DefaultCategoryColor
	}
	return color
}
