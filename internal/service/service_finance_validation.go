// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/internal/validators"
	"github.com/MKhiriev/mydocs/models"
)

// FinanceValidationService checks every finance request before handing it
// to the wrapped FinanceService.
type FinanceValidationService struct {
	inner     FinanceService
	validator validators.Validator
}

func NewFinanceValidationService() FinanceServiceWrapper {
	return &FinanceValidationService{
		validator: validators.NewWorkspaceValidator(),
	}
}

func (v *FinanceValidationService) Wrap(wrapped FinanceService) FinanceService {
	v.inner = wrapped
	return v
}

func (v *FinanceValidationService) ListTransactions(ctx context.Context, userID int64, year int, month time.Month) ([]models.Transaction, error) {
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}
	return v.inner.ListTransactions(ctx, userID, year, month)
}

func (v *FinanceValidationService) CreateTransaction(ctx context.Context, userID int64, request models.TransactionRequest) (models.Transaction, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateTransaction(ctx, userID, request)
}

func (v *FinanceValidationService) UpdateTransaction(ctx context.Context, userID int64, id string, request models.TransactionRequest) (models.Transaction, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Transaction{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !utils.IsUUID(id) {
		return models.Transaction{}, ErrNotFound
	}
	return v.inner.UpdateTransaction(ctx, userID, id, request)
}

func (v *FinanceValidationService) UpdateTransactionStatus(ctx context.Context, userID int64, id string, status models.TransactionStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidTransactionStatus)
	}
	if !utils.IsUUID(id) {
		return ErrNotFound
	}
	return v.inner.UpdateTransactionStatus(ctx, userID, id, status)
}

func (v *FinanceValidationService) DeleteTransaction(ctx context.Context, userID int64, id string) error {
	if !utils.IsUUID(id) {
		return ErrNotFound
	}
	return v.inner.DeleteTransaction(ctx, userID, id)
}

func (v *FinanceValidationService) MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (models.MonthlySummary, error) {
	if err := validatePeriod(year, month); err != nil {
		return models.MonthlySummary{}, err
	}
	return v.inner.MonthlySummary(ctx, userID, year, month)
}

func (v *FinanceValidationService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	return v.inner.ListCategories(ctx, userID)
}

func (v *FinanceValidationService) CreateCategory(ctx context.Context, userID int64, request models.CategoryRequest) (models.Category, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateCategory(ctx, userID, request)
}

func (v *FinanceValidationService) UpdateCategory(ctx context.Context, userID int64, id string, request models.CategoryRequest) (models.Category, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !utils.IsUUID(id) {
		return models.Category{}, ErrNotFound
	}
	return v.inner.UpdateCategory(ctx, userID, id, request)
}

func (v *FinanceValidationService) DeleteCategory(ctx context.Context, userID int64, id string) error {
	if !utils.IsUUID(id) {
		return ErrNotFound
	}
	return v.inner.DeleteCategory(ctx, userID, id)
}

func validatePeriod(year int, month time.Month) error {
	if month < time.January || month > time.December || year < 1 || year > 9999 {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidDate)
	}
	return nil
}
