// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/mydocs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingFinanceService counts the calls that get past the wrapper.
type recordingFinanceService struct {
	FinanceService
	calls int
}

func (r *recordingFinanceService) DeleteTransaction(context.Context, int64, string) error {
	r.calls++
	return nil
}

func (r *recordingFinanceService) UpdateTransaction(_ context.Context, _ int64, id string, request models.TransactionRequest) (models.Transaction, error) {
	r.calls++
	return request.ToTransaction(testUserID), nil
}

func (r *recordingFinanceService) ListCategories(context.Context, int64) ([]models.Category, error) {
	r.calls++
	return []models.Category{{Name: "Salary", IsGlobal: true}}, nil
}

func TestFinanceValidationService_Delegates(t *testing.T) {
	inner := &recordingFinanceService{}
	svc := NewFinanceValidationService().Wrap(inner)

	require.NoError(t, svc.DeleteTransaction(context.Background(), testUserID, testID))

	categories, err := svc.ListCategories(context.Background(), testUserID)
	require.NoError(t, err)
	assert.Len(t, categories, 1)

	_, err = svc.UpdateTransaction(context.Background(), testUserID, testID, validTransactionRequest())
	require.NoError(t, err)

	assert.Equal(t, 3, inner.calls)
}

func TestFinanceValidationService_StopsInvalidCalls(t *testing.T) {
	inner := &recordingFinanceService{}
	svc := NewFinanceValidationService().Wrap(inner)
	ctx := context.Background()

	assert.ErrorIs(t, svc.DeleteTransaction(ctx, testUserID, "1"), ErrNotFound)

	_, err := svc.UpdateTransaction(ctx, testUserID, "1", validTransactionRequest())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateTransaction(ctx, testUserID, testID, models.TransactionRequest{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.CreateCategory(ctx, testUserID, models.CategoryRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.ListTransactions(ctx, testUserID, 2026, time.Month(0))
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	assert.Zero(t, inner.calls)
}
