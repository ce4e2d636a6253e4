// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/mydocs/models"
	"github.com/stretchr/testify/assert"
)

const validUUID = "0190a6b2-3c4d-7e8f-9a0b-1c2d3e4f5a6b"

func ptr(s string) *string { return &s }

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewWorkspaceValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestValidate_UnknownField(t *testing.T) {
	v := NewWorkspaceValidator()
	err := v.Validate(context.Background(), models.RegisterRequest{}, "nickname")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestValidate_Register(t *testing.T) {
	v := NewWorkspaceValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		wantErr error
	}{
		{name: "valid", req: models.RegisterRequest{Email: "ana@example.com", Password: "s3cret-pass"}},
		{name: "missing at", req: models.RegisterRequest{Email: "ana.example.com", Password: "s3cret-pass"}, wantErr: ErrInvalidEmail},
		{name: "empty domain", req: models.RegisterRequest{Email: "ana@", Password: "s3cret-pass"}, wantErr: ErrInvalidEmail},
		{name: "two ats", req: models.RegisterRequest{Email: "a@b@c", Password: "s3cret-pass"}, wantErr: ErrInvalidEmail},
		{name: "empty password", req: models.RegisterRequest{Email: "ana@example.com"}, wantErr: ErrEmptyPassword},
		{name: "short password", req: models.RegisterRequest{Email: "ana@example.com", Password: "1234567"}, wantErr: ErrPasswordTooShort},
		{name: "long name", req: models.RegisterRequest{Email: "ana@example.com", Password: "s3cret-pass", FullName: strings.Repeat("a", 256)}, wantErr: ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_RegisterPointerAndFieldScope(t *testing.T) {
	v := NewWorkspaceValidator()
	req := &models.RegisterRequest{Email: "ana@example.com"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldEmail))
	assert.ErrorIs(t, v.Validate(context.Background(), req), ErrEmptyPassword)
}

func TestValidate_ProfileAndPasswordChange(t *testing.T) {
	v := NewWorkspaceValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.UpdateProfileRequest{FullName: "   "}), ErrEmptyFullName)
	assert.NoError(t, v.Validate(ctx, models.UpdateProfileRequest{FullName: "Ana"}))

	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordRequest{NewPassword: "long-enough"}), ErrEmptyPassword)
	assert.ErrorIs(t, v.Validate(ctx, models.ChangePasswordRequest{CurrentPassword: "x", NewPassword: "short"}), ErrPasswordTooShort)
	assert.NoError(t, v.Validate(ctx, models.ChangePasswordRequest{CurrentPassword: "x", NewPassword: "long-enough"}))
}

func TestValidate_Documents(t *testing.T) {
	v := NewWorkspaceValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.CreatePasswordRequest{Title: " "}), ErrEmptyTitle)
	assert.ErrorIs(t, v.Validate(ctx, models.CreatePasswordRequest{Title: "Bank", FolderID: ptr("nope")}), ErrInvalidID)
	assert.NoError(t, v.Validate(ctx, models.CreatePasswordRequest{Title: "Bank", FolderID: ptr(validUUID)}))

	assert.ErrorIs(t, v.Validate(ctx, models.CreateFolderRequest{Name: ""}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.CreateFolderRequest{Name: "Work", Color: ptr(strings.Repeat("f", 40))}), ErrTooLong)
	assert.NoError(t, v.Validate(ctx, models.UpdateFolderRequest{Name: "Work", Color: ptr("#fff")}))

	assert.ErrorIs(t, v.Validate(ctx, models.UpdateTitleRequest{Title: "\t"}), ErrEmptyTitle)
	assert.NoError(t, v.Validate(ctx, models.UpdateTitleRequest{Title: "Renamed"}))

	assert.ErrorIs(t, v.Validate(ctx, models.UpdateNoteContentRequest{}), ErrEmptyContent)
	assert.ErrorIs(t, v.Validate(ctx, models.UpdateNoteContentRequest{Content: json.RawMessage(`{"a":1}`)}), ErrEmptyContent)
	assert.NoError(t, v.Validate(ctx, models.UpdateNoteContentRequest{Content: json.RawMessage(`[{"type":"p","text":"hi"}]`)}))
}

func TestValidate_Transaction(t *testing.T) {
	v := NewWorkspaceValidator()
	ctx := context.Background()

	valid := models.TransactionRequest{
		Description: "Rent",
		AmountCents: 150000,
		Type:        models.TransactionExpense,
		Status:      models.TransactionPending,
		Date:        models.NewDate(2026, time.May, 1),
	}
	assert.NoError(t, v.Validate(ctx, valid))
	assert.NoError(t, v.Validate(ctx, &valid))

	tests := []struct {
		name    string
		mutate  func(r *models.TransactionRequest)
		wantErr error
	}{
		{name: "zero amount", mutate: func(r *models.TransactionRequest) { r.AmountCents = 0 }, wantErr: ErrInvalidAmount},
		{name: "negative amount", mutate: func(r *models.TransactionRequest) { r.AmountCents = -5 }, wantErr: ErrInvalidAmount},
		{name: "lowercase type", mutate: func(r *models.TransactionRequest) { r.Type = "expense" }, wantErr: ErrInvalidTransactionType},
		{name: "unknown status", mutate: func(r *models.TransactionRequest) { r.Status = "LATE" }, wantErr: ErrInvalidTransactionStatus},
		{name: "no date", mutate: func(r *models.TransactionRequest) { r.Date = models.Date{} }, wantErr: ErrInvalidDate},
		{name: "bad category", mutate: func(r *models.TransactionRequest) { r.CategoryID = ptr("x") }, wantErr: ErrInvalidID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.ErrorIs(t, v.Validate(ctx, req), tt.wantErr)
		})
	}
}

func TestValidate_CategoryAndShare(t *testing.T) {
	v := NewWorkspaceValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, models.CategoryRequest{Name: ""}), ErrEmptyName)
	assert.NoError(t, v.Validate(ctx, models.CategoryRequest{Name: "Pets", Color: "#123456"}))

	share := models.CreateShareRequest{EntityID: validUUID, Entity: models.EntityNotes}
	assert.NoError(t, v.Validate(ctx, share))

	share.Entity = "users"
	assert.ErrorIs(t, v.Validate(ctx, share), ErrInvalidEntityType)

	share.Entity = models.EntityFolders
	share.Permission = "admin"
	assert.ErrorIs(t, v.Validate(ctx, share), ErrInvalidPermission)

	share.Permission = models.ShareEdit
	share.EntityID = "not-a-uuid"
	assert.ErrorIs(t, v.Validate(ctx, share), ErrInvalidID)
}
