// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries an issued access token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// UpdateProfileRequest is the body of PUT /api/user/profile.
type UpdateProfileRequest struct {
	FullName  string `json:"full_name"`
	AvatarURL string `json:"avatar_url"`
}

// ChangePasswordRequest is the body of POST /api/user/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// IDResponse returns the identifier of a created entity.
type IDResponse struct {
	ID string `json:"id"`
}

// CreateNoteRequest is the body of POST /api/notes. The body may be empty.
type CreateNoteRequest struct {
	FolderID *string `json:"folder_id"`
}

// UpdateNoteContentRequest is the body of PUT /api/notes/{id}/content.
type UpdateNoteContentRequest struct {
	Content json.RawMessage `json:"content"`
}

// CreatePasswordRequest is the body of POST /api/passwords.
type CreatePasswordRequest struct {
	Title    string  `json:"title"`
	Username *string `json:"username"`
	Website  *string `json:"website"`
	FolderID *string `json:"folder_id"`
}

// UpdatePasswordContentRequest is the body of PUT /api/passwords/{id}/content.
type UpdatePasswordContentRequest struct {
	Content string `json:"content"`
}

// CreateFolderRequest is the body of POST /api/folders.
type CreateFolderRequest struct {
	Name     string  `json:"name"`
	Color    *string `json:"color"`
	ParentID *string `json:"parent_id"`
}

// UpdateFolderRequest is the body of PUT /api/folders/{id}.
type UpdateFolderRequest struct {
	Name  string  `json:"name"`
	Color *string `json:"color"`
}

// UpdateTitleRequest is the body of PUT /api/documents/{entity}/{id}/title.
type UpdateTitleRequest struct {
	Title string `json:"title"`
}

// SetFavoriteRequest is the body of PUT /api/documents/{entity}/{id}/favorite.
type SetFavoriteRequest struct {
	IsFavorite bool `json:"is_favorite"`
}

// TransactionRequest is the body of transaction create and update calls.
type TransactionRequest struct {
	Description string            `json:"description"`
	AmountCents int64             `json:"amount_cents"`
	Type        TransactionType   `json:"type"`
	Status      TransactionStatus `json:"status"`
	Date        Date              `json:"date"`
	CategoryID  *string           `json:"category_id"`
}

// ToTransaction converts the request into a [Transaction] owned by userID.
func (r TransactionRequest) ToTransaction(userID int64) Transaction {
	return Transaction{
		UserID:      userID,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		AmountCents: r.AmountCents,
		Type:        r.Type,
		Status:      r.Status,
		Date:        r.Date,
	}
}

// UpdateTransactionStatusRequest is the body of
// PATCH /api/finance/transactions/{id}/status.
type UpdateTransactionStatusRequest struct {
	Status TransactionStatus `json:"status"`
}

// CategoryRequest is the body of category create and update calls.
type CategoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateShareRequest is the body of POST /api/shares.
type CreateShareRequest struct {
	EntityID   string          `json:"entity_id"`
	Entity     EntityType      `json:"entity_type"`
	Permission SharePermission `json:"permissions"`
	Password   string          `json:"password"`
}

// ShareLinkResponse returns the token of a generated link.
type ShareLinkResponse struct {
	Token string `json:"token"`
}

// VerifySharePasswordRequest is the body of
// POST /api/public/shares/{token}/verify.
type VerifySharePasswordRequest struct {
	Password string `json:"password"`
}

// VerifySharePasswordResponse reports the outcome of a password check.
type VerifySharePasswordResponse struct {
	Success bool `json:"success"`
}
