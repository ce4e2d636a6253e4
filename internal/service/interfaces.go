// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/mydocs/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	GetProfile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID int64, request models.ChangePasswordRequest) error
}

type NoteService interface {
	CreateNote(ctx context.Context, userID int64, folderID *string) (models.Note, error)
	ListNotes(ctx context.Context, userID int64, folderID *string) ([]models.Note, error)
	GetNote(ctx context.Context, userID int64, id string) (models.Note, error)
	UpdateNoteContent(ctx context.Context, userID int64, id string, content json.RawMessage) error
}

// PasswordService manages vault entries. Plaintext secrets only ever pass
// through UpdatePasswordContent and RevealPassword.
type PasswordService interface {
	CreatePassword(ctx context.Context, userID int64, request models.CreatePasswordRequest) (models.Password, error)
	ListPasswords(ctx context.Context, userID int64, folderID *string) ([]models.Password, error)
	GetPassword(ctx context.Context, userID int64, id string) (models.Password, error)
	UpdatePasswordContent(ctx context.Context, userID int64, id, plaintext string) error
	RevealPassword(ctx context.Context, userID int64, id string) (models.RevealedPassword, error)
}

type FolderService interface {
	CreateFolder(ctx context.Context, userID int64, request models.CreateFolderRequest) (models.Folder, error)
	ListFolders(ctx context.Context, userID int64) ([]models.Folder, error)
	GetFolderContents(ctx context.Context, userID int64, id string) (models.FolderContents, error)
	UpdateFolder(ctx context.Context, userID int64, id string, request models.UpdateFolderRequest) error
}

// DocumentService covers the operations notes, passwords and folders share.
type DocumentService interface {
	UpdateTitle(ctx context.Context, userID int64, entity models.EntityType, id, title string) error
	SetFavorite(ctx context.Context, userID int64, entity models.EntityType, id string, isFavorite bool) error
	MoveToTrash(ctx context.Context, userID int64, entity models.EntityType, id string) error
	RestoreFromTrash(ctx context.Context, userID int64, entity models.EntityType, id string) error
	DeletePermanently(ctx context.Context, userID int64, entity models.EntityType, id string) error

	ListFavorites(ctx context.Context, userID int64) ([]models.DocumentSummary, error)
	ListTrash(ctx context.Context, userID int64) ([]models.DocumentSummary, error)
	Dashboard(ctx context.Context, userID int64) (models.Dashboard, error)
}

type FinanceService interface {
	ListTransactions(ctx context.Context, userID int64, year int, month time.Month) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, userID int64, request models.TransactionRequest) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, userID int64, id string, request models.TransactionRequest) (models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, userID int64, id string, status models.TransactionStatus) error
	DeleteTransaction(ctx context.Context, userID int64, id string) error
	MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (models.MonthlySummary, error)

	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID int64, request models.CategoryRequest) (models.Category, error)
	UpdateCategory(ctx context.Context, userID int64, id string, request models.CategoryRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, userID int64, id string) error
}

// ShareService manages public links. VerifyPassword and Resolve are the only
// operations available without authentication.
type ShareService interface {
	GenerateLink(ctx context.Context, userID int64, request models.CreateShareRequest) (models.SharedLink, error)
	DeleteLink(ctx context.Context, userID int64, token string) error
	ListLinks(ctx context.Context, userID int64) ([]models.SharedLink, error)

	VerifyPassword(ctx context.Context, token, attempt string) (bool, error)
	Resolve(ctx context.Context, token, attempt string) (models.SharedContent, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// FinanceServiceWrapper decorates a FinanceService with additional behavior
// such as request validation.
type FinanceServiceWrapper interface {
	Wrap(FinanceService) FinanceService
}

// IDGenerator produces row ids and share tokens.
type IDGenerator interface {
	Generate() string
	Token() string
}
