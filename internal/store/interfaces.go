// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/mydocs/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository persists workspace accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, fullName, avatarURL string) (models.User, error)
	UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error
}

// NoteRepository persists notes. Every method is scoped to the owner.
type NoteRepository interface {
	CreateNote(ctx context.Context, note models.Note) error
	ListNotes(ctx context.Context, userID int64, folderID *string) ([]models.Note, error)
	GetNote(ctx context.Context, userID int64, id string) (models.Note, error)
	UpdateNoteContent(ctx context.Context, userID int64, id string, content json.RawMessage) error
}

// PasswordRepository persists vault entries. The envelope is stored and
// returned verbatim; the repository never interprets it.
type PasswordRepository interface {
	CreatePassword(ctx context.Context, password models.Password) error
	ListPasswords(ctx context.Context, userID int64, folderID *string) ([]models.Password, error)
	GetPassword(ctx context.Context, userID int64, id string) (models.Password, error)
	UpdatePasswordEnvelope(ctx context.Context, userID int64, id, envelope string) error
}

// FolderRepository persists folders.
type FolderRepository interface {
	CreateFolder(ctx context.Context, folder models.Folder) error
	ListFolders(ctx context.Context, userID int64) ([]models.Folder, error)
	GetFolder(ctx context.Context, userID int64, id string) (models.Folder, error)
	UpdateFolder(ctx context.Context, userID int64, id, name string, color *string) error
}

// DocumentRepository implements the operations shared by notes, passwords
// and folders.
type DocumentRepository interface {
	UpdateTitle(ctx context.Context, userID int64, entity models.EntityType, id, title string) error
	SetFavorite(ctx context.Context, userID int64, entity models.EntityType, id string, isFavorite bool) error
	SetTrashed(ctx context.Context, userID int64, entity models.EntityType, id string, isTrashed bool) error
	Delete(ctx context.Context, userID int64, entity models.EntityType, id string) error
	GetSummary(ctx context.Context, userID int64, entity models.EntityType, id string) (models.DocumentSummary, error)
	ListSummaries(ctx context.Context, userID int64, entity models.EntityType, filter models.SummaryFilter) ([]models.DocumentSummary, error)
	Count(ctx context.Context, userID int64, entity models.EntityType) (int, error)
}

// FinanceRepository persists transactions and categories.
type FinanceRepository interface {
	ListTransactions(ctx context.Context, userID int64, from, to models.Date) ([]models.Transaction, error)
	CreateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	UpdateTransaction(ctx context.Context, transaction models.Transaction) (models.Transaction, error)
	UpdateTransactionStatus(ctx context.Context, userID int64, id string, status models.TransactionStatus) error
	DeleteTransaction(ctx context.Context, userID int64, id string) error

	ListCategories(ctx context.Context, userID int64) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID int64, category models.Category) (models.Category, error)
	UpdateCategory(ctx context.Context, userID int64, id, name, color string) (models.Category, error)
	DeleteCategory(ctx context.Context, userID int64, id string) error
}

// ShareRepository persists shared links.
type ShareRepository interface {
	FindLink(ctx context.Context, userID int64, entityID string, entity models.EntityType) (models.SharedLink, error)
	GetLinkByToken(ctx context.Context, token string) (models.SharedLink, error)
	CreateLink(ctx context.Context, link models.SharedLink) (models.SharedLink, error)
	ReplaceLink(ctx context.Context, oldToken string, link models.SharedLink) (models.SharedLink, error)
	DeleteLink(ctx context.Context, userID int64, token string) error
	ListLinks(ctx context.Context, userID int64) ([]models.SharedLink, error)
}
