// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements PostgreSQL persistence for the workspace. Queries
// are rendered with squirrel, errors are classified by SQLSTATE, and every
// statement on workspace data carries the owner's user id.
package store

import "github.com/MKhiriev/mydocs/internal/logger"

// Storages bundles every repository so the service layer can be built from
// one value.
type Storages struct {
	UserRepository     UserRepository
	NoteRepository     NoteRepository
	PasswordRepository PasswordRepository
	FolderRepository   FolderRepository
	DocumentRepository DocumentRepository
	FinanceRepository  FinanceRepository
	ShareRepository    ShareRepository
}

// NewStorages builds all repositories on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		NoteRepository:     NewNoteRepository(db, log),
		PasswordRepository: NewPasswordRepository(db, log),
		FolderRepository:   NewFolderRepository(db, log),
		DocumentRepository: NewDocumentRepository(db, log),
		FinanceRepository:  NewFinanceRepository(db, log),
		ShareRepository:    NewShareRepository(db, log),
	}
}
