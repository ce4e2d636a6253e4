// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"

	"github.com/MKhiriev/mydocs/internal/mock"
	"github.com/MKhiriev/mydocs/internal/store"
	"go.uber.org/mock/gomock"
)

const (
	testUserID   int64 = 42
	testID             = "0190d3a4-6f1e-7c2a-9b3d-1a2b3c4d5e6f"
	testFolderID       = "0190d3a4-6f1e-7c2a-9b3d-aaaaaaaaaaaa"
	testToken          = "5b2f6c1e-8d4a-4f3b-9c2e-7a1d0e9f8b6c"
)

var errDatabase = errors.New("database is down")

// fixedIDs hands out predictable identifiers.
type fixedIDs struct {
	id    string
	token string
}

func (f fixedIDs) Generate() string { return f.id }
func (f fixedIDs) Token() string    { return f.token }

type repositories struct {
	users     *mock.MockUserRepository
	notes     *mock.MockNoteRepository
	passwords *mock.MockPasswordRepository
	folders   *mock.MockFolderRepository
	documents *mock.MockDocumentRepository
	finance   *mock.MockFinanceRepository
	shares    *mock.MockShareRepository
}

func newRepositories(t *testing.T) (*repositories, *store.Storages) {
	t.Helper()
	ctrl := gomock.NewController(t)

	r := &repositories{
		users:     mock.NewMockUserRepository(ctrl),
		notes:     mock.NewMockNoteRepository(ctrl),
		passwords: mock.NewMockPasswordRepository(ctrl),
		folders:   mock.NewMockFolderRepository(ctrl),
		documents: mock.NewMockDocumentRepository(ctrl),
		finance:   mock.NewMockFinanceRepository(ctrl),
		shares:    mock.NewMockShareRepository(ctrl),
	}

	return r, &store.Storages{
		UserRepository:     r.users,
		NoteRepository:     r.notes,
		PasswordRepository: r.passwords,
		FolderRepository:   r.folders,
		DocumentRepository: r.documents,
		FinanceRepository:  r.finance,
		ShareRepository:    r.shares,
	}
}

func strPtr(s string) *string { return &s }
