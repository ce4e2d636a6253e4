// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var folderRowColumns = []string{"id", "user_id", "parent_id", "name", "color", "is_trashed", "created_at", "updated_at"}

func TestFolderRepository(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFolderRepository(db, logger.Nop())
	ctx := context.Background()
	now := time.Now()
	color := "#ff0000"

	mock.ExpectExec("INSERT INTO folders").
		WithArgs("f1", int64(3), nil, "Work", color).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.CreateFolder(ctx, models.Folder{ID: "f1", UserID: 3, Name: "Work", Color: &color}))

	mock.ExpectQuery(`FROM folders WHERE user_id = \$1 AND is_trashed = \$2 ORDER BY name ASC`).
		WithArgs(int64(3), false).
		WillReturnRows(sqlmock.NewRows(folderRowColumns).
			AddRow("f1", int64(3), nil, "Work", color, false, now, now))
	folders, err := repo.ListFolders(ctx, 3)
	require.NoError(t, err)
	require.Len(t, folders, 1)
	assert.Equal(t, "Work", folders[0].Name)

	mock.ExpectQuery(`FROM folders WHERE id = \$1 AND user_id = \$2`).
		WithArgs("f1", int64(3)).
		WillReturnRows(sqlmock.NewRows(folderRowColumns).
			AddRow("f1", int64(3), "parent", "Work", nil, false, now, now))
	folder, err := repo.GetFolder(ctx, 3, "f1")
	require.NoError(t, err)
	require.NotNil(t, folder.ParentID)
	assert.Nil(t, folder.Color)

	mock.ExpectExec("UPDATE folders SET name").
		WithArgs("Personal", nil, "f1", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.UpdateFolder(ctx, 3, "f1", "Personal", nil), ErrNotFound)
}
