// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
)

type folderRepository struct {
	*DB
	logger *logger.Logger
}

// NewFolderRepository constructs a [FolderRepository] backed by db.
func NewFolderRepository(db *DB, logger *logger.Logger) FolderRepository {
	return &folderRepository{DB: db, logger: logger}
}

func scanFolder(row rowScanner, f *models.Folder) error {
	return row.Scan(&f.ID, &f.UserID, &f.ParentID, &f.Name, &f.Color, &f.IsTrashed, &f.CreatedAt, &f.UpdatedAt)
}

func (r *folderRepository) CreateFolder(ctx context.Context, folder models.Folder) error {
	query, args, err := buildInsertFolderQuery(folder)
	if err != nil {
		return err
	}

	if _, err = r.exec(ctx, query, args); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderRepository.CreateFolder").
			Int64("user_id", folder.UserID).
			Msg("failed to insert folder")
		return mapConstraintError(err, ErrExecutingStatement)
	}

	return nil
}

func (r *folderRepository) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	query, args, err := buildListFoldersQuery(userID)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "folderRepository.ListFolders").
			Int64("user_id", userID).
			Msg("failed to execute query for listing folders")
		return nil, mapConstraintError(err, ErrExecutingQuery)
	}

	return collectRows(rows, scanFolder)
}

func (r *folderRepository) GetFolder(ctx context.Context, userID int64, id string) (models.Folder, error) {
	query, args, err := buildGetFolderQuery(userID, id)
	if err != nil {
		return models.Folder{}, err
	}

	var f models.Folder
	err = r.withRetry(ctx, func() error {
		return scanFolder(r.QueryRowContext(ctx, query, args...), &f)
	})
	if err != nil {
		return models.Folder{}, notFoundOr(err)
	}

	return f, nil
}

func (r *folderRepository) UpdateFolder(ctx context.Context, userID int64, id, name string, color *string) error {
	query, args, err := buildUpdateFolderQuery(userID, id, name, color)
	if err != nil {
		return err
	}

	return r.execOwned(ctx, query, args)
}
