// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/internal/validators"
	"github.com/MKhiriev/mydocs/models"
)

type folderService struct {
	folderRepository   store.FolderRepository
	noteRepository     store.NoteRepository
	passwordRepository store.PasswordRepository
	validator          validators.Validator
	ids                IDGenerator

	logger *logger.Logger
}

func NewFolderService(storages *store.Storages, ids IDGenerator, logger *logger.Logger) FolderService {
	return &folderService{
		folderRepository:   storages.FolderRepository,
		noteRepository:     storages.NoteRepository,
		passwordRepository: storages.PasswordRepository,
		validator:          validators.NewWorkspaceValidator(),
		ids:                ids,
		logger:             logger,
	}
}

func (s *folderService) CreateFolder(ctx context.Context, userID int64, request models.CreateFolderRequest) (models.Folder, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Folder{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	folder := models.Folder{
		ID:       s.ids.Generate(),
		UserID:   userID,
		ParentID: request.ParentID,
		Name:     strings.TrimSpace(request.Name),
		Color:    request.Color,
	}

	if err := s.folderRepository.CreateFolder(ctx, folder); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("folder creation failed")
		return models.Folder{}, fromStore(err, "folder creation failed")
	}

	return folder, nil
}

func (s *folderService) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	folders, err := s.folderRepository.ListFolders(ctx, userID)
	if err != nil {
		return nil, fromStore(err, "listing folders failed")
	}

	return folders, nil
}

// GetFolderContents returns the folder with its non-trashed notes and the
// metadata of its non-trashed passwords.
func (s *folderService) GetFolderContents(ctx context.Context, userID int64, id string) (models.FolderContents, error) {
	if !utils.IsUUID(id) {
		return models.FolderContents{}, ErrNotFound
	}

	folder, err := s.folderRepository.GetFolder(ctx, userID, id)
	if err != nil {
		return models.FolderContents{}, fromStore(err, "folder lookup failed")
	}

	notes, err := s.noteRepository.ListNotes(ctx, userID, &folder.ID)
	if err != nil {
		return models.FolderContents{}, fromStore(err, "listing folder notes failed")
	}

	passwords, err := s.passwordRepository.ListPasswords(ctx, userID, &folder.ID)
	if err != nil {
		return models.FolderContents{}, fromStore(err, "listing folder passwords failed")
	}
	for i := range passwords {
		passwords[i].Encrypted = ""
	}

	return models.FolderContents{Folder: folder, Notes: notes, Passwords: passwords}, nil
}

func (s *folderService) UpdateFolder(ctx context.Context, userID int64, id string, request models.UpdateFolderRequest) error {
	if err := s.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !utils.IsUUID(id) {
		return ErrNotFound
	}

	err := s.folderRepository.UpdateFolder(ctx, userID, id, strings.TrimSpace(request.Name), request.Color)
	return fromStore(err, "folder update failed")
}
