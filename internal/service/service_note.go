// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/internal/validators"
	"github.com/MKhiriev/mydocs/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	validator      validators.Validator
	ids            IDGenerator

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, ids IDGenerator, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		validator:      validators.NewWorkspaceValidator(),
		ids:            ids,
		logger:         logger,
	}
}

// CreateNote creates an empty note titled [models.DefaultNoteTitle].
func (s *noteService) CreateNote(ctx context.Context, userID int64, folderID *string) (models.Note, error) {
	if folderID != nil && !utils.IsUUID(*folderID) {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidID)
	}

	note := models.Note{
		ID:       s.ids.Generate(),
		UserID:   userID,
		FolderID: folderID,
		Title:    models.DefaultNoteTitle,
		Content:  models.EmptyNoteContent,
	}

	if err := s.noteRepository.CreateNote(ctx, note); err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("note creation failed")
		return models.Note{}, fromStore(err, "note creation failed")
	}

	return note, nil
}

func (s *noteService) ListNotes(ctx context.Context, userID int64, folderID *string) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, userID, folderID)
	if err != nil {
		return nil, fromStore(err, "listing notes failed")
	}

	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, userID int64, id string) (models.Note, error) {
	if !utils.IsUUID(id) {
		return models.Note{}, ErrNotFound
	}

	note, err := s.noteRepository.GetNote(ctx, userID, id)
	if err != nil {
		return models.Note{}, fromStore(err, "note lookup failed")
	}

	return note, nil
}

// UpdateNoteContent replaces the whole block document of a note.
func (s *noteService) UpdateNoteContent(ctx context.Context, userID int64, id string, content json.RawMessage) error {
	if err := s.validator.Validate(ctx, models.UpdateNoteContentRequest{Content: content}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if !utils.IsUUID(id) {
		return ErrNotFound
	}

	return fromStore(s.noteRepository.UpdateNoteContent(ctx, userID, id, content), "note content update failed")
}
