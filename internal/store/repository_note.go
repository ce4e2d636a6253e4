// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{DB: db, logger: logger}
}

func scanNote(row rowScanner, note *models.Note) error {
	var content []byte
	if err := row.Scan(&note.ID, &note.UserID, &note.FolderID, &note.Title, &content,
		&note.IsFavorite, &note.IsTrashed, &note.CreatedAt, &note.UpdatedAt); err != nil {
		return err
	}
	note.Content = json.RawMessage(content)
	return nil
}

// CreateNote inserts note. A folder id that does not exist yields
// [ErrReferencedEntityNotFound].
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		return err
	}

	if _, err = r.exec(ctx, query, args); err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Int64("user_id", note.UserID).
			Msg("failed to insert note")
		return mapConstraintError(err, ErrExecutingStatement)
	}

	return nil
}

// ListNotes returns the user's non-trashed notes, most recently updated
// first, optionally restricted to one folder.
func (r *noteRepository) ListNotes(ctx context.Context, userID int64, folderID *string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(userID, folderID)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, query, args)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for listing notes")
		return nil, mapConstraintError(err, ErrExecutingQuery)
	}

	return collectRows(rows, scanNote)
}

// GetNote returns one note including its content.
func (r *noteRepository) GetNote(ctx context.Context, userID int64, id string) (models.Note, error) {
	query, args, err := buildGetNoteQuery(userID, id)
	if err != nil {
		return models.Note{}, err
	}

	var note models.Note
	err = r.withRetry(ctx, func() error {
		return scanNote(r.QueryRowContext(ctx, query, args...), &note)
	})
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "noteRepository.GetNote").Str("id", id).Msg("note lookup failed")
		return models.Note{}, notFoundOr(err)
	}

	return note, nil
}

// UpdateNoteContent replaces the note's content document.
func (r *noteRepository) UpdateNoteContent(ctx context.Context, userID int64, id string, content json.RawMessage) error {
	query, args, err := buildUpdateNoteContentQuery(userID, id, content)
	if err != nil {
		return err
	}

	if err = r.execOwned(ctx, query, args); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "noteRepository.UpdateNoteContent").
			Str("id", id).
			Msg("failed to update note content")
		return err
	}

	return nil
}
