// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteService(t *testing.T) (*repositories, NoteService) {
	t.Helper()
	repos, _ := newRepositories(t)
	return repos, NewNoteService(repos.notes, fixedIDs{id: testID}, logger.Nop())
}

func TestNoteService_CreateNote(t *testing.T) {
	repos, svc := newTestNoteService(t)

	repos.notes.EXPECT().
		CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, note models.Note) error {
			assert.Equal(t, testID, note.ID)
			assert.Equal(t, testUserID, note.UserID)
			assert.Equal(t, models.DefaultNoteTitle, note.Title)
			assert.JSONEq(t, `[]`, string(note.Content))
			require.NotNil(t, note.FolderID)
			assert.Equal(t, testFolderID, *note.FolderID)
			return nil
		})

	note, err := svc.CreateNote(context.Background(), testUserID, strPtr(testFolderID))

	require.NoError(t, err)
	assert.Equal(t, testID, note.ID)
}

func TestNoteService_CreateNote_Errors(t *testing.T) {
	t.Run("malformed folder id", func(t *testing.T) {
		_, svc := newTestNoteService(t)

		_, err := svc.CreateNote(context.Background(), testUserID, strPtr("not-a-uuid"))
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("foreign folder", func(t *testing.T) {
		repos, svc := newTestNoteService(t)
		repos.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).Return(store.ErrReferencedEntityNotFound)

		_, err := svc.CreateNote(context.Background(), testUserID, strPtr(testFolderID))
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestNoteService_GetNote(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repos, svc := newTestNoteService(t)
		repos.notes.EXPECT().GetNote(gomock.Any(), testUserID, testID).Return(models.Note{ID: testID, Title: "Plan"}, nil)

		note, err := svc.GetNote(context.Background(), testUserID, testID)
		require.NoError(t, err)
		assert.Equal(t, "Plan", note.Title)
	})

	t.Run("owned by another user", func(t *testing.T) {
		repos, svc := newTestNoteService(t)
		repos.notes.EXPECT().GetNote(gomock.Any(), testUserID, testID).Return(models.Note{}, store.ErrNotFound)

		_, err := svc.GetNote(context.Background(), testUserID, testID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, svc := newTestNoteService(t)

		_, err := svc.GetNote(context.Background(), testUserID, "42")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNoteService_ListNotes_StorageError(t *testing.T) {
	repos, svc := newTestNoteService(t)
	repos.notes.EXPECT().ListNotes(gomock.Any(), testUserID, nil).Return(nil, errDatabase)

	_, err := svc.ListNotes(context.Background(), testUserID, nil)

	assert.ErrorIs(t, err, errDatabase)
}

func TestNoteService_UpdateNoteContent(t *testing.T) {
	content := json.RawMessage(`[{"type":"paragraph","content":"hello"}]`)

	t.Run("success", func(t *testing.T) {
		repos, svc := newTestNoteService(t)
		repos.notes.EXPECT().UpdateNoteContent(gomock.Any(), testUserID, testID, content).Return(nil)

		require.NoError(t, svc.UpdateNoteContent(context.Background(), testUserID, testID, content))
	})

	t.Run("not an array", func(t *testing.T) {
		_, svc := newTestNoteService(t)

		err := svc.UpdateNoteContent(context.Background(), testUserID, testID, json.RawMessage(`{"a":1}`))
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("missing note", func(t *testing.T) {
		repos, svc := newTestNoteService(t)
		repos.notes.EXPECT().UpdateNoteContent(gomock.Any(), testUserID, testID, content).Return(store.ErrNotFound)

		err := svc.UpdateNoteContent(context.Background(), testUserID, testID, content)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
