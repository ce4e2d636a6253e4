// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/MKhiriev/mydocs/internal/service"
	"github.com/MKhiriev/mydocs/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboard_EmptyListsEncodeAsArrays(t *testing.T) {
	svcs := newTestServices()
	svcs.documents.dashboardFn = func(context.Context, int64) (models.Dashboard, error) {
		return models.Dashboard{NotesCount: 3}, nil
	}

	rec := svcs.serve(t, http.MethodGet, "/api/dashboard", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"recent_notes":[],"recent_passwords":[],"notes_count":3,"passwords_count":0,"folders_count":0}`,
		rec.Body.String())
}

func TestUpdateTitle(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantEntity models.EntityType
		wantStatus int
	}{
		{name: "note", path: "/api/documents/notes/" + testID + "/title", wantEntity: models.EntityNotes, wantStatus: http.StatusNoContent},
		{name: "folder", path: "/api/documents/folders/" + testID + "/title", wantEntity: models.EntityFolders, wantStatus: http.StatusNoContent},
		{name: "unknown entity", path: "/api/documents/users/" + testID + "/title", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			called := false
			svcs.documents.updateTitleFn = func(_ context.Context, _ int64, entity models.EntityType, id, title string) error {
				called = true
				assert.Equal(t, tt.wantEntity, entity)
				assert.Equal(t, testID, id)
				assert.Equal(t, "Renamed", title)
				return nil
			}

			rec := svcs.serve(t, http.MethodPut, tt.path, `{"title":"Renamed"}`)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantStatus == http.StatusNoContent, called)
		})
	}
}

func TestSetFavorite_UnsupportedEntity(t *testing.T) {
	svcs := newTestServices()
	svcs.documents.setFavoriteFn = func(_ context.Context, _ int64, entity models.EntityType, _ string, isFavorite bool) error {
		assert.Equal(t, models.EntityFolders, entity)
		assert.True(t, isFavorite)
		return service.ErrInvalidDataProvided
	}

	rec := svcs.serve(t, http.MethodPut, "/api/documents/folders/"+testID+"/favorite", `{"is_favorite":true}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrashActions(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		setup  func(svcs *testServices, called *string)
	}{
		{
			name:   "move to trash",
			method: http.MethodPost,
			path:   "/api/trash/passwords/" + testID,
			setup: func(svcs *testServices, called *string) {
				svcs.documents.moveToTrashFn = func(_ context.Context, _ int64, entity models.EntityType, _ string) error {
					*called = "trash:" + string(entity)
					return nil
				}
			},
		},
		{
			name:   "restore",
			method: http.MethodPost,
			path:   "/api/trash/passwords/" + testID + "/restore",
			setup: func(svcs *testServices, called *string) {
				svcs.documents.restoreFromTrashFn = func(_ context.Context, _ int64, entity models.EntityType, _ string) error {
					*called = "restore:" + string(entity)
					return nil
				}
			},
		},
		{
			name:   "delete permanently",
			method: http.MethodDelete,
			path:   "/api/trash/passwords/" + testID,
			setup: func(svcs *testServices, called *string) {
				svcs.documents.deletePermanentlyFn = func(_ context.Context, _ int64, entity models.EntityType, _ string) error {
					*called = "delete:" + string(entity)
					return nil
				}
			},
		},
	}

	want := map[string]string{
		"move to trash":      "trash:passwords",
		"restore":            "restore:passwords",
		"delete permanently": "delete:passwords",
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			var called string
			tt.setup(svcs, &called)

			rec := svcs.serve(t, tt.method, tt.path, "")

			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, want[tt.name], called)
		})
	}
}

func TestMoveToTrash_NotFound(t *testing.T) {
	svcs := newTestServices()
	svcs.documents.moveToTrashFn = func(context.Context, int64, models.EntityType, string) error {
		return service.ErrNotFound
	}

	rec := svcs.serve(t, http.MethodPost, "/api/trash/notes/"+testID, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListTrash(t *testing.T) {
	svcs := newTestServices()
	svcs.documents.listTrashFn = func(context.Context, int64) ([]models.DocumentSummary, error) {
		return []models.DocumentSummary{{ID: testID, Entity: models.EntityNotes, Title: "old"}}, nil
	}

	rec := svcs.serve(t, http.MethodGet, "/api/trash", "")

	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeResponse[[]models.DocumentSummary](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, models.EntityNotes, items[0].Entity)
}

func TestGetFolderContents(t *testing.T) {
	svcs := newTestServices()
	svcs.folders.getFolderContentsFn = func(_ context.Context, _ int64, id string) (models.FolderContents, error) {
		return models.FolderContents{Folder: models.Folder{ID: id, Name: "Work"}}, nil
	}

	rec := svcs.serve(t, http.MethodGet, "/api/folders/"+testID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	contents := decodeResponse[models.FolderContents](t, rec)
	assert.Equal(t, "Work", contents.Folder.Name)
}
