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

func TestCreatePassword(t *testing.T) {
	svcs := newTestServices()
	svcs.passwords.createPasswordFn = func(_ context.Context, _ int64, request models.CreatePasswordRequest) (models.Password, error) {
		assert.Equal(t, "Production DB", request.Title)
		require.NotNil(t, request.Username)
		assert.Equal(t, "admin", *request.Username)
		return models.Password{ID: testID}, nil
	}

	rec := svcs.serve(t, http.MethodPost, "/api/passwords", `{"title":"Production DB","username":"admin"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, testID, decodeResponse[models.IDResponse](t, rec).ID)
}

func TestGetPassword_NeverExposesEnvelope(t *testing.T) {
	svcs := newTestServices()
	svcs.passwords.getPasswordFn = func(context.Context, int64, string) (models.Password, error) {
		return models.Password{ID: testID, Title: "db", Encrypted: "aa:bb:cc"}, nil
	}

	rec := svcs.serve(t, http.MethodGet, "/api/passwords/"+testID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "aa:bb:cc")
}

func TestUpdatePasswordContent(t *testing.T) {
	svcs := newTestServices()
	svcs.passwords.updatePasswordContentFn = func(_ context.Context, _ int64, id, plaintext string) error {
		assert.Equal(t, testID, id)
		assert.Equal(t, "user: admin\npassword: secret123", plaintext)
		return nil
	}

	rec := svcs.serve(t, http.MethodPut, "/api/passwords/"+testID+"/content", `{"content":"user: admin\npassword: secret123"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRevealPassword(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svcs := newTestServices()
		svcs.passwords.revealPasswordFn = func(_ context.Context, _ int64, id string) (models.RevealedPassword, error) {
			return models.RevealedPassword{ID: id, Value: "hunter2"}, nil
		}

		rec := svcs.serve(t, http.MethodGet, "/api/passwords/"+testID+"/reveal", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "hunter2", decodeResponse[models.RevealedPassword](t, rec).Value)
	})

	t.Run("unreadable", func(t *testing.T) {
		svcs := newTestServices()
		svcs.passwords.revealPasswordFn = func(context.Context, int64, string) (models.RevealedPassword, error) {
			return models.RevealedPassword{}, service.ErrVaultContentUnreadable
		}

		rec := svcs.serve(t, http.MethodGet, "/api/passwords/"+testID+"/reveal", "")

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "encryption key changed")
	})
}
