// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/service"
	"github.com/MKhiriev/mydocs/models"
	"github.com/stretchr/testify/require"
)

const (
	testUserID int64 = 42
	testToken        = "valid-token"
	testID           = "0190d3a4-6f1e-7c2a-9b3d-1a2b3c4d5e6f"
)

// testServices holds one fake per service; tests override the functions
// they care about before building the handler.
type testServices struct {
	auth      *mockAuthService
	notes     *mockNoteService
	passwords *mockPasswordService
	folders   *mockFolderService
	documents *mockDocumentService
	finance   *mockFinanceService
	shares    *mockShareService
}

func newTestServices() *testServices {
	return &testServices{
		auth: &mockAuthService{
			parseTokenFn: func(_ context.Context, token string) (models.Token, error) {
				if token != testToken {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return models.Token{SignedString: token, UserID: testUserID}, nil
			},
		},
		notes:     &mockNoteService{},
		passwords: &mockPasswordService{},
		folders:   &mockFolderService{},
		documents: &mockDocumentService{},
		finance:   &mockFinanceService{},
		shares:    &mockShareService{},
	}
}

func (s *testServices) handler() *Handler {
	return NewHandler(&service.Services{
		AuthService:     s.auth,
		NoteService:     s.notes,
		PasswordService: s.passwords,
		FolderService:   s.folders,
		DocumentService: s.documents,
		FinanceService:  s.finance,
		ShareService:    s.shares,
		AppInfoService:  &mockAppInfoService{version: "test-version"},
	}, logger.Nop())
}

// serve sends a request through the full router. Requests carry a valid
// bearer token unless the caller sets its own Authorization header.
func (s *testServices) serve(t *testing.T, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.Zero(t, len(headers)%2, "headers must be key/value pairs")

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+testToken)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rec := httptest.NewRecorder()
	s.handler().Init().ServeHTTP(rec, req)
	return rec
}

func decodeResponse[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}
