// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"time"

	"github.com/MKhiriev/mydocs/models"
)

// ─────────────────────────────────────────────
// Service fakes
// ─────────────────────────────────────────────

type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

type mockAuthService struct {
	registerUserFn   func(ctx context.Context, request models.RegisterRequest) (models.User, error)
	loginFn          func(ctx context.Context, request models.LoginRequest) (models.User, error)
	createTokenFn    func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn     func(ctx context.Context, token string) (models.Token, error)
	getProfileFn     func(ctx context.Context, userID int64) (models.User, error)
	updateProfileFn  func(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error)
	changePasswordFn func(ctx context.Context, userID int64, request models.ChangePasswordRequest) error
}

func (m *mockAuthService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	if m.registerUserFn != nil {
		return m.registerUserFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return models.User{}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed-token", UserID: user.UserID, ExpiresAt: time.Unix(1_900_000_000, 0)}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, token string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, token)
	}
	return models.Token{}, nil
}

func (m *mockAuthService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	if m.getProfileFn != nil {
		return m.getProfileFn(ctx, userID)
	}
	return models.User{UserID: userID}, nil
}

func (m *mockAuthService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, request)
	}
	return models.User{UserID: userID, FullName: request.FullName}, nil
}

func (m *mockAuthService) ChangePassword(ctx context.Context, userID int64, request models.ChangePasswordRequest) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(ctx, userID, request)
	}
	return nil
}

type mockNoteService struct {
	createNoteFn        func(ctx context.Context, userID int64, folderID *string) (models.Note, error)
	listNotesFn         func(ctx context.Context, userID int64, folderID *string) ([]models.Note, error)
	getNoteFn           func(ctx context.Context, userID int64, id string) (models.Note, error)
	updateNoteContentFn func(ctx context.Context, userID int64, id string, content json.RawMessage) error
}

func (m *mockNoteService) CreateNote(ctx context.Context, userID int64, folderID *string) (models.Note, error) {
	if m.createNoteFn != nil {
		return m.createNoteFn(ctx, userID, folderID)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) ListNotes(ctx context.Context, userID int64, folderID *string) ([]models.Note, error) {
	if m.listNotesFn != nil {
		return m.listNotesFn(ctx, userID, folderID)
	}
	return nil, nil
}

func (m *mockNoteService) GetNote(ctx context.Context, userID int64, id string) (models.Note, error) {
	if m.getNoteFn != nil {
		return m.getNoteFn(ctx, userID, id)
	}
	return models.Note{}, nil
}

func (m *mockNoteService) UpdateNoteContent(ctx context.Context, userID int64, id string, content json.RawMessage) error {
	if m.updateNoteContentFn != nil {
		return m.updateNoteContentFn(ctx, userID, id, content)
	}
	return nil
}

type mockPasswordService struct {
	createPasswordFn        func(ctx context.Context, userID int64, request models.CreatePasswordRequest) (models.Password, error)
	listPasswordsFn         func(ctx context.Context, userID int64, folderID *string) ([]models.Password, error)
	getPasswordFn           func(ctx context.Context, userID int64, id string) (models.Password, error)
	updatePasswordContentFn func(ctx context.Context, userID int64, id, plaintext string) error
	revealPasswordFn        func(ctx context.Context, userID int64, id string) (models.RevealedPassword, error)
}

func (m *mockPasswordService) CreatePassword(ctx context.Context, userID int64, request models.CreatePasswordRequest) (models.Password, error) {
	if m.createPasswordFn != nil {
		return m.createPasswordFn(ctx, userID, request)
	}
	return models.Password{}, nil
}

func (m *mockPasswordService) ListPasswords(ctx context.Context, userID int64, folderID *string) ([]models.Password, error) {
	if m.listPasswordsFn != nil {
		return m.listPasswordsFn(ctx, userID, folderID)
	}
	return nil, nil
}

func (m *mockPasswordService) GetPassword(ctx context.Context, userID int64, id string) (models.Password, error) {
	if m.getPasswordFn != nil {
		return m.getPasswordFn(ctx, userID, id)
	}
	return models.Password{}, nil
}

func (m *mockPasswordService) UpdatePasswordContent(ctx context.Context, userID int64, id, plaintext string) error {
	if m.updatePasswordContentFn != nil {
		return m.updatePasswordContentFn(ctx, userID, id, plaintext)
	}
	return nil
}

func (m *mockPasswordService) RevealPassword(ctx context.Context, userID int64, id string) (models.RevealedPassword, error) {
	if m.revealPasswordFn != nil {
		return m.revealPasswordFn(ctx, userID, id)
	}
	return models.RevealedPassword{}, nil
}

type mockFolderService struct {
	createFolderFn      func(ctx context.Context, userID int64, request models.CreateFolderRequest) (models.Folder, error)
	listFoldersFn       func(ctx context.Context, userID int64) ([]models.Folder, error)
	getFolderContentsFn func(ctx context.Context, userID int64, id string) (models.FolderContents, error)
	updateFolderFn      func(ctx context.Context, userID int64, id string, request models.UpdateFolderRequest) error
}

func (m *mockFolderService) CreateFolder(ctx context.Context, userID int64, request models.CreateFolderRequest) (models.Folder, error) {
	if m.createFolderFn != nil {
		return m.createFolderFn(ctx, userID, request)
	}
	return models.Folder{}, nil
}

func (m *mockFolderService) ListFolders(ctx context.Context, userID int64) ([]models.Folder, error) {
	if m.listFoldersFn != nil {
		return m.listFoldersFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFolderService) GetFolderContents(ctx context.Context, userID int64, id string) (models.FolderContents, error) {
	if m.getFolderContentsFn != nil {
		return m.getFolderContentsFn(ctx, userID, id)
	}
	return models.FolderContents{}, nil
}

func (m *mockFolderService) UpdateFolder(ctx context.Context, userID int64, id string, request models.UpdateFolderRequest) error {
	if m.updateFolderFn != nil {
		return m.updateFolderFn(ctx, userID, id, request)
	}
	return nil
}

type mockDocumentService struct {
	updateTitleFn       func(ctx context.Context, userID int64, entity models.EntityType, id, title string) error
	setFavoriteFn       func(ctx context.Context, userID int64, entity models.EntityType, id string, isFavorite bool) error
	moveToTrashFn       func(ctx context.Context, userID int64, entity models.EntityType, id string) error
	restoreFromTrashFn  func(ctx context.Context, userID int64, entity models.EntityType, id string) error
	deletePermanentlyFn func(ctx context.Context, userID int64, entity models.EntityType, id string) error
	listFavoritesFn     func(ctx context.Context, userID int64) ([]models.DocumentSummary, error)
	listTrashFn         func(ctx context.Context, userID int64) ([]models.DocumentSummary, error)
	dashboardFn         func(ctx context.Context, userID int64) (models.Dashboard, error)
}

func (m *mockDocumentService) UpdateTitle(ctx context.Context, userID int64, entity models.EntityType, id, title string) error {
	if m.updateTitleFn != nil {
		return m.updateTitleFn(ctx, userID, entity, id, title)
	}
	return nil
}

func (m *mockDocumentService) SetFavorite(ctx context.Context, userID int64, entity models.EntityType, id string, isFavorite bool) error {
	if m.setFavoriteFn != nil {
		return m.setFavoriteFn(ctx, userID, entity, id, isFavorite)
	}
	return nil
}

func (m *mockDocumentService) MoveToTrash(ctx context.Context, userID int64, entity models.EntityType, id string) error {
	if m.moveToTrashFn != nil {
		return m.moveToTrashFn(ctx, userID, entity, id)
	}
	return nil
}

func (m *mockDocumentService) RestoreFromTrash(ctx context.Context, userID int64, entity models.EntityType, id string) error {
	if m.restoreFromTrashFn != nil {
		return m.restoreFromTrashFn(ctx, userID, entity, id)
	}
	return nil
}

func (m *mockDocumentService) DeletePermanently(ctx context.Context, userID int64, entity models.EntityType, id string) error {
	if m.deletePermanentlyFn != nil {
		return m.deletePermanentlyFn(ctx, userID, entity, id)
	}
	return nil
}

func (m *mockDocumentService) ListFavorites(ctx context.Context, userID int64) ([]models.DocumentSummary, error) {
	if m.listFavoritesFn != nil {
		return m.listFavoritesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockDocumentService) ListTrash(ctx context.Context, userID int64) ([]models.DocumentSummary, error) {
	if m.listTrashFn != nil {
		return m.listTrashFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockDocumentService) Dashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	if m.dashboardFn != nil {
		return m.dashboardFn(ctx, userID)
	}
	return models.Dashboard{}, nil
}

type mockFinanceService struct {
	listTransactionsFn        func(ctx context.Context, userID int64, year int, month time.Month) ([]models.Transaction, error)
	createTransactionFn       func(ctx context.Context, userID int64, request models.TransactionRequest) (models.Transaction, error)
	updateTransactionFn       func(ctx context.Context, userID int64, id string, request models.TransactionRequest) (models.Transaction, error)
	updateTransactionStatusFn func(ctx context.Context, userID int64, id string, status models.TransactionStatus) error
	deleteTransactionFn       func(ctx context.Context, userID int64, id string) error
	monthlySummaryFn          func(ctx context.Context, userID int64, year int, month time.Month) (models.MonthlySummary, error)
	listCategoriesFn          func(ctx context.Context, userID int64) ([]models.Category, error)
	createCategoryFn          func(ctx context.Context, userID int64, request models.CategoryRequest) (models.Category, error)
	updateCategoryFn          func(ctx context.Context, userID int64, id string, request models.CategoryRequest) (models.Category, error)
	deleteCategoryFn          func(ctx context.Context, userID int64, id string) error
}

func (m *mockFinanceService) ListTransactions(ctx context.Context, userID int64, year int, month time.Month) ([]models.Transaction, error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(ctx, userID, year, month)
	}
	return nil, nil
}

func (m *mockFinanceService) CreateTransaction(ctx context.Context, userID int64, request models.TransactionRequest) (models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(ctx, userID, request)
	}
	return models.Transaction{}, nil
}

func (m *mockFinanceService) UpdateTransaction(ctx context.Context, userID int64, id string, request models.TransactionRequest) (models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(ctx, userID, id, request)
	}
	return models.Transaction{}, nil
}

func (m *mockFinanceService) UpdateTransactionStatus(ctx context.Context, userID int64, id string, status models.TransactionStatus) error {
	if m.updateTransactionStatusFn != nil {
		return m.updateTransactionStatusFn(ctx, userID, id, status)
	}
	return nil
}

func (m *mockFinanceService) DeleteTransaction(ctx context.Context, userID int64, id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(ctx, userID, id)
	}
	return nil
}

func (m *mockFinanceService) MonthlySummary(ctx context.Context, userID int64, year int, month time.Month) (models.MonthlySummary, error) {
	if m.monthlySummaryFn != nil {
		return m.monthlySummaryFn(ctx, userID, year, month)
	}
	return models.MonthlySummary{}, nil
}

func (m *mockFinanceService) ListCategories(ctx context.Context, userID int64) ([]models.Category, error) {
	if m.listCategoriesFn != nil {
		return m.listCategoriesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockFinanceService) CreateCategory(ctx context.Context, userID int64, request models.CategoryRequest) (models.Category, error) {
	if m.createCategoryFn != nil {
		return m.createCategoryFn(ctx, userID, request)
	}
	return models.Category{}, nil
}

func (m *mockFinanceService) UpdateCategory(ctx context.Context, userID int64, id string, request models.CategoryRequest) (models.Category, error) {
	if m.updateCategoryFn != nil {
		return m.updateCategoryFn(ctx, userID, id, request)
	}
	return models.Category{}, nil
}

func (m *mockFinanceService) DeleteCategory(ctx context.Context, userID int64, id string) error {
	if m.deleteCategoryFn != nil {
		return m.deleteCategoryFn(ctx, userID, id)
	}
	return nil
}

type mockShareService struct {
	generateLinkFn   func(ctx context.Context, userID int64, request models.CreateShareRequest) (models.SharedLink, error)
	deleteLinkFn     func(ctx context.Context, userID int64, token string) error
	listLinksFn      func(ctx context.Context, userID int64) ([]models.SharedLink, error)
	verifyPasswordFn func(ctx context.Context, token, attempt string) (bool, error)
	resolveFn        func(ctx context.Context, token, attempt string) (models.SharedContent, error)
}

func (m *mockShareService) GenerateLink(ctx context.Context, userID int64, request models.CreateShareRequest) (models.SharedLink, error) {
	if m.generateLinkFn != nil {
		return m.generateLinkFn(ctx, userID, request)
	}
	return models.SharedLink{}, nil
}

func (m *mockShareService) DeleteLink(ctx context.Context, userID int64, token string) error {
	if m.deleteLinkFn != nil {
		return m.deleteLinkFn(ctx, userID, token)
	}
	return nil
}

func (m *mockShareService) ListLinks(ctx context.Context, userID int64) ([]models.SharedLink, error) {
	if m.listLinksFn != nil {
		return m.listLinksFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockShareService) VerifyPassword(ctx context.Context, token, attempt string) (bool, error) {
	if m.verifyPasswordFn != nil {
		return m.verifyPasswordFn(ctx, token, attempt)
	}
	return false, nil
}

func (m *mockShareService) Resolve(ctx context.Context, token, attempt string) (models.SharedContent, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, token, attempt)
	}
	return models.SharedContent{}, nil
}
