// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/internal/validators"
	"github.com/MKhiriev/mydocs/models"
)

// DashboardRecentLimit is how many notes and passwords the dashboard shows.
const DashboardRecentLimit = 5

var (
	favoriteEntities = []models.EntityType{models.EntityNotes, models.EntityPasswords}
	trashEntities    = []models.EntityType{models.EntityNotes, models.EntityPasswords, models.EntityFolders}
)

type documentService struct {
	documentRepository store.DocumentRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewDocumentService(documentRepository store.DocumentRepository, logger *logger.Logger) DocumentService {
	return &documentService{
		documentRepository: documentRepository,
		validator:          validators.NewWorkspaceValidator(),
		logger:             logger,
	}
}

func (s *documentService) UpdateTitle(ctx context.Context, userID int64, entity models.EntityType, id, title string) error {
	if err := s.validator.Validate(ctx, models.UpdateTitleRequest{Title: title}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := checkDocument(entity, id); err != nil {
		return err
	}

	err := s.documentRepository.UpdateTitle(ctx, userID, entity, id, strings.TrimSpace(title))
	return fromStore(err, "title update failed")
}

func (s *documentService) SetFavorite(ctx context.Context, userID int64, entity models.EntityType, id string, isFavorite bool) error {
	if !entity.SupportsFavorite() {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidEntityType)
	}
	if err := checkDocument(entity, id); err != nil {
		return err
	}

	return fromStore(s.documentRepository.SetFavorite(ctx, userID, entity, id, isFavorite), "favorite update failed")
}

func (s *documentService) MoveToTrash(ctx context.Context, userID int64, entity models.EntityType, id string) error {
	return s.setTrashed(ctx, userID, entity, id, true)
}

func (s *documentService) RestoreFromTrash(ctx context.Context, userID int64, entity models.EntityType, id string) error {
	return s.setTrashed(ctx, userID, entity, id, false)
}

func (s *documentService) setTrashed(ctx context.Context, userID int64, entity models.EntityType, id string, trashed bool) error {
	if err := checkDocument(entity, id); err != nil {
		return err
	}

	return fromStore(s.documentRepository.SetTrashed(ctx, userID, entity, id, trashed), "trash update failed")
}

// DeletePermanently removes the row. For passwords the envelope goes with it.
func (s *documentService) DeletePermanently(ctx context.Context, userID int64, entity models.EntityType, id string) error {
	if err := checkDocument(entity, id); err != nil {
		return err
	}

	if err := s.documentRepository.Delete(ctx, userID, entity, id); err != nil {
		return fromStore(err, "permanent delete failed")
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", userID).
		Str("entity", string(entity)).
		Str("id", id).
		Msg("document deleted permanently")

	return nil
}

// ListFavorites returns favorite non-trashed notes and passwords, most
// recently updated first.
func (s *documentService) ListFavorites(ctx context.Context, userID int64) ([]models.DocumentSummary, error) {
	return s.collect(ctx, userID, favoriteEntities, models.SummaryFilter{FavoritesOnly: true})
}

// ListTrash returns every trashed note, password and folder, most recently
// updated first.
func (s *documentService) ListTrash(ctx context.Context, userID int64) ([]models.DocumentSummary, error) {
	return s.collect(ctx, userID, trashEntities, models.SummaryFilter{Trashed: true})
}

func (s *documentService) collect(ctx context.Context, userID int64, entities []models.EntityType, filter models.SummaryFilter) ([]models.DocumentSummary, error) {
	result := make([]models.DocumentSummary, 0)
	for _, entity := range entities {
		summaries, err := s.documentRepository.ListSummaries(ctx, userID, entity, filter)
		if err != nil {
			return nil, fromStore(err, "listing "+string(entity)+" failed")
		}
		result = append(result, summaries...)
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})

	return result, nil
}

// Dashboard returns the most recently updated notes and passwords together
// with the number of non-trashed notes, passwords and folders.
func (s *documentService) Dashboard(ctx context.Context, userID int64) (models.Dashboard, error) {
	recent := models.SummaryFilter{Limit: DashboardRecentLimit}

	notes, err := s.documentRepository.ListSummaries(ctx, userID, models.EntityNotes, recent)
	if err != nil {
		return models.Dashboard{}, fromStore(err, "listing recent notes failed")
	}
	passwords, err := s.documentRepository.ListSummaries(ctx, userID, models.EntityPasswords, recent)
	if err != nil {
		return models.Dashboard{}, fromStore(err, "listing recent passwords failed")
	}

	dashboard := models.Dashboard{RecentNotes: notes, RecentPasswords: passwords}

	counts := []struct {
		entity models.EntityType
		dst    *int
	}{
		{models.EntityNotes, &dashboard.NotesCount},
		{models.EntityPasswords, &dashboard.PasswordsCount},
		{models.EntityFolders, &dashboard.FoldersCount},
	}
	for _, c := range counts {
		if *c.dst, err = s.documentRepository.Count(ctx, userID, c.entity); err != nil {
			return models.Dashboard{}, fromStore(err, "counting "+string(c.entity)+" failed")
		}
	}

	return dashboard, nil
}

func checkDocument(entity models.EntityType, id string) error {
	if _, ok := models.ParseEntityType(string(entity)); !ok {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidEntityType)
	}
	if !utils.IsUUID(id) {
		return ErrNotFound
	}
	return nil
}
