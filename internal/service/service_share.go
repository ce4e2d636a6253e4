// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/mydocs/internal/crypto"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/internal/validators"
	"github.com/MKhiriev/mydocs/models"
)

// UnreadableVaultPlaceholder replaces a shared secret that cannot be
// decrypted.
const UnreadableVaultPlaceholder = "[unreadable: content may be corrupted or the encryption key changed]"

type shareService struct {
	shareRepository    store.ShareRepository
	documentRepository store.DocumentRepository
	noteRepository     store.NoteRepository
	passwordRepository store.PasswordRepository
	folderRepository   store.FolderRepository
	cipher             crypto.VaultCipher
	validator          validators.Validator
	ids                IDGenerator

	logger *logger.Logger
}

func NewShareService(storages *store.Storages, cipher crypto.VaultCipher, ids IDGenerator, logger *logger.Logger) ShareService {
	return &shareService{
		shareRepository:    storages.ShareRepository,
		documentRepository: storages.DocumentRepository,
		noteRepository:     storages.NoteRepository,
		passwordRepository: storages.PasswordRepository,
		folderRepository:   storages.FolderRepository,
		cipher:             cipher,
		validator:          validators.NewWorkspaceValidator(),
		ids:                ids,
		logger:             logger,
	}
}

// GenerateLink returns a public link for an owned note, password or folder.
//
// An entity has at most one link per owner. When a link already exists and
// neither it nor the requested one is password protected, the existing
// token is returned unchanged. Otherwise the old link is replaced, which
// invalidates its token.
func (s *shareService) GenerateLink(ctx context.Context, userID int64, request models.CreateShareRequest) (models.SharedLink, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.SharedLink{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if _, err := s.documentRepository.GetSummary(ctx, userID, request.Entity, request.EntityID); err != nil {
		return models.SharedLink{}, fromStore(err, "shared entity lookup failed")
	}

	link := models.SharedLink{
		Token:      s.ids.Token(),
		UserID:     userID,
		EntityID:   request.EntityID,
		Entity:     request.Entity,
		Permission: request.Permission,
	}
	if link.Permission == "" {
		link.Permission = models.ShareView
	}
	if strings.TrimSpace(request.Password) != "" {
		hash := utils.SHA256Hex(request.Password)
		link.PasswordHash = &hash
	}

	existing, err := s.shareRepository.FindLink(ctx, userID, request.EntityID, request.Entity)
	switch {
	case errors.Is(err, store.ErrNotFound):
		created, err := s.shareRepository.CreateLink(ctx, link)
		if errors.Is(err, store.ErrLinkExists) {
			// A concurrent request created the link first.
			return s.findLink(ctx, userID, request)
		}
		if err != nil {
			log.Err(err).Str("entity_id", request.EntityID).Msg("shared link creation failed")
			return models.SharedLink{}, fromStore(err, "shared link creation failed")
		}
		return created, nil

	case err != nil:
		return models.SharedLink{}, fromStore(err, "shared link lookup failed")

	case !existing.IsProtected() && !link.IsProtected():
		return existing, nil
	}

	replaced, err := s.shareRepository.ReplaceLink(ctx, existing.Token, link)
	if err != nil {
		log.Err(err).Str("entity_id", request.EntityID).Msg("shared link replacement failed")
		return models.SharedLink{}, fromStore(err, "shared link replacement failed")
	}

	return replaced, nil
}

func (s *shareService) findLink(ctx context.Context, userID int64, request models.CreateShareRequest) (models.SharedLink, error) {
	link, err := s.shareRepository.FindLink(ctx, userID, request.EntityID, request.Entity)
	if err != nil {
		return models.SharedLink{}, fromStore(err, "shared link lookup failed")
	}
	return link, nil
}

func (s *shareService) DeleteLink(ctx context.Context, userID int64, token string) error {
	if !utils.IsUUID(token) {
		return ErrNotFound
	}
	return fromStore(s.shareRepository.DeleteLink(ctx, userID, token), "shared link delete failed")
}

func (s *shareService) ListLinks(ctx context.Context, userID int64) ([]models.SharedLink, error) {
	links, err := s.shareRepository.ListLinks(ctx, userID)
	if err != nil {
		return nil, fromStore(err, "listing shared links failed")
	}

	return links, nil
}

// VerifyPassword reports whether attempt matches the link password. Links
// without a password have nothing to verify and report false.
func (s *shareService) VerifyPassword(ctx context.Context, token, attempt string) (bool, error) {
	link, err := s.linkByToken(ctx, token)
	if err != nil {
		return false, err
	}

	return passwordMatches(link, attempt), nil
}

// Resolve returns the shared content behind token. Protected links need the
// correct password in attempt; trashed or deleted entities are not found.
func (s *shareService) Resolve(ctx context.Context, token, attempt string) (models.SharedContent, error) {
	link, err := s.linkByToken(ctx, token)
	if err != nil {
		return models.SharedContent{}, err
	}

	if link.IsProtected() {
		if strings.TrimSpace(attempt) == "" {
			return models.SharedContent{}, ErrSharePasswordRequired
		}
		if !passwordMatches(link, attempt) {
			return models.SharedContent{}, ErrWrongSharePassword
		}
	}

	content := models.SharedContent{Entity: link.Entity, Permission: link.Permission}

	switch link.Entity {
	case models.EntityNotes:
		note, err := s.noteRepository.GetNote(ctx, link.UserID, link.EntityID)
		if err != nil {
			return models.SharedContent{}, fromStore(err, "shared note lookup failed")
		}
		if note.IsTrashed {
			return models.SharedContent{}, ErrNotFound
		}
		content.Title = note.Title
		content.Note = &note

	case models.EntityPasswords:
		password, err := s.passwordRepository.GetPassword(ctx, link.UserID, link.EntityID)
		if err != nil {
			return models.SharedContent{}, fromStore(err, "shared password lookup failed")
		}
		if password.IsTrashed {
			return models.SharedContent{}, ErrNotFound
		}
		shared := s.reveal(ctx, password)
		content.Title = password.Title
		content.Password = &shared

	case models.EntityFolders:
		folder, err := s.sharedFolder(ctx, link)
		if err != nil {
			return models.SharedContent{}, err
		}
		content.Title = folder.Folder.Name
		content.Folder = &folder

	default:
		return models.SharedContent{}, ErrNotFound
	}

	return content, nil
}

func (s *shareService) linkByToken(ctx context.Context, token string) (models.SharedLink, error) {
	if !utils.IsUUID(token) {
		return models.SharedLink{}, ErrNotFound
	}

	link, err := s.shareRepository.GetLinkByToken(ctx, token)
	if err != nil {
		return models.SharedLink{}, fromStore(err, "shared link lookup failed")
	}

	return link, nil
}

func (s *shareService) sharedFolder(ctx context.Context, link models.SharedLink) (models.SharedFolder, error) {
	folder, err := s.folderRepository.GetFolder(ctx, link.UserID, link.EntityID)
	if err != nil {
		return models.SharedFolder{}, fromStore(err, "shared folder lookup failed")
	}
	if folder.IsTrashed {
		return models.SharedFolder{}, ErrNotFound
	}

	notes, err := s.noteRepository.ListNotes(ctx, link.UserID, &folder.ID)
	if err != nil {
		return models.SharedFolder{}, fromStore(err, "listing shared folder notes failed")
	}

	passwords, err := s.passwordRepository.ListPasswords(ctx, link.UserID, &folder.ID)
	if err != nil {
		return models.SharedFolder{}, fromStore(err, "listing shared folder passwords failed")
	}

	shared := make([]models.SharedPassword, 0, len(passwords))
	for _, p := range passwords {
		shared = append(shared, s.reveal(ctx, p))
	}

	return models.SharedFolder{Folder: folder, Notes: notes, Passwords: shared}, nil
}

// reveal decrypts a vault entry for a share. Unreadable entries are replaced
// by UnreadableVaultPlaceholder instead of failing the whole response.
func (s *shareService) reveal(ctx context.Context, password models.Password) models.SharedPassword {
	value, err := s.cipher.Decrypt(password.Encrypted)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("id", password.ID).Msg("shared vault entry could not be decrypted")
		value = UnreadableVaultPlaceholder
	}

	return models.SharedPassword{
		ID:        password.ID,
		Title:     password.Title,
		Value:     value,
		UpdatedAt: password.UpdatedAt,
	}
}

func passwordMatches(link models.SharedLink, attempt string) bool {
	if !link.IsProtected() {
		return false
	}
	return utils.EqualHashes(utils.SHA256Hex(attempt), *link.PasswordHash)
}
