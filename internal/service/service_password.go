// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/mydocs/internal/crypto"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/internal/validators"
	"github.com/MKhiriev/mydocs/models"
)

// passwordService stores vault entries as envelopes produced by the
// VaultCipher. Plaintext never reaches the repository.
type passwordService struct {
	passwordRepository store.PasswordRepository
	cipher             crypto.VaultCipher
	validator          validators.Validator
	ids                IDGenerator

	logger *logger.Logger
}

func NewPasswordService(passwordRepository store.PasswordRepository, cipher crypto.VaultCipher, ids IDGenerator, logger *logger.Logger) PasswordService {
	return &passwordService{
		passwordRepository: passwordRepository,
		cipher:             cipher,
		validator:          validators.NewWorkspaceValidator(),
		ids:                ids,
		logger:             logger,
	}
}

// CreatePassword creates a vault entry whose secret is the empty string.
func (s *passwordService) CreatePassword(ctx context.Context, userID int64, request models.CreatePasswordRequest) (models.Password, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.Password{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	envelope, err := s.cipher.Encrypt("")
	if err != nil {
		log.Err(err).Msg("sealing initial vault content failed")
		return models.Password{}, fmt.Errorf("sealing vault content failed: %w", err)
	}

	password := models.Password{
		ID:        s.ids.Generate(),
		UserID:    userID,
		FolderID:  request.FolderID,
		Title:     strings.TrimSpace(request.Title),
		Username:  request.Username,
		Website:   request.Website,
		Encrypted: envelope,
	}

	if err = s.passwordRepository.CreatePassword(ctx, password); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("password creation failed")
		return models.Password{}, fromStore(err, "password creation failed")
	}

	password.Encrypted = ""
	return password, nil
}

// ListPasswords returns metadata only.
func (s *passwordService) ListPasswords(ctx context.Context, userID int64, folderID *string) ([]models.Password, error) {
	passwords, err := s.passwordRepository.ListPasswords(ctx, userID, folderID)
	if err != nil {
		return nil, fromStore(err, "listing passwords failed")
	}

	for i := range passwords {
		passwords[i].Encrypted = ""
	}

	return passwords, nil
}

func (s *passwordService) GetPassword(ctx context.Context, userID int64, id string) (models.Password, error) {
	password, err := s.getPassword(ctx, userID, id)
	if err != nil {
		return models.Password{}, err
	}

	password.Encrypted = ""
	return password, nil
}

func (s *passwordService) getPassword(ctx context.Context, userID int64, id string) (models.Password, error) {
	if !utils.IsUUID(id) {
		return models.Password{}, ErrNotFound
	}

	password, err := s.passwordRepository.GetPassword(ctx, userID, id)
	if err != nil {
		return models.Password{}, fromStore(err, "password lookup failed")
	}

	return password, nil
}

// UpdatePasswordContent seals plaintext under a fresh IV and replaces the
// stored envelope.
func (s *passwordService) UpdatePasswordContent(ctx context.Context, userID int64, id, plaintext string) error {
	if !utils.IsUUID(id) {
		return ErrNotFound
	}

	envelope, err := s.cipher.Encrypt(plaintext)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", id).Msg("sealing vault content failed")
		return fmt.Errorf("sealing vault content failed: %w", err)
	}

	return fromStore(s.passwordRepository.UpdatePasswordEnvelope(ctx, userID, id, envelope), "vault content update failed")
}

// RevealPassword opens the stored envelope. Any cipher failure is reported
// as ErrVaultContentUnreadable.
func (s *passwordService) RevealPassword(ctx context.Context, userID int64, id string) (models.RevealedPassword, error) {
	password, err := s.getPassword(ctx, userID, id)
	if err != nil {
		return models.RevealedPassword{}, err
	}

	plaintext, err := s.cipher.Decrypt(password.Encrypted)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("id", id).Msg("vault entry could not be decrypted")
		return models.RevealedPassword{}, ErrVaultContentUnreadable
	}

	return models.RevealedPassword{ID: password.ID, Value: plaintext}, nil
}
