// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the workspace. Services take
// the authenticated user id explicitly and pass it to every repository call.
package service

import (
	"github.com/MKhiriev/mydocs/internal/config"
	"github.com/MKhiriev/mydocs/internal/crypto"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/internal/utils"
)

type Services struct {
	AuthService     AuthService
	NoteService     NoteService
	PasswordService PasswordService
	FolderService   FolderService
	DocumentService DocumentService
	FinanceService  FinanceService
	ShareService    ShareService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cipher crypto.VaultCipher, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	ids := utils.NewUUIDGenerator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		NoteService:     NewNoteService(storages.NoteRepository, ids, logger),
		PasswordService: NewPasswordService(storages.PasswordRepository, cipher, ids, logger),
		FolderService:   NewFolderService(storages, ids, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, logger),
		FinanceService:  NewFinanceValidationService().Wrap(NewFinanceService(storages.FinanceRepository, ids, logger)),
		ShareService:    NewShareService(storages, cipher, ids, logger),
		AppInfoService:  appInfoService,
	}, nil
}
