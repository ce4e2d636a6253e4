// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/mydocs/internal/config"
	"github.com/MKhiriev/mydocs/internal/crypto"
	"github.com/MKhiriev/mydocs/internal/handler"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/server"
	"github.com/MKhiriev/mydocs/internal/service"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("mydocs-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.LogLevel != "" && !logger.SetLevel(cfg.App.LogLevel) {
		log.Warn().Str("level", cfg.App.LogLevel).Msg("unknown log level, keeping debug")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Dur("request_timeout", cfg.Server.RequestTimeout).
		Dur("shutdown_timeout", cfg.Server.ShutdownTimeout).
		Str("version", cfg.App.Version).
		Msg("received configs")

	cipher, err := crypto.NewVaultCipher(cfg.App.EncryptionKey, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vault cipher")
	}
	if crypto.IsDefaultSecret(cfg.App.EncryptionKey) {
		log.Warn().Msg("server is running with the default encryption key, set APP_ENCRYPTION_KEY")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, cipher, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
