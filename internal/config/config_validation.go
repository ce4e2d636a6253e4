// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultTokenIssuer      = "mydocs"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultRequestTimeout   = 30 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultClientAddress    = "http://localhost:8080"
	DefaultLogLevel         = "debug"
	DefaultMaxOpenConns     = 25
	DefaultMaxIdleConns     = 5
	DefaultPasswordHashCost = bcrypt.DefaultCost
)

func (cfg *StructuredConfig) setDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashCost == 0 {
		cfg.App.PasswordHashCost = DefaultPasswordHashCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = DefaultMaxOpenConns
	}
	if cfg.Storage.DB.MaxIdleConns == 0 {
		cfg.Storage.DB.MaxIdleConns = DefaultMaxIdleConns
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}
	if cfg.Client.HTTPAddress == "" {
		cfg.Client.HTTPAddress = DefaultClientAddress
	}
	if cfg.Client.RequestTimeout == 0 {
		cfg.Client.RequestTimeout = DefaultRequestTimeout
	}
}

// validateServer checks that the merged configuration can start the server.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: connection limits must not be negative", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: HTTP address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: timeouts must be positive", ErrInvalidServerConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration < 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}
	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]",
			ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	return nil
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Client.HTTPAddress == "" || cfg.Client.RequestTimeout < 0 {
		return ErrInvalidClientConfigs
	}

	return nil
}
