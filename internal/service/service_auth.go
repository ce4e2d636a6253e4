// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/mydocs/internal/config"
	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/internal/store"
	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/internal/validators"
	"github.com/MKhiriev/mydocs/models"
)

// authService is the concrete implementation of AuthService.
// It handles registration, credential verification, profile changes and the
// JWT lifecycle. Account passwords are stored as bcrypt hashes.
type authService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// passwordHashCost is the bcrypt cost used for new hashes. Existing
	// hashes keep the cost they were created with.
	passwordHashCost int

	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewWorkspaceValidator(),
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new account.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the email or password is rejected by the
//     validator.
//   - ErrEmailTaken if the email is already registered.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Debug().Err(err).Str("email", request.Email).Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, err
	}

	user := models.User{
		Email:        normalizeEmail(request.Email),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(request.FullName),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, ErrEmailTaken
	}
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user. An unknown email and a wrong
// password both yield ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(request.Email))
	if errors.Is(err, store.ErrNoUserWasFound) {
		log.Debug().Str("email", request.Email).Msg("login for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = utils.CheckPassword(foundUser.PasswordHash, request.Password); err != nil {
		log.Debug().Err(err).Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. Every validation failure is
// normalised to ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) GetProfile(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("profile lookup failed: %w", err)
	}

	return user, nil
}

func (a *authService) UpdateProfile(ctx context.Context, userID int64, request models.UpdateProfileRequest) (models.User, error) {
	if err := a.validator.Validate(ctx, request); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.userRepository.UpdateProfile(ctx, userID, strings.TrimSpace(request.FullName), strings.TrimSpace(request.AvatarURL))
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("profile update failed")
		return models.User{}, fmt.Errorf("profile update failed: %w", err)
	}

	return user, nil
}

// ChangePassword replaces the account password after verifying the current
// one. A wrong current password yields ErrWrongPassword.
func (a *authService) ChangePassword(ctx context.Context, userID int64, request models.ChangePasswordRequest) error {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	if err = utils.CheckPassword(user.PasswordHash, request.CurrentPassword); err != nil {
		log.Debug().Err(err).Int64("user_id", userID).Msg("current password mismatch")
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(request.NewPassword, a.passwordHashCost)
	if err != nil {
		return err
	}

	if err = a.userRepository.UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return ErrNotFound
		}
		log.Err(err).Int64("user_id", userID).Msg("password hash update failed")
		return fmt.Errorf("password change failed: %w", err)
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
