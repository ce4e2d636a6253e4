// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/mydocs/internal/logger"
	"github.com/MKhiriev/mydocs/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup and profile changes against the
// "users" table.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func scanUser(row rowScanner, user *models.User) error {
	return row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.FullName,
		&user.AvatarURL, &user.CreatedAt, &user.UpdatedAt)
}

// CreateUser persists a new account and returns it with the server-assigned
// UserID and timestamps.
//
// Error handling:
//   - unique_violation (23505) on email → [ErrEmailAlreadyExists].
//   - any other driver error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, err
	}

	var created models.User
	err = r.db.withRetry(ctx, func() error {
		return scanUser(r.db.QueryRowContext(ctx, query, args...), &created)
	})
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail returns the account registered with email.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "email", email)
}

// FindUserByID returns the account with the given id.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "user_id", userID)
}

func (r *userRepository) findUser(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(column, value)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		return scanUser(r.db.QueryRowContext(ctx, query, args...), &user)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdateProfile changes the display name and avatar and returns the updated
// account.
func (r *userRepository) UpdateProfile(ctx context.Context, userID int64, fullName, avatarURL string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProfileQuery(userID, fullName, avatarURL)
	if err != nil {
		return models.User{}, err
	}

	var user models.User
	err = r.db.withRetry(ctx, func() error {
		return scanUser(r.db.QueryRowContext(ctx, query, args...), &user)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateProfile").Int64("user_id", userID).Msg("error updating profile")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// UpdatePasswordHash replaces the stored bcrypt hash.
func (r *userRepository) UpdatePasswordHash(ctx context.Context, userID int64, passwordHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordHashQuery(userID, passwordHash)
	if err != nil {
		return err
	}

	affected, err := r.db.exec(ctx, query, args)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePasswordHash").Int64("user_id", userID).Msg("error updating password hash")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
