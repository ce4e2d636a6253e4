// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a workspace account. PasswordHash is a bcrypt hash and never
// leaves the server.
type User struct {
	// UserID is the internal unique identifier of the user. It is the owner
	// key of every workspace row.
	UserID int64 `json:"id"`

	// Email is the unique login identifier.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the account password.
	PasswordHash string `json:"-"`

	// FullName is the display name shown in the workspace.
	FullName string `json:"full_name"`

	// AvatarURL is an optional link to the user's avatar image.
	AvatarURL string `json:"avatar_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
