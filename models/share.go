// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SharePermission is the access level recorded on a shared link.
type SharePermission string

const (
	ShareView SharePermission = "view"
	ShareEdit SharePermission = "edit"
)

// Valid reports whether p is a known permission.
func (p SharePermission) Valid() bool {
	return p == ShareView || p == ShareEdit
}

// SharedLink grants public read access to one note, password or folder.
// PasswordHash is the lowercase hex SHA-256 of the link password, nil when
// the link is not protected.
type SharedLink struct {
	Token        string          `json:"token"`
	UserID       int64           `json:"-"`
	EntityID     string          `json:"entity_id"`
	Entity       EntityType      `json:"entity_type"`
	Permission   SharePermission `json:"permissions"`
	PasswordHash *string         `json:"-"`
	EntityTitle  string          `json:"entity_title,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// IsProtected reports whether the link requires a password.
func (l SharedLink) IsProtected() bool {
	return l.PasswordHash != nil && *l.PasswordHash != ""
}

// SharedPassword is a vault entry as shown through a shared link.
type SharedPassword struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SharedContent is what a public visitor receives for a shared link.
// Exactly one of Note, Password or Folder is set, matching Entity.
type SharedContent struct {
	Entity     EntityType      `json:"entity_type"`
	Permission SharePermission `json:"permissions"`
	Title      string          `json:"title"`
	Note       *Note           `json:"note,omitempty"`
	Password   *SharedPassword `json:"password,omitempty"`
	Folder     *SharedFolder   `json:"folder,omitempty"`
}

// SharedFolder is a folder as shown through a shared link.
type SharedFolder struct {
	Folder    Folder           `json:"folder"`
	Notes     []Note           `json:"notes"`
	Passwords []SharedPassword `json:"passwords"`
}
