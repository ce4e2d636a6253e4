// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Password is a vault entry. The secret itself lives only in Encrypted as an
// iv:authTag:ciphertext envelope; it is never serialized and reaches clients
// only through an explicit reveal.
type Password struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"-"`
	FolderID   *string   `json:"folder_id"`
	Title      string    `json:"title"`
	Username   *string   `json:"username"`
	Website    *string   `json:"website"`
	Encrypted  string    `json:"-"`
	IsFavorite bool      `json:"is_favorite"`
	IsTrashed  bool      `json:"is_trashed"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RevealedPassword is the decrypted content of a vault entry.
type RevealedPassword struct {
	ID    string `json:"id"`
	Value string `json:"value"`
}
