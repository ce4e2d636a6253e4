// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Folder groups notes and passwords. Folders may nest through ParentID.
type Folder struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"-"`
	ParentID  *string   `json:"parent_id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color"`
	IsTrashed bool      `json:"is_trashed"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FolderContents is a folder together with its non-trashed documents.
type FolderContents struct {
	Folder    Folder     `json:"folder"`
	Notes     []Note     `json:"notes"`
	Passwords []Password `json:"passwords"`
}
