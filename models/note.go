// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// DefaultNoteTitle is the title given to freshly created notes.
const DefaultNoteTitle = "Untitled note"

// EmptyNoteContent is the block-editor document of a freshly created note.
var EmptyNoteContent = json.RawMessage(`[]`)

// Note is a rich-text document. Content is the editor's JSON block list and
// is stored and returned verbatim.
type Note struct {
	ID         string          `json:"id"`
	UserID     int64           `json:"-"`
	FolderID   *string         `json:"folder_id"`
	Title      string          `json:"title"`
	Content    json.RawMessage `json:"content,omitempty"`
	IsFavorite bool            `json:"is_favorite"`
	IsTrashed  bool            `json:"is_trashed"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
