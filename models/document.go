// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntityType names a kind of workspace document. Its value is also the name
// of the table that stores it, so only the constants below are ever
// interpolated into SQL.
type EntityType string

const (
	EntityNotes     EntityType = "notes"
	EntityPasswords EntityType = "passwords"
	EntityFolders   EntityType = "folders"
)

// ParseEntityType returns the EntityType named by s and whether s is one of
// the known kinds.
func ParseEntityType(s string) (EntityType, bool) {
	switch EntityType(s) {
	case EntityNotes, EntityPasswords, EntityFolders:
		return EntityType(s), true
	}
	return "", false
}

// Table returns the table that stores entities of this kind.
func (e EntityType) Table() string {
	return string(e)
}

// TitleColumn returns the column holding the display title.
func (e EntityType) TitleColumn() string {
	if e == EntityFolders {
		return "name"
	}
	return "title"
}

// SupportsFavorite reports whether entities of this kind can be favorited.
func (e EntityType) SupportsFavorite() bool {
	return e == EntityNotes || e == EntityPasswords
}

// DocumentSummary is the list view of a note, password or folder.
type DocumentSummary struct {
	ID         string     `json:"id"`
	Entity     EntityType `json:"entity"`
	Title      string     `json:"title"`
	IsFavorite bool       `json:"is_favorite"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Dashboard is the workspace landing view.
type Dashboard struct {
	RecentNotes     []DocumentSummary `json:"recent_notes"`
	RecentPasswords []DocumentSummary `json:"recent_passwords"`
	NotesCount      int               `json:"notes_count"`
	PasswordsCount  int               `json:"passwords_count"`
	FoldersCount    int               `json:"folders_count"`
}

// SummaryFilter selects documents for list views.
type SummaryFilter struct {
	// Trashed selects trashed rows instead of live ones.
	Trashed bool
	// FavoritesOnly keeps only favorites. Ignored for kinds that cannot be
	// favorited.
	FavoritesOnly bool
	// Limit caps the number of rows; zero means no limit.
	Limit uint64
}
