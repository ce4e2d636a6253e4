// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/mydocs/models"
	sq "github.com/Masterminds/squirrel"
)

// psql renders queries with PostgreSQL $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var now = sq.Expr("NOW()")

const (
	userColumns     = "user_id, email, password_hash, full_name, avatar_url, created_at, updated_at"
	noteColumns     = "id, user_id, folder_id, title, content, is_favorite, is_trashed, created_at, updated_at"
	passwordColumns = "id, user_id, folder_id, title, username, website, password_encrypted, is_favorite, is_trashed, created_at, updated_at"
	folderColumns   = "id, user_id, parent_id, name, color, is_trashed, created_at, updated_at"
	txColumns       = "id, user_id, category_id, description, amount_cents, type, status, date, created_at, updated_at"
	categoryColumns = "id, user_id, name, color, created_at"
)

func toSQL(b sq.Sqlizer) (string, []any, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// ── users ────────────────────────────────────────────────────────────────────

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return toSQL(psql.Insert("users").
		Columns("email", "password_hash", "full_name", "avatar_url").
		Values(user.Email, user.PasswordHash, user.FullName, user.AvatarURL).
		Suffix("RETURNING " + userColumns))
}

func buildSelectUserQuery(column string, value any) (string, []any, error) {
	return toSQL(psql.Select(userColumns).
		From("users").
		Where(sq.Eq{column: value}))
}

func buildUpdateProfileQuery(userID int64, fullName, avatarURL string) (string, []any, error) {
	return toSQL(psql.Update("users").
		Set("full_name", fullName).
		Set("avatar_url", avatarURL).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + userColumns))
}

func buildUpdatePasswordHashQuery(userID int64, hash string) (string, []any, error) {
	return toSQL(psql.Update("users").
		Set("password_hash", hash).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": userID}))
}

// ── notes ────────────────────────────────────────────────────────────────────

func buildInsertNoteQuery(note models.Note) (string, []any, error) {
	return toSQL(psql.Insert("notes").
		Columns("id", "user_id", "folder_id", "title", "content").
		Values(note.ID, note.UserID, note.FolderID, note.Title, string(note.Content)))
}

func buildListNotesQuery(userID int64, folderID *string) (string, []any, error) {
	q := psql.Select(noteColumns).
		From("notes").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_trashed": false})
	if folderID != nil {
		q = q.Where(sq.Eq{"folder_id": *folderID})
	}

	return toSQL(q.OrderBy("updated_at DESC"))
}

func buildGetNoteQuery(userID int64, id string) (string, []any, error) {
	return toSQL(psql.Select(noteColumns).
		From("notes").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

func buildUpdateNoteContentQuery(userID int64, id string, content json.RawMessage) (string, []any, error) {
	return toSQL(psql.Update("notes").
		Set("content", string(content)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

// ── passwords ────────────────────────────────────────────────────────────────

func buildInsertPasswordQuery(p models.Password) (string, []any, error) {
	return toSQL(psql.Insert("passwords").
		Columns("id", "user_id", "folder_id", "title", "username", "website", "password_encrypted").
		Values(p.ID, p.UserID, p.FolderID, p.Title, p.Username, p.Website, p.Encrypted))
}

func buildListPasswordsQuery(userID int64, folderID *string) (string, []any, error) {
	q := psql.Select(passwordColumns).
		From("passwords").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_trashed": false})
	if folderID != nil {
		q = q.Where(sq.Eq{"folder_id": *folderID})
	}

	return toSQL(q.OrderBy("updated_at DESC"))
}

func buildGetPasswordQuery(userID int64, id string) (string, []any, error) {
	return toSQL(psql.Select(passwordColumns).
		From("passwords").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

func buildUpdatePasswordEnvelopeQuery(userID int64, id, envelope string) (string, []any, error) {
	return toSQL(psql.Update("passwords").
		Set("password_encrypted", envelope).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

// ── folders ──────────────────────────────────────────────────────────────────

func buildInsertFolderQuery(f models.Folder) (string, []any, error) {
	return toSQL(psql.Insert("folders").
		Columns("id", "user_id", "parent_id", "name", "color").
		Values(f.ID, f.UserID, f.ParentID, f.Name, f.Color))
}

func buildListFoldersQuery(userID int64) (string, []any, error) {
	return toSQL(psql.Select(folderColumns).
		From("folders").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_trashed": false}).
		OrderBy("name ASC"))
}

func buildGetFolderQuery(userID int64, id string) (string, []any, error) {
	return toSQL(psql.Select(folderColumns).
		From("folders").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

func buildUpdateFolderQuery(userID int64, id, name string, color *string) (string, []any, error) {
	return toSQL(psql.Update("folders").
		Set("name", name).
		Set("color", color).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

// ── documents ────────────────────────────────────────────────────────────────

// buildSetDocumentColumnQuery updates one column of a note, password or
// folder. entity must come from [models.ParseEntityType]; column is always a
// constant chosen by the caller.
func buildSetDocumentColumnQuery(userID int64, entity models.EntityType, id, column string, value any) (string, []any, error) {
	return toSQL(psql.Update(entity.Table()).
		Set(column, value).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

func buildDeleteDocumentQuery(userID int64, entity models.EntityType, id string) (string, []any, error) {
	return toSQL(psql.Delete(entity.Table()).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

func summarySelect(entity models.EntityType) sq.SelectBuilder {
	favorite := "is_favorite"
	if !entity.SupportsFavorite() {
		favorite = "FALSE AS is_favorite"
	}

	return psql.Select("id", entity.TitleColumn()+" AS title", favorite, "updated_at").
		From(entity.Table())
}

func buildListSummariesQuery(userID int64, entity models.EntityType, filter models.SummaryFilter) (string, []any, error) {
	q := summarySelect(entity).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_trashed": filter.Trashed})
	if filter.FavoritesOnly && entity.SupportsFavorite() {
		q = q.Where(sq.Eq{"is_favorite": true})
	}
	q = q.OrderBy("updated_at DESC")
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	return toSQL(q)
}

func buildGetSummaryQuery(userID int64, entity models.EntityType, id string) (string, []any, error) {
	return toSQL(summarySelect(entity).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

func buildCountDocumentsQuery(userID int64, entity models.EntityType) (string, []any, error) {
	return toSQL(psql.Select("COUNT(*)").
		From(entity.Table()).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.Eq{"is_trashed": false}))
}

// ── finance ──────────────────────────────────────────────────────────────────

func buildListTransactionsQuery(userID int64, from, to models.Date) (string, []any, error) {
	return toSQL(psql.Select(txColumns).
		From("finance_transactions").
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"date": from}).
		Where(sq.Lt{"date": to}).
		OrderBy("date DESC", "created_at DESC"))
}

func buildInsertTransactionQuery(t models.Transaction) (string, []any, error) {
	return toSQL(psql.Insert("finance_transactions").
		Columns("id", "user_id", "category_id", "description", "amount_cents", "type", "status", "date").
		Values(t.ID, t.UserID, t.CategoryID, t.Description, t.AmountCents, string(t.Type), string(t.Status), t.Date).
		Suffix("RETURNING " + txColumns))
}

func buildUpdateTransactionQuery(t models.Transaction) (string, []any, error) {
	return toSQL(psql.Update("finance_transactions").
		Set("category_id", t.CategoryID).
		Set("description", t.Description).
		Set("amount_cents", t.AmountCents).
		Set("type", string(t.Type)).
		Set("status", string(t.Status)).
		Set("date", t.Date).
		Set("updated_at", now).
		Where(sq.Eq{"id": t.ID}).
		Where(sq.Eq{"user_id": t.UserID}).
		Suffix("RETURNING " + txColumns))
}

func buildUpdateTransactionStatusQuery(userID int64, id string, status models.TransactionStatus) (string, []any, error) {
	return toSQL(psql.Update("finance_transactions").
		Set("status", string(status)).
		Set("updated_at", now).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

func buildDeleteTransactionQuery(userID int64, id string) (string, []any, error) {
	return toSQL(psql.Delete("finance_transactions").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

func buildListCategoriesQuery(userID int64) (string, []any, error) {
	return toSQL(psql.Select(categoryColumns).
		From("finance_categories").
		Where(sq.Or{sq.Eq{"user_id": nil}, sq.Eq{"user_id": userID}}).
		OrderBy("name ASC"))
}

func buildInsertCategoryQuery(c models.Category, userID int64) (string, []any, error) {
	return toSQL(psql.Insert("finance_categories").
		Columns("id", "user_id", "name", "color").
		Values(c.ID, userID, c.Name, c.Color).
		Suffix("RETURNING " + categoryColumns))
}

// buildUpdateCategoryQuery only matches rows owned by userID, so global
// categories (NULL owner) are never updated.
func buildUpdateCategoryQuery(userID int64, id, name, color string) (string, []any, error) {
	return toSQL(psql.Update("finance_categories").
		Set("name", name).
		Set("color", color).
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING " + categoryColumns))
}

func buildDeleteCategoryQuery(userID int64, id string) (string, []any, error) {
	return toSQL(psql.Delete("finance_categories").
		Where(sq.Eq{"id": id}).
		Where(sq.Eq{"user_id": userID}))
}

// ── shared links ─────────────────────────────────────────────────────────────

const linkColumns = "l.token, l.user_id, l.entity_id, l.entity_type, l.permissions, l.protected_password, l.created_at"

func buildFindLinkQuery(userID int64, entityID string, entity models.EntityType) (string, []any, error) {
	return toSQL(psql.Select(linkColumns).
		From("shared_links l").
		Where(sq.Eq{"l.entity_id": entityID}).
		Where(sq.Eq{"l.entity_type": string(entity)}).
		Where(sq.Eq{"l.user_id": userID}))
}

func buildGetLinkByTokenQuery(token string) (string, []any, error) {
	return toSQL(psql.Select(linkColumns).
		From("shared_links l").
		Where(sq.Eq{"l.token": token}))
}

func buildInsertLinkQuery(link models.SharedLink) (string, []any, error) {
	return toSQL(psql.Insert("shared_links").
		Columns("token", "user_id", "entity_id", "entity_type", "permissions", "protected_password").
		Values(link.Token, link.UserID, link.EntityID, string(link.Entity), string(link.Permission), link.PasswordHash).
		Suffix("RETURNING created_at"))
}

func buildDeleteLinkQuery(userID int64, token string) (string, []any, error) {
	return toSQL(psql.Delete("shared_links").
		Where(sq.Eq{"token": token}).
		Where(sq.Eq{"user_id": userID}))
}

// buildListLinksQuery resolves the display title of every link's entity.
// Links whose entity was deleted get an empty title.
func buildListLinksQuery(userID int64) (string, []any, error) {
	return toSQL(psql.Select(linkColumns, "COALESCE(n.title, p.title, f.name, '') AS entity_title").
		From("shared_links l").
		LeftJoin("notes n ON l.entity_type = 'notes' AND n.id = l.entity_id").
		LeftJoin("passwords p ON l.entity_type = 'passwords' AND p.id = l.entity_id").
		LeftJoin("folders f ON l.entity_type = 'folders' AND f.id = l.entity_id").
		Where(sq.Eq{"l.user_id": userID}).
		OrderBy("l.created_at DESC"))
}
