// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/mydocs/internal/utils"
	"github.com/MKhiriev/mydocs/models"
)

// Field names accepted by [WorkspaceValidator.Validate].
const (
	FieldEmail       = "email"
	FieldPassword    = "password"
	FieldNewPassword = "new_password"
	FieldFullName    = "full_name"
	FieldAvatarURL   = "avatar_url"

	FieldTitle    = "title"
	FieldName     = "name"
	FieldColor    = "color"
	FieldFolderID = "folder_id"
	FieldParentID = "parent_id"
	FieldContent  = "content"

	FieldAmount      = "amount_cents"
	FieldType        = "type"
	FieldStatus      = "status"
	FieldDate        = "date"
	FieldCategoryID  = "category_id"
	FieldDescription = "description"

	FieldEntityID   = "entity_id"
	FieldEntity     = "entity_type"
	FieldPermission = "permissions"
)

const (
	// MinPasswordLength applies to account passwords only, never to vault
	// content.
	MinPasswordLength = 8

	maxTitleLength       = 255
	maxDescriptionLength = 1000
	maxColorLength       = 32
	maxURLLength         = 2048
)

// WorkspaceValidator implements [Validator] for the request models of the
// workspace API.
type WorkspaceValidator struct{}

// NewWorkspaceValidator constructs a [WorkspaceValidator].
func NewWorkspaceValidator() Validator {
	return &WorkspaceValidator{}
}

func (v *WorkspaceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(*value, fields...)

	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case models.UpdateProfileRequest:
		return v.validateProfile(value, fields...)
	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)

	case models.CreatePasswordRequest:
		return v.validateCreatePassword(value, fields...)
	case models.CreateFolderRequest:
		return v.validateFolder(value.Name, value.Color, value.ParentID, fields...)
	case models.UpdateFolderRequest:
		return v.validateFolder(value.Name, value.Color, nil, fields...)
	case models.UpdateTitleRequest:
		return validateTitle(value.Title)
	case models.UpdateNoteContentRequest:
		return validateNoteContent(value.Content)

	case models.TransactionRequest:
		return v.validateTransaction(value, fields...)
	case *models.TransactionRequest:
		return v.validateTransaction(*value, fields...)
	case models.CategoryRequest:
		return v.validateCategory(value, fields...)

	case models.CreateShareRequest:
		return v.validateShare(value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *WorkspaceValidator) validateRegister(r models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword, FieldFullName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(r.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if err := validateAccountPassword(r.Password); err != nil {
				return err
			}
		case FieldFullName:
			if utf8.RuneCountInString(r.FullName) > maxTitleLength {
				return ErrTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkspaceValidator) validateLogin(r models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(r.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if r.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkspaceValidator) validateProfile(r models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFullName, FieldAvatarURL}
	}

	for _, f := range fields {
		switch f {
		case FieldFullName:
			name := strings.TrimSpace(r.FullName)
			if name == "" {
				return ErrEmptyFullName
			}
			if utf8.RuneCountInString(name) > maxTitleLength {
				return ErrTooLong
			}
		case FieldAvatarURL:
			if len(r.AvatarURL) > maxURLLength {
				return ErrTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkspaceValidator) validateChangePassword(r models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldPassword:
			if r.CurrentPassword == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			if err := validateAccountPassword(r.NewPassword); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkspaceValidator) validateCreatePassword(r models.CreatePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldFolderID}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if err := validateTitle(r.Title); err != nil {
				return err
			}
		case FieldFolderID:
			if err := validateOptionalID(r.FolderID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkspaceValidator) validateFolder(name string, color, parentID *string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldColor, FieldParentID}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			name = strings.TrimSpace(name)
			if name == "" {
				return ErrEmptyName
			}
			if utf8.RuneCountInString(name) > maxTitleLength {
				return ErrTooLong
			}
		case FieldColor:
			if color != nil && len(*color) > maxColorLength {
				return ErrTooLong
			}
		case FieldParentID:
			if err := validateOptionalID(parentID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkspaceValidator) validateTransaction(r models.TransactionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldAmount, FieldType, FieldStatus, FieldDate, FieldCategoryID, FieldDescription}
	}

	for _, f := range fields {
		switch f {
		case FieldAmount:
			if r.AmountCents <= 0 {
				return ErrInvalidAmount
			}
		case FieldType:
			if !r.Type.Valid() {
				return ErrInvalidTransactionType
			}
		case FieldStatus:
			if !r.Status.Valid() {
				return ErrInvalidTransactionStatus
			}
		case FieldDate:
			if r.Date.IsZero() {
				return ErrInvalidDate
			}
		case FieldCategoryID:
			if err := validateOptionalID(r.CategoryID); err != nil {
				return err
			}
		case FieldDescription:
			if utf8.RuneCountInString(r.Description) > maxDescriptionLength {
				return ErrTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkspaceValidator) validateCategory(r models.CategoryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldColor}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(r.Name) == "" {
				return ErrEmptyName
			}
		case FieldColor:
			if len(r.Color) > maxColorLength {
				return ErrTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *WorkspaceValidator) validateShare(r models.CreateShareRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntityID, FieldEntity, FieldPermission}
	}

	for _, f := range fields {
		switch f {
		case FieldEntityID:
			if !utils.IsUUID(r.EntityID) {
				return ErrInvalidID
			}
		case FieldEntity:
			if _, ok := models.ParseEntityType(string(r.Entity)); !ok {
				return ErrInvalidEntityType
			}
		case FieldPermission:
			if r.Permission != "" && !r.Permission.Valid() {
				return ErrInvalidPermission
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateAccountPassword(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTooLong
	}
	return nil
}

// validateNoteContent accepts any JSON array of blocks.
func validateNoteContent(content json.RawMessage) error {
	var blocks []json.RawMessage
	if len(content) == 0 || json.Unmarshal(content, &blocks) != nil {
		return ErrEmptyContent
	}
	return nil
}

func validateOptionalID(id *string) error {
	if id != nil && !utils.IsUUID(*id) {
		return ErrInvalidID
	}
	return nil
}

func isEmail(email string) bool {
	email = strings.TrimSpace(email)
	local, domain, ok := strings.Cut(email, "@")
	return ok && local != "" && domain != "" && !strings.ContainsAny(domain, "@ ") &&
		!strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
