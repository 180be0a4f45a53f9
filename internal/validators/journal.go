// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-journal/models"
)

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldTitle    = "title"
	FieldContent  = "content"
)

const (
	MaxUsernameLength = 64
	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
	MaxTitleLength   = 200
	MaxContentLength = 64 << 10
)

// JournalValidator checks submitted credentials and posts.
type JournalValidator struct {
}

func NewJournalValidator() Validator {
	return &JournalValidator{}
}

// Validate accepts models.Credentials and models.Post (or pointers to them).
// With no fields every field of the value is checked.
func (v *JournalValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.Post:
		return v.validatePost(ctx, value, fields...)
	case *models.Post:
		return v.validatePost(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *JournalValidator) validateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
			if utf8.RuneCountInString(creds.Username) > MaxUsernameLength {
				return ErrUsernameTooLong
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
			if len(creds.Password) > MaxPasswordBytes {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePost checks a post before it is appended. A title is the post's
// URL segment under /posts/, so it cannot contain a slash.
func (v *JournalValidator) validatePost(ctx context.Context, post models.Post, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(post.Title) == "" {
				return ErrEmptyTitle
			}
			if strings.Contains(post.Title, "/") {
				return ErrTitleHasSlash
			}
			if utf8.RuneCountInString(post.Title) > MaxTitleLength {
				return ErrTitleTooLong
			}
		case FieldContent:
			if len(post.Content) > MaxContentLength {
				return ErrContentTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
