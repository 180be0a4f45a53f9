// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrUsernameTooLong = errors.New("username is too long")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is too long")
	ErrEmptyTitle      = errors.New("post title is required")
	ErrTitleHasSlash   = errors.New("post title cannot contain '/'")
	ErrTitleTooLong    = errors.New("post title is too long")
	ErrContentTooLong  = errors.New("post content is too long")
)
