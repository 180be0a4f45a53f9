// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the stores:
// registration and login credentials, and composed posts.
//
// Services hold a [Validator] and call it with the value and, optionally,
// the names of the fields to check. Each failure is a field-specific
// sentinel such as [ErrEmptyTitle].
package validators

import "context"

// Validator validates value. When fields is empty every known field of the
// value is checked.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
