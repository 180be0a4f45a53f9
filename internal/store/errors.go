// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when registration fails because
	// a local account with the same username already exists.
	ErrUsernameAlreadyExists = errors.New("username already exists")

	// ErrUserNotFound is returned when no user matches the lookup key, or
	// when a post update targets a user that no longer exists.
	ErrUserNotFound = errors.New("user was not found")

	// ErrSessionNotFound is returned when a session id is unknown or the
	// session has expired.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrUnsupportedBackend is returned when the DSN scheme does not name a
	// supported store.
	ErrUnsupportedBackend = errors.New("unsupported storage backend")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a driver-level operation fails before any domain logic can
// be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query or statement
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning column values from a result
	// row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrDecodingPosts is returned when the stored post collection cannot
	// be decoded.
	ErrDecodingPosts = errors.New("failed to decode posts")
)
