// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a journal account. Local accounts carry Username and PasswordHash,
// federated accounts carry GoogleID. Posts are embedded in the record and
// are read and written together with it.
type User struct {
	// ID is the store-assigned identifier: a hex ObjectID for MongoDB or a
	// UUID for PostgreSQL. It is the only value kept in a session.
	ID string `json:"id"`

	// Username is the login of a local account. Empty for federated users.
	Username string `json:"username,omitempty"`

	// GoogleID is the "sub" of the Google profile. Nil for local accounts
	// and unique when present.
	GoogleID *string `json:"-"`

	// Email is optional and filled from the Google profile when available.
	Email string `json:"email,omitempty"`

	// PasswordHash is the bcrypt hash of the local password. It must never
	// be rendered or logged.
	PasswordHash string `json:"-"`

	// Posts is the ordered embedded post collection.
	Posts Posts `json:"posts"`

	// CreatedAt is set once when the account is created.
	CreatedAt time.Time `json:"created_at"`
}

// IsFederated reports whether the user signs in through Google.
func (u User) IsFederated() bool {
	return u.GoogleID != nil && *u.GoogleID != ""
}

// HasPassword reports whether the user can sign in with a local password.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}

// Credentials is the submitted username/password pair of the login and
// register forms. Password is plain text and lives only for the request.
type Credentials struct {
	Username string
	Password string
}
