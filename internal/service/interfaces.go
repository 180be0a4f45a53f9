// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService authenticates local accounts.
type AuthService interface {
	// RegisterUser creates a local account with a bcrypt password hash.
	// A taken username yields store.ErrUsernameAlreadyExists.
	RegisterUser(ctx context.Context, username, password string) (models.User, error)

	// Login returns the account matching username and password.
	// An unknown username yields store.ErrUserNotFound, a bad password or an
	// account without a password yields ErrWrongPassword.
	Login(ctx context.Context, username, password string) (models.User, error)
}

// FederatedAuthService runs the OAuth2 login flow with an external identity
// provider.
type FederatedAuthService interface {
	// Enabled reports whether a provider is configured.
	Enabled() bool

	// BeginLogin returns the provider consent URL and the nonce that must be
	// presented again to CompleteLogin.
	BeginLogin(ctx context.Context) (authURL, nonce string, err error)

	// CompleteLogin verifies state against nonce, exchanges code and returns
	// the user linked to the external identity, creating it on first login.
	// Every failure wraps ErrFederatedLoginFailed.
	CompleteLogin(ctx context.Context, state, nonce, code string) (models.User, error)
}

// SessionService manages server-side login sessions.
type SessionService interface {
	Create(ctx context.Context, userID string) (models.Session, error)

	// Resolve loads the session and fetches its user from the user store.
	// The user is never cached between calls.
	Resolve(ctx context.Context, sessionID string) (models.User, error)

	Destroy(ctx context.Context, sessionID string) error

	// SweepExpired removes expired sessions and reports how many were removed.
	SweepExpired(ctx context.Context) (int64, error)

	// TTL is the lifetime given to new sessions.
	TTL() time.Duration
}

// PostService operates on the post collection embedded in a user record.
type PostService interface {
	ListPosts(ctx context.Context, userID string) (models.Posts, error)
	AppendPost(ctx context.Context, userID string, post models.Post) error
	// FindPost returns the first post titled title.
	FindPost(ctx context.Context, userID, title string) (models.Post, error)
	// RemovePosts removes every post titled title.
	RemovePosts(ctx context.Context, userID, title string) error
}

// AppInfoService exposes static application metadata to the views.
type AppInfoService interface {
	GetAppName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}
