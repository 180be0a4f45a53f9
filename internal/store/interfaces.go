// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists users together with their embedded posts.
// Every write is a single atomic update of one user record.
type UserRepository interface {
	// CreateUser stores a new local account and returns it with the
	// store-assigned ID and CreatedAt.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	// FindOrCreateByGoogleID returns the user linked to profile.ProviderUserID,
	// creating it when absent. Concurrent calls for the same id yield one user.
	FindOrCreateByGoogleID(ctx context.Context, profile models.OAuthProfile) (models.User, error)
	AppendPost(ctx context.Context, userID string, post models.Post) error
	// RemovePostsByTitle removes every post whose title equals title.
	RemovePostsByTitle(ctx context.Context, userID, title string) error
}

// SessionRepository persists login sessions.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) error
	// FindSessionByID returns ErrSessionNotFound for unknown or expired ids.
	FindSessionByID(ctx context.Context, sessionID string) (models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteExpiredSessions removes sessions expired at now and reports
	// how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// HealthChecker reports whether a backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
