// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/mock"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var sessionNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestSessionSvc(t *testing.T) (*sessionService, *mock.MockSessionRepository, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionRepository(ctrl)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewSessionService(sessions, users, config.App{SessionTTL: 24 * time.Hour}, logger.Nop()).(*sessionService)
	svc.now = func() time.Time { return sessionNow }

	return svc, sessions, users
}

// ─────────────────────────────────────────────
// Create
// ─────────────────────────────────────────────

func TestSessionService_Create(t *testing.T) {
	svc, sessions, _ := newTestSessionSvc(t)
	ctx := context.Background()

	var stored models.Session
	sessions.EXPECT().CreateSession(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, s models.Session) error {
			stored = s
			return nil
		},
	)

	session, err := svc.Create(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, stored, session)
	assert.Equal(t, "user-1", session.UserID)
	assert.Equal(t, sessionNow, session.CreatedAt)
	assert.Equal(t, sessionNow.Add(24*time.Hour), session.ExpiresAt)

	id, err := uuid.Parse(session.ID)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), id.Version())
}

func TestSessionService_Create_EmptyUser(t *testing.T) {
	svc, _, _ := newTestSessionSvc(t)

	_, err := svc.Create(context.Background(), "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestSessionService_Create_StoreFailure(t *testing.T) {
	svc, sessions, _ := newTestSessionSvc(t)
	dbErr := errors.New("redis down")

	sessions.EXPECT().CreateSession(gomock.Any(), gomock.Any()).Return(dbErr)

	_, err := svc.Create(context.Background(), "user-1")

	assert.ErrorIs(t, err, dbErr)
}

func TestSessionService_TTL(t *testing.T) {
	svc, _, _ := newTestSessionSvc(t)

	assert.Equal(t, 24*time.Hour, svc.TTL())
}

// ─────────────────────────────────────────────
// Resolve
// ─────────────────────────────────────────────

func TestSessionService_Resolve_FetchesUserEveryCall(t *testing.T) {
	svc, sessions, users := newTestSessionSvc(t)
	ctx := context.Background()
	session := models.Session{ID: "sid", UserID: "user-1", ExpiresAt: sessionNow.Add(time.Hour)}

	sessions.EXPECT().FindSessionByID(ctx, "sid").Return(session, nil).Times(2)
	gomock.InOrder(
		users.EXPECT().FindUserByID(ctx, "user-1").Return(models.User{ID: "user-1"}, nil),
		users.EXPECT().FindUserByID(ctx, "user-1").
			Return(models.User{ID: "user-1", Posts: models.Posts{{Title: "Day 1"}}}, nil),
	)

	first, err := svc.Resolve(ctx, "sid")
	require.NoError(t, err)
	assert.Empty(t, first.Posts)

	second, err := svc.Resolve(ctx, "sid")
	require.NoError(t, err)
	assert.Len(t, second.Posts, 1)
}

func TestSessionService_Resolve_UnknownSession(t *testing.T) {
	svc, sessions, _ := newTestSessionSvc(t)

	sessions.EXPECT().FindSessionByID(gomock.Any(), "missing").Return(models.Session{}, store.ErrSessionNotFound)

	_, err := svc.Resolve(context.Background(), "missing")

	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionService_Resolve_EmptyID(t *testing.T) {
	svc, _, _ := newTestSessionSvc(t)

	_, err := svc.Resolve(context.Background(), "")

	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionService_Resolve_ExpiredSession(t *testing.T) {
	svc, sessions, _ := newTestSessionSvc(t)

	sessions.EXPECT().FindSessionByID(gomock.Any(), "sid").
		Return(models.Session{ID: "sid", UserID: "user-1", ExpiresAt: sessionNow}, nil)

	_, err := svc.Resolve(context.Background(), "sid")

	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionService_Resolve_VanishedUser(t *testing.T) {
	svc, sessions, users := newTestSessionSvc(t)

	sessions.EXPECT().FindSessionByID(gomock.Any(), "sid").
		Return(models.Session{ID: "sid", UserID: "user-1", ExpiresAt: sessionNow.Add(time.Hour)}, nil)
	users.EXPECT().FindUserByID(gomock.Any(), "user-1").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Resolve(context.Background(), "sid")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

// ─────────────────────────────────────────────
// Destroy / SweepExpired
// ─────────────────────────────────────────────

func TestSessionService_Destroy(t *testing.T) {
	svc, sessions, _ := newTestSessionSvc(t)

	sessions.EXPECT().DeleteSession(gomock.Any(), "sid").Return(nil)

	assert.NoError(t, svc.Destroy(context.Background(), "sid"))
}

func TestSessionService_Destroy_EmptyIDIsNoop(t *testing.T) {
	svc, _, _ := newTestSessionSvc(t)

	assert.NoError(t, svc.Destroy(context.Background(), ""))
}

func TestSessionService_Destroy_StoreFailure(t *testing.T) {
	svc, sessions, _ := newTestSessionSvc(t)
	dbErr := errors.New("timeout")

	sessions.EXPECT().DeleteSession(gomock.Any(), "sid").Return(dbErr)

	assert.ErrorIs(t, svc.Destroy(context.Background(), "sid"), dbErr)
}

func TestSessionService_SweepExpired(t *testing.T) {
	svc, sessions, _ := newTestSessionSvc(t)

	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), sessionNow).Return(int64(3), nil)

	removed, err := svc.SweepExpired(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSessionService_SweepExpired_Failure(t *testing.T) {
	svc, sessions, _ := newTestSessionSvc(t)

	sessions.EXPECT().DeleteExpiredSessions(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom"))

	_, err := svc.SweepExpired(context.Background())

	assert.Error(t, err)
}
