// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/mock"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	return NewAuthService(users, config.App{BcryptCost: bcrypt.MinCost}, logger.Nop()), users
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.NotEqual(t, "pw1", u.PasswordHash, "password must be stored hashed")
			assert.NoError(t, utils.ComparePassword(u.PasswordHash, "pw1"))
			u.ID = "user-1"
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, "alice", "pw1")

	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_RegisterUser_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "empty username", password: "pw1"},
		{name: "empty password", username: "alice"},
		{name: "both empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthSvc(t)

			_, err := svc.RegisterUser(context.Background(), tt.username, tt.password)

			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_DuplicateUsername(t *testing.T) {
	svc, users := newTestAuthSvc(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUsernameAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), "alice", "pw1")

	assert.ErrorIs(t, err, store.ErrUsernameAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	stored := models.User{ID: "user-1", Username: "alice", PasswordHash: mustHash(t, "pw1")}

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)

	user, err := svc.Login(context.Background(), "alice", "pw1")

	require.NoError(t, err)
	assert.Equal(t, stored, user)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	stored := models.User{ID: "user-1", Username: "alice", PasswordHash: mustHash(t, "pw1")}

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(stored, nil)

	user, err := svc.Login(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, err, ErrWrongPassword)
	assert.Empty(t, user.ID)
}

func TestAuthService_Login_FederatedUserHasNoPassword(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	googleID := "1093"

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{ID: "user-1", Username: "alice", GoogleID: &googleID}, nil)

	_, err := svc.Login(context.Background(), "alice", "pw1")

	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	svc, users := newTestAuthSvc(t)

	users.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.Login(context.Background(), "bob", "pw1")

	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestAuthService_Login_StoreFailure(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	dbErr := errors.New("connection reset")

	users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(models.User{}, dbErr)

	_, err := svc.Login(context.Background(), "alice", "pw1")

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc, _ := newTestAuthSvc(t)

	_, err := svc.Login(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	svc, users := newTestAuthSvc(t)
	ctx := context.Background()

	var saved models.User
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.ID = "user-1"
			saved = u
			return u, nil
		},
	)
	users.EXPECT().FindUserByUsername(ctx, "alice").DoAndReturn(
		func(context.Context, string) (models.User, error) { return saved, nil },
	)

	_, err := svc.RegisterUser(ctx, "alice", "pw1")
	require.NoError(t, err)

	user, err := svc.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", user.ID)
}
