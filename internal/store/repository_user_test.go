// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		ids:    utils.NewUUIDGenerator(),
		logger: l,
	}
	return repo, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns)
}

// ─────────────────────────────────────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), "alice", "", "$2a$hash").
		WillReturnRows(userRows().AddRow("u-1", "alice", nil, "", "$2a$hash", []byte("[]"), now))

	created, err := repo.CreateUser(context.Background(), models.User{Username: "alice", PasswordHash: "$2a$hash"})

	require.NoError(t, err)
	assert.Equal(t, "u-1", created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Nil(t, created.GoogleID)
	assert.Equal(t, models.Posts{}, created.Posts)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})

	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(context.Background(), models.User{Username: "alice"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
}

// ─────────────────────────────────────────────────────────────────────────────
// FindUserByID / FindUserByUsername
// ─────────────────────────────────────────────────────────────────────────────

func TestFindUserByID_DecodesPosts(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	posts := `[{"postTitle":"Day 1","content":"hello"},{"postTitle":"Day 2","content":"again"}]`

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id = ").
		WithArgs("u-1").
		WillReturnRows(userRows().AddRow("u-1", "alice", nil, "", "hash", []byte(posts), time.Now()))

	user, err := repo.FindUserByID(context.Background(), "u-1")

	require.NoError(t, err)
	assert.Equal(t, models.Posts{
		{Title: "Day 1", Content: "hello"},
		{Title: "Day 2", Content: "again"},
	}, user.Posts)
}

func TestFindUserByID_GoogleUser(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(userRows().AddRow("u-2", nil, "google-sub", "bob@example.com", "", []byte("[]"), time.Now()))

	user, err := repo.FindUserByID(context.Background(), "u-2")

	require.NoError(t, err)
	require.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub", *user.GoogleID)
	assert.Empty(t, user.Username)
	assert.False(t, user.HasPassword())
}

func TestFindUser_NotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "no rows", err: sql.ErrNoRows},
		{name: "malformed uuid", err: pgError(pgerrcode.InvalidTextRepresentation)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(tt.err)

			_, err := repo.FindUserByID(context.Background(), "missing")

			assert.ErrorIs(t, err, ErrUserNotFound)
		})
	}
}

func TestFindUserByUsername_EmptyResult(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE username = ").
		WithArgs("nobody").
		WillReturnRows(userRows())

	_, err := repo.FindUserByUsername(context.Background(), "nobody")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestFindUserByUsername_CorruptPosts(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(userRows().AddRow("u-1", "alice", nil, "", "hash", []byte("{not json"), time.Now()))

	_, err := repo.FindUserByUsername(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrDecodingPosts)
}

func TestFindUserByID_UnconvertibleColumn(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").
		WillReturnRows(userRows().AddRow("u-1", "alice", nil, "", "hash", []byte("[]"), "yesterday"))

	_, err := repo.FindUserByID(context.Background(), "u-1")

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestFindUser_QueryErrorIsNotScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindUserByUsername(context.Background(), "alice")

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrScanningRow)
}

// ─────────────────────────────────────────────────────────────────────────────
// FindOrCreateByGoogleID
// ─────────────────────────────────────────────────────────────────────────────

func TestFindOrCreateByGoogleID_SingleStatement(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users (.+) ON CONFLICT \\(google_id\\) DO UPDATE").
		WithArgs(sqlmock.AnyArg(), "google-sub", "bob@example.com").
		WillReturnRows(userRows().AddRow("u-2", nil, "google-sub", "bob@example.com", "", []byte("[]"), time.Now()))

	user, err := repo.FindOrCreateByGoogleID(context.Background(), models.OAuthProfile{
		Provider:       "google",
		ProviderUserID: "google-sub",
		Email:          "bob@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "u-2", user.ID)
	assert.True(t, user.IsFederated())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindOrCreateByGoogleID_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("connection reset"))

	_, err := repo.FindOrCreateByGoogleID(context.Background(), models.OAuthProfile{ProviderUserID: "x"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ─────────────────────────────────────────────────────────────────────────────
// AppendPost / RemovePostsByTitle
// ─────────────────────────────────────────────────────────────────────────────

func TestAppendPost_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET posts = posts \\|\\| jsonb_build_array").
		WithArgs("Day 1", "hello", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AppendPost(context.Background(), "u-1", models.Post{Title: "Day 1", Content: "hello"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAppendPost_UserGone(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.AppendPost(context.Background(), "u-1", models.Post{Title: "Day 1"})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAppendPost_ExecError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").WillReturnError(errors.New("disk full"))

	err := repo.AppendPost(context.Background(), "u-1", models.Post{Title: "Day 1"})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestRemovePostsByTitle_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users SET posts = COALESCE\\(\\(SELECT jsonb_agg").
		WithArgs("Day 1", "u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.RemovePostsByTitle(context.Background(), "u-1", "Day 1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRemovePostsByTitle_UserGone(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemovePostsByTitle(context.Background(), "u-1", "Day 1")

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRemovePostsByTitle_RowsAffectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))

	err := repo.RemovePostsByTitle(context.Background(), "u-1", "Day 1")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}
