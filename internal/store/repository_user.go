// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
	sq "github.com/Masterminds/squirrel"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// Posts live in the jsonb column "posts" of the "users" table.
type userRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating postgres user repository")
	return &userRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// CreateUser inserts a local account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped [ErrExecutingQuery].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(r.ids.Generate(), user)
	if err != nil {
		return models.User{}, err
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error creating user")
		return models.User{}, mapPostgresError(err, ErrUserNotFound)
	}

	return created, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"id": userID})
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, sq.Eq{"username": username})
}

func (r *userRepository) findUser(ctx context.Context, where sq.Eq) (models.User, error) {
	query, args, err := buildSelectUserQuery(where)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		mapped := mapPostgresError(err, ErrUserNotFound)
		if !errors.Is(mapped, ErrUserNotFound) {
			logger.FromContext(ctx).Err(err).Str("func", "*userRepository.findUser").Msg("error finding user")
		}
		return models.User{}, mapped
	}

	return user, nil
}

// FindOrCreateByGoogleID runs a single INSERT ... ON CONFLICT statement, so
// concurrent first logins of the same Google account converge on one row.
func (r *userRepository) FindOrCreateByGoogleID(ctx context.Context, profile models.OAuthProfile) (models.User, error) {
	query, args, err := buildUpsertGoogleUserQuery(r.ids.Generate(), profile)
	if err != nil {
		return models.User{}, err
	}

	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.FindOrCreateByGoogleID").Msg("error upserting google user")
		return models.User{}, mapPostgresError(err, ErrUserNotFound)
	}

	return user, nil
}

func (r *userRepository) AppendPost(ctx context.Context, userID string, post models.Post) error {
	query, args, err := buildAppendPostQuery(userID, post)
	if err != nil {
		return err
	}

	return r.execUserUpdate(ctx, "*userRepository.AppendPost", query, args)
}

func (r *userRepository) RemovePostsByTitle(ctx context.Context, userID, title string) error {
	query, args, err := buildRemovePostsQuery(userID, title)
	if err != nil {
		return err
	}

	return r.execUserUpdate(ctx, "*userRepository.RemovePostsByTitle", query, args)
}

// execUserUpdate runs a single-row UPDATE and reports [ErrUserNotFound]
// when no row matched.
func (r *userRepository) execUserUpdate(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating posts")
		return mapPostgresError(err, ErrUserNotFound)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// scanUser reads one row laid out as [userColumns]. Query failures and
// sql.ErrNoRows are returned as is; a value that cannot be converted is
// wrapped with [ErrScanningRow].
func scanUser(row *sql.Row) (models.User, error) {
	var (
		user     models.User
		username sql.NullString
		googleID sql.NullString
		posts    []byte
	)

	if err := row.Scan(&user.ID, &username, &googleID, &user.Email, &user.PasswordHash, &posts, &user.CreatedAt); err != nil {
		if row.Err() != nil || errors.Is(err, sql.ErrNoRows) {
			return models.User{}, err
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	user.Username = username.String
	if googleID.Valid {
		user.GoogleID = &googleID.String
	}

	user.Posts = models.Posts{}
	if len(posts) > 0 {
		if err := json.Unmarshal(posts, &user.Posts); err != nil {
			return models.User{}, fmt.Errorf("%w: %w", ErrDecodingPosts, err)
		}
	}

	return user, nil
}
