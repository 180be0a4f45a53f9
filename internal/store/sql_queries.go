// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable    = "users"
	sessionsTable = "sessions"
)

// userColumns is the column order every user query returns and
// scanUser expects.
var userColumns = []string{"id", "username", "google_id", "email", "password_hash", "posts", "created_at"}

var sessionColumns = []string{"id", "user_id", "created_at", "expires_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningUser() string {
	return "RETURNING id, username, google_id, email, password_hash, posts, created_at"
}

func buildQuery(builder sq.Sqlizer) (string, []any, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildInsertUserQuery inserts a local account. Posts start empty.
func buildInsertUserQuery(userID string, user models.User) (string, []any, error) {
	return buildQuery(psql.
		Insert(usersTable).
		Columns("id", "username", "email", "password_hash").
		Values(userID, user.Username, user.Email, user.PasswordHash).
		Suffix(returningUser()))
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return buildQuery(psql.
		Select(userColumns...).
		From(usersTable).
		Where(where))
}

// buildUpsertGoogleUserQuery inserts a federated account or, when the
// google_id is already linked, returns the existing row unchanged.
// The no-op DO UPDATE makes RETURNING yield the existing row.
func buildUpsertGoogleUserQuery(userID string, profile models.OAuthProfile) (string, []any, error) {
	return buildQuery(psql.
		Insert(usersTable).
		Columns("id", "google_id", "email").
		Values(userID, profile.ProviderUserID, profile.Email).
		Suffix("ON CONFLICT (google_id) DO UPDATE SET google_id = EXCLUDED.google_id " + returningUser()))
}

// buildAppendPostQuery appends one post to the jsonb array in place.
func buildAppendPostQuery(userID string, post models.Post) (string, []any, error) {
	return buildQuery(psql.
		Update(usersTable).
		Set("posts", sq.Expr(
			"posts || jsonb_build_array(jsonb_build_object('postTitle', ?::text, 'content', ?::text))",
			post.Title, post.Content,
		)).
		Where(sq.Eq{"id": userID}))
}

// buildRemovePostsQuery rewrites the jsonb array without the posts titled
// title, keeping the order of the rest.
func buildRemovePostsQuery(userID, title string) (string, []any, error) {
	return buildQuery(psql.
		Update(usersTable).
		Set("posts", sq.Expr(
			"COALESCE((SELECT jsonb_agg(p.elem ORDER BY p.ord) "+
				"FROM jsonb_array_elements(posts) WITH ORDINALITY AS p(elem, ord) "+
				"WHERE p.elem->>'postTitle' IS DISTINCT FROM ?::text), '[]'::jsonb)",
			title,
		)).
		Where(sq.Eq{"id": userID}))
}

func buildInsertSessionQuery(session models.Session) (string, []any, error) {
	return buildQuery(psql.
		Insert(sessionsTable).
		Columns(sessionColumns...).
		Values(session.ID, session.UserID, session.CreatedAt, session.ExpiresAt))
}

func buildSelectSessionQuery(sessionID string, now time.Time) (string, []any, error) {
	return buildQuery(psql.
		Select(sessionColumns...).
		From(sessionsTable).
		Where(sq.Eq{"id": sessionID}).
		Where(sq.Gt{"expires_at": now}))
}

func buildDeleteSessionQuery(sessionID string) (string, []any, error) {
	return buildQuery(psql.
		Delete(sessionsTable).
		Where(sq.Eq{"id": sessionID}))
}

func buildDeleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return buildQuery(psql.
		Delete(sessionsTable).
		Where(sq.LtOrEq{"expires_at": now}))
}
