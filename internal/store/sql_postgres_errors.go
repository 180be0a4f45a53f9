// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or "" when err does not
// originate from the PostgreSQL server.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// mapPostgresError translates driver errors into store sentinels.
//
//   - unique_violation (23505) on the username → [ErrUsernameAlreadyExists]
//   - sql.ErrNoRows and no_data_found (P0002) → notFound
//   - invalid_text_representation (22P02), raised for malformed uuid keys → notFound
//   - [ErrScanningRow] and [ErrDecodingPosts] → unchanged
//   - anything else → wrapped [ErrExecutingQuery]
func mapPostgresError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrScanningRow) || errors.Is(err, ErrDecodingPosts) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrUsernameAlreadyExists
	case pgerrcode.NoDataFound, pgerrcode.InvalidTextRepresentation:
		return notFound
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
