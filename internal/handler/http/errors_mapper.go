// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/store"
)

// errorStatusMap is consulted in order; the first matching error wins.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrPostNotFound, http.StatusNotFound},
	{service.ErrWrongPassword, http.StatusUnauthorized},
	{service.ErrInvalidOAuthState, http.StatusUnauthorized},
	{service.ErrFederatedLoginDisabled, http.StatusNotFound},
	{service.ErrFederatedLoginFailed, http.StatusUnauthorized},

	{store.ErrUsernameAlreadyExists, http.StatusConflict},
	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrSessionNotFound, http.StatusUnauthorized},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrDecodingPosts, http.StatusInternalServerError},

	{ErrStoreUnavailable, http.StatusServiceUnavailable},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}
