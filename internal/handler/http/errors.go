// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoSessionCookie is returned when the request carries no session cookie.
	ErrNoSessionCookie = errors.New("no session cookie")

	// ErrNoNonceCookie is returned by the OAuth callback when the nonce
	// cookie set by /auth/google is missing.
	ErrNoNonceCookie = errors.New("no oauth nonce cookie")

	// ErrStoreUnavailable is reported by /healthz when a store ping fails.
	ErrStoreUnavailable = errors.New("store unavailable")
)
