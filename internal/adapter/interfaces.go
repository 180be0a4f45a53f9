// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for external identity providers.
//
// The primary abstraction is [IdentityProvider], which decouples the
// federated login service from the OAuth2 code flow and the provider's
// userinfo endpoint. The package ships a Google implementation
// ([NewGoogleProvider]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] on provider failures
// (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-journal/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/identity_provider_mock.go -package=mock

// IdentityProvider performs the OAuth2 authorization code flow against an
// external provider.
type IdentityProvider interface {
	// Name returns the provider identifier stored in [models.OAuthProfile].
	Name() string

	// AuthCodeURL returns the consent page URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for an access token and fetches
	// the user's profile with it. The returned profile always has a
	// non-empty ProviderUserID.
	Exchange(ctx context.Context, code string) (models.OAuthProfile, error)
}
