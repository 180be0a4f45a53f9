// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// OAuthProfile is the identity assertion returned by an external provider
// after a successful code exchange.
type OAuthProfile struct {
	Provider       string
	ProviderUserID string
	Email          string
	Name           string
}

// StateToken is the signed "state" parameter of the federated login flow.
//
// It embeds [jwt.RegisteredClaims] for issuer and expiry checks. Nonce binds
// the callback to the browser that started the flow: the same value is kept
// in a short-lived cookie and compared on return.
type StateToken struct {
	jwt.RegisteredClaims

	// Nonce is the random value carried in the "nonce" claim.
	Nonce string `json:"nonce"`

	// SignedString is the compact JWS form passed to the provider.
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the state token.
func (s StateToken) String() string {
	return s.SignedString
}
