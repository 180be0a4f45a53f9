// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrStateNonceMismatch is returned when a state token carries a nonce
// different from the one presented by the browser.
var ErrStateNonceMismatch = errors.New("oauth state nonce mismatch")

// GenerateStateToken creates a signed HMAC-SHA256 JWT used as the OAuth
// "state" parameter.
//
// The token includes the following claims:
//   - Issuer    (iss): identifies the application that started the flow
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//   - nonce          : the random value bound to the browser cookie
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	state, err := utils.GenerateStateToken("go-journal", nonce, 10*time.Minute, "secret")
func GenerateStateToken(issuer, nonce string, tokenDuration time.Duration, signKey string) (models.StateToken, error) {
	if issuer == "" || nonce == "" || tokenDuration == 0 || signKey == "" {
		return models.StateToken{}, errors.New("invalid params for generating state token")
	}

	now := time.Now()
	claims := models.StateToken{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Nonce: nonce,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.StateToken{}, fmt.Errorf("error occurred during signing state token: %w", err)
	}

	claims.SignedString = tokenString
	return claims, nil
}

// ValidateStateToken verifies signature, issuer and expiry of tokenString and
// checks that its nonce claim equals nonce.
//
// Only HS256 is accepted. An empty nonce never matches.
func ValidateStateToken(tokenString, nonce, tokenSignKey, tokenIssuer string) (models.StateToken, error) {
	var claims models.StateToken
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.StateToken{}, fmt.Errorf("error occurred validating and parsing state token: %w", err)
	}

	if nonce == "" || claims.Nonce != nonce {
		return models.StateToken{}, ErrStateNonceMismatch
	}

	claims.SignedString = tokenString
	return claims, nil
}
