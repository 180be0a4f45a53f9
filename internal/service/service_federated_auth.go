// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/internal/adapter"
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

// StateTokenDuration bounds the time between BeginLogin and the provider
// redirecting back to the callback.
const StateTokenDuration = 10 * time.Minute

type federatedAuthService struct {
	userRepository store.UserRepository
	// provider is nil when federated login is not configured.
	provider adapter.IdentityProvider
	ids      *utils.UUIDGenerator

	stateSignKey  string
	stateIssuer   string
	stateDuration time.Duration

	logger *logger.Logger
}

// NewFederatedAuthService builds a FederatedAuthService. A nil provider
// yields a service whose Enabled reports false.
func NewFederatedAuthService(userRepository store.UserRepository, provider adapter.IdentityProvider, cfg config.App, logger *logger.Logger) FederatedAuthService {
	return &federatedAuthService{
		userRepository: userRepository,
		provider:       provider,
		ids:            utils.NewUUIDGenerator(),
		stateSignKey:   cfg.SessionSecret,
		stateIssuer:    cfg.Name,
		stateDuration:  StateTokenDuration,
		logger:         logger,
	}
}

func (f *federatedAuthService) Enabled() bool {
	return f.provider != nil
}

func (f *federatedAuthService) BeginLogin(ctx context.Context) (string, string, error) {
	if !f.Enabled() {
		return "", "", ErrFederatedLoginDisabled
	}

	nonce := f.ids.Random()
	state, err := utils.GenerateStateToken(f.stateIssuer, nonce, f.stateDuration, f.stateSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "federatedAuthService.BeginLogin").Msg("state token creation failed")
		return "", "", fmt.Errorf("%w: %w", ErrFederatedLoginFailed, err)
	}

	return f.provider.AuthCodeURL(state.String()), nonce, nil
}

func (f *federatedAuthService) CompleteLogin(ctx context.Context, state, nonce, code string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !f.Enabled() {
		return models.User{}, fmt.Errorf("%w: %w", ErrFederatedLoginFailed, ErrFederatedLoginDisabled)
	}

	if state == "" || nonce == "" {
		log.Error().Str("func", "federatedAuthService.CompleteLogin").Msg("state or nonce is missing")
		return models.User{}, fmt.Errorf("%w: %w", ErrFederatedLoginFailed, ErrInvalidOAuthState)
	}

	if _, err := utils.ValidateStateToken(state, nonce, f.stateSignKey, f.stateIssuer); err != nil {
		log.Err(err).Str("func", "federatedAuthService.CompleteLogin").Msg("state validation failed")
		return models.User{}, fmt.Errorf("%w: %w: %w", ErrFederatedLoginFailed, ErrInvalidOAuthState, err)
	}

	if code == "" {
		log.Error().Str("func", "federatedAuthService.CompleteLogin").Msg("authorization code is missing")
		return models.User{}, fmt.Errorf("%w: %w", ErrFederatedLoginFailed, ErrInvalidDataProvided)
	}

	profile, err := f.provider.Exchange(ctx, code)
	if err != nil {
		log.Err(err).Str("func", "federatedAuthService.CompleteLogin").Str("provider", f.provider.Name()).Msg("provider exchange failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrFederatedLoginFailed, err)
	}

	user, err := f.userRepository.FindOrCreateByGoogleID(ctx, profile)
	if err != nil {
		log.Err(err).Str("func", "federatedAuthService.CompleteLogin").Str("provider_user_id", profile.ProviderUserID).Msg("find or create user failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrFederatedLoginFailed, err)
	}

	return user, nil
}
