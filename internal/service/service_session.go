// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

type sessionService struct {
	sessionRepository store.SessionRepository
	userRepository    store.UserRepository
	ids               *utils.UUIDGenerator

	ttl time.Duration
	now func() time.Time

	logger *logger.Logger
}

func NewSessionService(sessionRepository store.SessionRepository, userRepository store.UserRepository, cfg config.App, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
		ids:               utils.NewUUIDGenerator(),
		ttl:               cfg.SessionTTL,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *sessionService) TTL() time.Duration {
	return s.ttl
}

func (s *sessionService) Create(ctx context.Context, userID string) (models.Session, error) {
	if userID == "" {
		return models.Session{}, ErrInvalidDataProvided
	}

	now := s.now().UTC()
	session := models.Session{
		ID:        s.ids.Random(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	if err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.Create").Str("user_id", userID).Msg("session creation failed")
		return models.Session{}, fmt.Errorf("session creation failed: %w", err)
	}

	return session, nil
}

func (s *sessionService) Resolve(ctx context.Context, sessionID string) (models.User, error) {
	if sessionID == "" {
		return models.User{}, store.ErrSessionNotFound
	}

	session, err := s.sessionRepository.FindSessionByID(ctx, sessionID)
	if err != nil {
		return models.User{}, fmt.Errorf("session lookup failed: %w", err)
	}
	if session.Expired(s.now()) {
		return models.User{}, store.ErrSessionNotFound
	}

	user, err := s.userRepository.FindUserByID(ctx, session.UserID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.Resolve").Str("user_id", session.UserID).Msg("session user lookup failed")
		return models.User{}, fmt.Errorf("session user lookup failed: %w", err)
	}

	return user, nil
}

func (s *sessionService) Destroy(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessionRepository.DeleteSession(ctx, sessionID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sessionService.Destroy").Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

func (s *sessionService) SweepExpired(ctx context.Context) (int64, error) {
	removed, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("expired sessions removal failed: %w", err)
	}

	return removed, nil
}
