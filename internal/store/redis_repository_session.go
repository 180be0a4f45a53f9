// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
	"github.com/redis/go-redis/v9"
)

const redisSessionKeyPrefix = "journal:session:"

// RedisSessionStore keeps each session as a JSON value whose key expires
// together with the session.
type RedisSessionStore struct {
	client *redis.Client
	now    func() time.Time
	logger *logger.Logger
}

// NewConnectRedis parses a redis:// URL, connects and pings the server.
func NewConnectRedis(ctx context.Context, redisURL string, log *logger.Logger) (*RedisSessionStore, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("redis connect error: %w", err)
	}

	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")
	return NewRedisSessionStore(client, log), nil
}

func NewRedisSessionStore(client *redis.Client, log *logger.Logger) *RedisSessionStore {
	return &RedisSessionStore{client: client, now: time.Now, logger: log}
}

func redisSessionKey(sessionID string) string {
	return redisSessionKeyPrefix + sessionID
}

func (s *RedisSessionStore) CreateSession(ctx context.Context, session models.Session) error {
	ttl := session.TTL(s.now())
	if ttl <= 0 {
		return nil
	}

	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = s.client.Set(ctx, redisSessionKey(session.ID), payload, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisSessionStore.CreateSession").Msg("failed to store session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *RedisSessionStore) FindSessionByID(ctx context.Context, sessionID string) (models.Session, error) {
	payload, err := s.client.Get(ctx, redisSessionKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	var session models.Session
	if err = json.Unmarshal(payload, &session); err != nil {
		return models.Session{}, fmt.Errorf("error decoding session: %w", err)
	}
	if session.Expired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, redisSessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteExpiredSessions is a no-op: Redis expires keys on its own.
func (s *RedisSessionStore) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// Ping implements [HealthChecker].
func (s *RedisSessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
