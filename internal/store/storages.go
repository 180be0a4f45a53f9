// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
)

// Backend identifies the user store implementation selected by the DSN.
type Backend string

const (
	BackendMongo    Backend = "mongo"
	BackendPostgres Backend = "postgres"
)

// BackendFromDSN maps the DSN scheme to a [Backend].
func BackendFromDSN(dsn string) (Backend, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnsupportedBackend, err)
	}

	switch strings.ToLower(u.Scheme) {
	case "mongodb", "mongodb+srv":
		return BackendMongo, nil
	case "postgres", "postgresql":
		return BackendPostgres, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedBackend, u.Scheme)
	}
}

// Storages aggregates the repositories used by the services together with
// the health checks and shutdown hooks of the underlying connections.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository

	checkers map[string]HealthChecker
	closers  []func(ctx context.Context) error
}

// NewStorages connects the configured backends. Sessions share the user
// store unless a Redis URL is configured.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	backend, err := BackendFromDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	s := &Storages{checkers: make(map[string]HealthChecker)}

	switch backend {
	case BackendMongo:
		err = s.withMongo(ctx, cfg.DB, log)
	case BackendPostgres:
		err = s.withPostgres(ctx, cfg.DB, log)
	}
	if err != nil {
		_ = s.Close(ctx)
		return nil, err
	}

	if cfg.Sessions.RedisURL != "" {
		redisStore, err := NewConnectRedis(ctx, cfg.Sessions.RedisURL, log)
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.SessionRepository = redisStore
		s.checkers["redis"] = redisStore
		s.closers = append(s.closers, func(context.Context) error { return redisStore.Close() })
	}

	log.Info().Str("backend", string(backend)).Bool("redis_sessions", cfg.Sessions.RedisURL != "").Msg("storages initialized")
	return s, nil
}

func (s *Storages) withMongo(ctx context.Context, cfg config.DB, log *logger.Logger) error {
	db, err := NewConnectMongo(ctx, cfg, log)
	if err != nil {
		return err
	}
	s.checkers["mongo"] = db
	s.closers = append(s.closers, db.Close)

	if s.UserRepository, err = NewMongoUserRepository(ctx, db.Database, log); err != nil {
		return err
	}
	if s.SessionRepository, err = NewMongoSessionRepository(ctx, db.Database, log); err != nil {
		return err
	}

	return nil
}

func (s *Storages) withPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) error {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return err
	}
	s.checkers["postgres"] = db
	s.closers = append(s.closers, func(context.Context) error { return db.Close() })

	s.UserRepository = NewUserRepository(db, log)
	s.SessionRepository = NewSessionRepository(db, log)
	return nil
}

// Ping checks every connected backend and joins the failures, each
// prefixed with the backend name.
func (s *Storages) Ping(ctx context.Context) error {
	var errs []error
	for name, checker := range s.checkers {
		if err := checker.Ping(ctx); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	return errors.Join(errs...)
}

// Close releases connections in reverse order of opening.
func (s *Storages) Close(ctx context.Context) error {
	var errs []error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	s.closers = nil

	return errors.Join(errs...)
}
