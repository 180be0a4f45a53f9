// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	mongoUsersCollection    = "users"
	mongoSessionsCollection = "sessions"
)

// MongoDB holds the client and the journal database handle.
type MongoDB struct {
	client   *mongo.Client
	Database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to the deployment named by cfg.DSN and verifies
// the primary is reachable.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during mongo connection")
		return nil, fmt.Errorf("error occurred during mongo connection: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting mongo (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error connecting mongo: %w", err)
	}

	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to mongo successfully")
	return &MongoDB{
		client:   client,
		Database: client.Database(cfg.Name),
		logger:   log,
	}, nil
}

// Ping implements [HealthChecker].
func (m *MongoDB) Ping(ctx context.Context) error {
	return m.client.Ping(ctx, readpref.Primary())
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
