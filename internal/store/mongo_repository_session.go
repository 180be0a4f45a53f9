// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoSessionRepository keeps sessions in the "sessions" collection.
// A TTL index on expiresAt lets the server drop expired documents; reads
// still filter on expiresAt since the TTL monitor runs only periodically.
type mongoSessionRepository struct {
	collection *mongo.Collection
	now        func() time.Time
	logger     *logger.Logger
}

func NewMongoSessionRepository(ctx context.Context, db *mongo.Database, logger *logger.Logger) (SessionRepository, error) {
	collection := db.Collection(mongoSessionsCollection)

	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "expiresAt", Value: 1}},
		Options: options.Index().
			SetName("expires_at_ttl").
			SetExpireAfterSeconds(0),
	})
	if err != nil {
		logger.Err(err).Str("func", "NewMongoSessionRepository").Msg("failed to create session ttl index")
		return nil, fmt.Errorf("failed to create session ttl index: %w", err)
	}

	logger.Debug().Msg("creating mongo session repository")
	return &mongoSessionRepository{collection: collection, now: time.Now, logger: logger}, nil
}

func (r *mongoSessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	if _, err := r.collection.InsertOne(ctx, session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoSessionRepository.CreateSession").Msg("failed to create session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *mongoSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (models.Session, error) {
	filter := bson.M{
		"_id":       sessionID,
		"expiresAt": bson.M{"$gt": r.now()},
	}

	var session models.Session
	err := r.collection.FindOne(ctx, filter).Decode(&session)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *mongoSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoSessionRepository.DeleteSession").Msg("failed to delete session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *mongoSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.collection.DeleteMany(ctx, bson.M{"expiresAt": bson.M{"$lte": now}})
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.DeletedCount, nil
}
