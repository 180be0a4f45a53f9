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
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userDocument is the stored shape of a user. Field names match the
// documents written by earlier versions of the journal.
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username,omitempty"`
	GoogleID     *string            `bson:"googleId,omitempty"`
	Email        string             `bson:"email,omitempty"`
	PasswordHash string             `bson:"passwordHash,omitempty"`
	Posts        models.Posts       `bson:"posts"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d userDocument) toModel() models.User {
	posts := d.Posts
	if posts == nil {
		posts = models.Posts{}
	}

	return models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		GoogleID:     d.GoogleID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Posts:        posts,
		CreatedAt:    d.CreatedAt,
	}
}

// mongoUserRepository is the MongoDB-backed implementation of [UserRepository].
// Posts are an embedded array updated with $push and $pull.
type mongoUserRepository struct {
	collection *mongo.Collection
	logger     *logger.Logger
}

// NewMongoUserRepository returns a [UserRepository] over the "users"
// collection and ensures its unique indexes. Both indexes are partial so
// local and federated accounts can coexist.
func NewMongoUserRepository(ctx context.Context, db *mongo.Database, logger *logger.Logger) (UserRepository, error) {
	collection := db.Collection(mongoUsersCollection)

	_, err := collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "username", Value: 1}},
			Options: options.Index().
				SetName("username_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"username": bson.M{"$type": "string"}}),
		},
		{
			Keys: bson.D{{Key: "googleId", Value: 1}},
			Options: options.Index().
				SetName("google_id_unique").
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"googleId": bson.M{"$type": "string"}}),
		},
	})
	if err != nil {
		logger.Err(err).Str("func", "NewMongoUserRepository").Msg("failed to create user indexes")
		return nil, fmt.Errorf("failed to create user indexes: %w", err)
	}

	logger.Debug().Msg("creating mongo user repository")
	return &mongoUserRepository{collection: collection, logger: logger}, nil
}

func (r *mongoUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	doc := userDocument{
		ID:           primitive.NewObjectID(),
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Posts:        models.Posts{},
		CreatedAt:    time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.CreateUser").Msg("failed to create user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrUserNotFound
	}

	return r.findOne(ctx, bson.M{"_id": objectID})
}

func (r *mongoUserRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *mongoUserRepository) findOne(ctx context.Context, filter bson.M) (models.User, error) {
	var doc userDocument
	err := r.collection.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.findOne").Msg("failed to find user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

// FindOrCreateByGoogleID upserts on googleId. The unique index makes a
// concurrent duplicate insert fail; the loser then reads the winner's
// document.
func (r *mongoUserRepository) FindOrCreateByGoogleID(ctx context.Context, profile models.OAuthProfile) (models.User, error) {
	filter := bson.M{"googleId": profile.ProviderUserID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"googleId":  profile.ProviderUserID,
			"email":     profile.Email,
			"posts":     bson.A{},
			"createdAt": time.Now().UTC().Truncate(time.Millisecond),
		},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc userDocument
	err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if mongo.IsDuplicateKeyError(err) {
		return r.findOne(ctx, filter)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*mongoUserRepository.FindOrCreateByGoogleID").Msg("failed to upsert google user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoUserRepository) AppendPost(ctx context.Context, userID string, post models.Post) error {
	return r.updateOne(ctx, "*mongoUserRepository.AppendPost", userID, bson.M{
		"$push": bson.M{"posts": post},
	})
}

func (r *mongoUserRepository) RemovePostsByTitle(ctx context.Context, userID, title string) error {
	return r.updateOne(ctx, "*mongoUserRepository.RemovePostsByTitle", userID, bson.M{
		"$pull": bson.M{"posts": bson.M{"postTitle": title}},
	})
}

func (r *mongoUserRepository) updateOne(ctx context.Context, funcName, userID string, update bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrUserNotFound
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to update posts")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.MatchedCount == 0 {
		return ErrUserNotFound
	}

	return nil
}
