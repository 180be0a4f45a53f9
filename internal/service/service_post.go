// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/validators"
	"github.com/MKhiriev/go-journal/models"
)

// postService works on the post collection embedded in the user record.
// Reads fetch the whole user; writes are single atomic store updates.
type postService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewPostService(userRepository store.UserRepository, logger *logger.Logger) PostService {
	return &postService{
		userRepository: userRepository,
		validator:      validators.NewJournalValidator(),
		logger:         logger,
	}
}

func (p *postService) ListPosts(ctx context.Context, userID string) (models.Posts, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postService.ListPosts").Msg("user lookup failed")
		return nil, fmt.Errorf("user lookup failed: %w", err)
	}

	return user.Posts, nil
}

func (p *postService) AppendPost(ctx context.Context, userID string, post models.Post) error {
	log := logger.FromContext(ctx)

	if err := p.validator.Validate(ctx, post); err != nil {
		log.Err(err).Str("func", "postService.AppendPost").Str("title", post.Title).Msg("invalid post provided")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	if err := p.userRepository.AppendPost(ctx, userID, post); err != nil {
		log.Err(err).Str("func", "postService.AppendPost").Str("title", post.Title).Msg("post append failed")
		return fmt.Errorf("post append failed: %w", err)
	}

	return nil
}

func (p *postService) FindPost(ctx context.Context, userID, title string) (models.Post, error) {
	user, err := p.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "postService.FindPost").Msg("user lookup failed")
		return models.Post{}, fmt.Errorf("user lookup failed: %w", err)
	}

	post, ok := user.Posts.ByTitle(title)
	if !ok {
		return models.Post{}, ErrPostNotFound
	}

	return post, nil
}

func (p *postService) RemovePosts(ctx context.Context, userID, title string) error {
	log := logger.FromContext(ctx)

	if title == "" {
		log.Error().Str("func", "postService.RemovePosts").Msg("empty title provided")
		return ErrInvalidDataProvided
	}

	if err := p.userRepository.RemovePostsByTitle(ctx, userID, title); err != nil {
		log.Err(err).Str("func", "postService.RemovePosts").Str("title", title).Msg("posts removal failed")
		return fmt.Errorf("posts removal failed: %w", err)
	}

	return nil
}
