// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPosts_Index_FirstOccurrenceWins(t *testing.T) {
	posts := Posts{
		{Title: "Day 1", Content: "first"},
		{Title: "Day 2", Content: "second"},
		{Title: "Day 1", Content: "duplicate"},
	}

	index := posts.Index()

	assert.Equal(t, map[string]int{"Day 1": 0, "Day 2": 1}, index)
}

func TestPosts_ByTitle(t *testing.T) {
	posts := Posts{
		{Title: "Day 1", Content: "first"},
		{Title: "Day 1", Content: "duplicate"},
	}

	tests := []struct {
		name      string
		title     string
		wantPost  Post
		wantFound bool
	}{
		{name: "duplicate title resolves to first", title: "Day 1", wantPost: Post{Title: "Day 1", Content: "first"}, wantFound: true},
		{name: "missing title", title: "Day 3", wantFound: false},
		{name: "empty title", title: "", wantFound: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			post, found := posts.ByTitle(tt.title)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantPost, post)
		})
	}
}

func TestPosts_ByTitle_EmptyCollection(t *testing.T) {
	var posts Posts

	_, found := posts.ByTitle("anything")

	assert.False(t, found)
}

func TestUser_AccountKind(t *testing.T) {
	googleID := "google-sub"
	empty := ""

	assert.True(t, User{GoogleID: &googleID}.IsFederated())
	assert.False(t, User{GoogleID: &empty}.IsFederated())
	assert.False(t, User{}.IsFederated())
	assert.True(t, User{PasswordHash: "$2a$10$hash"}.HasPassword())
	assert.False(t, User{}.HasPassword())
}

func TestSession_Expired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s := Session{ExpiresAt: now.Add(time.Hour)}

	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Hour)))
	assert.Equal(t, time.Hour, s.TTL(now))
}
