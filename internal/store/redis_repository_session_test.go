// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisSessionStore(client, logger.Nop())
	s.now = func() time.Time { return fixedNow }
	return s, server
}

func TestRedisSessionStore_CreateAndFind(t *testing.T) {
	s, server := newTestRedisStore(t)
	session := models.Session{ID: "s-1", UserID: "u-1", CreatedAt: fixedNow, ExpiresAt: fixedNow.Add(time.Hour)}

	require.NoError(t, s.CreateSession(context.Background(), session))

	assert.Equal(t, time.Hour, server.TTL(redisSessionKey("s-1")))

	found, err := s.FindSessionByID(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", found.UserID)
	assert.True(t, found.ExpiresAt.Equal(session.ExpiresAt))
}

func TestRedisSessionStore_KeyExpires(t *testing.T) {
	s, server := newTestRedisStore(t)
	session := models.Session{ID: "s-1", UserID: "u-1", ExpiresAt: fixedNow.Add(time.Minute)}
	require.NoError(t, s.CreateSession(context.Background(), session))

	server.FastForward(2 * time.Minute)

	_, err := s.FindSessionByID(context.Background(), "s-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_ExpiredPayloadIgnored(t *testing.T) {
	s, _ := newTestRedisStore(t)
	session := models.Session{ID: "s-1", UserID: "u-1", ExpiresAt: fixedNow.Add(time.Minute)}
	require.NoError(t, s.CreateSession(context.Background(), session))

	s.now = func() time.Time { return fixedNow.Add(time.Hour) }

	_, err := s.FindSessionByID(context.Background(), "s-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisSessionStore_CreateAlreadyExpiredIsNoop(t *testing.T) {
	s, server := newTestRedisStore(t)

	err := s.CreateSession(context.Background(), models.Session{ID: "s-1", ExpiresAt: fixedNow.Add(-time.Second)})

	require.NoError(t, err)
	assert.False(t, server.Exists(redisSessionKey("s-1")))
}

func TestRedisSessionStore_Delete(t *testing.T) {
	s, server := newTestRedisStore(t)
	require.NoError(t, s.CreateSession(context.Background(), models.Session{ID: "s-1", ExpiresAt: fixedNow.Add(time.Hour)}))

	require.NoError(t, s.DeleteSession(context.Background(), "s-1"))

	assert.False(t, server.Exists(redisSessionKey("s-1")))
	n, err := s.DeleteExpiredSessions(context.Background(), fixedNow)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestRedisSessionStore_PingAndUnavailable(t *testing.T) {
	s, server := newTestRedisStore(t)
	require.NoError(t, s.Ping(context.Background()))

	server.Close()

	assert.Error(t, s.Ping(context.Background()))
	_, err := s.FindSessionByID(context.Background(), "s-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestNewConnectRedis_InvalidURL(t *testing.T) {
	_, err := NewConnectRedis(context.Background(), "http://not-redis", logger.Nop())
	assert.Error(t, err)
}

func TestNewConnectRedis_Success(t *testing.T) {
	server := miniredis.RunT(t)

	s, err := NewConnectRedis(context.Background(), "redis://"+server.Addr()+"/0", logger.Nop())

	require.NoError(t, err)
	assert.NoError(t, s.Close())
}
