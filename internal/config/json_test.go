// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"name":           "journal",
			"session_secret": "secret",
			"session_ttl":    "48h",
			"bcrypt_cost":    12,
		},
		"storage": map[string]any{
			"db":       map[string]any{"dsn": "mongodb://localhost:27017", "name": "journalDB"},
			"sessions": map[string]any{"redis_url": "redis://localhost:6379"},
		},
		"server": map[string]any{
			"http_address":        ":3000",
			"request_timeout":     "10s",
			"secure_cookies":      true,
			"trust_proxy_headers": true,
		},
		"oauth": map[string]any{
			"google": map[string]any{
				"client_id":     "id",
				"client_secret": "secret",
				"callback_url":  "http://localhost:3000/auth/google/journal",
			},
		},
		"workers": map[string]any{"session_sweep_interval": "30m"},
	})

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, "journal", cfg.App.Name)
	assert.Equal(t, "secret", cfg.App.SessionSecret)
	assert.Equal(t, 48*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, 12, cfg.App.BcryptCost)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.DB.DSN)
	assert.Equal(t, "journalDB", cfg.Storage.DB.Name)
	assert.Equal(t, "redis://localhost:6379", cfg.Storage.Sessions.RedisURL)
	assert.Equal(t, ":3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.SecureCookies)
	assert.True(t, cfg.Server.TrustProxyHeaders)
	assert.Equal(t, "id", cfg.OAuth.Google.ClientID)
	assert.Equal(t, 30*time.Minute, cfg.Workers.SessionSweepInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"server": map[string]any{"request_timeout": "eventually"},
	})

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"session_ttl": int64(time.Hour)},
	})

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.App.SessionTTL)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{})

	cfg, err := parseJSON(path)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}
