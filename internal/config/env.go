// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// legacyEnv lists the variable names deployments of the journal used before
// the prefixed names were introduced.
type legacyEnv struct {
	MongoURI     string `env:"MONGO_URI"`
	Secret       string `env:"SECRET"`
	Port         string `env:"PORT"`
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

// parseLegacyEnv maps the legacy variable names onto a [StructuredConfig].
// PORT alone becomes the listen address ":PORT".
func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{SessionSecret: legacy.Secret},
		Storage: Storage{
			DB: DB{DSN: legacy.MongoURI},
		},
		OAuth: OAuth{
			Google: Google{
				ClientID:     legacy.ClientID,
				ClientSecret: legacy.ClientSecret,
			},
		},
	}

	if legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}

	return cfg, nil
}
