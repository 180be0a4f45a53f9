// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	DefaultAppName              = "go-journal"
	DefaultHTTPAddress          = ":3000"
	DefaultRequestTimeout       = 30 * time.Second
	DefaultDBName               = "journalDB"
	DefaultSessionTTL           = 24 * time.Hour
	DefaultBcryptCost           = 10
	DefaultGoogleCallbackURL    = "http://localhost:3000/auth/google/journal"
	DefaultSessionSweepInterval = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:       DefaultAppName,
			SessionTTL: DefaultSessionTTL,
			BcryptCost: DefaultBcryptCost,
		},
		Storage: Storage{
			DB: DB{Name: DefaultDBName},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		OAuth: OAuth{
			Google: Google{CallbackURL: DefaultGoogleCallbackURL},
		},
		Workers: Workers{
			SessionSweepInterval: DefaultSessionSweepInterval,
		},
	}
}
