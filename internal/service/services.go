// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-journal/internal/adapter"
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/models"
)

type Services struct {
	AuthService          AuthService
	FederatedAuthService FederatedAuthService
	SessionService       SessionService
	PostService          PostService
	AppInfoService       AppInfoService
}

// NewServices wires every service to the given storages. provider may be nil
// when federated login is disabled.
func NewServices(storages *store.Storages, provider adapter.IdentityProvider, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:          NewAuthService(storages.UserRepository, cfg.App, logger),
		FederatedAuthService: NewFederatedAuthService(storages.UserRepository, provider, cfg.App, logger),
		SessionService:       NewSessionService(storages.SessionRepository, storages.UserRepository, cfg.App, logger),
		PostService:          NewPostService(storages.UserRepository, logger),
		AppInfoService:       appInfoService,
	}, nil
}
