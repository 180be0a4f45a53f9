// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app builds the journal server from its configuration and runs it.
//
// App is the explicit application context: it owns the store connections,
// services, HTTP handler, server and background workers, and is the only
// place where they are wired together.
package app

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal/internal/adapter"
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/handler"
	"github.com/MKhiriev/go-journal/internal/handler/http"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/metrics"
	"github.com/MKhiriev/go-journal/internal/server"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/views"
	"github.com/MKhiriev/go-journal/internal/workers"
	"github.com/MKhiriev/go-journal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type App struct {
	cfg *config.StructuredConfig

	storages *store.Storages
	services *service.Services
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp connects the stores and wires every component. On error all
// connections opened so far are closed.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	a, err := newApp(storages, cfg, buildInfo, logger)
	if err != nil {
		_ = storages.Close(ctx)
		return nil, err
	}

	return a, nil
}

func newApp(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	services, err := service.NewServices(storages, newIdentityProvider(cfg.OAuth.Google, logger), *cfg, buildInfo, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating services: %w", err)
	}

	renderer, err := views.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("error creating renderer: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(registry, cfg.App.Name)
	limiter := http.NewRateLimiter(http.DefaultRateLimiterConfig())

	handlers, err := handler.NewHandlers(services, renderer, cfg.Server, logger,
		http.WithHealthChecker(storages),
		http.WithMetrics(collector, registry),
		http.WithRateLimiter(limiter),
	)
	if err != nil {
		return nil, fmt.Errorf("error creating handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Server, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating server: %w", err)
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		server:   srv,
		workers: workers.NewWorkers(
			workers.NewSessionSweeper(services.SessionService, cfg.Workers.SessionSweepInterval, collector, logger),
			workers.WorkerFunc(limiter.Run),
		),
		logger: logger,
	}, nil
}

// newIdentityProvider returns nil when Google credentials are not
// configured, which disables federated login.
func newIdentityProvider(cfg config.Google, logger *logger.Logger) adapter.IdentityProvider {
	if !cfg.Enabled() {
		logger.Info().Msg("google login disabled: no client credentials")
		return nil
	}

	return adapter.NewGoogleProvider(cfg, logger)
}

// Run serves HTTP and runs the workers until ctx is cancelled, then waits
// for the workers and closes the stores.
func (a *App) Run(ctx context.Context) error {
	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		a.workers.Run(workersCtx)
		close(workersDone)
	}()

	err := a.server.RunServer(ctx)

	stopWorkers()
	<-workersDone

	if closeErr := a.storages.Close(context.WithoutCancel(ctx)); closeErr != nil {
		a.logger.Err(closeErr).Str("func", "*App.Run").Msg("error closing storages")
	}

	return err
}
