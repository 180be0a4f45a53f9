// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/metrics"
	"github.com/MKhiriev/go-journal/internal/service"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/views"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	renderer *views.Renderer

	health   store.HealthChecker
	metrics  metrics.Recorder
	gatherer prometheus.Gatherer
	limiter  *RateLimiter

	cfg config.Server

	logger *logger.Logger
}

// Option customises optional Handler dependencies.
type Option func(*Handler)

// WithHealthChecker sets the store ping used by /healthz.
func WithHealthChecker(checker store.HealthChecker) Option {
	return func(h *Handler) {
		h.health = checker
	}
}

// WithMetrics sets the recorder fed by the handlers and the gatherer
// exposed on /metrics.
func WithMetrics(recorder metrics.Recorder, gatherer prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = recorder
		h.gatherer = gatherer
	}
}

// WithRateLimiter sets the limiter applied to credential submissions.
func WithRateLimiter(limiter *RateLimiter) Option {
	return func(h *Handler) {
		h.limiter = limiter
	}
}

func NewHandler(services *service.Services, renderer *views.Renderer, cfg config.Server, logger *logger.Logger, opts ...Option) *Handler {
	h := &Handler{
		services: services,
		renderer: renderer,
		metrics:  metrics.Nop{},
		gatherer: prometheus.NewRegistry(),
		cfg:      cfg,
		logger:   logger,
	}

	for _, opt := range opts {
		opt(h)
	}

	logger.Info().Msg("http handler created")
	return h
}
