// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/metrics"
	"github.com/MKhiriev/go-journal/internal/service"
)

// SessionSweeper periodically removes expired sessions from stores that do
// not expire them on their own.
type SessionSweeper struct {
	sessions service.SessionService
	interval time.Duration
	metrics  metrics.Recorder
	logger   *logger.Logger
}

func NewSessionSweeper(sessions service.SessionService, interval time.Duration, recorder metrics.Recorder, logger *logger.Logger) *SessionSweeper {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &SessionSweeper{
		sessions: sessions,
		interval: interval,
		metrics:  recorder,
		logger:   logger,
	}
}

// Run sweeps once per interval until ctx is cancelled. A non-positive
// interval disables the sweeper.
func (s *SessionSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		s.logger.Info().Str("func", "*SessionSweeper.Run").Msg("session sweeper disabled")
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionSweeper) sweep(ctx context.Context) {
	removed, err := s.sessions.SweepExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Err(err).Str("func", "*SessionSweeper.sweep").Msg("error sweeping expired sessions")
		}
		return
	}

	s.metrics.RecordSessionsSwept(removed)
	if removed > 0 {
		s.logger.Info().Str("func", "*SessionSweeper.sweep").Int64("removed", removed).Msg("expired sessions removed")
	}
}
