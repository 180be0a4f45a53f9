// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/utils"
)

// healthz pings the store. Without a configured checker it always reports ok.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.health != nil {
		if err := h.health.Ping(r.Context()); err != nil {
			err = fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
			logger.FromRequest(r).Err(err).Str("func", "*Handler.healthz").Msg("store ping failed")
			utils.WriteStatus(w, statusFromError(err))
			return
		}
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
