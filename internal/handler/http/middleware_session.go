// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
)

// withSession resolves the session cookie to a user and stores it in the
// request context. It never rejects a request: an unknown session, an
// expired one or a user that no longer exists leave the request
// unauthenticated. A stale cookie is cleared.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := sessionIDFromRequest(r)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		user, err := h.services.SessionService.Resolve(r.Context(), sessionID)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) || errors.Is(err, store.ErrUserNotFound) {
				log.Debug().Err(err).Msg("stale session cookie")
				h.clearSessionCookie(w)
			} else {
				log.Err(err).Msg("session resolution failed")
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := utils.WithUser(r.Context(), user)
		ctx = log.WithUser(user.ID).WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isAuthenticated reports whether withSession attached a user to r.
func isAuthenticated(r *http.Request) bool {
	_, ok := utils.GetUserFromContext(r.Context())
	return ok
}

// requireSession guards protected routes: unauthenticated requests are
// redirected to /gettingStarted and the wrapped handler never runs.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !isAuthenticated(r) {
			utils.SeeOther(w, r, "/gettingStarted")
			return
		}

		next.ServeHTTP(w, r)
	})
}
