// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/metrics"
	"github.com/MKhiriev/go-journal/internal/utils"
)

const (
	formUsername = "username"
	formPassword = "password"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid form was passed")
		h.metrics.RecordRegistration(metrics.ResultFailure)
		utils.SeeOther(w, r, "/register")
		return
	}

	user, err := h.services.AuthService.RegisterUser(ctx, r.PostForm.Get(formUsername), r.PostForm.Get(formPassword))
	if err != nil {
		log.Err(err).Str("func", "*Handler.register").Int("status", statusFromError(err)).Msg("registration failed")
		h.metrics.RecordRegistration(metrics.ResultFailure)
		utils.SeeOther(w, r, "/register")
		return
	}
	h.metrics.RecordRegistration(metrics.ResultSuccess)

	if !h.startSession(w, r, user.ID) {
		utils.SeeOther(w, r, "/register")
		return
	}

	utils.SeeOther(w, r, "/")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid form was passed")
		h.metrics.RecordLogin(metrics.LoginLocal, metrics.ResultFailure)
		utils.SeeOther(w, r, "/login")
		return
	}

	user, err := h.services.AuthService.Login(ctx, r.PostForm.Get(formUsername), r.PostForm.Get(formPassword))
	if err != nil {
		log.Err(err).Str("func", "*Handler.login").Int("status", statusFromError(err)).Msg("login failed")
		h.metrics.RecordLogin(metrics.LoginLocal, metrics.ResultFailure)
		utils.SeeOther(w, r, "/login")
		return
	}

	if !h.startSession(w, r, user.ID) {
		h.metrics.RecordLogin(metrics.LoginLocal, metrics.ResultFailure)
		utils.SeeOther(w, r, "/login")
		return
	}
	h.metrics.RecordLogin(metrics.LoginLocal, metrics.ResultSuccess)

	utils.SeeOther(w, r, "/")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if sessionID, err := sessionIDFromRequest(r); err == nil {
		if err = h.services.SessionService.Destroy(r.Context(), sessionID); err != nil {
			log.Err(err).Str("func", "*Handler.logout").Msg("error destroying session")
		}
	}
	h.clearSessionCookie(w)

	utils.SeeOther(w, r, "/gettingStarted")
}

// startSession creates a session for userID and sets its cookie.
// It reports false when the session could not be stored.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, userID string) bool {
	session, err := h.services.SessionService.Create(r.Context(), userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.startSession").Msg("error creating session")
		return false
	}

	h.setSessionCookie(w, session.ID, h.services.SessionService.TTL())
	return true
}
