// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/metrics"
	"github.com/MKhiriev/go-journal/internal/utils"
)

// googleLogin starts the federated flow: the nonce goes into a cookie, the
// signed state carrying the same nonce goes to Google.
func (h *Handler) googleLogin(w http.ResponseWriter, r *http.Request) {
	if !h.services.FederatedAuthService.Enabled() {
		utils.WriteStatus(w, http.StatusNotFound)
		return
	}

	authURL, nonce, err := h.services.FederatedAuthService.BeginLogin(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.googleLogin").Msg("error starting federated login")
		utils.SeeOther(w, r, "/login")
		return
	}

	h.setNonceCookie(w, nonce)
	utils.SeeOther(w, r, authURL)
}

// googleCallback finishes the federated flow. Any failure sends the
// browser back to /login without a session.
func (h *Handler) googleCallback(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	nonce, err := h.popNonce(w, r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.googleCallback").Msg("callback without nonce cookie")
		h.metrics.RecordLogin(metrics.LoginGoogle, metrics.ResultFailure)
		utils.SeeOther(w, r, "/login")
		return
	}

	query := r.URL.Query()
	if providerErr := query.Get("error"); providerErr != "" {
		log.Warn().Str("func", "*Handler.googleCallback").Str("error", providerErr).Msg("provider denied login")
		h.metrics.RecordLogin(metrics.LoginGoogle, metrics.ResultFailure)
		utils.SeeOther(w, r, "/login")
		return
	}

	user, err := h.services.FederatedAuthService.CompleteLogin(r.Context(), query.Get("state"), nonce, query.Get("code"))
	if err != nil {
		log.Err(err).Str("func", "*Handler.googleCallback").Msg("federated login failed")
		h.metrics.RecordLogin(metrics.LoginGoogle, metrics.ResultFailure)
		utils.SeeOther(w, r, "/login")
		return
	}

	if !h.startSession(w, r, user.ID) {
		h.metrics.RecordLogin(metrics.LoginGoogle, metrics.ResultFailure)
		utils.SeeOther(w, r, "/login")
		return
	}
	h.metrics.RecordLogin(metrics.LoginGoogle, metrics.ResultSuccess)

	utils.SeeOther(w, r, "/")
}
