// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal/internal/metrics"
	"github.com/MKhiriev/go-journal/internal/views"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	// proxy headers are client-controlled unless a trusted proxy rewrites them
	if h.cfg.TrustProxyHeaders {
		router.Use(middleware.RealIP)
	}
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// already compressed by promhttp when the client asks for it
	router.Method(http.MethodGet, "/metrics", metrics.Handler(h.gatherer))
	router.Get("/healthz", h.healthz)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		r.Use(h.withSession)

		r.Method(http.MethodGet, "/static/*", views.StaticHandler())
		r.Get("/version", h.getServerVersion)

		// routes without authorization
		r.Get("/gettingStarted", h.gettingStarted)
		r.Get("/login", h.loginPage)
		r.Get("/register", h.registerPage)
		r.Get("/auth/google", h.googleLogin)
		r.Get("/auth/google/journal", h.googleCallback)

		r.Group(func(r chi.Router) {
			r.Use(h.withRateLimit)
			r.Post("/login", h.login)
			r.Post("/register", h.register)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/", h.home)
			r.Get("/about", h.about)
			r.Get("/compose", h.composePage)
			r.Post("/compose", h.compose)
			r.Post("/delete", h.deletePosts)
			r.Get("/posts/{postId}", h.post)
			r.Get("/logout", h.logout)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
