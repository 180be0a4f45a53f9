// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the journal.
//
// It exposes route wiring, page and form handlers, and the middleware chain:
// request tracing, access logging, metrics, response compression, session
// resolution and the access guard for protected routes. Responses are
// rendered views or redirects; handlers delegate all domain work to the
// service layer.
package http
