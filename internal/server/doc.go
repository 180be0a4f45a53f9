// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the journal's HTTP server and shuts it down
// gracefully when the application context is cancelled.
package server
