// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics collects Prometheus metrics for the journal server and
// exposes them for scraping.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Login methods and results used as label values.
const (
	LoginLocal  = "local"
	LoginGoogle = "google"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Recorder is the set of metric hooks used by handlers and workers.
type Recorder interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
	RecordLogin(method, result string)
	RecordRegistration(result string)
	RecordPostOperation(operation string)
	RecordSessionsSwept(count int64)
	RecordRateLimited(route string)
}

// Collector is the Prometheus implementation of Recorder.
type Collector struct {
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	logins        *prometheus.CounterVec
	registrations *prometheus.CounterVec
	postOps       *prometheus.CounterVec
	sessionsSwept prometheus.Counter
	rateLimited   *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg.
// namespace is normalised to a valid Prometheus metric prefix.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	ns := Namespace(namespace)

	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: ns,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "logins_total",
			Help:      "Login attempts by method and result.",
		}, []string{"method", "result"}),
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "registrations_total",
			Help:      "Local account registrations by result.",
		}, []string{"result"}),
		postOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "post_operations_total",
			Help:      "Successful post writes by operation.",
		}, []string{"operation"}),
		sessionsSwept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "sessions_swept_total",
			Help:      "Expired sessions removed by the sweeper.",
		}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: ns,
			Name:      "rate_limited_total",
			Help:      "Requests rejected by the rate limiter.",
		}, []string{"route"}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.logins,
		c.registrations,
		c.postOps,
		c.sessionsSwept,
		c.rateLimited,
	)

	return c
}

func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (c *Collector) RecordLogin(method, result string) {
	c.logins.WithLabelValues(method, result).Inc()
}

func (c *Collector) RecordRegistration(result string) {
	c.registrations.WithLabelValues(result).Inc()
}

func (c *Collector) RecordPostOperation(operation string) {
	c.postOps.WithLabelValues(operation).Inc()
}

func (c *Collector) RecordSessionsSwept(count int64) {
	c.sessionsSwept.Add(float64(count))
}

func (c *Collector) RecordRateLimited(route string) {
	c.rateLimited.WithLabelValues(route).Inc()
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Namespace maps an application name to a metric prefix: lower case, with
// every character outside [a-z0-9_] replaced by '_'.
func Namespace(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' {
			b.WriteRune(r)
			continue
		}
		b.WriteRune('_')
	}

	ns := b.String()
	if ns != "" && ns[0] >= '0' && ns[0] <= '9' {
		ns = "_" + ns
	}
	return ns
}

// Nop is a Recorder that drops every observation.
type Nop struct{}

func (Nop) ObserveRequest(string, string, int, time.Duration) {}
func (Nop) RecordLogin(string, string)                        {}
func (Nop) RecordRegistration(string)                         {}
func (Nop) RecordPostOperation(string)                        {}
func (Nop) RecordSessionsSwept(int64)                         {}
func (Nop) RecordRateLimited(string)                          {}
