// Package metrics declares the process-wide Prometheus collectors.
// Exposed at /metrics via promhttp.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts HTTP requests by method, route pattern and status.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchforge_http_requests_total",
		Help: "HTTP requests processed, by method, route and status code.",
	}, []string{"method", "route", "status"})

	// RequestDuration observes HTTP request latency by route pattern.
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pitchforge_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	// AICallsTotal counts text-generation provider calls by workflow
	// (chat, outline) and outcome (ok, error).
	AICallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchforge_ai_calls_total",
		Help: "Text-generation provider calls, by workflow and outcome.",
	}, []string{"workflow", "outcome"})

	// SlidesCreatedTotal counts slides created by source (manual, chat
	// directive, outline generation).
	SlidesCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pitchforge_slides_created_total",
		Help: "Slides created, by source.",
	}, []string{"source"})
)
