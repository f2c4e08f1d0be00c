// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestsTotal counts finished requests by route and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "budgetd_http_requests_total",
		Help: "Total HTTP requests processed, partitioned by method, path and status code.",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration observes request latency by route.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "budgetd_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// RateLimitedRequests counts requests rejected by the limiter.
	RateLimitedRequests = promauto.NewCounter(prometheus.CounterOpts{
		Name: "budgetd_rate_limited_requests_total",
		Help: "Requests rejected with 429 by the write rate limiter.",
	})

	// EventsPublished counts entity-change events handed to the broker.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "budgetd_events_published_total",
		Help: "Entity-change events published to AMQP, partitioned by entity and operation.",
	}, []string{"entity", "op"})
)
