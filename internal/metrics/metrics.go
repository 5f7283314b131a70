// Package metrics defines Prometheus metrics for storefront-sync.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// Remote action outcomes.
const (
	OutcomeOK               = "ok"
	OutcomeAppFailure       = "app_failure"
	OutcomeTransportFailure = "transport_failure"
	OutcomeMalformed        = "malformed"
)

// HTTP metrics for the reference storefront server.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests served by the reference storefront.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests served by the reference storefront.",
	}, []string{"method", "path", "status"})

	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last /healthz probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last /readyz probe succeeded (1) or failed (0).",
	})

	CSRFRejectionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "csrf_rejections_total",
		Help:      "Unsafe requests rejected for a missing or mismatched anti-forgery token.",
	})
)

// Remote action client metrics.
var (
	RemoteActionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "remote_action_duration_seconds",
		Help:      "Duration of calls to the storefront in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action", "outcome"})

	RemoteActionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_actions_total",
		Help:      "Total calls to the storefront by action and outcome.",
	}, []string{"action", "outcome"})

	CircuitBreakerState = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "circuit_breaker_state",
		Help:      "Storefront circuit breaker state (0=closed, 1=half-open, 2=open).",
	}, []string{"name"})
)

// Catalog controller metrics.
var (
	FilterRequestsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "filter_requests_total",
		Help:      "Total filtered catalog requests issued.",
	})

	FilterResponsesDiscardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "filter_responses_discarded_total",
		Help:      "Filtered catalog responses dropped because a newer request superseded them.",
	})

	FilterFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "filter_failures_total",
		Help:      "Filtered catalog requests that failed to load.",
	})
)

// Badge and toast metrics.
var (
	BadgeRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "badge_refresh_total",
		Help:      "Badge refreshes by badge and outcome.",
	}, []string{"badge", "outcome"})

	ToastsShownTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "toasts_shown_total",
		Help:      "Toasts rendered into the page by severity.",
	}, []string{"severity"})
)
