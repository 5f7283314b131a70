package main

import "errors"

// KnownMetrics is the set of metric names exported by storefront-sync
// plus recording rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"storefront_http_request_duration_seconds": true,
	"storefront_http_requests_total":           true,

	// Health metrics.
	"storefront_healthz_up":            true,
	"storefront_readyz_up":             true,
	"storefront_csrf_rejections_total": true,

	// Remote action client metrics.
	"storefront_remote_action_duration_seconds": true,
	"storefront_remote_actions_total":           true,
	"storefront_circuit_breaker_state":          true,

	// Catalog controller metrics.
	"storefront_filter_requests_total":            true,
	"storefront_filter_responses_discarded_total": true,
	"storefront_filter_failures_total":            true,

	// Badge and toast metrics.
	"storefront_badge_refresh_total": true,
	"storefront_toasts_shown_total":  true,

	// Recording rules.
	"storefront:http_requests:rate5m":          true,
	"storefront:http_errors:rate5m":            true,
	"storefront:remote_actions:rate5m":         true,
	"storefront:remote_action_failures:rate5m": true,
	"storefront:filter_failures:rate5m":        true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
