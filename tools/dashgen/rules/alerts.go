package rules

// AlertRules returns a PrometheusRule CR containing alert rules for
// storefront-sync operational monitoring.
func AlertRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "storefront-alerts",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "storefront-alerts",
					Rules: []Rule{
						{
							Alert: "StorefrontDown",
							Expr:  `absent(up{job="storefront-sync"})`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Storefront is down",
								"description": "The storefront-sync job has been absent for more than 2 minutes.",
							},
						},
						{
							Alert: "StorefrontReadinessDown",
							Expr:  `storefront_readyz_up == 0`,
							For:   "2m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Storefront readiness check is failing",
								"description": "The readiness probe has reported an unloaded catalog for more than 2 minutes.",
							},
						},
						{
							Alert: "StorefrontHighErrorRate",
							Expr:  `storefront:http_errors:rate5m / storefront:http_requests:rate5m > 0.05`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "High HTTP error rate on the storefront",
								"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
							},
						},
						{
							Alert: "StorefrontCSRFRejections",
							Expr:  `increase(storefront_csrf_rejections_total[10m]) > 20`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Many requests rejected by the anti-forgery check",
								"description": "More than 20 unsafe requests without a valid CSRF token in 10 minutes.",
							},
						},
						{
							Alert: "StorefrontCircuitOpen",
							Expr:  `max(storefront_circuit_breaker_state) == 2`,
							For:   "1m",
							Labels: map[string]string{
								"severity": "critical",
							},
							Annotations: map[string]string{
								"summary":     "Storefront client circuit breaker is open",
								"description": "Remote actions are being rejected without reaching the storefront.",
							},
						},
						{
							Alert: "StorefrontActionFailures",
							Expr:  `sum(storefront:remote_action_failures:rate5m) > 0.1`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Remote action failure rate is elevated",
								"description": "Cart, favorites, or newsletter calls are failing at more than 0.1/s.",
							},
						},
						{
							Alert: "StorefrontFilterFailures",
							Expr:  `storefront:filter_failures:rate5m > 0`,
							For:   "5m",
							Labels: map[string]string{
								"severity": "warning",
							},
							Annotations: map[string]string{
								"summary":     "Catalog filtering is failing",
								"description": "Filtered catalog loads have been failing for more than 5 minutes.",
							},
						},
					},
				},
			},
		},
	}
}
