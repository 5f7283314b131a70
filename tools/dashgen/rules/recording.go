package rules

// RecordingRules returns a PrometheusRule CR containing pre-computed rate
// expressions used by dashboards and alert rules.
func RecordingRules() PrometheusRule {
	return PrometheusRule{
		APIVersion: "monitoring.coreos.com/v1",
		Kind:       "PrometheusRule",
		Metadata: PrometheusRuleMetadata{
			Name: "storefront-recording-rules",
			Labels: map[string]string{
				"prometheus": "system-rules-prometheus",
			},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{
				{
					Name: "storefront-recording",
					Rules: []Rule{
						{
							Record: "storefront:http_requests:rate5m",
							Expr:   `sum(rate(storefront_http_requests_total[5m]))`,
						},
						{
							Record: "storefront:http_errors:rate5m",
							Expr:   `sum(rate(storefront_http_requests_total{status=~"5.."}[5m]))`,
						},
						{
							Record: "storefront:remote_actions:rate5m",
							Expr:   `sum(rate(storefront_remote_actions_total[5m])) by (outcome)`,
						},
						{
							Record: "storefront:remote_action_failures:rate5m",
							Expr:   `sum(rate(storefront_remote_actions_total{outcome!="ok"}[5m])) by (action)`,
						},
						{
							Record: "storefront:filter_failures:rate5m",
							Expr:   `sum(rate(storefront_filter_failures_total[5m]))`,
						},
					},
				},
			},
		},
	}
}
