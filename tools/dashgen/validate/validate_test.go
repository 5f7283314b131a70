package validate

import (
	"testing"

	"github.com/prometheus/prometheus/promql/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpr(t *testing.T) {
	t.Parallel()

	known := map[string]bool{
		"storefront_remote_actions_total":           true,
		"storefront_remote_action_duration_seconds": true,
		"storefront:http_requests:rate5m":           true,
	}

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{name: "counter rate", expr: `rate(storefront_remote_actions_total{outcome="ok"}[5m])`},
		{
			name: "histogram bucket",
			expr: `histogram_quantile(0.95, sum(rate(storefront_remote_action_duration_seconds_bucket[5m])) by (le))`,
		},
		{name: "recording rule", expr: `storefront:http_requests:rate5m * 2`},
		{name: "unknown metric", expr: `rate(storefront_orders_total[5m])`, wantErr: `unknown metric "storefront_orders_total"`},
		{name: "syntax error", expr: `rate(storefront_remote_actions_total[5m]`, wantErr: "panel"},
		{name: "empty", expr: "  ", wantErr: "empty expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Expr("panel", tt.expr, known)
			if tt.wantErr == "" {
				assert.True(t, res.Ok(), "errors: %v", res.Errors)
				return
			}
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], tt.wantErr)
		})
	}
}

func TestMetricNames(t *testing.T) {
	t.Parallel()

	node, err := parser.ParseExpr(
		`sum(rate(a_total[5m])) / sum(rate(b_seconds_count[5m])) + sum(rate(a_total[1m]))`,
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a_total", "b_seconds"}, MetricNames(node))
}
