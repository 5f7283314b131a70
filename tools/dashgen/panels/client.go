package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/stat"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// ActionRate returns a timeseries panel showing storefront calls per second
// split by outcome.
func ActionRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Remote Actions by Outcome").
		Description("Calls to the storefront per second: ok, app_failure, transport_failure, malformed").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`storefront:remote_actions:rate5m`, "{{outcome}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ActionLatency returns a timeseries panel showing the p95 latency of each
// storefront action.
func ActionLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Remote Action Latency (p95)").
		Description("95th percentile storefront call duration by action").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(Quantile(0.95, "storefront_remote_action_duration_seconds", "action"), "{{action}}", "A")).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenYellowRed(1, 5)).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// BreakerState returns a stat panel showing the circuit breaker state.
func BreakerState() *stat.PanelBuilder {
	return stat.NewPanelBuilder().
		Title("Circuit Breaker").
		Description("Storefront circuit breaker (0 = closed, 1 = half-open, 2 = open)").
		Datasource(DSRef()).
		Height(StatHeight).
		Span(StatWidth).
		WithTarget(PromQuery(`max(storefront_circuit_breaker_state{job="storefront-sync"})`, "", "A")).
		Thresholds(ThresholdsGreenYellowRed(1, 2)).
		ColorScheme(ColorSchemeThresholds()).
		ColorMode(common.BigValueColorModeBackground).
		GraphMode(common.BigValueGraphModeNone).
		TextMode(common.BigValueTextModeValue)
}
