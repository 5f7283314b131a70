package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// FilterActivity returns a timeseries panel comparing issued, superseded,
// and failed catalog filter requests.
func FilterActivity() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Catalog Filtering").
		Description("Filter requests issued, responses dropped as stale, and failed loads").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(`rate(storefront_filter_requests_total{job="storefront-sync"}[5m])`, "issued", "A")).
		WithTarget(PromQuery(`rate(storefront_filter_responses_discarded_total{job="storefront-sync"}[5m])`, "stale", "B")).
		WithTarget(PromQuery(`storefront:filter_failures:rate5m`, "failed", "C")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// BadgeRefreshes returns a timeseries panel showing badge refreshes by
// badge and outcome.
func BadgeRefreshes() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Badge Refreshes").
		Description("Cart and favorites badge refreshes by outcome").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(storefront_badge_refresh_total{job="storefront-sync"}[5m])) by (badge, outcome)`,
			"{{badge}} {{outcome}}", "A",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// ToastsBySeverity returns a timeseries panel showing toasts shown per
// second by severity.
func ToastsBySeverity() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Toasts by Severity").
		Description("Notifications shown to the shopper").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(TSWidth).
		WithTarget(PromQuery(
			`sum(rate(storefront_toasts_shown_total{job="storefront-sync"}[5m])) by (severity)`,
			"{{severity}}", "A",
		)).
		Unit("ops").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
