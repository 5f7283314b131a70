// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/storefront-sync/tools/dashgen/panels"
)

// BuildOverview constructs the storefront overview dashboard with all
// metric rows.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("Storefront Overview").
		Uid("storefront-overview").
		Tags([]string{"storefront", "storefront-sync"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	// Row 1: Overview.
	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.CSRFRejections()).
		WithPanel(panels.UptimeStat()))

	// Row 2: HTTP.
	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	// Row 3: Remote actions.
	b.WithRow(dashboard.NewRowBuilder("Remote Actions").
		WithPanel(panels.ActionRate()).
		WithPanel(panels.ActionLatency()).
		WithPanel(panels.BreakerState()))

	// Row 4: Page.
	b.WithRow(dashboard.NewRowBuilder("Page").
		WithPanel(panels.FilterActivity()).
		WithPanel(panels.BadgeRefreshes()).
		WithPanel(panels.ToastsBySeverity()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
