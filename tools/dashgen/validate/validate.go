// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metric names.
package validate

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"
)

// Result collects validation findings. Errors fail generation; warnings
// are reported only.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether validation found no errors.
func (r Result) Ok() bool { return len(r.Errors) == 0 }

func (r *Result) merge(o Result) {
	r.Errors = append(r.Errors, o.Errors...)
	r.Warnings = append(r.Warnings, o.Warnings...)
}

// panelJSON is the subset of the dashboard model the validator reads.
// Row panels carry their children in Panels.
type panelJSON struct {
	Title   string      `json:"title"`
	Type    string      `json:"type"`
	Panels  []panelJSON `json:"panels"`
	Targets []struct {
		RefID string `json:"refId"`
		Expr  string `json:"expr"`
	} `json:"targets"`
}

// Dashboard validates every query target of every panel in dash.
func Dashboard(dash dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	raw, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("marshaling dashboard: %v", err))
		return res
	}
	var model struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(raw, &model); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	for _, p := range model.Panels {
		res.merge(panel(p, known))
	}
	return res
}

func panel(p panelJSON, known map[string]bool) Result {
	var res Result
	if p.Type == "row" {
		for _, child := range p.Panels {
			res.merge(panel(child, known))
		}
		return res
	}
	if len(p.Targets) == 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("panel %q has no targets", p.Title))
	}
	for _, t := range p.Targets {
		res.merge(Expr(fmt.Sprintf("panel %q target %s", p.Title, t.RefID), t.Expr, known))
	}
	return res
}

// Expr parses a PromQL expression and checks its metric names against
// known. Histogram series suffixes resolve to their base metric.
func Expr(where, expr string, known map[string]bool) Result {
	var res Result
	if strings.TrimSpace(expr) == "" {
		res.Errors = append(res.Errors, where+": empty expression")
		return res
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s: %v", where, err))
		return res
	}

	for _, name := range MetricNames(node) {
		if !known[name] {
			res.Errors = append(res.Errors, fmt.Sprintf("%s: unknown metric %q", where, name))
		}
	}
	return res
}

// MetricNames returns the base metric names selected by node, in order of
// appearance.
func MetricNames(node parser.Node) []string {
	var names []string
	seen := make(map[string]bool)
	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		name := baseName(vs.Name)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		return nil
	})
	return names
}

func baseName(name string) string {
	for _, suffix := range []string{"_bucket", "_sum", "_count"} {
		if base, ok := strings.CutSuffix(name, suffix); ok {
			return base
		}
	}
	return name
}
