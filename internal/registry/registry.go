// Package registry holds the closed mapping from component type tags to
// renderable capability descriptors. It is not a plugin system: the table is
// fixed at compile time and resolved once, and unknown tags resolve to an
// explicit absence consumed by the composer's skip-on-unknown policy.
package registry

import "github.com/okometz/vantage/internal/model"

// Span is the default width class a component occupies in a grid row.
type Span string

const (
	SpanFull    Span = "full"
	SpanHalf    Span = "half"
	SpanQuarter Span = "quarter"
)

// Capability describes what the rendering layer can do with a component type.
type Capability struct {
	Title       string // display name for listings
	Span        Span   // default grid width class
	Description string // one-line purpose, shown by `vantage components`
}

var capabilities = map[model.ComponentType]Capability{
	model.TypeMetricCard: {
		Title:       "Metric Card",
		Span:        SpanQuarter,
		Description: "single headline metric with trend direction",
	},
	model.TypeAlertPanel: {
		Title:       "Alert Panel",
		Span:        SpanHalf,
		Description: "active alerts ordered by severity",
	},
	model.TypeTimelineView: {
		Title:       "Timeline View",
		Span:        SpanHalf,
		Description: "chronological events: deploys, alerts, changes",
	},
	model.TypeLogViewer: {
		Title:       "Log Viewer",
		Span:        SpanHalf,
		Description: "recent log entries with level and service",
	},
	model.TypeChartPanel: {
		Title:       "Chart Panel",
		Span:        SpanHalf,
		Description: "one or more series plotted over time",
	},
	model.TypeChecklistCard: {
		Title:       "Checklist Card",
		Span:        SpanHalf,
		Description: "step-by-step procedure with completion state",
	},
	model.TypeInsightList: {
		Title:       "Insight List",
		Span:        SpanHalf,
		Description: "observations ranked by confidence",
	},
	model.TypeRecommendationStrip: {
		Title:       "Recommendation Strip",
		Span:        SpanFull,
		Description: "suggested next actions with rationale",
	},
	model.TypeGeoMap: {
		Title:       "Geo Map",
		Span:        SpanHalf,
		Description: "regional status markers on a map",
	},
	model.TypeStatusBanner: {
		Title:       "Status Banner",
		Span:        SpanFull,
		Description: "full-width headline state of the system",
	},
}

// Lookup resolves a component type to its capability. The boolean is false
// for unknown tags; callers must treat that as "skip", never as an error.
func Lookup(t model.ComponentType) (Capability, bool) {
	c, ok := capabilities[t]
	return c, ok
}

// Known reports whether the type is part of the closed set.
func Known(t model.ComponentType) bool {
	_, ok := capabilities[t]
	return ok
}

// Types returns the closed type set in declaration order.
func Types() []model.ComponentType {
	return model.ComponentTypes()
}
