package model

import (
	"encoding/json"
	"time"
)

// ComponentType tags one of the ten renderable component kinds. The set is
// closed: the registry and the props union below are the only authorities.
type ComponentType string

const (
	TypeMetricCard          ComponentType = "MetricCard"
	TypeAlertPanel          ComponentType = "AlertPanel"
	TypeTimelineView        ComponentType = "TimelineView"
	TypeLogViewer           ComponentType = "LogViewer"
	TypeChartPanel          ComponentType = "ChartPanel"
	TypeChecklistCard       ComponentType = "ChecklistCard"
	TypeInsightList         ComponentType = "InsightList"
	TypeRecommendationStrip ComponentType = "RecommendationStrip"
	TypeGeoMap              ComponentType = "GeoMap"
	TypeStatusBanner        ComponentType = "StatusBanner"
)

// Props is the closed tagged union of per-type prop shapes. The composition
// core never interprets props beyond their presence; renderers receive them
// opaque and intact.
type Props interface {
	Component() ComponentType
}

// MetricProps drives a MetricCard: a single headline value with its trend.
type MetricProps struct {
	Label string  `json:"label"`
	Value string  `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Trend string  `json:"trend"` // up, down, flat
	Delta float64 `json:"delta,omitempty"`
}

func (MetricProps) Component() ComponentType { return TypeMetricCard }

// Alert is one row in an AlertPanel.
type Alert struct {
	Title    string `json:"title"`
	Severity string `json:"severity"` // info, warning, critical
	Source   string `json:"source,omitempty"`
	Age      string `json:"age,omitempty"`
}

// AlertProps drives an AlertPanel.
type AlertProps struct {
	Alerts []Alert `json:"alerts"`
}

func (AlertProps) Component() ComponentType { return TypeAlertPanel }

// TimelineEvent is one entry on a TimelineView.
type TimelineEvent struct {
	At    string `json:"at"` // display timestamp, producer-formatted
	Label string `json:"label"`
	Kind  string `json:"kind,omitempty"` // deploy, alert, change, note
}

// TimelineProps drives a TimelineView.
type TimelineProps struct {
	Events []TimelineEvent `json:"events"`
}

func (TimelineProps) Component() ComponentType { return TypeTimelineView }

// LogEntry is one line in a LogViewer.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Service   string `json:"service,omitempty"`
}

// LogProps drives a LogViewer.
type LogProps struct {
	Entries []LogEntry `json:"entries"`
}

func (LogProps) Component() ComponentType { return TypeLogViewer }

// ChartSeries is a named series of points for a ChartPanel.
type ChartSeries struct {
	Name   string    `json:"name"`
	Points []float64 `json:"points"`
}

// ChartProps drives a ChartPanel.
type ChartProps struct {
	Title  string        `json:"title"`
	Kind   string        `json:"kind,omitempty"` // line, bar, area
	Series []ChartSeries `json:"series"`
}

func (ChartProps) Component() ComponentType { return TypeChartPanel }

// ChecklistItem is one step on a ChecklistCard.
type ChecklistItem struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

// ChecklistProps drives a ChecklistCard.
type ChecklistProps struct {
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

func (ChecklistProps) Component() ComponentType { return TypeChecklistCard }

// Insight is one observation on an InsightList.
type Insight struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence,omitempty"`
}

// InsightProps drives an InsightList.
type InsightProps struct {
	Insights []Insight `json:"insights"`
}

func (InsightProps) Component() ComponentType { return TypeInsightList }

// Recommendation is one suggested action on a RecommendationStrip.
type Recommendation struct {
	Action string `json:"action"`
	Why    string `json:"why,omitempty"`
}

// RecommendationProps drives a RecommendationStrip.
type RecommendationProps struct {
	Recommendations []Recommendation `json:"recommendations"`
}

func (RecommendationProps) Component() ComponentType { return TypeRecommendationStrip }

// GeoPoint is one marker on a GeoMap.
type GeoPoint struct {
	Label  string  `json:"label"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Status string  `json:"status,omitempty"` // ok, degraded, down
}

// GeoProps drives a GeoMap.
type GeoProps struct {
	Points []GeoPoint `json:"points"`
}

func (GeoProps) Component() ComponentType { return TypeGeoMap }

// BannerProps drives a StatusBanner.
type BannerProps struct {
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Tone      string    `json:"tone"` // ok, info, warning, critical
	Timestamp time.Time `json:"timestamp,omitzero"`
}

func (BannerProps) Component() ComponentType { return TypeStatusBanner }

// propsDecoders dispatches raw JSON props to the concrete shape for a tag.
// There is exactly one decoder per component type; an absent entry means an
// unknown tag, handled by the skip-on-unknown policy downstream.
var propsDecoders = map[ComponentType]func(json.RawMessage) (Props, error){
	TypeMetricCard:          decodeAs[MetricProps],
	TypeAlertPanel:          decodeAs[AlertProps],
	TypeTimelineView:        decodeAs[TimelineProps],
	TypeLogViewer:           decodeAs[LogProps],
	TypeChartPanel:          decodeAs[ChartProps],
	TypeChecklistCard:       decodeAs[ChecklistProps],
	TypeInsightList:         decodeAs[InsightProps],
	TypeRecommendationStrip: decodeAs[RecommendationProps],
	TypeGeoMap:              decodeAs[GeoProps],
	TypeStatusBanner:        decodeAs[BannerProps],
}

func decodeAs[T Props](raw json.RawMessage) (Props, error) {
	var p T
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// ComponentTypes returns the closed type set in declaration order.
func ComponentTypes() []ComponentType {
	return []ComponentType{
		TypeMetricCard,
		TypeAlertPanel,
		TypeTimelineView,
		TypeLogViewer,
		TypeChartPanel,
		TypeChecklistCard,
		TypeInsightList,
		TypeRecommendationStrip,
		TypeGeoMap,
		TypeStatusBanner,
	}
}
