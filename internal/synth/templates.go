package synth

import (
	"time"

	"github.com/okometz/vantage/internal/model"
)

// Illustrative domain content. All telemetry below is mock data shaped like
// the real thing; there is no backend ingestion in this core.

func incidentTemplate(confidence float64) *model.CompositionDocument {
	return &model.CompositionDocument{
		Layout: layoutByIntent[model.IntentIncident],
		Components: []model.ComponentEntry{
			{
				ID:         "incident-banner",
				Type:       model.TypeStatusBanner,
				Priority:   1,
				Visibility: model.VisibilityVisible,
				Props: model.BannerProps{
					Title:     "Active incident",
					Message:   "Elevated error rate on the authentication path. 12% of login attempts failing.",
					Tone:      "critical",
					Timestamp: time.Date(2026, 3, 14, 9, 41, 0, 0, time.UTC),
				},
			},
			{
				ID:         "incident-alerts",
				Type:       model.TypeAlertPanel,
				Priority:   1,
				Visibility: model.VisibilityVisible,
				Props: model.AlertProps{
					Alerts: []model.Alert{
						{Title: "auth-service error rate above 10%", Severity: "critical", Source: "prometheus", Age: "8m"},
						{Title: "login p99 latency above 4s", Severity: "critical", Source: "prometheus", Age: "6m"},
						{Title: "session-store connection pool saturated", Severity: "warning", Source: "redis-exporter", Age: "11m"},
					},
				},
			},
			{
				ID:         "incident-error-rate",
				Type:       model.TypeMetricCard,
				Priority:   2,
				Visibility: model.VisibilityVisible,
				Props: model.MetricProps{
					Label: "Login error rate",
					Value: "12.4",
					Unit:  "%",
					Trend: "up",
					Delta: 11.1,
				},
			},
			{
				ID:         "incident-latency",
				Type:       model.TypeMetricCard,
				Priority:   2,
				Visibility: model.VisibilityVisible,
				Props: model.MetricProps{
					Label: "Auth p99 latency",
					Value: "4300",
					Unit:  "ms",
					Trend: "up",
					Delta: 3650,
				},
			},
			{
				ID:         "incident-logs",
				Type:       model.TypeLogViewer,
				Priority:   3,
				Visibility: model.VisibilityVisible,
				Props: model.LogProps{
					Entries: []model.LogEntry{
						{Timestamp: "09:39:12", Level: "ERROR", Service: "auth-service", Message: "token validation timeout after 3000ms (upstream: session-store)"},
						{Timestamp: "09:39:14", Level: "ERROR", Service: "auth-service", Message: "token validation timeout after 3000ms (upstream: session-store)"},
						{Timestamp: "09:39:15", Level: "WARN", Service: "session-store", Message: "connection pool exhausted, 240 waiters"},
						{Timestamp: "09:40:02", Level: "ERROR", Service: "api-gateway", Message: "upstream auth-service returned 503"},
					},
				},
			},
			{
				ID:         "incident-timeline",
				Type:       model.TypeTimelineView,
				Priority:   4,
				Visibility: model.VisibilityVisible,
				Props: model.TimelineProps{
					Events: []model.TimelineEvent{
						{At: "09:12", Label: "session-store v2.14.0 deployed", Kind: "deploy"},
						{At: "09:28", Label: "connection pool saturation alert", Kind: "alert"},
						{At: "09:33", Label: "login error rate crossed 5%", Kind: "alert"},
						{At: "09:41", Label: "incident opened", Kind: "note"},
					},
				},
			},
		},
		Confidence:  confidence,
		Explanation: "The description reads like an active incident. Alerting and error telemetry are shown first; the deploy timeline is included because the error onset follows a deploy.",
		Reasoning: model.ReasoningBlock{
			Intent:  model.IntentIncident,
			Urgency: model.UrgencyCritical,
			UncertaintyAreas: []string{
				"Blast radius is inferred from error rate, not from affected-user counts.",
				"The session-store deploy is correlated with onset but not confirmed as the cause.",
			},
			HiddenComponents: []model.HiddenComponent{
				{Type: model.TypeChartPanel, Reason: "Trend charts are secondary while an incident is active; raw alerts and logs come first."},
				{Type: model.TypeGeoMap, Reason: "No geographic signal in the description; regional view would add noise."},
				{Type: model.TypeRecommendationStrip, Reason: "Remediation suggestions are withheld until a cause hypothesis exists."},
			},
		},
	}
}

func overviewTemplate(confidence float64) *model.CompositionDocument {
	return &model.CompositionDocument{
		Layout: layoutByIntent[model.IntentOverview],
		Components: []model.ComponentEntry{
			{
				ID:         "overview-banner",
				Type:       model.TypeStatusBanner,
				Priority:   1,
				Visibility: model.VisibilityVisible,
				Props: model.BannerProps{
					Title:   "All systems nominal",
					Message: "41 of 42 services healthy. One degradation in the reporting pipeline, not customer-facing.",
					Tone:    "ok",
				},
			},
			{
				ID:         "overview-uptime",
				Type:       model.TypeMetricCard,
				Priority:   2,
				Visibility: model.VisibilityVisible,
				Props: model.MetricProps{
					Label: "30-day availability",
					Value: "99.97",
					Unit:  "%",
					Trend: "flat",
				},
			},
			{
				ID:         "overview-latency",
				Type:       model.TypeMetricCard,
				Priority:   2,
				Visibility: model.VisibilityVisible,
				Props: model.MetricProps{
					Label: "API p95 latency",
					Value: "184",
					Unit:  "ms",
					Trend: "down",
					Delta: -12,
				},
			},
			{
				ID:         "overview-deploys",
				Type:       model.TypeMetricCard,
				Priority:   2,
				Visibility: model.VisibilityVisible,
				Props: model.MetricProps{
					Label: "Deploys today",
					Value: "17",
					Trend: "up",
					Delta: 4,
				},
			},
			{
				ID:         "overview-traffic",
				Type:       model.TypeChartPanel,
				Priority:   3,
				Visibility: model.VisibilityVisible,
				Props: model.ChartProps{
					Title: "Requests per second, last 6h",
					Kind:  "area",
					Series: []model.ChartSeries{
						{Name: "api", Points: []float64{1180, 1240, 1310, 1290, 1405, 1392}},
						{Name: "web", Points: []float64{640, 655, 700, 688, 720, 713}},
					},
				},
			},
			{
				ID:         "overview-insights",
				Type:       model.TypeInsightList,
				Priority:   4,
				Visibility: model.VisibilityVisible,
				Props: model.InsightProps{
					Insights: []model.Insight{
						{Text: "Reporting pipeline lag has grown 3x since Monday; still within SLO.", Confidence: 0.8},
						{Text: "Deploy frequency is up 30% week over week with no change failure increase.", Confidence: 0.7},
					},
				},
			},
		},
		Confidence:  confidence,
		Explanation: "A broad status request: headline health, the key service metrics, and traffic shape, with notable drifts surfaced as insights.",
		Reasoning: model.ReasoningBlock{
			Intent:  model.IntentOverview,
			Urgency: model.UrgencyLow,
			UncertaintyAreas: []string{
				"\"Today\" is interpreted as the current UTC day.",
			},
			HiddenComponents: []model.HiddenComponent{
				{Type: model.TypeLogViewer, Reason: "Raw logs are too granular for a high-level overview."},
				{Type: model.TypeChecklistCard, Reason: "No procedure is in progress."},
			},
		},
	}
}

func investigationTemplate(confidence float64) *model.CompositionDocument {
	return &model.CompositionDocument{
		Layout: layoutByIntent[model.IntentInvestigation],
		Components: []model.ComponentEntry{
			{
				ID:         "investigation-logs",
				Type:       model.TypeLogViewer,
				Priority:   1,
				Visibility: model.VisibilityVisible,
				Props: model.LogProps{
					Entries: []model.LogEntry{
						{Timestamp: "14:02:51", Level: "WARN", Service: "checkout", Message: "payment provider responded in 2840ms (budget 800ms)"},
						{Timestamp: "14:05:09", Level: "WARN", Service: "checkout", Message: "payment provider responded in 3120ms (budget 800ms)"},
						{Timestamp: "14:07:33", Level: "INFO", Service: "checkout", Message: "retry succeeded on second attempt"},
						{Timestamp: "14:11:40", Level: "WARN", Service: "inventory", Message: "cache hit ratio dropped below 70%"},
					},
				},
			},
			{
				ID:         "investigation-anomaly",
				Type:       model.TypeChartPanel,
				Priority:   2,
				Visibility: model.VisibilityVisible,
				Props: model.ChartProps{
					Title: "Checkout latency vs. baseline",
					Kind:  "line",
					Series: []model.ChartSeries{
						{Name: "p95 today", Points: []float64{410, 420, 415, 980, 1340, 1280}},
						{Name: "p95 baseline", Points: []float64{400, 405, 410, 415, 420, 418}},
					},
				},
			},
			{
				ID:         "investigation-timeline",
				Type:       model.TypeTimelineView,
				Priority:   3,
				Visibility: model.VisibilityVisible,
				Props: model.TimelineProps{
					Events: []model.TimelineEvent{
						{At: "13:45", Label: "inventory cache node recycled", Kind: "change"},
						{At: "13:58", Label: "checkout latency departs baseline", Kind: "note"},
						{At: "14:11", Label: "cache hit ratio alert", Kind: "alert"},
					},
				},
			},
			{
				ID:         "investigation-hypotheses",
				Type:       model.TypeInsightList,
				Priority:   4,
				Visibility: model.VisibilityVisible,
				Props: model.InsightProps{
					Insights: []model.Insight{
						{Text: "Latency departure begins 13 minutes after the cache node recycle.", Confidence: 0.6},
						{Text: "Payment provider slowness may be independent; its degradation predates the recycle.", Confidence: 0.4},
					},
				},
			},
			{
				ID:                  "investigation-geo",
				Type:                model.TypeGeoMap,
				Priority:            5,
				Visibility:          model.VisibilityConditional,
				VisibilityCondition: "anomaly localizes to a region",
				Props: model.GeoProps{
					Points: []model.GeoPoint{
						{Label: "us-east-1", Lat: 38.9, Lon: -77.4, Status: "ok"},
						{Label: "eu-west-1", Lat: 53.3, Lon: -6.2, Status: "degraded"},
					},
				},
			},
		},
		Confidence:  confidence,
		Explanation: "An open-ended investigation: raw signals on the left, correlation material on the right. Hypotheses are listed with low confidence on purpose.",
		Reasoning: model.ReasoningBlock{
			Intent:  model.IntentInvestigation,
			Urgency: model.UrgencyMedium,
			UncertaintyAreas: []string{
				"The description names no service; the slices shown are the ones with recent anomalies.",
				"Correlation between the cache recycle and the latency departure is unconfirmed.",
				"The regional view stays out until the anomaly localizes.",
			},
			HiddenComponents: []model.HiddenComponent{
				{Type: model.TypeStatusBanner, Reason: "A verdict banner would overstate what is known mid-investigation."},
				{Type: model.TypeRecommendationStrip, Reason: "Suggesting actions before a cause hypothesis holds would mislead."},
			},
		},
	}
}

func escalationTemplate(confidence float64) *model.CompositionDocument {
	return &model.CompositionDocument{
		Layout: layoutByIntent[model.IntentEscalation],
		Components: []model.ComponentEntry{
			{
				ID:         "escalation-banner",
				Type:       model.TypeStatusBanner,
				Priority:   1,
				Visibility: model.VisibilityVisible,
				Props: model.BannerProps{
					Title:   "Escalation in progress",
					Message: "Situation exceeds on-call scope. Follow the runbook below and bring in the service owner.",
					Tone:    "warning",
				},
			},
			{
				ID:         "escalation-recommendations",
				Type:       model.TypeRecommendationStrip,
				Priority:   1,
				Visibility: model.VisibilityVisible,
				Props: model.RecommendationProps{
					Recommendations: []model.Recommendation{
						{Action: "Page the payments service owner", Why: "Error budget burn rate exceeds the on-call decision threshold."},
						{Action: "Open a severity-2 incident channel", Why: "Two teams are already involved; coordination needs a single place."},
						{Action: "Freeze non-essential deploys", Why: "Reduces variables while the situation is unstable."},
					},
				},
			},
			{
				ID:         "escalation-checklist",
				Type:       model.TypeChecklistCard,
				Priority:   2,
				Visibility: model.VisibilityVisible,
				Props: model.ChecklistProps{
					Title: "Escalation runbook",
					Items: []model.ChecklistItem{
						{Label: "Confirm customer impact and scope", Done: true},
						{Label: "Notify the service owner", Done: false},
						{Label: "Assign an incident commander", Done: false},
						{Label: "Post a status-page update", Done: false},
					},
				},
			},
			{
				ID:         "escalation-alerts",
				Type:       model.TypeAlertPanel,
				Priority:   3,
				Visibility: model.VisibilityVisible,
				Props: model.AlertProps{
					Alerts: []model.Alert{
						{Title: "payments error budget 80% consumed", Severity: "warning", Source: "slo-monitor", Age: "22m"},
						{Title: "refund queue depth growing", Severity: "warning", Source: "queue-monitor", Age: "15m"},
					},
				},
			},
			{
				ID:         "escalation-timeline",
				Type:       model.TypeTimelineView,
				Priority:   4,
				Visibility: model.VisibilityVisible,
				Props: model.TimelineProps{
					Events: []model.TimelineEvent{
						{At: "11:02", Label: "first refund failures observed", Kind: "alert"},
						{At: "11:30", Label: "on-call mitigation attempt (retry tuning)", Kind: "change"},
						{At: "11:55", Label: "mitigation ineffective, burn rate unchanged", Kind: "note"},
					},
				},
			},
		},
		Confidence:  confidence,
		Explanation: "A decision-support composition: what to do next comes before diagnostic detail, stacked in reading order.",
		Reasoning: model.ReasoningBlock{
			Intent:  model.IntentEscalation,
			Urgency: model.UrgencyHigh,
			UncertaintyAreas: []string{
				"Escalation thresholds assume the default on-call policy; local overrides are not visible here.",
			},
			HiddenComponents: []model.HiddenComponent{
				{Type: model.TypeLogViewer, Reason: "Raw logs distract from the escalation decision; they remain one click away."},
				{Type: model.TypeChartPanel, Reason: "Trend detail is below decision granularity right now."},
				{Type: model.TypeGeoMap, Reason: "Impact is not regional."},
			},
		},
	}
}

func explorationTemplate(confidence float64) *model.CompositionDocument {
	return &model.CompositionDocument{
		Layout: layoutByIntent[model.IntentExploration],
		Components: []model.ComponentEntry{
			{
				ID:         "exploration-insights",
				Type:       model.TypeInsightList,
				Priority:   1,
				Visibility: model.VisibilityVisible,
				Props: model.InsightProps{
					Insights: []model.Insight{
						{Text: "Weekend traffic has shifted two hours later over the past month.", Confidence: 0.55},
						{Text: "Batch job runtime grows roughly linearly with catalog size; projected to exceed its window in ~6 weeks.", Confidence: 0.5},
						{Text: "Cache hit ratio is inversely correlated with deploy frequency on the search service.", Confidence: 0.35},
					},
				},
			},
			{
				ID:         "exploration-trends",
				Type:       model.TypeChartPanel,
				Priority:   2,
				Visibility: model.VisibilityVisible,
				Props: model.ChartProps{
					Title: "Weekly active sessions, 8 weeks",
					Kind:  "bar",
					Series: []model.ChartSeries{
						{Name: "sessions", Points: []float64{48200, 49100, 51400, 50800, 53900, 55200, 54100, 57300}},
					},
				},
			},
			{
				ID:         "exploration-cost",
				Type:       model.TypeMetricCard,
				Priority:   3,
				Visibility: model.VisibilityVisible,
				Props: model.MetricProps{
					Label: "Infra cost per 1k requests",
					Value: "0.84",
					Unit:  "USD",
					Trend: "down",
					Delta: -0.06,
				},
			},
			{
				ID:         "exploration-regions",
				Type:       model.TypeGeoMap,
				Priority:   4,
				Visibility: model.VisibilityVisible,
				Props: model.GeoProps{
					Points: []model.GeoPoint{
						{Label: "us-east-1", Lat: 38.9, Lon: -77.4, Status: "ok"},
						{Label: "us-west-2", Lat: 45.8, Lon: -119.7, Status: "ok"},
						{Label: "eu-west-1", Lat: 53.3, Lon: -6.2, Status: "ok"},
						{Label: "ap-southeast-1", Lat: 1.3, Lon: 103.8, Status: "ok"},
					},
				},
			},
			{
				ID:         "exploration-ideas",
				Type:       model.TypeRecommendationStrip,
				Priority:   5,
				Visibility: model.VisibilityVisible,
				Props: model.RecommendationProps{
					Recommendations: []model.Recommendation{
						{Action: "Compare search latency across regions", Why: "Regional spread has widened in the last two weeks."},
						{Action: "Look at the batch window trend", Why: "Projection suggests it becomes a problem within two months."},
					},
				},
			},
		},
		Confidence:  confidence,
		Explanation: "Nothing in the description demands attention, so the composition invites browsing: loosely held observations, long-range trends, and places to dig.",
		Reasoning: model.ReasoningBlock{
			Intent:  model.IntentExploration,
			Urgency: model.UrgencyLow,
			UncertaintyAreas: []string{
				"No concrete question was detected; shown material is a sampler, not an answer.",
				"Insight confidences are deliberately low; they are starting points.",
			},
			HiddenComponents: []model.HiddenComponent{
				{Type: model.TypeAlertPanel, Reason: "No active alerts are relevant to an exploratory session."},
				{Type: model.TypeStatusBanner, Reason: "There is no headline state to declare."},
				{Type: model.TypeChecklistCard, Reason: "No procedure applies."},
			},
		},
	}
}
