package analyze

import "github.com/okometz/vantage/internal/model"

// intentPatterns holds the per-intent pattern lists in declaration order.
// Declaration order is the tie-break order: when two intents reach the same
// score, the earlier one wins. Matching is case-insensitive substring; every
// matching pattern in a category adds one point.
type intentPatternSet struct {
	intent   model.Intent
	patterns []string
}

var intentPatterns = []intentPatternSet{
	{model.IntentIncident, []string{
		"incident",
		"outage",
		"down",
		"crash",
		"broken",
		"not working",
		"fail",
		"error",
		"report",
		"unable to",
		"login",
		"timeout",
		"5xx",
		"unavailable",
	}},
	{model.IntentOverview, []string{
		"overview",
		"summary",
		"summarize",
		"status",
		"health",
		"dashboard",
		"big picture",
		"high-level",
		"high level",
		"how are things",
		"state of",
	}},
	{model.IntentInvestigation, []string{
		"investigate",
		"investigation",
		"why",
		"root cause",
		"dig into",
		"debug",
		"diagnose",
		"look into",
		"feels off",
		"something is off",
		"strange",
		"weird",
		"anomal",
		"what happened",
		"correlat",
	}},
	{model.IntentEscalation, []string{
		"escalat",
		"what should i do",
		"what do i do",
		"who should",
		"need help",
		"next step",
		"page the",
		"incident commander",
		"do now",
		"handoff",
	}},
	{model.IntentExploration, []string{
		"explore",
		"curious",
		"wonder",
		"what if",
		"trend",
		"history",
		"compare",
		"pattern",
		"learn",
		"show me around",
	}},
}

// urgencyPatterns holds the per-level pattern lists in priority order.
// Unlike intent scoring, urgency uses first-match semantics: levels are
// tested top-down and the first level with any matching pattern wins.
type urgencyPatternSet struct {
	urgency  model.Urgency
	patterns []string
}

var urgencyPatterns = []urgencyPatternSet{
	{model.UrgencyCritical, []string{
		"critical",
		"emergency",
		"sev1",
		"sev 1",
		"all users",
		"everyone",
		"data loss",
		"completely down",
		"complete outage",
		"production down",
		"on fire",
	}},
	{model.UrgencyHigh, []string{
		"urgent",
		"asap",
		"immediately",
		"right now",
		"fail",
		"outage",
		"down",
		"broken",
		"error",
		"not working",
		"escalat",
		"spike",
		"spiking",
	}},
	{model.UrgencyMedium, []string{
		"slow",
		"degraded",
		"intermittent",
		"sometimes",
		"delay",
		"lagging",
		"elevated",
		"occasionally",
	}},
	{model.UrgencyLow, []string{
		"curious",
		"wondering",
		"no rush",
		"whenever",
		"at some point",
		"eventually",
	}},
}

// confidenceBase is the per-intent starting confidence. Investigation and
// exploration start lower: a pattern hit there says less about what the
// operator actually needs to see.
var confidenceBase = map[model.Intent]float64{
	model.IntentIncident:      0.70,
	model.IntentOverview:      0.70,
	model.IntentInvestigation: 0.45,
	model.IntentEscalation:    0.70,
	model.IntentExploration:   0.60,
}

const (
	confidencePerMatch = 0.08
	confidenceBonusCap = 0.25
	confidenceCap      = 0.95
)
