// Package analyze classifies free-text situation descriptions into intent,
// urgency, and a bounded confidence value. Classification is total: every
// string input, including the empty string, resolves to a valid result.
package analyze

import (
	"math"
	"strings"

	"github.com/okometz/vantage/internal/model"
)

// Analyzer scores text against the fixed intent and urgency pattern tables.
type Analyzer struct {
	intents   []intentPatternSet
	urgencies []urgencyPatternSet
}

// NewAnalyzer creates an analyzer over the built-in pattern tables.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		intents:   intentPatterns,
		urgencies: urgencyPatterns,
	}
}

// Analyze classifies a situation description. Pure and deterministic: same
// input, same result, no shared state across calls.
func (a *Analyzer) Analyze(text string) model.Classification {
	lower := strings.ToLower(Normalize(text))

	intent, matched := a.classifyIntent(lower)
	urgency := a.classifyUrgency(lower)
	confidence := a.confidence(intent, len(matched))

	return model.Classification{
		Intent:     intent,
		Urgency:    urgency,
		Confidence: confidence,
		Matched:    matched,
	}
}

// classifyIntent scores every category independently: each matching pattern
// adds one point, and categories are not mutually exclusive. The strictly
// highest score wins; ties fall to the earlier declaration. A zero maximum
// falls back to exploration.
func (a *Analyzer) classifyIntent(lower string) (model.Intent, []string) {
	best := model.IntentExploration
	bestScore := 0
	var bestMatched []string

	for _, set := range a.intents {
		var matched []string
		for _, p := range set.patterns {
			if strings.Contains(lower, p) {
				matched = append(matched, p)
			}
		}
		if len(matched) > bestScore {
			best = set.intent
			bestScore = len(matched)
			bestMatched = matched
		}
	}

	if bestScore == 0 {
		return model.IntentExploration, nil
	}
	return best, bestMatched
}

// classifyUrgency tests levels in priority order and returns the first level
// with any matching pattern. This is deliberately first-match, not scoring:
// a single critical signal outweighs any number of lesser ones.
func (a *Analyzer) classifyUrgency(lower string) model.Urgency {
	for _, set := range a.urgencies {
		for _, p := range set.patterns {
			if strings.Contains(lower, p) {
				return set.urgency
			}
		}
	}
	return model.UrgencyLow
}

// confidence derives a bounded value from the winning intent's match count:
// base + min(matches*0.08, 0.25), capped at 0.95. This is the pre-synthesis
// confidence; the synthesizer applies its own per-intent ceiling afterward.
func (a *Analyzer) confidence(intent model.Intent, matchCount int) float64 {
	base, ok := confidenceBase[intent]
	if !ok {
		base = confidenceBase[model.IntentExploration]
	}
	bonus := math.Min(float64(matchCount)*confidencePerMatch, confidenceBonusCap)
	return math.Min(base+bonus, confidenceCap)
}
