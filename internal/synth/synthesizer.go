// Package synth maps a classification to a complete composition document.
// Each intent owns exactly one pre-defined template; the tables below are
// data, not conditional logic, so producers and consumers stay decoupled.
package synth

import (
	"math"

	"github.com/okometz/vantage/internal/model"
)

// layoutByIntent is the closed intent-to-layout table.
var layoutByIntent = map[model.Intent]model.Layout{
	model.IntentIncident:      model.LayoutGrid,
	model.IntentOverview:      model.LayoutGrid,
	model.IntentInvestigation: model.LayoutSplit,
	model.IntentEscalation:    model.LayoutStack,
	model.IntentExploration:   model.LayoutGrid,
}

// confidenceCeiling is the per-intent clamp applied to the analyzer's
// confidence before it is embedded in the document. Investigation and
// exploration compositions must never present as certain.
var confidenceCeiling = map[model.Intent]float64{
	model.IntentIncident:      1.0,
	model.IntentOverview:      1.0,
	model.IntentInvestigation: 0.54,
	model.IntentEscalation:    1.0,
	model.IntentExploration:   0.65,
}

// templates maps each intent to its document builder. Builders return a
// freshly constructed document per call; nothing is shared between calls.
var templates = map[model.Intent]func(confidence float64) *model.CompositionDocument{
	model.IntentIncident:      incidentTemplate,
	model.IntentOverview:      overviewTemplate,
	model.IntentInvestigation: investigationTemplate,
	model.IntentEscalation:    escalationTemplate,
	model.IntentExploration:   explorationTemplate,
}

// Synthesizer turns a classification into a composition document.
type Synthesizer struct{}

// NewSynthesizer creates a new synthesizer.
func NewSynthesizer() *Synthesizer {
	return &Synthesizer{}
}

// Synthesize builds the document for an intent. The analyzer's urgency is
// accepted but not surfaced: templates are intent-keyed and each template's
// embedded urgency is authoritative. Unknown intents fall back to the
// exploration template; synthesis never fails.
func (s *Synthesizer) Synthesize(intent model.Intent, urgency model.Urgency, confidence float64) *model.CompositionDocument {
	_ = urgency // informational only; the template owns the surfaced urgency

	build, ok := templates[intent]
	if !ok {
		intent = model.IntentExploration
		build = templates[intent]
	}

	return build(clampConfidence(intent, confidence))
}

// clampConfidence applies the per-intent ceiling and the document-wide [0,1]
// invariant.
func clampConfidence(intent model.Intent, confidence float64) float64 {
	ceiling, ok := confidenceCeiling[intent]
	if !ok {
		ceiling = 1.0
	}
	confidence = math.Min(confidence, ceiling)
	return math.Max(0, math.Min(confidence, 1))
}

// LayoutFor exposes the intent-to-layout table for callers that need it
// without building a full document.
func LayoutFor(intent model.Intent) model.Layout {
	if l, ok := layoutByIntent[intent]; ok {
		return l
	}
	return layoutByIntent[model.IntentExploration]
}
