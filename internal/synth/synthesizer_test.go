package synth

import (
	"testing"

	"github.com/okometz/vantage/internal/model"
	"github.com/okometz/vantage/internal/registry"
)

func TestSynthesizer_Synthesize_LayoutTable(t *testing.T) {
	s := NewSynthesizer()

	cases := []struct {
		intent model.Intent
		layout model.Layout
	}{
		{model.IntentIncident, model.LayoutGrid},
		{model.IntentOverview, model.LayoutGrid},
		{model.IntentInvestigation, model.LayoutSplit},
		{model.IntentEscalation, model.LayoutStack},
		{model.IntentExploration, model.LayoutGrid},
	}

	for _, tc := range cases {
		doc := s.Synthesize(tc.intent, model.UrgencyLow, 0.7)
		if doc.Layout != tc.layout {
			t.Errorf("Intent %s: expected layout %s, got %s", tc.intent, tc.layout, doc.Layout)
		}
	}
}

func TestSynthesizer_Synthesize_ConfidenceCeilings(t *testing.T) {
	s := NewSynthesizer()

	// Investigation and exploration are clamped; the rest pass through.
	cases := []struct {
		intent model.Intent
		in     float64
		want   float64
	}{
		{model.IntentInvestigation, 0.93, 0.54},
		{model.IntentInvestigation, 0.40, 0.40},
		{model.IntentExploration, 0.95, 0.65},
		{model.IntentExploration, 0.60, 0.60},
		{model.IntentIncident, 0.94, 0.94},
		{model.IntentOverview, 0.88, 0.88},
		{model.IntentEscalation, 0.86, 0.86},
	}

	for _, tc := range cases {
		doc := s.Synthesize(tc.intent, model.UrgencyLow, tc.in)
		if doc.Confidence != tc.want {
			t.Errorf("Intent %s with confidence %v: expected %v, got %v", tc.intent, tc.in, tc.want, doc.Confidence)
		}
	}
}

func TestSynthesizer_Synthesize_UnknownIntentFallsBack(t *testing.T) {
	s := NewSynthesizer()

	doc := s.Synthesize(model.Intent("prophecy"), model.UrgencyLow, 0.9)

	if doc.Reasoning.Intent != model.IntentExploration {
		t.Errorf("Expected exploration fallback, got %s", doc.Reasoning.Intent)
	}
	// The exploration ceiling applies to the fallback too.
	if doc.Confidence != 0.65 {
		t.Errorf("Expected confidence clamped to 0.65, got %v", doc.Confidence)
	}
}

func TestSynthesizer_Synthesize_TemplateUrgencyIsAuthoritative(t *testing.T) {
	s := NewSynthesizer()

	// The analyzer's urgency is accepted but the template's own label is
	// what gets surfaced.
	doc := s.Synthesize(model.IntentIncident, model.UrgencyLow, 0.8)

	if doc.Reasoning.Urgency != model.UrgencyCritical {
		t.Errorf("Expected the incident template's critical urgency, got %s", doc.Reasoning.Urgency)
	}
}

func TestSynthesizer_Synthesize_ConfidenceWithinBounds(t *testing.T) {
	s := NewSynthesizer()

	for _, in := range []float64{-1, 0, 0.5, 0.95, 2} {
		for intent := range templates {
			doc := s.Synthesize(intent, model.UrgencyLow, in)
			if doc.Confidence < 0 || doc.Confidence > 1 {
				t.Errorf("Intent %s with input %v: confidence %v outside [0,1]", intent, in, doc.Confidence)
			}
		}
	}
}

func TestSynthesizer_Synthesize_TemplateIntegrity(t *testing.T) {
	s := NewSynthesizer()

	for intent := range templates {
		doc := s.Synthesize(intent, model.UrgencyLow, 0.7)

		if len(doc.Components) == 0 {
			t.Errorf("Intent %s: template has no components", intent)
		}
		if doc.Explanation == "" {
			t.Errorf("Intent %s: empty explanation", intent)
		}
		if len(doc.Reasoning.UncertaintyAreas) == 0 {
			t.Errorf("Intent %s: no uncertainty areas", intent)
		}
		if len(doc.Reasoning.HiddenComponents) == 0 {
			t.Errorf("Intent %s: no hidden-component reasoning", intent)
		}
		if doc.Reasoning.Intent != intent {
			t.Errorf("Intent %s: reasoning says %s", intent, doc.Reasoning.Intent)
		}

		seen := make(map[string]bool)
		for _, c := range doc.Components {
			if c.ID == "" {
				t.Errorf("Intent %s: component with empty id", intent)
			}
			if seen[c.ID] {
				t.Errorf("Intent %s: duplicate component id %q", intent, c.ID)
			}
			seen[c.ID] = true

			if !registry.Known(c.Type) {
				t.Errorf("Intent %s: component %s has unregistered type %q", intent, c.ID, c.Type)
			}
			if c.Props == nil {
				t.Errorf("Intent %s: component %s has nil props", intent, c.ID)
			} else if c.Props.Component() != c.Type {
				t.Errorf("Intent %s: component %s props belong to %s", intent, c.ID, c.Props.Component())
			}
			if c.Priority < 1 {
				t.Errorf("Intent %s: component %s has priority %d", intent, c.ID, c.Priority)
			}
			if !model.KnownVisibility(c.Visibility) {
				t.Errorf("Intent %s: component %s has visibility %q", intent, c.ID, c.Visibility)
			}
		}

		for _, h := range doc.Reasoning.HiddenComponents {
			if !registry.Known(h.Type) {
				t.Errorf("Intent %s: hidden component names unregistered type %q", intent, h.Type)
			}
			if h.Reason == "" {
				t.Errorf("Intent %s: hidden component %s has no reason", intent, h.Type)
			}
		}
	}
}

func TestSynthesizer_Synthesize_FreshDocumentPerCall(t *testing.T) {
	s := NewSynthesizer()

	first := s.Synthesize(model.IntentIncident, model.UrgencyLow, 0.8)
	first.Components[0].ID = "mutated"
	first.Reasoning.UncertaintyAreas[0] = "mutated"

	second := s.Synthesize(model.IntentIncident, model.UrgencyLow, 0.8)

	if second.Components[0].ID == "mutated" {
		t.Error("Templates share component state across calls")
	}
	if second.Reasoning.UncertaintyAreas[0] == "mutated" {
		t.Error("Templates share reasoning state across calls")
	}
}

func TestLayoutFor_UnknownIntent(t *testing.T) {
	if got := LayoutFor(model.Intent("prophecy")); got != model.LayoutGrid {
		t.Errorf("Expected grid for unknown intent, got %s", got)
	}
}
