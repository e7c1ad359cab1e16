package model

import (
	"encoding/json"
	"fmt"
)

// CompositionDocument is the single contract between situation analysis and
// rendering. It is created fresh per analysis, never mutated after production,
// and carries its own reasoning so the UI can explain itself.
type CompositionDocument struct {
	Layout      Layout           `json:"layout"`      // grid, stack, split, overlay
	Components  []ComponentEntry `json:"components"`  // ordered; priority carries meaning, insertion order does not
	Confidence  float64          `json:"confidence"`  // [0,1], clamped by every producer
	Explanation string           `json:"explanation"` // human-readable rationale for the composition
	Reasoning   ReasoningBlock   `json:"reasoning"`
}

// ComponentEntry is one addressable unit within a composition.
type ComponentEntry struct {
	ID                  string        `json:"id"`                            // unique within a document
	Type                ComponentType `json:"type"`                          // must be a registry key
	Props               Props         `json:"props"`                         // shape determined by Type
	Priority            int           `json:"priority"`                      // 1 = highest; ties are stable
	Visibility          Visibility    `json:"visibility"`                    // visible, hidden, conditional
	VisibilityCondition string        `json:"visibilityCondition,omitempty"` // informational only
}

// ReasoningBlock explains why the composition looks the way it does,
// including the alternatives that were deliberately suppressed.
type ReasoningBlock struct {
	Intent           Intent            `json:"intent"`
	Urgency          Urgency           `json:"urgency"`
	UncertaintyAreas []string          `json:"uncertaintyAreas"`
	HiddenComponents []HiddenComponent `json:"hiddenComponents"`
}

// HiddenComponent names a component type that was considered and excluded.
// These are explainability records; they need not appear in Components.
type HiddenComponent struct {
	Type   ComponentType `json:"type"`
	Reason string        `json:"reason"`
}

// Layout selects the arrangement strategy for a document.
type Layout string

const (
	LayoutGrid    Layout = "grid"
	LayoutStack   Layout = "stack"
	LayoutSplit   Layout = "split"
	LayoutOverlay Layout = "overlay"
)

// Intent is the classified purpose of a situation description.
type Intent string

const (
	IntentOverview      Intent = "overview"
	IntentInvestigation Intent = "investigation"
	IntentIncident      Intent = "incident"
	IntentEscalation    Intent = "escalation"
	IntentExploration   Intent = "exploration"
)

// KnownIntent reports whether the value is one of the five intents.
func KnownIntent(i Intent) bool {
	switch i {
	case IntentOverview, IntentInvestigation, IntentIncident, IntentEscalation, IntentExploration:
		return true
	}
	return false
}

// Urgency is the classified time-pressure level.
type Urgency string

const (
	UrgencyLow      Urgency = "low"
	UrgencyMedium   Urgency = "medium"
	UrgencyHigh     Urgency = "high"
	UrgencyCritical Urgency = "critical"
)

// KnownUrgency reports whether the value is one of the four urgency levels.
func KnownUrgency(u Urgency) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyCritical:
		return true
	}
	return false
}

// Visibility controls whether an entry is composed into the output.
// Only visible entries are ever placed; conditional has no resolution
// predicate yet and is treated the same as hidden by the composer.
type Visibility string

const (
	VisibilityVisible     Visibility = "visible"
	VisibilityHidden      Visibility = "hidden"
	VisibilityConditional Visibility = "conditional"
)

// KnownVisibility reports whether the value is one of the three visibility states.
func KnownVisibility(v Visibility) bool {
	switch v {
	case VisibilityVisible, VisibilityHidden, VisibilityConditional:
		return true
	}
	return false
}

// componentEntryShell mirrors ComponentEntry with raw props, so decoding can
// dispatch on the type tag before choosing a concrete props struct.
type componentEntryShell struct {
	ID                  string          `json:"id"`
	Type                ComponentType   `json:"type"`
	Props               json.RawMessage `json:"props"`
	Priority            int             `json:"priority"`
	Visibility          Visibility      `json:"visibility"`
	VisibilityCondition string          `json:"visibilityCondition,omitempty"`
}

// UnmarshalJSON decodes an entry, resolving the props shape from the type tag.
// An unknown type is not a decode error: the entry survives with nil props and
// is skipped at placement time (and flagged by strict validation).
func (e *ComponentEntry) UnmarshalJSON(data []byte) error {
	var shell componentEntryShell
	if err := json.Unmarshal(data, &shell); err != nil {
		return fmt.Errorf("component entry: %w", err)
	}

	e.ID = shell.ID
	e.Type = shell.Type
	e.Priority = shell.Priority
	e.Visibility = shell.Visibility
	e.VisibilityCondition = shell.VisibilityCondition
	e.Props = nil

	if len(shell.Props) == 0 || string(shell.Props) == "null" {
		return nil
	}

	decode, ok := propsDecoders[shell.Type]
	if !ok {
		// Unknown tag: keep the entry, drop the payload.
		return nil
	}

	props, err := decode(shell.Props)
	if err != nil {
		return fmt.Errorf("decode %s props: %w", shell.Type, err)
	}
	e.Props = props
	return nil
}
