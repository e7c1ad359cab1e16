// Package validate enforces the structural contract on composition documents
// from any producer. Structural violations are hard failures surfaced to the
// caller, never silently repaired: silent repair would hide producer bugs,
// including bugs in a remote provider. Recoverable conditions (an unknown
// layout, an unknown component type) are deliberately NOT violations; the
// composition engine absorbs those with safe defaults.
package validate

import (
	"fmt"
	"strings"

	"github.com/okometz/vantage/internal/model"
)

// DocumentError aggregates every structural violation found in a document.
type DocumentError struct {
	Violations []string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("invalid composition document: %s", strings.Join(e.Violations, "; "))
}

// Document checks structural invariants: unique non-empty ids, confidence in
// [0,1], required fields present, and known reasoning enums. Returns nil for
// a well-formed document, or a *DocumentError listing every violation.
func Document(doc *model.CompositionDocument) error {
	if doc == nil {
		return &DocumentError{Violations: []string{"document is nil"}}
	}

	var violations []string

	if doc.Layout == "" {
		violations = append(violations, "layout is empty")
	}
	if doc.Confidence < 0 || doc.Confidence > 1 {
		violations = append(violations, fmt.Sprintf("confidence %v outside [0,1]", doc.Confidence))
	}
	if !model.KnownIntent(doc.Reasoning.Intent) {
		violations = append(violations, fmt.Sprintf("unknown intent %q", doc.Reasoning.Intent))
	}
	if !model.KnownUrgency(doc.Reasoning.Urgency) {
		violations = append(violations, fmt.Sprintf("unknown urgency %q", doc.Reasoning.Urgency))
	}

	seen := make(map[string]bool)
	for i, c := range doc.Components {
		if c.ID == "" {
			violations = append(violations, fmt.Sprintf("component[%d] has an empty id", i))
		} else if seen[c.ID] {
			violations = append(violations, fmt.Sprintf("duplicate component id %q", c.ID))
		}
		seen[c.ID] = true

		if c.Type == "" {
			violations = append(violations, fmt.Sprintf("component %q has an empty type", c.ID))
		}
		if c.Priority < 1 {
			violations = append(violations, fmt.Sprintf("component %q has priority %d (minimum 1)", c.ID, c.Priority))
		}
		if !model.KnownVisibility(c.Visibility) {
			violations = append(violations, fmt.Sprintf("component %q has unknown visibility %q", c.ID, c.Visibility))
		}
	}

	if len(violations) > 0 {
		return &DocumentError{Violations: violations}
	}
	return nil
}
