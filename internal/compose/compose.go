// Package compose projects a composition document into an ordered, positioned
// placement plan. The engine is deterministic and side-effect-free: it never
// mutates the input document and returns a fresh arrangement per call.
package compose

import (
	"sort"

	"github.com/okometz/vantage/internal/model"
	"github.com/okometz/vantage/internal/registry"
)

// Region names the layer a cell lands in under the overlay layout.
type Region string

const (
	RegionOverlay Region = "overlay"
	RegionBase    Region = "base"
)

// Column indices for the split layout.
const (
	ColumnLeft  = 1
	ColumnRight = 2
)

// overlayPriorityThreshold splits overlay documents: entries at or below this
// priority float on the overlay layer, the rest form the base layer.
const overlayPriorityThreshold = 2

// stackStaggerStepMS is the per-priority animation stagger for stacked cells.
const stackStaggerStepMS = 60

// Cell is one placed renderable unit. ID, Type, and Props pass through from
// the document untouched; the remaining fields are layout-specific hints.
type Cell struct {
	ID        string              `json:"id"`
	Type      model.ComponentType `json:"type"`
	Props     model.Props         `json:"props"`
	Span      registry.Span       `json:"span"`
	Region    Region              `json:"region,omitempty"`    // overlay layout only
	Column    int                 `json:"column,omitempty"`    // split layout only
	StaggerMS int                 `json:"staggerMs,omitempty"` // stack layout only
}

// Arrangement is the placement plan for one document.
type Arrangement struct {
	Layout model.Layout `json:"layout"`
	Cells  []Cell       `json:"cells"`
}

// Engine arranges documents according to the fixed layout-strategy table.
type Engine struct{}

// NewEngine creates a composition engine.
func NewEngine() *Engine {
	return &Engine{}
}

// layoutStrategies dispatches a layout tag to its placement algorithm.
var layoutStrategies = map[model.Layout]func([]model.ComponentEntry) []Cell{
	model.LayoutGrid:    placeGrid,
	model.LayoutStack:   placeStack,
	model.LayoutSplit:   placeSplit,
	model.LayoutOverlay: placeOverlay,
}

// Compose filters, orders, and places the document's components. An unknown
// layout value degrades to the grid strategy; it is not an error.
func (e *Engine) Compose(doc *model.CompositionDocument) *Arrangement {
	entries := visibleEntries(doc.Components)
	sortByPriority(entries)

	strategy, ok := layoutStrategies[doc.Layout]
	if !ok {
		strategy = placeGrid
	}

	return &Arrangement{
		Layout: doc.Layout,
		Cells:  strategy(entries),
	}
}

// visibleEntries retains only visible components, copied out of the document
// so later sorting never touches the input. Hidden and conditional entries
// are silently dropped; their absence is an explainability concern handled by
// reasoning.hiddenComponents, not a placement error.
func visibleEntries(components []model.ComponentEntry) []model.ComponentEntry {
	entries := make([]model.ComponentEntry, 0, len(components))
	for _, c := range components {
		if c.Visibility == model.VisibilityVisible {
			entries = append(entries, c)
		}
	}
	return entries
}

// sortByPriority orders entries by ascending priority. Stability is a
// correctness requirement: equal priorities keep their document order, and
// downstream visual rhythm derives from it.
func sortByPriority(entries []model.ComponentEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority < entries[j].Priority
	})
}

// placeGrid assigns every entry a cell whose width class comes from its
// registered capability. Unknown types have no capability and are skipped.
func placeGrid(entries []model.ComponentEntry) []Cell {
	cells := make([]Cell, 0, len(entries))
	for _, e := range entries {
		capability, ok := registry.Lookup(e.Type)
		if !ok {
			continue
		}
		cells = append(cells, Cell{
			ID:    e.ID,
			Type:  e.Type,
			Props: e.Props,
			Span:  capability.Span,
		})
	}
	return cells
}

// placeStack lays entries full-width in order with a priority-derived
// animation stagger.
func placeStack(entries []model.ComponentEntry) []Cell {
	cells := make([]Cell, 0, len(entries))
	for _, e := range entries {
		if !registry.Known(e.Type) {
			continue
		}
		cells = append(cells, Cell{
			ID:        e.ID,
			Type:      e.Type,
			Props:     e.Props,
			Span:      registry.SpanFull,
			StaggerMS: e.Priority * stackStaggerStepMS,
		})
	}
	return cells
}

// placeSplit partitions the ordered list at ceil(n/2): first half left,
// second half right, both columns preserving relative order.
func placeSplit(entries []model.ComponentEntry) []Cell {
	placeable := make([]model.ComponentEntry, 0, len(entries))
	for _, e := range entries {
		if registry.Known(e.Type) {
			placeable = append(placeable, e)
		}
	}

	mid := (len(placeable) + 1) / 2

	cells := make([]Cell, 0, len(placeable))
	for i, e := range placeable {
		column := ColumnLeft
		if i >= mid {
			column = ColumnRight
		}
		cells = append(cells, Cell{
			ID:     e.ID,
			Type:   e.Type,
			Props:  e.Props,
			Span:   registry.SpanFull,
			Column: column,
		})
	}
	return cells
}

// placeOverlay partitions by priority: entries at priority <= 2 float on the
// overlay layer full-width, the rest form the half-width base layer. Relative
// order is preserved within each layer.
func placeOverlay(entries []model.ComponentEntry) []Cell {
	var overlay, base []Cell
	for _, e := range entries {
		if !registry.Known(e.Type) {
			continue
		}
		if e.Priority <= overlayPriorityThreshold {
			overlay = append(overlay, Cell{
				ID:     e.ID,
				Type:   e.Type,
				Props:  e.Props,
				Span:   registry.SpanFull,
				Region: RegionOverlay,
			})
		} else {
			base = append(base, Cell{
				ID:     e.ID,
				Type:   e.Type,
				Props:  e.Props,
				Span:   registry.SpanHalf,
				Region: RegionBase,
			})
		}
	}
	return append(overlay, base...)
}
