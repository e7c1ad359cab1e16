package compose

import (
	"reflect"
	"testing"

	"github.com/okometz/vantage/internal/model"
	"github.com/okometz/vantage/internal/registry"
)

func entry(id string, typ model.ComponentType, priority int, vis model.Visibility) model.ComponentEntry {
	return model.ComponentEntry{
		ID:         id,
		Type:       typ,
		Priority:   priority,
		Visibility: vis,
	}
}

func doc(layout model.Layout, components ...model.ComponentEntry) *model.CompositionDocument {
	return &model.CompositionDocument{
		Layout:      layout,
		Components:  components,
		Confidence:  0.7,
		Explanation: "test",
		Reasoning: model.ReasoningBlock{
			Intent:  model.IntentOverview,
			Urgency: model.UrgencyLow,
		},
	}
}

func ids(cells []Cell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.ID
	}
	return out
}

func TestEngine_Compose_GridSpans(t *testing.T) {
	e := NewEngine()

	d := doc(model.LayoutGrid,
		entry("banner", model.TypeStatusBanner, 1, model.VisibilityVisible),
		entry("metric", model.TypeMetricCard, 2, model.VisibilityVisible),
		entry("logs", model.TypeLogViewer, 3, model.VisibilityVisible),
		entry("recs", model.TypeRecommendationStrip, 4, model.VisibilityVisible),
	)

	arr := e.Compose(d)

	want := map[string]registry.Span{
		"banner": registry.SpanFull,
		"metric": registry.SpanQuarter,
		"logs":   registry.SpanHalf,
		"recs":   registry.SpanFull,
	}
	if len(arr.Cells) != len(want) {
		t.Fatalf("Expected %d cells, got %d", len(want), len(arr.Cells))
	}
	for _, c := range arr.Cells {
		if c.Span != want[c.ID] {
			t.Errorf("Cell %s: expected span %s, got %s", c.ID, want[c.ID], c.Span)
		}
	}
}

func TestEngine_Compose_PriorityOrdering(t *testing.T) {
	e := NewEngine()

	d := doc(model.LayoutGrid,
		entry("late", model.TypeLogViewer, 3, model.VisibilityVisible),
		entry("first", model.TypeStatusBanner, 1, model.VisibilityVisible),
		entry("mid", model.TypeChartPanel, 2, model.VisibilityVisible),
	)

	arr := e.Compose(d)

	want := []string{"first", "mid", "late"}
	if got := ids(arr.Cells); !reflect.DeepEqual(got, want) {
		t.Errorf("Expected order %v, got %v", want, got)
	}
}

func TestEngine_Compose_StableForEqualPriorities(t *testing.T) {
	e := NewEngine()

	components := []model.ComponentEntry{
		entry("a", model.TypeMetricCard, 2, model.VisibilityVisible),
		entry("b", model.TypeMetricCard, 2, model.VisibilityVisible),
		entry("c", model.TypeMetricCard, 1, model.VisibilityVisible),
		entry("d", model.TypeMetricCard, 2, model.VisibilityVisible),
	}

	for _, layout := range []model.Layout{model.LayoutGrid, model.LayoutStack, model.LayoutSplit, model.LayoutOverlay} {
		arr := e.Compose(doc(layout, components...))

		want := []string{"c", "a", "b", "d"}
		if got := ids(arr.Cells); !reflect.DeepEqual(got, want) {
			t.Errorf("Layout %s: expected stable order %v, got %v", layout, want, got)
		}
	}
}

func TestEngine_Compose_HiddenNeverPlaced(t *testing.T) {
	e := NewEngine()

	components := []model.ComponentEntry{
		entry("shown", model.TypeAlertPanel, 1, model.VisibilityVisible),
		entry("hidden", model.TypeLogViewer, 1, model.VisibilityHidden),
		entry("conditional", model.TypeGeoMap, 1, model.VisibilityConditional),
	}

	for _, layout := range []model.Layout{model.LayoutGrid, model.LayoutStack, model.LayoutSplit, model.LayoutOverlay} {
		arr := e.Compose(doc(layout, components...))

		for _, c := range arr.Cells {
			if c.ID == "hidden" || c.ID == "conditional" {
				t.Errorf("Layout %s: non-visible entry %q was placed", layout, c.ID)
			}
		}
		if len(arr.Cells) != 1 {
			t.Errorf("Layout %s: expected 1 cell, got %d", layout, len(arr.Cells))
		}
	}
}

func TestEngine_Compose_StackStagger(t *testing.T) {
	e := NewEngine()

	d := doc(model.LayoutStack,
		entry("one", model.TypeStatusBanner, 1, model.VisibilityVisible),
		entry("three", model.TypeTimelineView, 3, model.VisibilityVisible),
	)

	arr := e.Compose(d)

	if arr.Cells[0].StaggerMS != 60 {
		t.Errorf("Priority 1: expected stagger 60, got %d", arr.Cells[0].StaggerMS)
	}
	if arr.Cells[1].StaggerMS != 180 {
		t.Errorf("Priority 3: expected stagger 180, got %d", arr.Cells[1].StaggerMS)
	}
	for _, c := range arr.Cells {
		if c.Span != registry.SpanFull {
			t.Errorf("Stack cell %s: expected full span, got %s", c.ID, c.Span)
		}
	}
}

func TestEngine_Compose_SplitMidpoint(t *testing.T) {
	e := NewEngine()

	// Five entries: ceil(5/2) = 3 left, 2 right.
	d := doc(model.LayoutSplit,
		entry("a", model.TypeLogViewer, 1, model.VisibilityVisible),
		entry("b", model.TypeChartPanel, 2, model.VisibilityVisible),
		entry("c", model.TypeTimelineView, 3, model.VisibilityVisible),
		entry("d", model.TypeInsightList, 4, model.VisibilityVisible),
		entry("e", model.TypeGeoMap, 5, model.VisibilityVisible),
	)

	arr := e.Compose(d)

	wantColumns := map[string]int{"a": ColumnLeft, "b": ColumnLeft, "c": ColumnLeft, "d": ColumnRight, "e": ColumnRight}
	for _, c := range arr.Cells {
		if c.Column != wantColumns[c.ID] {
			t.Errorf("Cell %s: expected column %d, got %d", c.ID, wantColumns[c.ID], c.Column)
		}
	}
}

func TestEngine_Compose_SplitSingleEntry(t *testing.T) {
	e := NewEngine()

	arr := e.Compose(doc(model.LayoutSplit,
		entry("only", model.TypeLogViewer, 1, model.VisibilityVisible),
	))

	if len(arr.Cells) != 1 || arr.Cells[0].Column != ColumnLeft {
		t.Errorf("Single entry should land left, got %+v", arr.Cells)
	}
}

func TestEngine_Compose_OverlayPartition(t *testing.T) {
	e := NewEngine()

	d := doc(model.LayoutOverlay,
		entry("float1", model.TypeStatusBanner, 1, model.VisibilityVisible),
		entry("float2", model.TypeAlertPanel, 2, model.VisibilityVisible),
		entry("base3", model.TypeLogViewer, 3, model.VisibilityVisible),
		entry("base4", model.TypeChartPanel, 4, model.VisibilityVisible),
	)

	arr := e.Compose(d)

	for _, c := range arr.Cells {
		switch c.ID {
		case "float1", "float2":
			if c.Region != RegionOverlay {
				t.Errorf("Cell %s: expected overlay region, got %s", c.ID, c.Region)
			}
			if c.Span != registry.SpanFull {
				t.Errorf("Overlay cell %s: expected full span, got %s", c.ID, c.Span)
			}
		case "base3", "base4":
			if c.Region != RegionBase {
				t.Errorf("Cell %s: expected base region, got %s", c.ID, c.Region)
			}
			if c.Span != registry.SpanHalf {
				t.Errorf("Base cell %s: expected half span, got %s", c.ID, c.Span)
			}
		}
	}

	seen := make(map[string]int)
	for _, c := range arr.Cells {
		seen[c.ID]++
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("Cell %s appears %d times", id, n)
		}
	}
}

func TestEngine_Compose_UnknownLayoutFallsBackToGrid(t *testing.T) {
	e := NewEngine()

	d := doc(model.Layout("mosaic"),
		entry("metric", model.TypeMetricCard, 1, model.VisibilityVisible),
	)

	arr := e.Compose(d)

	if len(arr.Cells) != 1 {
		t.Fatalf("Expected 1 cell, got %d", len(arr.Cells))
	}
	if arr.Cells[0].Span != registry.SpanQuarter {
		t.Errorf("Expected grid placement (quarter span for MetricCard), got %s", arr.Cells[0].Span)
	}
}

func TestEngine_Compose_UnknownTypeSkipped(t *testing.T) {
	e := NewEngine()

	components := []model.ComponentEntry{
		entry("real", model.TypeAlertPanel, 1, model.VisibilityVisible),
		entry("bogus", model.ComponentType("HoloDeck"), 2, model.VisibilityVisible),
	}

	for _, layout := range []model.Layout{model.LayoutGrid, model.LayoutStack, model.LayoutSplit, model.LayoutOverlay} {
		arr := e.Compose(doc(layout, components...))

		if got := ids(arr.Cells); !reflect.DeepEqual(got, []string{"real"}) {
			t.Errorf("Layout %s: expected only the registered entry, got %v", layout, got)
		}
	}
}

func TestEngine_Compose_RoundTrip(t *testing.T) {
	e := NewEngine()

	// Every visible, registered entry appears exactly once; nothing else does.
	components := []model.ComponentEntry{
		entry("a", model.TypeMetricCard, 3, model.VisibilityVisible),
		entry("b", model.TypeAlertPanel, 1, model.VisibilityVisible),
		entry("c", model.TypeLogViewer, 2, model.VisibilityHidden),
		entry("d", model.TypeChartPanel, 2, model.VisibilityVisible),
		entry("e", model.TypeStatusBanner, 1, model.VisibilityVisible),
	}

	for _, layout := range []model.Layout{model.LayoutGrid, model.LayoutStack, model.LayoutSplit, model.LayoutOverlay} {
		arr := e.Compose(doc(layout, components...))

		counts := make(map[string]int)
		for _, c := range arr.Cells {
			counts[c.ID]++
		}
		for _, id := range []string{"a", "b", "d", "e"} {
			if counts[id] != 1 {
				t.Errorf("Layout %s: entry %s placed %d times", layout, id, counts[id])
			}
		}
		if counts["c"] != 0 {
			t.Errorf("Layout %s: hidden entry placed", layout)
		}
	}
}

func TestEngine_Compose_Idempotent(t *testing.T) {
	e := NewEngine()

	d := doc(model.LayoutOverlay,
		entry("a", model.TypeStatusBanner, 1, model.VisibilityVisible),
		entry("b", model.TypeLogViewer, 3, model.VisibilityVisible),
		entry("c", model.TypeMetricCard, 2, model.VisibilityVisible),
	)

	first := e.Compose(d)
	second := e.Compose(d)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Compose is not idempotent:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestEngine_Compose_DoesNotMutateDocument(t *testing.T) {
	e := NewEngine()

	d := doc(model.LayoutGrid,
		entry("z", model.TypeLogViewer, 9, model.VisibilityVisible),
		entry("a", model.TypeStatusBanner, 1, model.VisibilityVisible),
	)

	before := make([]model.ComponentEntry, len(d.Components))
	copy(before, d.Components)

	e.Compose(d)

	if !reflect.DeepEqual(d.Components, before) {
		t.Errorf("Compose mutated the input document: %+v", d.Components)
	}
}

func TestEngine_Compose_EmptyDocument(t *testing.T) {
	e := NewEngine()

	arr := e.Compose(doc(model.LayoutGrid))

	if len(arr.Cells) != 0 {
		t.Errorf("Expected no cells for empty document, got %d", len(arr.Cells))
	}
}
