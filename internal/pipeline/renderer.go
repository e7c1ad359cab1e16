package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/okometz/vantage/internal/compose"
	"github.com/okometz/vantage/internal/model"
	"github.com/okometz/vantage/internal/registry"
)

// Renderer writes analysis results as JSON or Markdown. Markdown output is a
// textual stand-in for the widget layer: one line per placed cell, in final
// order, with the layout hints the renderer would consume.
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer.
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// WriteJSON writes the full result as indented JSON to the given path,
// or to stdout when path is "-".
func (r *Renderer) WriteJSON(result *Result, path string) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	data = append(data, '\n')

	if path == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// WriteMarkdown renders the arrangement (and optionally the reasoning) as
// Markdown to the given path, or to stdout when path is "-".
func (r *Renderer) WriteMarkdown(result *Result, path string, explain bool) error {
	md := r.Markdown(result, explain)

	if path == "-" {
		_, err := io.WriteString(os.Stdout, md)
		return err
	}
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Markdown builds the Markdown report for a result.
func (r *Renderer) Markdown(result *Result, explain bool) string {
	var b strings.Builder
	doc := result.Document
	arr := result.Arrangement

	fmt.Fprintf(&b, "# Composition: %s\n\n", doc.Reasoning.Intent)
	fmt.Fprintf(&b, "> %s\n\n", result.Text)
	fmt.Fprintf(&b, "- **Layout**: %s\n", doc.Layout)
	fmt.Fprintf(&b, "- **Urgency**: %s\n", doc.Reasoning.Urgency)
	fmt.Fprintf(&b, "- **Confidence**: %.0f%%\n\n", doc.Confidence*100)

	if doc.Explanation != "" {
		fmt.Fprintf(&b, "%s\n\n", doc.Explanation)
	}

	b.WriteString("## Arrangement\n\n")
	b.WriteString("| # | Component | Type | Placement |\n")
	b.WriteString("|---|-----------|------|-----------|\n")
	for i, cell := range arr.Cells {
		title := string(cell.Type)
		if capability, ok := registry.Lookup(cell.Type); ok {
			title = capability.Title
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s |\n", i+1, cell.ID, title, placementHint(arr.Layout, cell))
	}
	b.WriteString("\n")

	if explain {
		b.WriteString("## Reasoning\n\n")
		if len(doc.Reasoning.UncertaintyAreas) > 0 {
			b.WriteString("Uncertainty:\n\n")
			for _, u := range doc.Reasoning.UncertaintyAreas {
				fmt.Fprintf(&b, "- %s\n", u)
			}
			b.WriteString("\n")
		}
		if len(doc.Reasoning.HiddenComponents) > 0 {
			b.WriteString("Not shown:\n\n")
			for _, h := range doc.Reasoning.HiddenComponents {
				fmt.Fprintf(&b, "- **%s**: %s\n", h.Type, h.Reason)
			}
			b.WriteString("\n")
		}
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n*Generated by vantage (%s provider), %s*\n",
			result.Provider, result.AnalyzedAt.Format("2006-01-02 15:04 UTC"))
	}

	return b.String()
}

// placementHint summarizes a cell's layout-specific position for the report.
func placementHint(layout model.Layout, cell compose.Cell) string {
	switch layout {
	case model.LayoutStack:
		return fmt.Sprintf("full width, +%dms", cell.StaggerMS)
	case model.LayoutSplit:
		side := "left"
		if cell.Column == compose.ColumnRight {
			side = "right"
		}
		return side + " column"
	case model.LayoutOverlay:
		return fmt.Sprintf("%s layer, %s", cell.Region, cell.Span)
	default:
		return string(cell.Span)
	}
}
