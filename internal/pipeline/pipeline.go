// Package pipeline orchestrates the complete analysis: provider production,
// contract validation, and composition. AnalyzeSituation is the single entry
// point the shell consumes.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/okometz/vantage/internal/compose"
	"github.com/okometz/vantage/internal/model"
	"github.com/okometz/vantage/internal/provider"
	"github.com/okometz/vantage/internal/validate"
)

// Pipeline wires a document producer to the composition engine.
type Pipeline struct {
	producer provider.Provider
	engine   *compose.Engine
	renderer *Renderer
	config   *model.Config
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	p, err := provider.NewProvider(provider.ConfigFromModel(cfg))
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	return &Pipeline{
		producer: p,
		engine:   compose.NewEngine(),
		renderer: NewRenderer(cfg.Output.IncludeFooter),
		config:   cfg,
	}, nil
}

// Result is one complete analysis: the document and its placement plan,
// tagged with a correlation id for batch output and verbose logs.
type Result struct {
	RequestID   string                     `json:"request_id"`
	Text        string                     `json:"text"`
	AnalyzedAt  time.Time                  `json:"analyzed_at"`
	Provider    string                     `json:"provider"`
	Document    *model.CompositionDocument `json:"document"`
	Arrangement *compose.Arrangement       `json:"arrangement"`
}

// AnalyzeSituation turns a free-text situation description into a validated
// composition document and its arrangement. Validation failures propagate:
// an invalid document is never silently rendered, regardless of which
// provider produced it.
func (p *Pipeline) AnalyzeSituation(ctx context.Context, text string) (*Result, error) {
	// 1. Produce the document
	doc, err := p.producer.Produce(ctx, provider.Request{Text: text})
	if err != nil {
		return nil, fmt.Errorf("produce: %w", err)
	}

	// 2. Enforce the document contract
	if err := validate.Document(doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	// 3. Compose the placement plan
	arrangement := p.engine.Compose(doc)

	return &Result{
		RequestID:   uuid.NewString(),
		Text:        text,
		AnalyzedAt:  time.Now().UTC(),
		Provider:    p.producer.Name(),
		Document:    doc,
		Arrangement: arrangement,
	}, nil
}

// Renderer returns the pipeline's renderer.
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// Provider returns the pipeline's document producer.
func (p *Pipeline) Provider() provider.Provider {
	return p.producer
}
