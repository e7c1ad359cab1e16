package provider

import (
	"context"
	"time"

	"github.com/okometz/vantage/internal/analyze"
	"github.com/okometz/vantage/internal/model"
	"github.com/okometz/vantage/internal/synth"
)

// LocalProvider is the deterministic producer: pattern-based analysis
// followed by template synthesis. It is total: it returns a valid document
// for every input, and its only failure mode is context cancellation during
// the simulated latency window.
type LocalProvider struct {
	analyzer    *analyze.Analyzer
	synthesizer *synth.Synthesizer
	latency     time.Duration
}

// NewLocalProvider creates the local provider.
func NewLocalProvider(config Config) *LocalProvider {
	return &LocalProvider{
		analyzer:    analyze.NewAnalyzer(),
		synthesizer: synth.NewSynthesizer(),
		latency:     config.SimulatedLatency,
	}
}

// Name returns the provider name.
func (p *LocalProvider) Name() string {
	return "local"
}

// IsAvailable always reports true: the local provider has no dependencies.
func (p *LocalProvider) IsAvailable(ctx context.Context) bool {
	return true
}

// Produce classifies the text and synthesizes the intent's template. The
// latency sleep is cosmetic, standing in for model/network time; it respects
// cancellation so a superseded request can be abandoned.
func (p *LocalProvider) Produce(ctx context.Context, req Request) (*model.CompositionDocument, error) {
	if p.latency > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.latency):
		}
	}

	c := p.analyzer.Analyze(req.Text)
	return p.synthesizer.Synthesize(c.Intent, c.Urgency, c.Confidence), nil
}

// Classify exposes the raw classification for verbose output, without
// building a document.
func (p *LocalProvider) Classify(text string) model.Classification {
	return p.analyzer.Analyze(text)
}
