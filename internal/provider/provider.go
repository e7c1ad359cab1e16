// Package provider defines the composition producer boundary. The engine has
// no way to distinguish a locally synthesized document from a remote one:
// both implementations satisfy the same interface and the same document
// contract, and remote output is schema-checked before it is trusted.
package provider

import (
	"context"
	"time"

	"github.com/okometz/vantage/internal/model"
)

// Provider produces a composition document for a situation description.
type Provider interface {
	// Name returns the provider name.
	Name() string

	// Produce turns a situation description into a composition document
	// satisfying every document invariant.
	Produce(ctx context.Context, req Request) (*model.CompositionDocument, error)

	// IsAvailable checks whether the provider is configured and reachable.
	IsAvailable(ctx context.Context) bool
}

// Request carries the input for one production call.
type Request struct {
	// Text is the free-form situation description.
	Text string

	// Model overrides the configured remote model for this call.
	Model string

	// MaxTokens bounds the remote response length.
	MaxTokens int
}

// Config holds provider configuration.
type Config struct {
	// Name of the provider: "local" or "" for the deterministic analyzer,
	// "openai" for the remote model.
	Name string

	// Model is the remote model name.
	Model string

	// APIKey for the remote provider.
	APIKey string

	// BaseURL for custom endpoints (e.g. a proxy).
	BaseURL string

	// Timeout for a single remote call, in seconds.
	Timeout int

	// MaxTokens bounds remote response generation.
	MaxTokens int

	// SimulatedLatency is the local provider's cosmetic delay.
	SimulatedLatency time.Duration

	// CacheEnabled and CacheTTL control remote response memoization.
	CacheEnabled bool
	CacheTTL     time.Duration

	// RequestsPerSecond and Burst bound the remote call rate.
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		Name:              "local",
		Timeout:           30,
		MaxTokens:         2000,
		SimulatedLatency:  400 * time.Millisecond,
		CacheEnabled:      true,
		CacheTTL:          15 * time.Minute,
		RequestsPerSecond: 1,
		Burst:             3,
	}
}

// ConfigFromModel converts the application config into a provider config.
func ConfigFromModel(cfg *model.Config) Config {
	return Config{
		Name:              cfg.Provider.Name,
		Model:             cfg.Provider.Model,
		APIKey:            cfg.Provider.APIKey,
		BaseURL:           cfg.Provider.BaseURL,
		Timeout:           cfg.Provider.Timeout,
		MaxTokens:         cfg.Provider.MaxTokens,
		SimulatedLatency:  cfg.Analyzer.SimulatedLatency,
		CacheEnabled:      cfg.Cache.Enabled,
		CacheTTL:          cfg.Cache.TTL,
		RequestsPerSecond: cfg.Provider.RequestsPerSecond,
		Burst:             cfg.Provider.Burst,
	}
}
