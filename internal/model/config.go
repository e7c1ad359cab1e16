package model

import "time"

// Config is the application configuration, merged from defaults, the config
// file, VANTAGE_* environment variables, and CLI flags.
type Config struct {
	Provider    ProviderConfig    `yaml:"provider" mapstructure:"provider"`
	Analyzer    AnalyzerConfig    `yaml:"analyzer" mapstructure:"analyzer"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// ProviderConfig selects and configures the composition producer.
type ProviderConfig struct {
	// Name of the provider: "local" (or empty) for the deterministic
	// analyzer, "openai" for the remote model.
	Name string `yaml:"name" mapstructure:"name"`

	// Model is the remote model name (provider-specific).
	Model string `yaml:"model" mapstructure:"model"`

	// APIKey for the remote provider (prefer the OPENAI_API_KEY env var).
	APIKey string `yaml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL overrides the remote endpoint (e.g. a proxy).
	BaseURL string `yaml:"base_url,omitempty" mapstructure:"base_url"`

	// Timeout for a single remote call, in seconds.
	Timeout int `yaml:"timeout" mapstructure:"timeout"`

	// MaxTokens bounds the remote response length.
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// RequestsPerSecond and Burst bound the remote call rate.
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
}

// AnalyzerConfig tunes the local deterministic analyzer.
type AnalyzerConfig struct {
	// SimulatedLatency is a cosmetic delay standing in for model latency.
	// Zero disables it; tests run with zero.
	SimulatedLatency time.Duration `yaml:"simulated_latency" mapstructure:"simulated_latency"`
}

// CacheConfig controls the remote-response cache. The deterministic core is
// never cached; only remote calls are, keyed by normalized input.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// ConcurrencyConfig bounds batch processing.
type ConcurrencyConfig struct {
	BatchWorkers int `yaml:"batch_workers" mapstructure:"batch_workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	Explain       bool `yaml:"explain" mapstructure:"explain"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Name:              "local",
			Timeout:           30,
			MaxTokens:         2000,
			RequestsPerSecond: 1,
			Burst:             3,
		},
		Analyzer: AnalyzerConfig{
			SimulatedLatency: 400 * time.Millisecond,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			BatchWorkers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
	}
}
