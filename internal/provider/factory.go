package provider

import (
	"fmt"
	"strings"
)

// NewProvider creates a provider from configuration. An empty name selects
// the local deterministic provider; there is always a producer.
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Name) {
	case "", "local":
		return NewLocalProvider(config), nil

	case "openai":
		return NewOpenAIProvider(config)

	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: local, openai)", config.Name)
	}
}
