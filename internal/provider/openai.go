package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/okometz/vantage/internal/analyze"
	"github.com/okometz/vantage/internal/cache"
	"github.com/okometz/vantage/internal/model"
	"github.com/okometz/vantage/internal/registry"
	"github.com/okometz/vantage/internal/validate"
)

// OpenAIProvider produces composition documents with OpenAI chat models. It
// is an alternate producer of the exact same contract the local provider
// fills: its raw output is schema-validated and structurally validated before
// anything downstream sees it, and violations surface as errors, never as a
// silently repaired document.
type OpenAIProvider struct {
	client  *openai.Client
	config  Config
	limiter *rate.Limiter
	cache   cache.Cache
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(config Config) (*OpenAIProvider, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	rps := config.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	burst := config.Burst
	if burst <= 0 {
		burst = 1
	}

	var respCache cache.Cache
	if config.CacheEnabled {
		respCache = cache.NewMemoryCache(config.CacheTTL, config.CacheTTL)
	}

	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(clientConfig),
		config:  config,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		cache:   respCache,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return "openai"
}

// IsAvailable checks if the provider is properly configured.
func (p *OpenAIProvider) IsAvailable(ctx context.Context) bool {
	_, err := p.client.ListModels(ctx)
	return err == nil
}

// Produce asks the model for a composition document and refuses to return
// anything that violates the document contract.
func (p *OpenAIProvider) Produce(ctx context.Context, req Request) (*model.CompositionDocument, error) {
	key := cache.Key(analyze.Normalize(req.Text))
	if p.cache != nil {
		if raw, found := p.cache.Get(key); found {
			return decodeDocument(raw)
		}
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	chatModel := req.Model
	if chatModel == "" {
		chatModel = p.config.Model
	}
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.config.MaxTokens
	}
	if maxTokens == 0 {
		maxTokens = 2000
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	chatReq := openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: "Situation: " + req.Text,
			},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.2,
	}

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, chatReq)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	raw := ExtractJSON(resp.Choices[0].Message.Content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON document in model response")
	}

	doc, err := decodeDocument([]byte(raw))
	if err != nil {
		return nil, err
	}

	if p.cache != nil {
		_ = p.cache.Set(key, []byte(raw), p.config.CacheTTL)
	}
	return doc, nil
}

// decodeDocument turns raw wire JSON into a validated document. Both stages
// are contract enforcement: the schema catches shape problems, the structural
// check catches everything the schema cannot express (duplicate ids).
func decodeDocument(raw []byte) (*model.CompositionDocument, error) {
	if err := validate.DocumentJSON(raw); err != nil {
		return nil, fmt.Errorf("remote document rejected: %w", err)
	}

	var doc model.CompositionDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode remote document: %w", err)
	}

	if err := validate.Document(&doc); err != nil {
		return nil, fmt.Errorf("remote document rejected: %w", err)
	}
	return &doc, nil
}

// ExtractJSON pulls the first JSON object out of a model response, handling
// both fenced and bare output.
func ExtractJSON(content string) string {
	content = strings.TrimSpace(content)

	if idx := strings.Index(content, "```"); idx >= 0 {
		rest := content[idx+3:]
		rest = strings.TrimPrefix(rest, "json")
		if end := strings.Index(rest, "```"); end >= 0 {
			content = rest[:end]
		} else {
			content = rest
		}
		content = strings.TrimSpace(content)
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return ""
	}
	return content[start : end+1]
}

// systemPrompt describes the document contract to the model, including the
// closed component set so unknown types stay rare rather than routine.
func systemPrompt() string {
	var b strings.Builder
	b.WriteString("You compose operational dashboards. Respond with a single JSON object and nothing else, matching this contract:\n\n")
	b.WriteString(`{"layout": "grid|stack|split|overlay", "components": [{"id": "...", "type": "...", "props": {...}, "priority": 1, "visibility": "visible|hidden|conditional"}], "confidence": 0.0-1.0, "explanation": "...", "reasoning": {"intent": "overview|investigation|incident|escalation|exploration", "urgency": "low|medium|high|critical", "uncertaintyAreas": ["..."], "hiddenComponents": [{"type": "...", "reason": "..."}]}}`)
	b.WriteString("\n\nRules:\n")
	b.WriteString("- component ids must be unique within the document\n")
	b.WriteString("- priority starts at 1 (highest); lower numbers render first\n")
	b.WriteString("- component type must be one of:")
	for _, t := range registry.Types() {
		b.WriteString(" ")
		b.WriteString(string(t))
	}
	b.WriteString("\n- name deliberately excluded components in reasoning.hiddenComponents with a reason\n")
	b.WriteString("- all telemetry values are illustrative; invent plausible mock data\n")
	return b.String()
}
