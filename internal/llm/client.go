package llm

import (
	"context"
	"fmt"
)

// CompletionRequest describes one generative call. Schema names an embedded
// JSON Schema the retry wrapper validates the output against; providers
// ignore it.
type CompletionRequest struct {
	System      string
	User        string
	Tier        ModelTier
	Temperature float32
	MaxTokens   int32
	JSONMode    bool
	Schema      string
}

// CompletionResponse is the provider-neutral result of one generative call.
// Truncated is set when the provider stopped at the output token ceiling, in
// which case Content may be incomplete or empty.
type CompletionResponse struct {
	Content   string
	Truncated bool
}

// Client is an abstraction over LLM providers
type Client interface {
	// Complete runs a single generative call and reports truncation
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)
	// GetModel returns the underlying provider model for a tier (for direct access if needed)
	GetModel(tier ModelTier) string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(config, apiKey)
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	default:
		return nil, fmt.Errorf("unsupported provider %q", config.Provider)
	}
}
