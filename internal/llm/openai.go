package llm

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIClient implements Client for OpenAI chat completions
type OpenAIClient struct {
	client *openai.Client
	config *Config
}

// NewOpenAIClient creates a new OpenAI client
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		config: config,
	}, nil
}

// Complete runs a single chat completion against the tier's OpenAI model.
func (c *OpenAIClient) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	modelName := c.config.GetModel(req.Tier)
	if modelName == "" {
		return nil, &GenerationError{Provider: ProviderOpenAI, Message: fmt.Sprintf("no model configured for tier %s", req.Tier)}
	}

	temperature := req.Temperature
	if temperature == 0 {
		// The request marshals temperature with omitempty, so a literal 0.0
		// would silently become the provider default of 1.0.
		temperature = math.SmallestNonzeroFloat32
	}

	var messages []openai.ChatCompletionMessage
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.System,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.User,
	})

	chatReq := openai.ChatCompletionRequest{
		Model:       modelName,
		Messages:    messages,
		Temperature: temperature,
	}
	if req.MaxTokens > 0 {
		chatReq.MaxTokens = int(req.MaxTokens)
	}
	if req.JSONMode {
		chatReq.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, &GenerationError{Provider: ProviderOpenAI, Message: "chat completion failed", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &GenerationError{Provider: ProviderOpenAI, Message: "no choices in response"}
	}
	slog.DebugContext(ctx, "openai usage",
		"model", modelName,
		"prompt_tokens", resp.Usage.PromptTokens,
		"output_tokens", resp.Usage.CompletionTokens)

	choice := resp.Choices[0]
	content := choice.Message.Content
	if req.JSONMode {
		content = CleanJSONBlock(content)
	}
	return &CompletionResponse{
		Content:   content,
		Truncated: choice.FinishReason == openai.FinishReasonLength,
	}, nil
}

// GetModel returns the model name for a tier
func (c *OpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close is a no-op; the underlying HTTP client holds no resources.
func (c *OpenAIClient) Close() error {
	return nil
}
