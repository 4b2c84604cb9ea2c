package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedClient replays canned responses and records every request it saw.
type scriptedClient struct {
	responses []scriptedResponse
	requests  []CompletionRequest
}

type scriptedResponse struct {
	resp *CompletionResponse
	err  error
}

func (c *scriptedClient) Complete(_ context.Context, req CompletionRequest) (*CompletionResponse, error) {
	c.requests = append(c.requests, req)
	if len(c.responses) == 0 {
		return nil, errors.New("no scripted response left")
	}
	next := c.responses[0]
	c.responses = c.responses[1:]
	return next.resp, next.err
}

func (c *scriptedClient) GetModel(ModelTier) string { return "scripted-model" }

func (c *scriptedClient) Close() error { return nil }

func TestCallWithRetry_FirstAttemptSucceeds(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{resp: &CompletionResponse{Content: `{"has_skills": ["Excel"], "missing_skills": []}`}},
	}}

	req := CompletionRequest{User: "extract skills", Tier: TierLite, Temperature: 0}
	content, retried, err := CallWithRetry(context.Background(), client, req, 800, 1200, "skills extraction")

	require.NoError(t, err)
	assert.False(t, retried)
	assert.Equal(t, `{"has_skills": ["Excel"], "missing_skills": []}`, content)

	require.Len(t, client.requests, 1)
	assert.Equal(t, int32(800), client.requests[0].MaxTokens)
	assert.True(t, client.requests[0].JSONMode)
}

func TestCallWithRetry_TruncatedThenSucceeds(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{resp: &CompletionResponse{Content: `{"has_skills": ["Exc`, Truncated: true}},
		{resp: &CompletionResponse{Content: `{"has_skills": ["Excel"]}`}},
	}}

	content, retried, err := CallWithRetry(context.Background(), client, CompletionRequest{}, 800, 1200, "skills extraction")

	require.NoError(t, err)
	assert.True(t, retried)
	assert.Equal(t, `{"has_skills": ["Excel"]}`, content)

	require.Len(t, client.requests, 2)
	assert.Equal(t, int32(800), client.requests[0].MaxTokens)
	assert.Equal(t, int32(1200), client.requests[1].MaxTokens)
}

func TestCallWithRetry_MalformedThenSucceeds(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{resp: &CompletionResponse{Content: "I could not produce JSON, sorry"}},
		{resp: &CompletionResponse{Content: `{"ok": true}`}},
	}}

	content, retried, err := CallWithRetry(context.Background(), client, CompletionRequest{}, 800, 1200, "assessment")

	require.NoError(t, err)
	assert.True(t, retried)
	assert.Equal(t, `{"ok": true}`, content)
}

func TestCallWithRetry_TruncatedTwice(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{resp: &CompletionResponse{Truncated: true}},
		{resp: &CompletionResponse{Truncated: true}},
	}}

	_, retried, err := CallWithRetry(context.Background(), client, CompletionRequest{}, 800, 1200, "strategy generation")

	assert.True(t, retried)
	var truncErr *TruncatedOutputError
	require.ErrorAs(t, err, &truncErr)
	assert.Equal(t, "strategy generation", truncErr.Label)
	assert.Equal(t, int32(1200), truncErr.MaxTokens)
}

func TestCallWithRetry_MalformedTwice(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{resp: &CompletionResponse{Content: "still not json"}},
		{resp: &CompletionResponse{Content: "nope"}},
	}}

	_, retried, err := CallWithRetry(context.Background(), client, CompletionRequest{}, 800, 1200, "assessment")

	assert.True(t, retried)
	var malformedErr *MalformedOutputError
	require.ErrorAs(t, err, &malformedErr)
	assert.Equal(t, "assessment", malformedErr.Label)
}

func TestCallWithRetry_TransportErrorNotRetried(t *testing.T) {
	transportErr := &GenerationError{Provider: ProviderOpenAI, Message: "connection refused"}
	client := &scriptedClient{responses: []scriptedResponse{
		{err: transportErr},
		{resp: &CompletionResponse{Content: `{"ok": true}`}},
	}}

	_, retried, err := CallWithRetry(context.Background(), client, CompletionRequest{}, 800, 1200, "roles extraction")

	assert.False(t, retried)
	assert.ErrorIs(t, err, transportErr)
	assert.Len(t, client.requests, 1, "transport failures must not consume the retry")
}

func TestCallWithRetry_SchemaValidation(t *testing.T) {
	// Valid JSON that does not satisfy the named schema triggers the retry;
	// a conforming second answer goes through.
	client := &scriptedClient{responses: []scriptedResponse{
		{resp: &CompletionResponse{Content: `{"unexpected": "shape"}`}},
		{resp: &CompletionResponse{Content: `{"roles": []}`}},
	}}

	req := CompletionRequest{Schema: "roles"}
	content, retried, err := CallWithRetry(context.Background(), client, req, 800, 1200, "roles extraction")

	require.NoError(t, err)
	assert.True(t, retried)
	assert.Equal(t, `{"roles": []}`, content)
}

func TestCallWithRetry_SchemaValidationFailsTwice(t *testing.T) {
	client := &scriptedClient{responses: []scriptedResponse{
		{resp: &CompletionResponse{Content: `{"unexpected": "shape"}`}},
		{resp: &CompletionResponse{Content: `{"still": "wrong"}`}},
	}}

	_, _, err := CallWithRetry(context.Background(), client, CompletionRequest{Schema: "roles"}, 800, 1200, "roles extraction")

	var malformedErr *MalformedOutputError
	require.ErrorAs(t, err, &malformedErr)
}
