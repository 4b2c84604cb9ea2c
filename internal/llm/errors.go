package llm

import "fmt"

// TruncatedOutputError indicates a stage output still hit the token ceiling
// after the enlarged retry budget.
type TruncatedOutputError struct {
	Label     string
	MaxTokens int32
}

func (e *TruncatedOutputError) Error() string {
	return fmt.Sprintf("%s output truncated at %d tokens even after retry", e.Label, e.MaxTokens)
}

// MalformedOutputError indicates a stage output failed JSON parsing or schema
// validation on both attempts.
type MalformedOutputError struct {
	Label   string
	Message string
	Cause   error
}

func (e *MalformedOutputError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s produced malformed output: %s: %v", e.Label, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s produced malformed output: %s", e.Label, e.Message)
}

func (e *MalformedOutputError) Unwrap() error {
	return e.Cause
}

// GenerationError indicates a provider or transport failure. These are never
// retried by the wrapper; the caller decides whether to surface or repeat.
type GenerationError struct {
	Provider Provider
	Message  string
	Cause    error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s generation failed: %s: %v", e.Provider, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s generation failed: %s", e.Provider, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
