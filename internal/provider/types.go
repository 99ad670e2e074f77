package provider

import "context"

// LLMProvider defines the interface for single-shot text generation against
// an LLM backend.
type LLMProvider interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest represents one completion request to an LLM.
type CompletionRequest struct {
	Model       string
	System      string
	Prompt      string
	MaxTokens   int
	Temperature *float64
}
