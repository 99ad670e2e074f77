// Package integrations adapts external services to the narrow interfaces the
// core pipeline consumes.
package integrations

import (
	"context"
	"fmt"

	"repocrew/internal/provider"
)

// LLMCompleter wraps an LLMProvider and model into the crew-facing text
// generation interface.
type LLMCompleter struct {
	provider  provider.LLMProvider
	model     string
	maxTokens int
}

// NewLLMCompleter creates a new LLMCompleter. maxTokens bounds every
// generation; values below 1 fall back to 4096.
func NewLLMCompleter(p provider.LLMProvider, model string, maxTokens int) *LLMCompleter {
	if maxTokens < 1 {
		maxTokens = 4096
	}
	return &LLMCompleter{provider: p, model: model, maxTokens: maxTokens}
}

// Generate sends one persona and prompt to the LLM and returns the full
// response text.
func (c *LLMCompleter) Generate(ctx context.Context, system, prompt string) (string, error) {
	text, err := c.provider.Complete(ctx, provider.CompletionRequest{
		Model:     c.model,
		System:    system,
		Prompt:    prompt,
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("llm generate: %w", err)
	}
	return text, nil
}
