package integrations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"repocrew/internal/provider"
)

type stubProvider struct {
	lastReq provider.CompletionRequest
	text    string
	err     error
}

func (s *stubProvider) Complete(_ context.Context, req provider.CompletionRequest) (string, error) {
	s.lastReq = req
	return s.text, s.err
}

func TestGenerate(t *testing.T) {
	stub := &stubProvider{text: "answer"}
	c := NewLLMCompleter(stub, "claude-sonnet-4-5", 2048)

	text, err := c.Generate(context.Background(), "persona", "question")
	require.NoError(t, err)
	assert.Equal(t, "answer", text)

	assert.Equal(t, "claude-sonnet-4-5", stub.lastReq.Model)
	assert.Equal(t, "persona", stub.lastReq.System)
	assert.Equal(t, "question", stub.lastReq.Prompt)
	assert.Equal(t, 2048, stub.lastReq.MaxTokens)
}

func TestGenerateDefaultMaxTokens(t *testing.T) {
	stub := &stubProvider{}
	c := NewLLMCompleter(stub, "m", 0)

	_, err := c.Generate(context.Background(), "", "p")
	require.NoError(t, err)
	assert.Equal(t, 4096, stub.lastReq.MaxTokens)
}

func TestGenerateWrapsProviderError(t *testing.T) {
	stub := &stubProvider{err: errors.New("backend down")}
	c := NewLLMCompleter(stub, "m", 100)

	_, err := c.Generate(context.Background(), "", "p")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm generate")
	assert.Contains(t, err.Error(), "backend down")
}
