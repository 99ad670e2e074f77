package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config represents the top-level application configuration.
type Config struct {
	Provider ProviderConfig `toml:"provider"`
	GitHub   GitHubConfig   `toml:"github"`
	Pipeline PipelineConfig `toml:"pipeline"`
}

// ProviderConfig holds settings for AI provider selection and configuration.
type ProviderConfig struct {
	Default   string                   `toml:"default"`
	Model     string                   `toml:"model"`
	MaxTokens int                      `toml:"max_tokens"`
	Anthropic AnthropicProviderConfig  `toml:"anthropic"`
	Ollama    OllamaProviderConfig     `toml:"ollama"`
	OpenAI    []OpenAICompatibleConfig `toml:"openai_compatible"`
}

// AnthropicProviderConfig holds Anthropic-specific provider settings.
type AnthropicProviderConfig struct {
	APIKeySource string `toml:"api_key_source"`
	APIKey       string `toml:"api_key"`
}

// OllamaProviderConfig holds settings for a local Ollama server.
type OllamaProviderConfig struct {
	BaseURL string `toml:"base_url"`
}

// OpenAICompatibleConfig holds settings for an OpenAI-compatible provider.
type OpenAICompatibleConfig struct {
	Name         string            `toml:"name"`
	BaseURL      string            `toml:"base_url"`
	APIKeySource string            `toml:"api_key_source"`
	APIKey       string            `toml:"api_key"`
	ExtraHeaders map[string]string `toml:"extra_headers"`
}

// GitHubConfig holds settings for repository access. The token is optional;
// anonymous API calls work for public repositories at a lower rate limit.
type GitHubConfig struct {
	TokenSource string `toml:"token_source"`
	Token       string `toml:"token"`
}

// PipelineConfig holds settings for the review pipeline.
type PipelineConfig struct {
	StagingDir string `toml:"staging_dir"`
	HistoryDB  string `toml:"history_db"`
}

// DefaultConfig returns a Config populated with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Provider: ProviderConfig{
			Default:   "anthropic",
			Model:     "claude-sonnet-4-5",
			MaxTokens: 4096,
			Anthropic: AnthropicProviderConfig{
				APIKeySource: "env",
			},
			Ollama: OllamaProviderConfig{
				BaseURL: "http://localhost:11434",
			},
		},
		GitHub: GitHubConfig{
			TokenSource: "env",
		},
	}
}

// Load reads a TOML config file from path, layered over DefaultConfig.
// A missing file is not an error; defaults are returned unchanged.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	return cfg, nil
}

// ResolveGitHubToken resolves the GitHub token per the configured source.
// An empty result means anonymous access; only a misconfigured "config"
// source is an error.
func (c *Config) ResolveGitHubToken() (string, error) {
	switch c.GitHub.TokenSource {
	case "", "env":
		return os.Getenv("GITHUB_TOKEN"), nil
	case "config":
		if c.GitHub.Token == "" {
			return "", fmt.Errorf("github token_source is 'config' but no token value provided")
		}
		return c.GitHub.Token, nil
	default:
		return "", fmt.Errorf("unknown github token_source: %q", c.GitHub.TokenSource)
	}
}
