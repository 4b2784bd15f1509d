package llm

import (
	"log/slog"

	"pitchforge/internal/config"
	"pitchforge/internal/service/llm/providers/anthropic"
	"pitchforge/internal/service/llm/providers/lorem"
	"pitchforge/internal/service/llm/providers/openai"
)

// SetupProviders builds the provider registry from configuration.
// Providers without credentials are simply not registered; the lorem
// provider is always available so dev environments work keyless.
func SetupProviders(cfg *config.Config, logger *slog.Logger) (*ProviderRegistry, error) {
	registry := NewProviderRegistry()

	if cfg.OpenAIAPIKey != "" || cfg.Environment != "prod" {
		provider, err := openai.NewProvider(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey)
		if err != nil {
			return nil, err
		}
		registry.Register(provider)
		logger.Info("provider available", "name", "openai", "models", "gpt-*, o1-*, o3-*")
	} else {
		logger.Warn("OPENAI_API_KEY not set - OpenAI provider not available")
	}

	if cfg.AnthropicAPIKey != "" {
		provider, err := anthropic.NewProvider(cfg.AnthropicAPIKey)
		if err != nil {
			return nil, err
		}
		registry.Register(provider)
		logger.Info("provider available", "name", "anthropic", "models", "claude-*")
	} else {
		logger.Warn("ANTHROPIC_API_KEY not set - Anthropic provider not available")
	}

	registry.Register(lorem.NewProvider())

	return registry, nil
}
