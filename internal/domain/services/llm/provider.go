package llm

import (
	"context"
)

// ChatMessage is a single entry of the conversation sent to a provider.
// Role is "system", "user" or "assistant".
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateRequest contains the parameters for a text-generation call.
type GenerateRequest struct {
	// Model is the model identifier (e.g. "gpt-4", "claude-haiku-4-5")
	Model string

	// Messages is the ordered conversation, system prompt first.
	Messages []ChatMessage

	// Temperature is the sampling temperature.
	Temperature float64

	// MaxTokens is the output token budget.
	MaxTokens int
}

// GenerateResponse contains the provider's reply.
type GenerateResponse struct {
	// Text is the generated text. Empty text is a provider-side failure
	// and is surfaced as an error by adapters, never as an empty reply.
	Text string

	// Model is the model that was used (may differ from request if aliased)
	Model string
}

// Provider defines the interface that all text-generation providers
// implement. The abstraction keeps the orchestrators agnostic to which
// vendor serves a given model and lets tests substitute a scripted fake.
type Provider interface {
	// GenerateResponse performs one synchronous generation call.
	GenerateResponse(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error)

	// Name returns the provider name (e.g. "openai", "anthropic")
	Name() string

	// SupportsModel returns true if the provider serves the given model.
	SupportsModel(model string) bool
}
