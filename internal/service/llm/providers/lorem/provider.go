// Package lorem is a mock provider that generates lorem ipsum text.
// Used for development and tests without requiring real API keys.
package lorem

import (
	"context"
	"fmt"
	"strings"

	loremgen "github.com/bozaro/golorem"

	domainllm "pitchforge/internal/domain/services/llm"
)

// Provider generates placeholder responses locally.
type Provider struct {
	generator *loremgen.Lorem
}

// NewProvider creates a new lorem ipsum provider.
func NewProvider() *Provider {
	return &Provider{
		generator: loremgen.New(),
	}
}

// Name returns the provider name.
func (p *Provider) Name() string {
	return "lorem"
}

// SupportsModel returns true if the model name starts with "lorem-".
// Example models: "lorem-fast", "lorem-test"
func (p *Provider) SupportsModel(model string) bool {
	return strings.HasPrefix(model, "lorem-")
}

// GenerateResponse generates a complete lorem ipsum response.
func (p *Provider) GenerateResponse(ctx context.Context, req *domainllm.GenerateRequest) (*domainllm.GenerateResponse, error) {
	if !p.SupportsModel(req.Model) {
		return nil, fmt.Errorf("model '%s' is not supported by lorem provider", req.Model)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = 4096
	}

	// Estimate: 1 token ≈ 4 characters
	text := p.generateText(maxTokens * 4)

	return &domainllm.GenerateResponse{
		Text:  text,
		Model: req.Model,
	}, nil
}

// generateText produces sentences until roughly targetChars characters.
func (p *Provider) generateText(targetChars int) string {
	var sb strings.Builder
	for sb.Len() < targetChars {
		sb.WriteString(p.generator.Sentence(5, 15))
		sb.WriteString(" ")
	}
	return strings.TrimSpace(sb.String())
}
