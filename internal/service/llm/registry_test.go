package llm

import (
	"context"
	"testing"

	domainllm "pitchforge/internal/domain/services/llm"
)

type staticProvider struct {
	name string
}

func (p *staticProvider) Name() string                  { return p.name }
func (p *staticProvider) SupportsModel(model string) bool { return true }
func (p *staticProvider) GenerateResponse(ctx context.Context, req *domainllm.GenerateRequest) (*domainllm.GenerateResponse, error) {
	return &domainllm.GenerateResponse{Text: "ok", Model: req.Model}, nil
}

func TestProviderNameForModel(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		want     string
		wantErr  bool
	}{
		{name: "gpt model", model: "gpt-4", want: "openai"},
		{name: "gpt-4o-mini", model: "gpt-4o-mini", want: "openai"},
		{name: "o1 model", model: "o1-preview", want: "openai"},
		{name: "claude model", model: "claude-haiku-4-5", want: "anthropic"},
		{name: "lorem model", model: "lorem-fast", want: "lorem"},
		{name: "empty string", model: "", wantErr: true},
		{name: "unknown prefix", model: "unknown-model-123", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := providerNameForModel(tt.model)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for model %q", tt.model)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected provider %q, got %q", tt.want, got)
			}
		})
	}
}

func TestProviderRegistry_RoutesAndOverrides(t *testing.T) {
	registry := NewProviderRegistry()
	registry.Register(&staticProvider{name: "openai"})

	provider, err := registry.ProviderForModel("gpt-4")
	if err != nil {
		t.Fatalf("ProviderForModel failed: %v", err)
	}
	if provider.Name() != "openai" {
		t.Errorf("expected openai, got %s", provider.Name())
	}

	if _, err := registry.ProviderForModel("claude-haiku-4-5"); err == nil {
		t.Error("expected error for unconfigured provider")
	}

	// Re-registration replaces, which is how tests stub real providers
	replacement := &staticProvider{name: "openai"}
	registry.Register(replacement)
	provider, err = registry.ProviderForModel("gpt-4")
	if err != nil {
		t.Fatalf("ProviderForModel after override failed: %v", err)
	}
	if provider != domainllm.Provider(replacement) {
		t.Error("expected replacement provider instance")
	}
}
