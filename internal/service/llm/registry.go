package llm

import (
	"fmt"
	"strings"
	"sync"

	domainllm "pitchforge/internal/domain/services/llm"
)

// ProviderRegistry routes model names to the provider that serves them and
// caches provider instances for reuse.
type ProviderRegistry struct {
	mu        sync.RWMutex
	providers map[string]domainllm.Provider
}

// NewProviderRegistry creates an empty registry.
func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{
		providers: make(map[string]domainllm.Provider),
	}
}

// Register adds a provider under its own name. Later registrations of the
// same name replace earlier ones, which lets tests override a real
// provider with a stub.
func (r *ProviderRegistry) Register(provider domainllm.Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[provider.Name()] = provider
}

// ProviderForModel resolves a model name to a registered provider.
//
// Routing is by model-name prefix:
//   - "gpt-*", "o1-*", "o3-*" → openai
//   - "claude-*"             → anthropic
//   - "lorem-*"              → lorem
func (r *ProviderRegistry) ProviderForModel(model string) (domainllm.Provider, error) {
	name, err := providerNameForModel(model)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	provider, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider '%s' is not configured (model '%s')", name, model)
	}

	return provider, nil
}

// providerNameForModel extracts the provider name from a model string.
func providerNameForModel(model string) (string, error) {
	switch {
	case model == "":
		return "", fmt.Errorf("model cannot be empty")
	case strings.HasPrefix(model, "gpt-"), strings.HasPrefix(model, "o1-"), strings.HasPrefix(model, "o3-"):
		return "openai", nil
	case strings.HasPrefix(model, "claude-"):
		return "anthropic", nil
	case strings.HasPrefix(model, "lorem-"):
		return "lorem", nil
	default:
		return "", fmt.Errorf("cannot determine provider for model '%s'", model)
	}
}
