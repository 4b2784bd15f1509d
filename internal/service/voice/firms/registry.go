// Package firms holds the catalog of VC firm personas available to voice
// sessions. The catalog ships embedded in the binary so a deploy is the
// only way it changes.
package firms

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/firms.yaml
var configFiles embed.FS

// Firm describes one investor persona.
type Firm struct {
	// Tag is the stable identifier clients send as firm_tag.
	Tag string `yaml:"tag"`
	// Name is the display name interpolated into the persona prompt.
	Name string `yaml:"name"`
	// Focus is a short sector description, e.g. "enterprise SaaS".
	Focus string `yaml:"focus"`
	// Stage is the firm's typical investment stage.
	Stage string `yaml:"stage"`
}

type firmCatalog struct {
	Firms []Firm `yaml:"firms"`
}

// Registry resolves firm tags to personas.
type Registry struct {
	firms map[string]*Firm
	order []string
	mu    sync.RWMutex
}

// NewRegistry loads the embedded firm catalog.
func NewRegistry() (*Registry, error) {
	data, err := configFiles.ReadFile("config/firms.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read firm catalog: %w", err)
	}

	var catalog firmCatalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to unmarshal firm catalog: %w", err)
	}

	r := &Registry{firms: make(map[string]*Firm, len(catalog.Firms))}
	for i := range catalog.Firms {
		firm := &catalog.Firms[i]
		if firm.Tag == "" {
			return nil, fmt.Errorf("firm catalog entry %d has no tag", i)
		}
		if _, exists := r.firms[firm.Tag]; exists {
			return nil, fmt.Errorf("duplicate firm tag %q", firm.Tag)
		}
		r.firms[firm.Tag] = firm
		r.order = append(r.order, firm.Tag)
	}

	return r, nil
}

// Get returns the firm for a tag, or false when the tag is unknown.
// Unknown tags are not an error: sessions may name any firm, the catalog
// only enriches the ones we know about.
func (r *Registry) Get(tag string) (*Firm, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	firm, ok := r.firms[tag]
	return firm, ok
}

// DisplayName returns the catalog name for a tag, falling back to the raw
// tag for firms outside the catalog.
func (r *Registry) DisplayName(tag string) string {
	if firm, ok := r.Get(tag); ok {
		return firm.Name
	}
	return tag
}

// List returns all cataloged firms in catalog order.
func (r *Registry) List() []Firm {
	r.mu.RLock()
	defer r.mu.RUnlock()

	firms := make([]Firm, 0, len(r.order))
	for _, tag := range r.order {
		firms = append(firms, *r.firms[tag])
	}
	return firms
}
