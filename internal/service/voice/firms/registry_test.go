package firms

import "testing"

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firms := registry.List()
	if len(firms) == 0 {
		t.Fatal("expected a non-empty catalog")
	}
	for _, firm := range firms {
		if firm.Tag == "" || firm.Name == "" {
			t.Errorf("catalog entry missing tag or name: %+v", firm)
		}
	}
}

func TestRegistry_Get(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	firm, ok := registry.Get("sequoia")
	if !ok {
		t.Fatal("expected sequoia in the catalog")
	}
	if firm.Name != "Sequoia Capital" {
		t.Errorf("unexpected name: %q", firm.Name)
	}

	if _, ok := registry.Get("not-a-firm"); ok {
		t.Error("unknown tag should not resolve")
	}
}

func TestRegistry_DisplayName(t *testing.T) {
	registry, err := NewRegistry()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		tag  string
		want string
	}{
		{tag: "a16z", want: "Andreessen Horowitz"},
		{tag: "Some Unknown Fund", want: "Some Unknown Fund"},
	}

	for _, tt := range tests {
		if got := registry.DisplayName(tt.tag); got != tt.want {
			t.Errorf("DisplayName(%q): expected %q, got %q", tt.tag, tt.want, got)
		}
	}
}
