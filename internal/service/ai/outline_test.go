package ai

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"pitchforge/internal/config"
	"pitchforge/internal/domain"
	"pitchforge/internal/domain/services"
)

func newOutlineFixture(provider *scriptedProvider) (*outlineService, *fakeSlideService) {
	slides := &fakeSlideService{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewOutlineService(slides, provider, "gpt-4", logger).(*outlineService)
	return svc, slides
}

func outlineRequest() *services.OutlineRequest {
	return &services.OutlineRequest{
		DeckID:      "deck-1",
		Title:       "Acme Seed Deck",
		StartupName: "Acme",
		Overview:    "Acme automates invoice reconciliation for SMBs.",
	}
}

func TestGenerateDeckOutline(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		`{"slides": [
			{"title": "Problem", "content": "- SMBs reconcile invoices by hand\n- 20 hours lost per week"},
			{"title": "Solution", "content": "- Automated matching\n- One-click export"}
		]}`,
	}}
	svc, slides := newOutlineFixture(provider)

	result, err := svc.GenerateDeckOutline(context.Background(), outlineRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success || result.SlideCount != 2 {
		t.Fatalf("expected 2 slides, got %+v", result)
	}
	if len(result.SlideIDs) != 2 {
		t.Fatalf("expected 2 slide IDs, got %d", len(result.SlideIDs))
	}

	if len(slides.slides) != 2 {
		t.Fatalf("expected 2 created slides, got %d", len(slides.slides))
	}
	if slides.slides[0].Title != "Problem" || slides.slides[0].Order != 1 {
		t.Errorf("slide 0: %+v", slides.slides[0])
	}
	if slides.slides[1].Title != "Solution" || slides.slides[1].Order != 2 {
		t.Errorf("slide 1: %+v", slides.slides[1])
	}
}

func TestGenerateDeckOutline_JSONWrappedInProse(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		"Here is your outline:\n```json\n" +
			`{"slides": [{"title": "Traction", "content": "- 40% MoM growth"}]}` +
			"\n```\nLet me know if you want changes.",
	}}
	svc, slides := newOutlineFixture(provider)

	result, err := svc.GenerateDeckOutline(context.Background(), outlineRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SlideCount != 1 || slides.slides[0].Title != "Traction" {
		t.Errorf("expected the fenced JSON to parse, got %+v", result)
	}
}

func TestGenerateDeckOutline_NoJSON(t *testing.T) {
	provider := &scriptedProvider{replies: []string{"I cannot produce an outline right now."}}
	svc, slides := newOutlineFixture(provider)

	_, err := svc.GenerateDeckOutline(context.Background(), outlineRequest())
	if !errors.Is(err, domain.ErrOutlineParse) {
		t.Fatalf("expected ErrOutlineParse, got %v", err)
	}
	if len(slides.slides) != 0 {
		t.Errorf("no slides should be created, got %d", len(slides.slides))
	}
}

func TestGenerateDeckOutline_InvalidJSON(t *testing.T) {
	provider := &scriptedProvider{replies: []string{`{"slides": [{"title": "Broken",]}`}}
	svc, slides := newOutlineFixture(provider)

	_, err := svc.GenerateDeckOutline(context.Background(), outlineRequest())
	if !errors.Is(err, domain.ErrOutlineFormat) {
		t.Fatalf("expected ErrOutlineFormat, got %v", err)
	}
	if len(slides.slides) != 0 {
		t.Errorf("no slides should be created, got %d", len(slides.slides))
	}
}

func TestGenerateDeckOutline_AllSlidesEmpty(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		`{"slides": [{"title": "", "content": ""}, {"title": "  ", "content": "x"}, {"title": "x", "content": "   "}]}`,
	}}
	svc, slides := newOutlineFixture(provider)

	_, err := svc.GenerateDeckOutline(context.Background(), outlineRequest())
	if !errors.Is(err, domain.ErrEmptyOutline) {
		t.Fatalf("expected ErrEmptyOutline, got %v", err)
	}
	if len(slides.slides) != 0 {
		t.Errorf("no slides should be created, got %d", len(slides.slides))
	}
}

func TestGenerateDeckOutline_SkipsBlankEntries(t *testing.T) {
	provider := &scriptedProvider{replies: []string{
		`{"slides": [{"title": "", "content": "orphan"}, {"title": "Market", "content": "- $12B TAM"}]}`,
	}}
	svc, slides := newOutlineFixture(provider)

	result, err := svc.GenerateDeckOutline(context.Background(), outlineRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.SlideCount != 1 || slides.slides[0].Title != "Market" {
		t.Errorf("blank entry must be dropped, got %+v", result)
	}
}

func TestGenerateDeckOutline_ProviderFailurePropagates(t *testing.T) {
	provider := &scriptedProvider{err: errors.New("upstream timeout")}
	svc, slides := newOutlineFixture(provider)

	_, err := svc.GenerateDeckOutline(context.Background(), outlineRequest())
	if err == nil {
		t.Fatal("provider failure must propagate")
	}
	if len(slides.slides) != 0 {
		t.Errorf("no slides should be created, got %d", len(slides.slides))
	}
}

func TestGenerateDeckOutline_TruncatesLongTitles(t *testing.T) {
	long := strings.Repeat("a", config.MaxSlideTitleLength+40)
	provider := &scriptedProvider{replies: []string{
		`{"slides": [{"title": "` + long + `", "content": "body"}]}`,
	}}
	svc, slides := newOutlineFixture(provider)

	if _, err := svc.GenerateDeckOutline(context.Background(), outlineRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len([]rune(slides.slides[0].Title)); got != config.MaxSlideTitleLength {
		t.Errorf("title length: expected %d, got %d", config.MaxSlideTitleLength, got)
	}
}

func TestGenerateDeckOutline_ValidatesRequest(t *testing.T) {
	provider := &scriptedProvider{replies: []string{"unused"}}
	svc, _ := newOutlineFixture(provider)

	tests := []struct {
		name string
		req  *services.OutlineRequest
	}{
		{name: "missing deck", req: &services.OutlineRequest{Title: "t", StartupName: "s", Overview: "o"}},
		{name: "missing title", req: &services.OutlineRequest{DeckID: "d", StartupName: "s", Overview: "o"}},
		{name: "missing startup name", req: &services.OutlineRequest{DeckID: "d", Title: "t", Overview: "o"}},
		{name: "missing overview", req: &services.OutlineRequest{DeckID: "d", Title: "t", StartupName: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.GenerateDeckOutline(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}

	if len(provider.requests) != 0 {
		t.Errorf("invalid requests must not reach the provider, got %d calls", len(provider.requests))
	}
}
