package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/services"
)

func newDeckFixture() (services.DeckService, *fakeDeckRepo, *fakeSlideRepo) {
	deckRepo := &fakeDeckRepo{}
	slideRepo := &fakeSlideRepo{}
	return NewDeckService(deckRepo, slideRepo, testLogger()), deckRepo, slideRepo
}

func TestCreateDeck(t *testing.T) {
	svc, repo, _ := newDeckFixture()

	deck, err := svc.CreateDeck(context.Background(), &services.CreateDeckRequest{
		UserID: "user-1",
		Title:  "  My Pitch  ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deck.ID == "" {
		t.Error("expected a generated ID")
	}
	if deck.Title != "My Pitch" {
		t.Errorf("title should be trimmed, got %q", deck.Title)
	}
	if deck.UserID != "user-1" {
		t.Errorf("owner: got %q", deck.UserID)
	}
	if len(repo.decks) != 1 {
		t.Errorf("expected 1 stored deck, got %d", len(repo.decks))
	}
}

func TestCreateDeck_Validation(t *testing.T) {
	svc, repo, _ := newDeckFixture()

	tests := []struct {
		name    string
		req     *services.CreateDeckRequest
		wantErr error
	}{
		{
			name:    "missing identity",
			req:     &services.CreateDeckRequest{Title: "x"},
			wantErr: domain.ErrUnauthorized,
		},
		{
			name:    "missing title",
			req:     &services.CreateDeckRequest{UserID: "user-1"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "title too long",
			req:     &services.CreateDeckRequest{UserID: "user-1", Title: strings.Repeat("a", 256)},
			wantErr: domain.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateDeck(context.Background(), tt.req); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if len(repo.decks) != 0 {
		t.Errorf("nothing should be stored, got %d", len(repo.decks))
	}
}

func TestGetDeck_OwnershipAndSlides(t *testing.T) {
	svc, _, slideRepo := newDeckFixture()

	deck, err := svc.CreateDeck(context.Background(), &services.CreateDeckRequest{UserID: "user-1", Title: "Deck"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Store slides out of order; the read must sort them
	slideRepo.Create(context.Background(), &models.Slide{DeckID: deck.ID, Title: "Second", Order: 2})
	slideRepo.Create(context.Background(), &models.Slide{DeckID: deck.ID, Title: "First", Order: 1})

	got, err := svc.GetDeck(context.Background(), deck.ID, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Slides) != 2 || got.Slides[0].Title != "First" || got.Slides[1].Title != "Second" {
		t.Errorf("slides not sorted by order: %+v", got.Slides)
	}

	// Wrong owner is forbidden, not not-found
	if _, err := svc.GetDeck(context.Background(), deck.ID, "intruder"); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	// Missing deck is not-found
	if _, err := svc.GetDeck(context.Background(), "00000000-0000-0000-0000-00000000dead", "user-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetDeckByStringID(t *testing.T) {
	svc, _, _ := newDeckFixture()

	deck, err := svc.CreateDeck(context.Background(), &services.CreateDeckRequest{UserID: "user-1", Title: "Deck"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Happy path resolves, including surrounding whitespace
	got, err := svc.GetDeckByStringID(context.Background(), "  "+deck.ID+"  ", "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || got.ID != deck.ID {
		t.Fatalf("expected deck %s, got %+v", deck.ID, got)
	}

	// Every failure mode resolves to nil, nil
	tests := []struct {
		name   string
		raw    string
		userID string
	}{
		{name: "empty id", raw: "", userID: "user-1"},
		{name: "whitespace id", raw: "   ", userID: "user-1"},
		{name: "malformed id", raw: "not-a-uuid", userID: "user-1"},
		{name: "unknown id", raw: "00000000-0000-0000-0000-00000000dead", userID: "user-1"},
		{name: "wrong owner", raw: deck.ID, userID: "intruder"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetDeckByStringID(context.Background(), tt.raw, tt.userID)
			if err != nil {
				t.Fatalf("must never error, got %v", err)
			}
			if got != nil {
				t.Errorf("expected nil deck, got %+v", got)
			}
		})
	}
}

func TestListDecks(t *testing.T) {
	svc, repo, _ := newDeckFixture()

	now := time.Now()
	repo.decks = []*models.Deck{
		{ID: "d1", UserID: "user-1", Title: "Old", CreatedAt: now.Add(-time.Hour)},
		{ID: "d2", UserID: "user-1", Title: "New", CreatedAt: now},
		{ID: "d3", UserID: "user-2", Title: "Other", CreatedAt: now},
	}

	decks, err := svc.ListDecks(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decks) != 2 {
		t.Fatalf("expected 2 decks, got %d", len(decks))
	}
	if decks[0].Title != "New" || decks[1].Title != "Old" {
		t.Errorf("expected newest first, got %+v", decks)
	}

	// Unauthenticated callers get an empty list
	decks, err = svc.ListDecks(context.Background(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(decks) != 0 {
		t.Errorf("expected empty list, got %+v", decks)
	}
}

func TestUpdateDeck(t *testing.T) {
	svc, _, _ := newDeckFixture()

	deck, err := svc.CreateDeck(context.Background(), &services.CreateDeckRequest{UserID: "user-1", Title: "Before"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateDeck(context.Background(), deck.ID, "user-1", &services.UpdateDeckRequest{Title: "After"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Title != "After" {
		t.Errorf("title: got %q", updated.Title)
	}
	if !updated.UpdatedAt.After(deck.UpdatedAt) && !updated.UpdatedAt.Equal(deck.UpdatedAt) {
		t.Errorf("updated_at must not go backwards")
	}

	// Rename is owner-only
	if _, err := svc.UpdateDeck(context.Background(), deck.ID, "intruder", &services.UpdateDeckRequest{Title: "Hijack"}); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}

	// Empty title rejected
	if _, err := svc.UpdateDeck(context.Background(), deck.ID, "user-1", &services.UpdateDeckRequest{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}
