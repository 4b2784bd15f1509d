package services

import (
	"context"

	"pitchforge/internal/domain/models"
)

// CreateDeckRequest represents a request to create a deck
type CreateDeckRequest struct {
	UserID string `json:"user_id"`
	Title  string `json:"title"`
}

// UpdateDeckRequest represents a request to rename a deck
type UpdateDeckRequest struct {
	Title string `json:"title"`
}

// DeckService defines business logic operations for decks
type DeckService interface {
	// CreateDeck creates a new deck owned by the requesting user
	CreateDeck(ctx context.Context, req *CreateDeckRequest) (*models.Deck, error)

	// GetDeck retrieves a deck with its slides ordered ascending.
	// Returns ErrNotFound if the deck does not exist and ErrForbidden if
	// the caller does not own it.
	GetDeck(ctx context.Context, id, userID string) (*models.DeckWithSlides, error)

	// GetDeckByStringID is the defensive variant used when the id arrives
	// from a routing/query-string context. It returns nil (never an error)
	// on any resolution failure: malformed id, missing record, wrong owner.
	GetDeckByStringID(ctx context.Context, raw, userID string) (*models.DeckWithSlides, error)

	// ListDecks retrieves all decks owned by a user, newest first
	ListDecks(ctx context.Context, userID string) ([]models.Deck, error)

	// UpdateDeck renames a deck and bumps updated_at
	UpdateDeck(ctx context.Context, id, userID string, req *UpdateDeckRequest) (*models.Deck, error)
}
