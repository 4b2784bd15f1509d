package repositories

import (
	"context"

	"pitchforge/internal/domain/models"
)

// DeckRepository defines data access operations for decks
type DeckRepository interface {
	// Create inserts a new deck and fills in its generated ID
	Create(ctx context.Context, deck *models.Deck) error

	// GetByID retrieves a deck by ID regardless of owner.
	// Ownership checks belong to the service layer so that a wrong-owner
	// read can be reported as forbidden rather than not-found.
	GetByID(ctx context.Context, id string) (*models.Deck, error)

	// ListByUser retrieves all decks owned by a user, newest first
	ListByUser(ctx context.Context, userID string) ([]models.Deck, error)

	// Update persists a deck's title and updated_at timestamp
	Update(ctx context.Context, deck *models.Deck) error
}
