package repositories

import (
	"context"

	"pitchforge/internal/domain/models"
)

// MessageRepository defines data access operations for chat messages
type MessageRepository interface {
	// Create appends a message and fills in its generated ID
	Create(ctx context.Context, message *models.Message) error

	// ListByDeck retrieves all messages for a deck in chronological order
	ListByDeck(ctx context.Context, deckID string) ([]models.Message, error)

	// LatestByDeck retrieves the newest message for a deck, or nil
	LatestByDeck(ctx context.Context, deckID string) (*models.Message, error)

	// Delete removes a single message
	Delete(ctx context.Context, id string) error
}
