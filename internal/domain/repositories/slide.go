package repositories

import (
	"context"

	"pitchforge/internal/domain/models"
)

// SlideRepository defines data access operations for slides
type SlideRepository interface {
	// Create inserts a new slide and fills in its generated ID
	Create(ctx context.Context, slide *models.Slide) error

	// GetByID retrieves a slide by ID
	GetByID(ctx context.Context, id string) (*models.Slide, error)

	// ListByDeck retrieves all slides for a deck ordered ascending by order.
	// Callers still re-sort defensively: order values are not guaranteed
	// monotonic with insertion under concurrent edits.
	ListByDeck(ctx context.Context, deckID string) ([]models.Slide, error)

	// CountByDeck returns the number of slides in a deck
	CountByDeck(ctx context.Context, deckID string) (int, error)

	// UpdateFields patches only the supplied fields (nil means untouched)
	UpdateFields(ctx context.Context, id string, title, content *string) error

	// UpdateOrder sets the order of a single slide
	UpdateOrder(ctx context.Context, id string, order int) error

	// Delete removes a slide
	Delete(ctx context.Context, id string) error
}
