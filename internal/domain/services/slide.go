package services

import (
	"context"

	"pitchforge/internal/domain/models"
)

// CreateSlideRequest represents a request to create a slide
type CreateSlideRequest struct {
	DeckID  string           `json:"deck_id"`
	Title   string           `json:"title"`
	Content string           `json:"content"`
	Type    models.SlideType `json:"type"`
}

// UpdateSlideRequest represents a partial slide patch.
// Nil fields are left untouched; a request with neither field set is a
// valid no-op.
type UpdateSlideRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// SlideOrder pairs a slide with its new position
type SlideOrder struct {
	SlideID  string `json:"slide_id"`
	NewOrder int    `json:"new_order"`
}

// SlideService defines business logic operations for slides
type SlideService interface {
	// CreateSlide inserts a slide at the end of the deck (order = count+1)
	CreateSlide(ctx context.Context, req *CreateSlideRequest) (*models.Slide, error)

	// GetSlide retrieves a single slide
	GetSlide(ctx context.Context, id string) (*models.Slide, error)

	// ListSlides retrieves a deck's slides sorted ascending by order
	ListSlides(ctx context.Context, deckID string) ([]models.Slide, error)

	// UpdateSlide applies a partial patch
	UpdateSlide(ctx context.Context, id string, req *UpdateSlideRequest) (*models.Slide, error)

	// DeleteSlide removes a slide unconditionally
	DeleteSlide(ctx context.Context, id string) error

	// ReorderSlides applies each order pair as an independent write.
	// Not transactional: a failure mid-sequence leaves earlier pairs
	// applied and later ones not.
	ReorderSlides(ctx context.Context, deckID string, orders []SlideOrder) error
}
