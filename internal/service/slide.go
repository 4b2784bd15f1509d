package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pitchforge/internal/config"
	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/repositories"
	"pitchforge/internal/domain/services"
	"pitchforge/internal/events"
)

// slideService implements the SlideService interface
type slideService struct {
	slideRepo repositories.SlideRepository
	deckRepo  repositories.DeckRepository
	publisher events.Publisher
	logger    *slog.Logger
}

// NewSlideService creates a new slide service
func NewSlideService(
	slideRepo repositories.SlideRepository,
	deckRepo repositories.DeckRepository,
	publisher events.Publisher,
	logger *slog.Logger,
) services.SlideService {
	return &slideService{
		slideRepo: slideRepo,
		deckRepo:  deckRepo,
		publisher: publisher,
		logger:    logger,
	}
}

// CreateSlide inserts a slide at the end of the deck.
//
// Order assignment is count+1 with no isolation against a concurrent
// create on the same deck; two simultaneous creations can assign the same
// order. Tolerated: order is only a sort hint.
func (s *slideService) CreateSlide(ctx context.Context, req *services.CreateSlideRequest) (*models.Slide, error) {
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	if _, err := s.deckRepo.GetByID(ctx, req.DeckID); err != nil {
		return nil, err
	}

	count, err := s.slideRepo.CountByDeck(ctx, req.DeckID)
	if err != nil {
		return nil, err
	}

	slideType := req.Type
	if slideType == "" {
		slideType = models.SlideTypeCustom
	}

	slide := &models.Slide{
		DeckID:    req.DeckID,
		Title:     req.Title,
		Content:   req.Content,
		Type:      slideType,
		Order:     count + 1,
		CreatedAt: time.Now(),
	}

	if err := s.slideRepo.Create(ctx, slide); err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{
		DeckID:   slide.DeckID,
		Type:     events.TypeSlideCreated,
		EntityID: slide.ID,
	})

	s.logger.Info("slide created",
		"id", slide.ID,
		"deck_id", slide.DeckID,
		"title", slide.Title,
		"order", slide.Order,
	)

	return slide, nil
}

// GetSlide retrieves a single slide
func (s *slideService) GetSlide(ctx context.Context, id string) (*models.Slide, error) {
	return s.slideRepo.GetByID(ctx, id)
}

// ListSlides retrieves a deck's slides sorted ascending by order.
// The explicit sort is deliberate even though the store orders the query:
// order values are not guaranteed monotonic with insertion.
func (s *slideService) ListSlides(ctx context.Context, deckID string) ([]models.Slide, error) {
	slides, err := s.slideRepo.ListByDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}
	sortSlides(slides)

	return slides, nil
}

// UpdateSlide applies a partial patch. A request with neither field is a
// valid no-op and performs no write.
func (s *slideService) UpdateSlide(ctx context.Context, id string, req *services.UpdateSlideRequest) (*models.Slide, error) {
	if req.Title == nil && req.Content == nil {
		return s.slideRepo.GetByID(ctx, id)
	}

	if err := s.slideRepo.UpdateFields(ctx, id, req.Title, req.Content); err != nil {
		return nil, err
	}

	slide, err := s.slideRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{
		DeckID:   slide.DeckID,
		Type:     events.TypeSlideUpdated,
		EntityID: slide.ID,
	})

	return slide, nil
}

// DeleteSlide removes a slide unconditionally
func (s *slideService) DeleteSlide(ctx context.Context, id string) error {
	slide, err := s.slideRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.slideRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publisher.Publish(events.Event{
		DeckID:   slide.DeckID,
		Type:     events.TypeSlideDeleted,
		EntityID: id,
	})

	s.logger.Info("slide deleted", "id", id, "deck_id", slide.DeckID)

	return nil
}

// ReorderSlides applies each order pair as an independent write. A failure
// mid-sequence leaves earlier pairs applied; there is no rollback.
func (s *slideService) ReorderSlides(ctx context.Context, deckID string, orders []services.SlideOrder) error {
	for _, pair := range orders {
		if err := s.slideRepo.UpdateOrder(ctx, pair.SlideID, pair.NewOrder); err != nil {
			return fmt.Errorf("reorder slide %s: %w", pair.SlideID, err)
		}
	}

	s.publisher.Publish(events.Event{
		DeckID: deckID,
		Type:   events.TypeSlidesReordered,
	})

	return nil
}

// validateCreateRequest validates a create slide request
func (s *slideService) validateCreateRequest(req *services.CreateSlideRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.DeckID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, config.MaxDeckTitleLength)),
		validation.Field(&req.Type, validation.By(validateSlideType)),
	)
}

// validateSlideType accepts the empty string (defaulted to custom) or a
// declared slide type
func validateSlideType(value interface{}) error {
	slideType, ok := value.(models.SlideType)
	if !ok {
		return fmt.Errorf("type must be a slide type")
	}
	if slideType == "" || slideType.Valid() {
		return nil
	}
	return fmt.Errorf("unknown slide type %q", slideType)
}

// sortSlides sorts ascending by order, stable so equal orders keep their
// store sequence
func sortSlides(slides []models.Slide) {
	sort.SliceStable(slides, func(i, j int) bool {
		return slides[i].Order < slides[j].Order
	})
}
