package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"pitchforge/internal/config"
	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/repositories"
	"pitchforge/internal/domain/services"
)

// deckService implements the DeckService interface
type deckService struct {
	deckRepo  repositories.DeckRepository
	slideRepo repositories.SlideRepository
	logger    *slog.Logger
}

// NewDeckService creates a new deck service
func NewDeckService(
	deckRepo repositories.DeckRepository,
	slideRepo repositories.SlideRepository,
	logger *slog.Logger,
) services.DeckService {
	return &deckService{
		deckRepo:  deckRepo,
		slideRepo: slideRepo,
		logger:    logger,
	}
}

// CreateDeck creates a new deck owned by the requesting user
func (s *deckService) CreateDeck(ctx context.Context, req *services.CreateDeckRequest) (*models.Deck, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: missing identity", domain.ErrUnauthorized)
	}
	if err := s.validateCreateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	now := time.Now()
	deck := &models.Deck{
		UserID:    req.UserID,
		Title:     strings.TrimSpace(req.Title),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.deckRepo.Create(ctx, deck); err != nil {
		return nil, err
	}

	s.logger.Info("deck created",
		"id", deck.ID,
		"title", deck.Title,
		"user_id", req.UserID,
	)

	return deck, nil
}

// GetDeck retrieves a deck with its slides, enforcing ownership
func (s *deckService) GetDeck(ctx context.Context, id, userID string) (*models.DeckWithSlides, error) {
	deck, err := s.deckRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deck.UserID != userID {
		return nil, fmt.Errorf("deck %s: %w", id, domain.ErrForbidden)
	}

	slides, err := s.slideRepo.ListByDeck(ctx, id)
	if err != nil {
		return nil, err
	}
	sortSlides(slides)

	return &models.DeckWithSlides{Deck: *deck, Slides: slides}, nil
}

// GetDeckByStringID is the defensive lookup for loosely-typed ids coming
// from routing or query strings. Every failure mode resolves to nil so the
// caller gets a single branch to handle.
func (s *deckService) GetDeckByStringID(ctx context.Context, raw, userID string) (*models.DeckWithSlides, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if _, err := uuid.Parse(raw); err != nil {
		return nil, nil
	}

	deck, err := s.GetDeck(ctx, raw, userID)
	if err != nil {
		return nil, nil
	}

	return deck, nil
}

// ListDecks retrieves all decks owned by a user, newest first.
// An unauthenticated caller gets an empty list, not an error.
func (s *deckService) ListDecks(ctx context.Context, userID string) ([]models.Deck, error) {
	if userID == "" {
		return []models.Deck{}, nil
	}

	return s.deckRepo.ListByUser(ctx, userID)
}

// UpdateDeck renames a deck. Ownership is enforced here the same way
// GetDeck enforces it.
func (s *deckService) UpdateDeck(ctx context.Context, id, userID string, req *services.UpdateDeckRequest) (*models.Deck, error) {
	if err := s.validateUpdateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	deck, err := s.deckRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if deck.UserID != userID {
		return nil, fmt.Errorf("deck %s: %w", id, domain.ErrForbidden)
	}

	deck.Title = strings.TrimSpace(req.Title)
	deck.UpdatedAt = time.Now()

	if err := s.deckRepo.Update(ctx, deck); err != nil {
		return nil, err
	}

	s.logger.Info("deck updated",
		"id", deck.ID,
		"title", deck.Title,
		"user_id", userID,
	)

	return deck, nil
}

// validateCreateRequest validates a create deck request
func (s *deckService) validateCreateRequest(req *services.CreateDeckRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.UserID, validation.Required),
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxDeckTitleLength),
		),
	)
}

// validateUpdateRequest validates a rename request
func (s *deckService) validateUpdateRequest(req *services.UpdateDeckRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.Title,
			validation.Required,
			validation.Length(1, config.MaxDeckTitleLength),
		),
	)
}
