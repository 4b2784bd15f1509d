package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pitchforge/internal/config"
	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/repositories"
	"pitchforge/internal/domain/services"
	"pitchforge/internal/events"
)

// messageService implements the MessageService interface
type messageService struct {
	messageRepo repositories.MessageRepository
	publisher   events.Publisher
	logger      *slog.Logger
}

// NewMessageService creates a new message service
func NewMessageService(
	messageRepo repositories.MessageRepository,
	publisher events.Publisher,
	logger *slog.Logger,
) services.MessageService {
	return &messageService{
		messageRepo: messageRepo,
		publisher:   publisher,
		logger:      logger,
	}
}

// SendMessage appends a message with a server-assigned timestamp
func (s *messageService) SendMessage(ctx context.Context, req *services.SendMessageRequest) (*models.Message, error) {
	if err := s.validateSendRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	message := &models.Message{
		DeckID:    req.DeckID,
		Role:      req.Role,
		Content:   req.Content,
		Timestamp: time.Now(),
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	s.publisher.Publish(events.Event{
		DeckID:   message.DeckID,
		Type:     events.TypeMessageSent,
		EntityID: message.ID,
	})

	return message, nil
}

// GetMessages returns the deck's transcript in chronological order
func (s *messageService) GetMessages(ctx context.Context, deckID string) ([]models.Message, error) {
	return s.messageRepo.ListByDeck(ctx, deckID)
}

// GetLatestMessage returns the newest message for a deck, or nil
func (s *messageService) GetLatestMessage(ctx context.Context, deckID string) (*models.Message, error) {
	return s.messageRepo.LatestByDeck(ctx, deckID)
}

// ClearChatHistory deletes every message for a deck one record at a time.
// A failure mid-sequence leaves the history partially cleared.
func (s *messageService) ClearChatHistory(ctx context.Context, deckID string) error {
	messages, err := s.messageRepo.ListByDeck(ctx, deckID)
	if err != nil {
		return err
	}

	for _, message := range messages {
		if err := s.messageRepo.Delete(ctx, message.ID); err != nil {
			return fmt.Errorf("clear message %s: %w", message.ID, err)
		}
	}

	s.publisher.Publish(events.Event{
		DeckID: deckID,
		Type:   events.TypeMessagesCleared,
	})

	s.logger.Info("chat history cleared", "deck_id", deckID, "deleted", len(messages))

	return nil
}

// validateSendRequest validates a send message request
func (s *messageService) validateSendRequest(req *services.SendMessageRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.DeckID, validation.Required),
		validation.Field(&req.Role, validation.Required, validation.In(models.RoleUser, models.RoleAssistant)),
		validation.Field(&req.Content, validation.Required, validation.Length(1, config.MaxMessageLength)),
	)
}
