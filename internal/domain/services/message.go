package services

import (
	"context"

	"pitchforge/internal/domain/models"
)

// SendMessageRequest represents a request to append a chat message
type SendMessageRequest struct {
	DeckID  string `json:"deck_id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

// MessageService defines business logic operations for the per-deck chat log
type MessageService interface {
	// SendMessage appends a message with a server-assigned timestamp
	SendMessage(ctx context.Context, req *SendMessageRequest) (*models.Message, error)

	// GetMessages returns the deck's transcript in chronological order.
	// This exact list, mapped to {role, content}, is the context window
	// sent to the text-generation provider.
	GetMessages(ctx context.Context, deckID string) ([]models.Message, error)

	// GetLatestMessage returns the newest message for a deck, or nil
	GetLatestMessage(ctx context.Context, deckID string) (*models.Message, error)

	// ClearChatHistory deletes every message for a deck one record at a
	// time. O(n) round trips, no atomicity guarantee.
	ClearChatHistory(ctx context.Context, deckID string) error
}
