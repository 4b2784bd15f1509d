package repositories

import (
	"context"

	"pitchforge/internal/domain/models"
)

// ConversationRepository defines data access operations for voice conversations
type ConversationRepository interface {
	// Create inserts a conversation record and fills in its generated ID
	Create(ctx context.Context, conversation *models.VoiceConversation) error

	// ListByUser retrieves a user's conversations, newest first
	ListByUser(ctx context.Context, userID string) ([]models.VoiceConversation, error)
}
