package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/repositories"
)

// PostgresConversationRepository implements the ConversationRepository interface
type PostgresConversationRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(config *RepositoryConfig) repositories.ConversationRepository {
	return &PostgresConversationRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a conversation record with its transcript as JSONB
func (r *PostgresConversationRepository) Create(ctx context.Context, conversation *models.VoiceConversation) error {
	conversation.ID = uuid.New().String()

	transcript, err := json.Marshal(conversation.Transcript)
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}

	// deck_id is nullable for freestyle sessions
	var deckID interface{}
	if conversation.DeckID != "" {
		deckID = conversation.DeckID
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, firm_tag, deck_id, transcript, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, r.tables.Conversations)

	_, err = r.pool.Exec(ctx, query,
		conversation.ID,
		conversation.UserID,
		conversation.FirmTag,
		deckID,
		transcript,
		conversation.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}

	return nil
}

// ListByUser retrieves a user's conversations, newest first
func (r *PostgresConversationRepository) ListByUser(ctx context.Context, userID string) ([]models.VoiceConversation, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, firm_tag, deck_id, transcript, created_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.tables.Conversations)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	conversations := []models.VoiceConversation{}
	for rows.Next() {
		var conversation models.VoiceConversation
		var deckID *string
		var transcript []byte
		if err := rows.Scan(
			&conversation.ID,
			&conversation.UserID,
			&conversation.FirmTag,
			&deckID,
			&transcript,
			&conversation.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan conversation: %w", err)
		}
		if deckID != nil {
			conversation.DeckID = *deckID
		}
		if err := json.Unmarshal(transcript, &conversation.Transcript); err != nil {
			return nil, fmt.Errorf("decode transcript: %w", err)
		}
		conversations = append(conversations, conversation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversations: %w", err)
	}

	return conversations, nil
}
