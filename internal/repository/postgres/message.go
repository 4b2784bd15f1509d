package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/repositories"
)

// PostgresMessageRepository implements the MessageRepository interface
type PostgresMessageRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(config *RepositoryConfig) repositories.MessageRepository {
	return &PostgresMessageRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create appends a message
func (r *PostgresMessageRepository) Create(ctx context.Context, message *models.Message) error {
	message.ID = uuid.New().String()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, deck_id, role, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.tables.Messages)

	_, err := r.pool.Exec(ctx, query,
		message.ID,
		message.DeckID,
		message.Role,
		message.Content,
		message.Timestamp,
	)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("deck %s: %w", message.DeckID, domain.ErrNotFound)
		}
		return fmt.Errorf("create message: %w", err)
	}

	return nil
}

// ListByDeck retrieves all messages for a deck in chronological order
func (r *PostgresMessageRepository) ListByDeck(ctx context.Context, deckID string) ([]models.Message, error) {
	query := fmt.Sprintf(`
		SELECT id, deck_id, role, content, created_at
		FROM %s
		WHERE deck_id = $1
		ORDER BY created_at ASC, id ASC
	`, r.tables.Messages)

	rows, err := r.pool.Query(ctx, query, deckID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var message models.Message
		if err := rows.Scan(
			&message.ID,
			&message.DeckID,
			&message.Role,
			&message.Content,
			&message.Timestamp,
		); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, message)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}

// LatestByDeck retrieves the newest message for a deck, or nil
func (r *PostgresMessageRepository) LatestByDeck(ctx context.Context, deckID string) (*models.Message, error) {
	query := fmt.Sprintf(`
		SELECT id, deck_id, role, content, created_at
		FROM %s
		WHERE deck_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`, r.tables.Messages)

	var message models.Message
	err := r.pool.QueryRow(ctx, query, deckID).Scan(
		&message.ID,
		&message.DeckID,
		&message.Role,
		&message.Content,
		&message.Timestamp,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest message: %w", err)
	}

	return &message, nil
}

// Delete removes a single message
func (r *PostgresMessageRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Messages)

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}

	return nil
}
