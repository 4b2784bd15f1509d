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

// PostgresDeckRepository implements the DeckRepository interface
type PostgresDeckRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewDeckRepository creates a new deck repository
func NewDeckRepository(config *RepositoryConfig) repositories.DeckRepository {
	return &PostgresDeckRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new deck
func (r *PostgresDeckRepository) Create(ctx context.Context, deck *models.Deck) error {
	deck.ID = uuid.New().String()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, user_id, title, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, r.tables.Decks)

	_, err := r.pool.Exec(ctx, query,
		deck.ID,
		deck.UserID,
		deck.Title,
		deck.CreatedAt,
		deck.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create deck: %w", err)
	}

	return nil
}

// GetByID retrieves a deck by ID regardless of owner
func (r *PostgresDeckRepository) GetByID(ctx context.Context, id string) (*models.Deck, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, created_at, updated_at
		FROM %s
		WHERE id = $1
	`, r.tables.Decks)

	var deck models.Deck
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&deck.ID,
		&deck.UserID,
		&deck.Title,
		&deck.CreatedAt,
		&deck.UpdatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("deck %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get deck: %w", err)
	}

	return &deck, nil
}

// ListByUser retrieves all decks owned by a user, newest first
func (r *PostgresDeckRepository) ListByUser(ctx context.Context, userID string) ([]models.Deck, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, title, created_at, updated_at
		FROM %s
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, r.tables.Decks)

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list decks: %w", err)
	}
	defer rows.Close()

	decks := []models.Deck{}
	for rows.Next() {
		var deck models.Deck
		if err := rows.Scan(
			&deck.ID,
			&deck.UserID,
			&deck.Title,
			&deck.CreatedAt,
			&deck.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan deck: %w", err)
		}
		decks = append(decks, deck)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate decks: %w", err)
	}

	return decks, nil
}

// Update persists a deck's title and updated_at timestamp
func (r *PostgresDeckRepository) Update(ctx context.Context, deck *models.Deck) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $2, updated_at = $3
		WHERE id = $1
	`, r.tables.Decks)

	tag, err := r.pool.Exec(ctx, query, deck.ID, deck.Title, deck.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update deck: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deck %s: %w", deck.ID, domain.ErrNotFound)
	}

	return nil
}
