package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/repositories"
)

// PostgresSlideRepository implements the SlideRepository interface
type PostgresSlideRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSlideRepository creates a new slide repository
func NewSlideRepository(config *RepositoryConfig) repositories.SlideRepository {
	return &PostgresSlideRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create inserts a new slide
func (r *PostgresSlideRepository) Create(ctx context.Context, slide *models.Slide) error {
	slide.ID = uuid.New().String()

	query := fmt.Sprintf(`
		INSERT INTO %s (id, deck_id, title, content, type, slide_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, r.tables.Slides)

	_, err := r.pool.Exec(ctx, query,
		slide.ID,
		slide.DeckID,
		slide.Title,
		slide.Content,
		string(slide.Type),
		slide.Order,
		slide.CreatedAt,
	)
	if err != nil {
		if IsPgForeignKeyError(err) {
			return fmt.Errorf("deck %s: %w", slide.DeckID, domain.ErrNotFound)
		}
		return fmt.Errorf("create slide: %w", err)
	}

	return nil
}

// GetByID retrieves a slide by ID
func (r *PostgresSlideRepository) GetByID(ctx context.Context, id string) (*models.Slide, error) {
	query := fmt.Sprintf(`
		SELECT id, deck_id, title, content, type, slide_order, created_at
		FROM %s
		WHERE id = $1
	`, r.tables.Slides)

	var slide models.Slide
	var slideType string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&slide.ID,
		&slide.DeckID,
		&slide.Title,
		&slide.Content,
		&slideType,
		&slide.Order,
		&slide.CreatedAt,
	)
	if err != nil {
		if IsPgNoRowsError(err) {
			return nil, fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get slide: %w", err)
	}
	slide.Type = models.SlideType(slideType)

	return &slide, nil
}

// ListByDeck retrieves all slides for a deck ordered ascending by order
func (r *PostgresSlideRepository) ListByDeck(ctx context.Context, deckID string) ([]models.Slide, error) {
	query := fmt.Sprintf(`
		SELECT id, deck_id, title, content, type, slide_order, created_at
		FROM %s
		WHERE deck_id = $1
		ORDER BY slide_order ASC, created_at ASC
	`, r.tables.Slides)

	rows, err := r.pool.Query(ctx, query, deckID)
	if err != nil {
		return nil, fmt.Errorf("list slides: %w", err)
	}
	defer rows.Close()

	slides := []models.Slide{}
	for rows.Next() {
		var slide models.Slide
		var slideType string
		if err := rows.Scan(
			&slide.ID,
			&slide.DeckID,
			&slide.Title,
			&slide.Content,
			&slideType,
			&slide.Order,
			&slide.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		slide.Type = models.SlideType(slideType)
		slides = append(slides, slide)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate slides: %w", err)
	}

	return slides, nil
}

// CountByDeck returns the number of slides in a deck
func (r *PostgresSlideRepository) CountByDeck(ctx context.Context, deckID string) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE deck_id = $1`, r.tables.Slides)

	var count int
	if err := r.pool.QueryRow(ctx, query, deckID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count slides: %w", err)
	}

	return count, nil
}

// UpdateFields patches only the supplied fields
func (r *PostgresSlideRepository) UpdateFields(ctx context.Context, id string, title, content *string) error {
	sets := []string{}
	args := []interface{}{id}

	if title != nil {
		args = append(args, *title)
		sets = append(sets, fmt.Sprintf("title = $%d", len(args)))
	}
	if content != nil {
		args = append(args, *content)
		sets = append(sets, fmt.Sprintf("content = $%d", len(args)))
	}

	// Nothing to write is a valid no-op
	if len(sets) == 0 {
		return nil
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $1`, r.tables.Slides, strings.Join(sets, ", "))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update slide: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// UpdateOrder sets the order of a single slide
func (r *PostgresSlideRepository) UpdateOrder(ctx context.Context, id string, order int) error {
	query := fmt.Sprintf(`UPDATE %s SET slide_order = $2 WHERE id = $1`, r.tables.Slides)

	tag, err := r.pool.Exec(ctx, query, id, order)
	if err != nil {
		return fmt.Errorf("update slide order: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a slide
func (r *PostgresSlideRepository) Delete(ctx context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.tables.Slides)

	if _, err := r.pool.Exec(ctx, query, id); err != nil {
		return fmt.Errorf("delete slide: %w", err)
	}

	return nil
}
