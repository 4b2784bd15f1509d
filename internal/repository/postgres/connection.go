package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RepositoryConfig holds configuration for repository implementations
type RepositoryConfig struct {
	Pool   *pgxpool.Pool
	Tables *TableNames
	Logger *slog.Logger
}

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Decks         string
	Slides        string
	Messages      string
	Conversations string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Decks:         fmt.Sprintf("%sdecks", prefix),
		Slides:        fmt.Sprintf("%sslides", prefix),
		Messages:      fmt.Sprintf("%smessages", prefix),
		Conversations: fmt.Sprintf("%sconversations", prefix),
	}
}

// CreateConnectionPool creates a new pgx connection pool.
//
// By default pgx uses prepared statements (QueryExecModeCacheStatement),
// which PgBouncer in transaction pooling mode (port 6543 on hosted
// Postgres) does not support. When that port is detected and the user has
// not set an explicit mode in the connection string, the pool switches to
// QueryExecModeCacheDescribe: extended protocol (proper JSONB encoding for
// transcript columns) without server-side prepared statements.
//
// Dynamic table prefixes (dev_/test_/prod_) are interpolated into the SQL
// before it is sent, so each environment gets its own statements.
func CreateConnectionPool(ctx context.Context, databaseURL string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}

	// Configure pool size
	config.MaxConns = 25
	config.MinConns = 5

	if config.ConnConfig.Port == 6543 && config.ConnConfig.DefaultQueryExecMode == pgx.QueryExecModeCacheStatement {
		config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeCacheDescribe
		slog.Debug("auto-configured cache_describe mode for PgBouncer compatibility", "port", 6543)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}
