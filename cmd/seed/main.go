package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"pitchforge/internal/config"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/services"
	"pitchforge/internal/events"
	"pitchforge/internal/repository/postgres"
	"pitchforge/internal/service"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	dropTables := flag.Bool("drop-tables", false, "Drop all tables before seeding (fresh start)")
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo data")
	seedUserID := flag.String("user", "00000000-0000-0000-0000-000000000001", "User ID to own the seeded deck")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *dropTables {
		log.Fatalf("🚫 BLOCKED: Cannot run --drop-tables in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if *schemaOnly {
		log.Printf("🏗️  Setting up schema only (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	} else {
		log.Printf("🌱 Seeding database (environment: %s, prefix: %s)", cfg.Environment, cfg.TablePrefix)
	}

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Drop tables if requested
	if *dropTables {
		log.Println("🗑️  Dropping all tables...")
		if err := dropAllTables(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to drop tables: %v", err)
		}
		log.Println("✅ Tables dropped")
	}

	// Run schema to ensure tables exist
	log.Println("📋 Ensuring database schema is up to date...")
	if err := runSchema(ctx, pool, tables, cfg.TablePrefix); err != nil {
		log.Fatalf("Failed to run schema: %v", err)
	}
	log.Println("✅ Schema ready")

	if *schemaOnly {
		log.Println("✅ Schema setup complete (schema-only mode)")
		return
	}

	// Create repositories and services
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	deckRepo := postgres.NewDeckRepository(repoConfig)
	slideRepo := postgres.NewSlideRepository(repoConfig)
	messageRepo := postgres.NewMessageRepository(repoConfig)
	broker := events.NewBroker()

	deckService := service.NewDeckService(deckRepo, slideRepo, logger)
	slideService := service.NewSlideService(slideRepo, deckRepo, broker, logger)
	messageService := service.NewMessageService(messageRepo, broker, logger)

	// Create the demo deck
	deck, err := deckService.CreateDeck(ctx, &services.CreateDeckRequest{
		UserID: *seedUserID,
		Title:  "Acme Robotics Seed Round",
	})
	if err != nil {
		log.Fatalf("Failed to create demo deck: %v", err)
	}
	log.Printf("✅ Created deck %s", deck.ID)

	// Seed slides via the service so ordering stays consistent
	for i, slide := range seedSlides(deck.ID) {
		created, err := slideService.CreateSlide(ctx, slide)
		if err != nil {
			log.Printf("❌ Failed to create slide '%s': %v", slide.Title, err)
			continue
		}
		log.Printf("✅ Created slide %d/%d: %s (ID: %s)", i+1, len(seedSlides(deck.ID)), created.Title, created.ID)
	}

	// Seed a short chat transcript
	for _, message := range seedMessages(deck.ID) {
		if _, err := messageService.SendMessage(ctx, message); err != nil {
			log.Printf("❌ Failed to create message: %v", err)
		}
	}

	log.Println("🎉 Seeding complete!")
}

// runSchema creates tables if they don't exist
func runSchema(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames, tablePrefix string) error {
	// Enable UUID extension
	if _, err := pool.Exec(ctx, `CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`); err != nil {
		return err
	}

	createDecks := `
		CREATE TABLE IF NOT EXISTS ` + tables.Decks + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL,
			title TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW(),
			updated_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createDecks); err != nil {
		return err
	}

	createSlides := `
		CREATE TABLE IF NOT EXISTS ` + tables.Slides + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			deck_id UUID NOT NULL REFERENCES ` + tables.Decks + `(id) ON DELETE CASCADE,
			title TEXT NOT NULL,
			content TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT 'custom',
			slide_order INTEGER NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createSlides); err != nil {
		return err
	}

	createMessages := `
		CREATE TABLE IF NOT EXISTS ` + tables.Messages + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			deck_id UUID NOT NULL REFERENCES ` + tables.Decks + `(id) ON DELETE CASCADE,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createMessages); err != nil {
		return err
	}

	createConversations := `
		CREATE TABLE IF NOT EXISTS ` + tables.Conversations + ` (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL,
			firm_tag TEXT NOT NULL,
			deck_id UUID REFERENCES ` + tables.Decks + `(id) ON DELETE SET NULL,
			transcript JSONB NOT NULL,
			created_at TIMESTAMPTZ DEFAULT NOW()
		)
	`
	if _, err := pool.Exec(ctx, createConversations); err != nil {
		return err
	}

	// Create indexes
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `decks_user_id ON ` + tables.Decks + `(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `slides_deck_order ON ` + tables.Slides + `(deck_id, slide_order)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `messages_deck_created ON ` + tables.Messages + `(deck_id, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_` + tablePrefix + `conversations_user_id ON ` + tables.Conversations + `(user_id)`,
	}
	for _, indexSQL := range indexes {
		if _, err := pool.Exec(ctx, indexSQL); err != nil {
			return err
		}
	}

	return nil
}

// dropAllTables drops all tables in reverse order (to respect foreign keys)
func dropAllTables(ctx context.Context, pool *pgxpool.Pool, tables *postgres.TableNames) error {
	tableNames := []string{
		tables.Conversations,
		tables.Messages,
		tables.Slides,
		tables.Decks,
	}

	for _, table := range tableNames {
		dropSQL := "DROP TABLE IF EXISTS " + table + " CASCADE"
		if _, err := pool.Exec(ctx, dropSQL); err != nil {
			return err
		}
		log.Printf("  ✓ Dropped %s", table)
	}

	return nil
}

func seedSlides(deckID string) []*services.CreateSlideRequest {
	return []*services.CreateSlideRequest{
		{
			DeckID:  deckID,
			Title:   "Acme Robotics",
			Content: "- Warehouse automation that installs in a day\n- Founded 2025, San Francisco",
			Type:    models.SlideTypeTitle,
		},
		{
			DeckID:  deckID,
			Title:   "The Problem",
			Content: "- Mid-size warehouses can't afford current automation\n- Labor shortages cost operators 18% of throughput",
			Type:    models.SlideTypeProblem,
		},
		{
			DeckID:  deckID,
			Title:   "Our Solution",
			Content: "- Modular picking robots, no fixed infrastructure\n- Deployed in hours, paid per pick",
			Type:    models.SlideTypeSolution,
		},
		{
			DeckID:  deckID,
			Title:   "Traction",
			Content: "- 6 paying pilots\n- $40k MRR, growing 25% month over month",
			Type:    models.SlideTypeTraction,
		},
		{
			DeckID:  deckID,
			Title:   "The Ask",
			Content: "- Raising $3M seed\n- 18 months runway to 30 deployments",
			Type:    models.SlideTypeAsk,
		},
	}
}

func seedMessages(deckID string) []*services.SendMessageRequest {
	return []*services.SendMessageRequest{
		{
			DeckID:  deckID,
			Role:    models.RoleUser,
			Content: "Can you help me tighten up my traction slide?",
		},
		{
			DeckID:  deckID,
			Role:    models.RoleAssistant,
			Content: "Lead with the revenue number and growth rate, then name one marquee pilot. Investors scan traction slides for a single headline metric.",
		},
	}
}
