package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"pitchforge/internal/auth"
	"pitchforge/internal/config"
	"pitchforge/internal/events"
	"pitchforge/internal/handler"
	"pitchforge/internal/middleware"
	"pitchforge/internal/repository/postgres"
	"pitchforge/internal/service"
	"pitchforge/internal/service/ai"
	serviceLLM "pitchforge/internal/service/llm"
	"pitchforge/internal/service/voice"
	"pitchforge/internal/service/voice/firms"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier
	jwtVerifier, err := auth.NewJWTVerifier(cfg.AuthJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Create repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	deckRepo := postgres.NewDeckRepository(repoConfig)
	slideRepo := postgres.NewSlideRepository(repoConfig)
	messageRepo := postgres.NewMessageRepository(repoConfig)
	conversationRepo := postgres.NewConversationRepository(repoConfig)

	// In-process event broker for deck update streams
	broker := events.NewBroker()

	// Setup LLM providers
	providerRegistry, err := serviceLLM.SetupProviders(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to setup LLM providers: %v", err)
	}

	// Load the VC firm catalog
	firmRegistry, err := firms.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load firm catalog: %v", err)
	}
	logger.Info("firm catalog loaded", "firms", len(firmRegistry.List()))

	// Create services
	deckService := service.NewDeckService(deckRepo, slideRepo, logger)
	slideService := service.NewSlideService(slideRepo, deckRepo, broker, logger)
	messageService := service.NewMessageService(messageRepo, broker, logger)
	chatService := ai.NewChatService(messageService, slideService, providerRegistry, cfg.ChatModel, logger)
	outlineService := ai.NewOutlineService(slideService, providerRegistry, cfg.OutlineModel, logger)
	voiceService := voice.NewVoiceService(deckService, conversationRepo, firmRegistry, cfg.VoiceModel, logger)

	// Create handlers
	deckHandler := handler.NewDeckHandler(deckService, logger)
	slideHandler := handler.NewSlideHandler(slideService, logger)
	messageHandler := handler.NewMessageHandler(messageService, logger)
	chatHandler := handler.NewChatHandler(chatService, outlineService, logger)
	voiceHandler := handler.NewVoiceHandler(voiceService, logger)
	userHandler := handler.NewUserHandler(logger)
	researchHandler := handler.NewResearchHandler(logger)
	eventsHandler := handler.NewEventsHandler(broker, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Operational endpoints
	mux.HandleFunc("GET /health", handler.HealthCheck)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Identity
	mux.HandleFunc("GET /api/users/me", userHandler.Me)

	// Deck routes
	mux.HandleFunc("POST /api/decks", deckHandler.CreateDeck)
	mux.HandleFunc("GET /api/decks", deckHandler.ListDecks)
	mux.HandleFunc("GET /api/decks/lookup", deckHandler.LookupDeck) // Must come before {id} route
	mux.HandleFunc("GET /api/decks/{id}", deckHandler.GetDeck)
	mux.HandleFunc("PATCH /api/decks/{id}", deckHandler.UpdateDeck)

	// Slide routes
	mux.HandleFunc("POST /api/decks/{id}/slides", slideHandler.CreateSlide)
	mux.HandleFunc("GET /api/decks/{id}/slides", slideHandler.ListSlides)
	mux.HandleFunc("PUT /api/decks/{id}/slides/order", slideHandler.ReorderSlides)
	mux.HandleFunc("GET /api/slides/{id}", slideHandler.GetSlide)
	mux.HandleFunc("PATCH /api/slides/{id}", slideHandler.UpdateSlide)
	mux.HandleFunc("DELETE /api/slides/{id}", slideHandler.DeleteSlide)

	// Message routes
	mux.HandleFunc("POST /api/decks/{id}/messages", messageHandler.SendMessage)
	mux.HandleFunc("GET /api/decks/{id}/messages", messageHandler.ListMessages)
	mux.HandleFunc("GET /api/decks/{id}/messages/latest", messageHandler.LatestMessage)
	mux.HandleFunc("DELETE /api/decks/{id}/messages", messageHandler.ClearMessages)

	// AI workflow routes
	mux.HandleFunc("POST /api/decks/{id}/chat", chatHandler.Chat)
	mux.HandleFunc("POST /api/decks/{id}/outline", chatHandler.Outline)

	// Voice session routes
	mux.HandleFunc("GET /api/voice/config", voiceHandler.AssistantConfig)
	mux.HandleFunc("POST /api/voice/conversations", voiceHandler.SaveConversation)
	mux.HandleFunc("GET /api/voice/conversations", voiceHandler.ListConversations)

	// Competitor research (acknowledged, pipeline pending)
	mux.HandleFunc("POST /api/decks/{id}/research", researchHandler.Research)

	// Deck update stream (SSE)
	mux.HandleFunc("GET /api/decks/{id}/events", eventsHandler.Stream)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Metrics → Recovery → Auth → Routes
	httpHandler = middleware.AuthMiddleware(jwtVerifier)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)
	httpHandler = middleware.Metrics(mux)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Last-Event-ID"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived SSE streams
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
