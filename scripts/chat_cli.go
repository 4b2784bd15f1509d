package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pitchforge/internal/config"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/services"
	"pitchforge/internal/events"
	"pitchforge/internal/repository/postgres"
	"pitchforge/internal/service"
	"pitchforge/internal/service/ai"
	"pitchforge/internal/service/llm"

	"github.com/joho/godotenv"
)

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorRed    = "\033[31m"
	colorBlue   = "\033[34m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

type CLI struct {
	ctx        context.Context
	deckSvc    services.DeckService
	messageSvc services.MessageService
	chatSvc    services.ChatService
	scanner    *bufio.Scanner
	userID     string
	logger     *slog.Logger
}

// setupLogger creates a logger that writes to both console and file
func setupLogger() (*slog.Logger, string, error) {
	// Create logs directory
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, "", fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Generate timestamped log filename
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilename := filepath.Join(logsDir, fmt.Sprintf("chat_cli_%s.log", timestamp))

	// Open log file
	logFile, err := os.Create(logFilename)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create log file: %w", err)
	}

	// Console: INFO level, text format
	consoleHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	// File: DEBUG level, formatted text for readability
	fileHandler := slog.NewTextHandler(logFile, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					return slog.String(slog.TimeKey, t.Format("2006-01-02 15:04:05"))
				}
			}
			if a.Key == slog.SourceKey {
				if src, ok := a.Value.Any().(*slog.Source); ok {
					return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
				}
			}
			return a
		},
	})

	// Multi-handler: writes to both console and file
	multiHandler := &multiHandler{
		handlers: []slog.Handler{consoleHandler, fileHandler},
	}

	logger := slog.New(multiHandler)
	return logger, logFilename, nil
}

// multiHandler writes to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

func main() {
	// Setup dual logger (console + file)
	logger, logFile, err := setupLogger()
	if err != nil {
		fmt.Printf("Failed to setup logger: %v\n", err)
		os.Exit(1)
	}
	logger.Info("session started", "log_file", logFile)

	_ = godotenv.Load()
	cfg := config.Load()

	// Get test user from environment
	userID := os.Getenv("TEST_USER_ID")
	logger.Debug("loaded environment variables", "user_id", userID)

	if userID == "" {
		logger.Error("missing required environment variables")
		fmt.Printf("%s❌ Error: TEST_USER_ID must be set in environment%s\n", colorRed, colorReset)
		os.Exit(1)
	}

	// Connect to database
	ctx := context.Background()
	logger.Debug("connecting to database")
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		fmt.Printf("%s❌ Failed to connect to database: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	defer pool.Close()
	logger.Info("database connected")

	// Setup repositories
	tables := postgres.NewTableNames(cfg.TablePrefix)
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}

	deckRepo := postgres.NewDeckRepository(repoConfig)
	slideRepo := postgres.NewSlideRepository(repoConfig)
	messageRepo := postgres.NewMessageRepository(repoConfig)
	broker := events.NewBroker()

	// Setup LLM providers
	logger.Debug("setting up LLM providers")
	registry, err := llm.SetupProviders(cfg, logger)
	if err != nil {
		logger.Error("failed to setup LLM providers", "error", err)
		fmt.Printf("%s❌ Failed to setup providers: %v%s\n", colorRed, err, colorReset)
		os.Exit(1)
	}
	logger.Info("LLM providers initialized")

	deckSvc := service.NewDeckService(deckRepo, slideRepo, logger)
	slideSvc := service.NewSlideService(slideRepo, deckRepo, broker, logger)
	messageSvc := service.NewMessageService(messageRepo, broker, logger)
	chatSvc := ai.NewChatService(messageSvc, slideSvc, registry, cfg.ChatModel, logger)
	logger.Info("chat services initialized", "model", cfg.ChatModel)

	// Create CLI
	cli := &CLI{
		ctx:        ctx,
		deckSvc:    deckSvc,
		messageSvc: messageSvc,
		chatSvc:    chatSvc,
		scanner:    bufio.NewScanner(os.Stdin),
		userID:     userID,
		logger:     logger,
	}

	// Run main loop
	cli.run()
}

func (cli *CLI) run() {
	cli.logger.Info("CLI started", "user_id", cli.userID)

	fmt.Printf("\n%s╔══════════════════════════════════════╗%s\n", colorCyan, colorReset)
	fmt.Printf("%s║    PitchForge Chat Test CLI v1.0     ║%s\n", colorCyan, colorReset)
	fmt.Printf("%s╚══════════════════════════════════════╝%s\n", colorCyan, colorReset)
	fmt.Printf("%sUser: %s%s\n\n", colorBlue, cli.userID, colorReset)

	for {
		fmt.Println("\n" + strings.Repeat("─", 40))
		fmt.Println("Main Menu:")
		fmt.Println("1. Create new deck and start chatting")
		fmt.Println("2. View deck transcript")
		fmt.Println("3. Continue chatting on an existing deck")
		fmt.Println("4. Exit")
		fmt.Print("\nSelect option (1-4): ")

		choice := cli.readLine()
		fmt.Println() // Extra line for spacing

		cli.logger.Debug("menu selection", "choice", choice)

		switch choice {
		case "1":
			cli.newDeckFlow()
		case "2":
			cli.viewTranscript()
		case "3":
			cli.continueChat()
		case "4":
			cli.logger.Info("CLI exiting")
			fmt.Printf("%s✓ Goodbye!%s\n", colorGreen, colorReset)
			return
		default:
			cli.logger.Warn("invalid menu choice", "choice", choice)
			fmt.Printf("%s⚠ Invalid choice. Please enter 1-4.%s\n", colorYellow, colorReset)
		}
	}
}

func (cli *CLI) newDeckFlow() {
	cli.logger.Info("starting new deck flow")
	fmt.Printf("%s=== Create New Deck ===%s\n\n", colorCyan, colorReset)

	fmt.Print("Deck title: ")
	title := cli.readLine()
	if title == "" {
		title = "Test Deck"
	}
	cli.logger.Debug("deck title entered", "title", title)

	fmt.Printf("\n%s⏳ Creating deck...%s\n", colorBlue, colorReset)
	deck, err := cli.deckSvc.CreateDeck(cli.ctx, &services.CreateDeckRequest{
		UserID: cli.userID,
		Title:  title,
	})
	if err != nil {
		cli.logger.Error("failed to create deck", "error", err)
		fmt.Printf("%s❌ Failed to create deck: %v%s\n", colorRed, err, colorReset)
		return
	}
	cli.logger.Info("deck created", "deck_id", deck.ID)
	fmt.Printf("%s✓ Deck created: %s%s\n", colorGreen, deck.ID, colorReset)

	cli.chatLoop(deck.ID)
}

func (cli *CLI) viewTranscript() {
	deckID := cli.selectDeck()
	if deckID == "" {
		return
	}

	messages, err := cli.messageSvc.GetMessages(cli.ctx, deckID)
	if err != nil {
		cli.logger.Error("failed to load transcript", "error", err, "deck_id", deckID)
		fmt.Printf("%s❌ Failed to load transcript: %v%s\n", colorRed, err, colorReset)
		return
	}
	if len(messages) == 0 {
		fmt.Printf("%s⚠ No messages on this deck yet%s\n", colorYellow, colorReset)
		return
	}

	fmt.Printf("%s=== Transcript (%d messages) ===%s\n\n", colorCyan, len(messages), colorReset)
	for _, message := range messages {
		color := colorBlue
		if message.Role == models.RoleAssistant {
			color = colorGreen
		}
		fmt.Printf("%s[%s]%s %s\n\n", color, message.Role, colorReset, message.Content)
	}
}

func (cli *CLI) continueChat() {
	deckID := cli.selectDeck()
	if deckID == "" {
		return
	}
	cli.chatLoop(deckID)
}

// chatLoop sends messages on a deck until the user types /quit
func (cli *CLI) chatLoop(deckID string) {
	fmt.Printf("\n%sChatting on deck %s (type /quit to stop)%s\n", colorBlue, deckID, colorReset)

	for {
		fmt.Print("\nYour message: ")
		message := cli.readLine()
		if message == "/quit" {
			return
		}
		if message == "" {
			fmt.Printf("%s⚠ Message cannot be empty%s\n", colorYellow, colorReset)
			continue
		}
		cli.logger.Debug("message entered", "length", len(message))

		fmt.Printf("%s⏳ Waiting for response...%s\n", colorBlue, colorReset)
		result, err := cli.chatSvc.ChatWithAI(cli.ctx, deckID, message)
		if err != nil {
			cli.logger.Error("chat turn failed", "error", err, "deck_id", deckID)
			fmt.Printf("%s❌ Error: %v%s\n", colorRed, err, colorReset)
			continue
		}

		if !result.Success {
			cli.logger.Warn("provider failure contained", "error", result.Error)
			fmt.Printf("%s⚠ %s%s\n", colorYellow, result.Error, colorReset)
			continue
		}

		fmt.Printf("\n%s[assistant]%s %s\n", colorGreen, colorReset, result.Response)
		if result.SlideCreated != nil {
			cli.logger.Info("slide created from chat",
				"slide_id", result.SlideCreated.ID,
				"title", result.SlideCreated.Title,
			)
			fmt.Printf("%s✓ Slide created: %s (%s)%s\n",
				colorGreen, result.SlideCreated.Title, result.SlideCreated.ID, colorReset)
		}
	}
}

// selectDeck lists the user's decks and prompts for one. Returns "" when
// there is nothing to select or the input doesn't match a deck.
func (cli *CLI) selectDeck() string {
	decks, err := cli.deckSvc.ListDecks(cli.ctx, cli.userID)
	if err != nil {
		cli.logger.Error("failed to list decks", "error", err)
		fmt.Printf("%s❌ Failed to list decks: %v%s\n", colorRed, err, colorReset)
		return ""
	}
	if len(decks) == 0 {
		fmt.Printf("%s⚠ No decks yet. Create one first.%s\n", colorYellow, colorReset)
		return ""
	}

	fmt.Printf("%sYour decks:%s\n", colorCyan, colorReset)
	for i, deck := range decks {
		fmt.Printf("%d. %s (%s)\n", i+1, deck.Title, deck.ID)
	}
	fmt.Print("\nSelect deck number: ")

	choice := cli.readLine()
	for i, deck := range decks {
		if choice == fmt.Sprintf("%d", i+1) {
			return deck.ID
		}
	}
	fmt.Printf("%s⚠ Invalid selection%s\n", colorYellow, colorReset)
	return ""
}

func (cli *CLI) readLine() string {
	if cli.scanner.Scan() {
		return strings.TrimSpace(cli.scanner.Text())
	}
	return ""
}
