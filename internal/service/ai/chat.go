package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"pitchforge/internal/config"
	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/services"
	domainllm "pitchforge/internal/domain/services/llm"
	"pitchforge/internal/metrics"
)

// ProviderResolver resolves a model name to a text-generation provider.
// Satisfied by llm.ProviderRegistry; tests supply a scripted fake.
type ProviderResolver interface {
	ProviderForModel(model string) (domainllm.Provider, error)
}

// chatService implements the ChatService interface
type chatService struct {
	messageService services.MessageService
	slideService   services.SlideService
	resolver       ProviderResolver
	model          string
	logger         *slog.Logger
}

// NewChatService creates the chat orchestrator.
func NewChatService(
	messageService services.MessageService,
	slideService services.SlideService,
	resolver ProviderResolver,
	model string,
	logger *slog.Logger,
) services.ChatService {
	return &chatService{
		messageService: messageService,
		slideService:   slideService,
		resolver:       resolver,
		model:          model,
		logger:         logger,
	}
}

// ChatWithAI runs one chat turn.
//
// The user message is persisted before the provider call so the transcript
// never loses a user turn even when the provider fails. On provider
// failure a static apology is persisted as the assistant turn and a
// success=false envelope is returned; the raw provider error never
// reaches the caller.
func (s *chatService) ChatWithAI(ctx context.Context, deckID, userMessage string) (*services.ChatResult, error) {
	if deckID == "" {
		return nil, fmt.Errorf("%w: deck id is required", domain.ErrValidation)
	}

	// 1. Persist the user turn
	if _, err := s.messageService.SendMessage(ctx, &services.SendMessageRequest{
		DeckID:  deckID,
		Role:    models.RoleUser,
		Content: userMessage,
	}); err != nil {
		return nil, err
	}

	// 2. Load the full transcript as provider context
	history, err := s.messageService.GetMessages(ctx, deckID)
	if err != nil {
		return nil, err
	}

	// 3. Fixed system instruction first, then the mapped history
	prompt := make([]domainllm.ChatMessage, 0, len(history)+1)
	prompt = append(prompt, domainllm.ChatMessage{Role: "system", Content: chatSystemPrompt})
	for _, message := range history {
		prompt = append(prompt, domainllm.ChatMessage{Role: message.Role, Content: message.Content})
	}

	// 4. Provider call; failure is contained, not propagated
	reply, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Error("chat provider call failed", "deck_id", deckID, "error", err)
		metrics.AICallsTotal.WithLabelValues("chat", "error").Inc()

		if _, saveErr := s.messageService.SendMessage(ctx, &services.SendMessageRequest{
			DeckID:  deckID,
			Role:    models.RoleAssistant,
			Content: chatApology,
		}); saveErr != nil {
			s.logger.Error("failed to persist apology message", "deck_id", deckID, "error", saveErr)
		}

		return &services.ChatResult{
			Success:      false,
			Error:        "Failed to get AI response",
			SlideCreated: nil,
		}, nil
	}
	metrics.AICallsTotal.WithLabelValues("chat", "ok").Inc()

	// 5. Best-effort directive handling
	response, created := s.applyDirective(ctx, deckID, reply)

	// 6. Persist the assistant turn
	if _, err := s.messageService.SendMessage(ctx, &services.SendMessageRequest{
		DeckID:  deckID,
		Role:    models.RoleAssistant,
		Content: response,
	}); err != nil {
		return nil, err
	}

	return &services.ChatResult{
		Success:      true,
		Response:     response,
		SlideCreated: created,
	}, nil
}

// generate resolves the provider and performs the call.
func (s *chatService) generate(ctx context.Context, prompt []domainllm.ChatMessage) (string, error) {
	provider, err := s.resolver.ProviderForModel(s.model)
	if err != nil {
		return "", err
	}

	resp, err := provider.GenerateResponse(ctx, &domainllm.GenerateRequest{
		Model:       s.model,
		Messages:    prompt,
		Temperature: config.ChatTemperature,
		MaxTokens:   config.ChatMaxTokens,
	})
	if err != nil {
		return "", err
	}

	return resp.Text, nil
}

// applyDirective creates the slide requested by an embedded directive, if
// any, and returns the response text to persist. Creation failures are
// non-fatal: the original reply passes through unstripped.
func (s *chatService) applyDirective(ctx context.Context, deckID, reply string) (string, *services.CreatedSlide) {
	directive, cleaned := extractSlideDirective(reply)
	if directive == nil {
		if strings.Contains(reply, directiveSentinel) {
			s.logger.Warn("slide directive rejected, passing reply through",
				"deck_id", deckID,
			)
		}
		return reply, nil
	}

	slide, err := s.slideService.CreateSlide(ctx, &services.CreateSlideRequest{
		DeckID:  deckID,
		Title:   directive.Title,
		Content: directive.Content,
	})
	if err != nil {
		s.logger.Error("directive slide creation failed",
			"deck_id", deckID,
			"title", directive.Title,
			"error", err,
		)
		return reply, nil
	}

	metrics.SlidesCreatedTotal.WithLabelValues("chat").Inc()
	s.logger.Info("slide created from chat directive",
		"deck_id", deckID,
		"slide_id", slide.ID,
		"title", slide.Title,
	)

	return slideConfirmation(directive.Title) + cleaned, &services.CreatedSlide{
		ID:      slide.ID,
		Title:   directive.Title,
		Content: directive.Content,
	}
}
