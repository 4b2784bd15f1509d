package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pitchforge/internal/config"
	"pitchforge/internal/domain"
	"pitchforge/internal/domain/services"
	domainllm "pitchforge/internal/domain/services/llm"
	"pitchforge/internal/metrics"
)

// outlinePattern grabs the first-to-last brace span of the reply. Models
// wrap JSON in prose or markdown fences often enough that taking the
// widest brace window before the strict parse is the pragmatic choice.
var outlinePattern = regexp.MustCompile(`(?s)\{.*\}`)

// slideOutline is the declared schema of a generated outline.
type slideOutline struct {
	Slides []outlineSlide `json:"slides"`
}

type outlineSlide struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// outlineService implements the OutlineService interface
type outlineService struct {
	slideService services.SlideService
	resolver     ProviderResolver
	model        string
	logger       *slog.Logger
}

// NewOutlineService creates the deck outline generator.
func NewOutlineService(
	slideService services.SlideService,
	resolver ProviderResolver,
	model string,
	logger *slog.Logger,
) services.OutlineService {
	return &outlineService{
		slideService: slideService,
		resolver:     resolver,
		model:        model,
		logger:       logger,
	}
}

// GenerateDeckOutline turns a brief into 8-10 slides in one provider call.
//
// Unlike the chat path, every failure propagates to the caller as a typed
// error, and slides created before a mid-sequence failure stay created.
func (s *outlineService) GenerateDeckOutline(ctx context.Context, req *services.OutlineRequest) (*services.OutlineResult, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	provider, err := s.resolver.ProviderForModel(s.model)
	if err != nil {
		return nil, err
	}

	resp, err := provider.GenerateResponse(ctx, &domainllm.GenerateRequest{
		Model: s.model,
		Messages: []domainllm.ChatMessage{
			{Role: "system", Content: outlineSystemPrompt},
			{Role: "user", Content: buildOutlineUserPrompt(req.Title, req.StartupName, req.Overview)},
		},
		Temperature: config.OutlineTemperature,
		MaxTokens:   config.OutlineMaxTokens,
	})
	if err != nil {
		metrics.AICallsTotal.WithLabelValues("outline", "error").Inc()
		return nil, fmt.Errorf("outline generation: %w", err)
	}
	metrics.AICallsTotal.WithLabelValues("outline", "ok").Inc()

	slides, err := s.parseOutline(resp.Text)
	if err != nil {
		return nil, err
	}

	// Sequential creation, no rollback on failure
	slideIDs := make([]string, 0, len(slides))
	for _, outline := range slides {
		slide, err := s.slideService.CreateSlide(ctx, &services.CreateSlideRequest{
			DeckID:  req.DeckID,
			Title:   truncate(strings.TrimSpace(outline.Title), config.MaxSlideTitleLength),
			Content: strings.TrimSpace(outline.Content),
		})
		if err != nil {
			return nil, fmt.Errorf("create outline slide %q: %w", outline.Title, err)
		}
		slideIDs = append(slideIDs, slide.ID)
		metrics.SlidesCreatedTotal.WithLabelValues("outline").Inc()
	}

	s.logger.Info("deck outline generated",
		"deck_id", req.DeckID,
		"slides", len(slideIDs),
		"model", s.model,
	)

	return &services.OutlineResult{
		Success:    true,
		SlideCount: len(slideIDs),
		SlideIDs:   slideIDs,
	}, nil
}

// parseOutline extracts and strictly parses the JSON outline from the raw
// model reply, then drops entries missing a title or content.
func (s *outlineService) parseOutline(raw string) ([]outlineSlide, error) {
	candidate := outlinePattern.FindString(raw)
	if candidate == "" {
		s.logger.Error("no JSON candidate in outline response", "raw", raw)
		return nil, domain.ErrOutlineParse
	}

	var outline slideOutline
	if err := json.Unmarshal([]byte(candidate), &outline); err != nil {
		s.logger.Error("outline response failed strict parse", "error", err, "raw", raw)
		return nil, fmt.Errorf("%w: %v", domain.ErrOutlineFormat, err)
	}

	slides := make([]outlineSlide, 0, len(outline.Slides))
	for _, slide := range outline.Slides {
		if strings.TrimSpace(slide.Title) == "" || strings.TrimSpace(slide.Content) == "" {
			continue
		}
		slides = append(slides, slide)
	}

	if len(slides) == 0 {
		return nil, domain.ErrEmptyOutline
	}

	return slides, nil
}

// validateRequest validates an outline request
func (s *outlineService) validateRequest(req *services.OutlineRequest) error {
	return validation.ValidateStruct(req,
		validation.Field(&req.DeckID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, config.MaxDeckTitleLength)),
		validation.Field(&req.StartupName, validation.Required),
		validation.Field(&req.Overview, validation.Required),
	)
}

// truncate limits s to max runes.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
