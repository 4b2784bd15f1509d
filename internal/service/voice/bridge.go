// Package voice assembles configuration for the external voice-agent SDK
// and records finished session transcripts.
package voice

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/repositories"
	"pitchforge/internal/domain/services"
	"pitchforge/internal/service/voice/firms"
)

const personaPromptTemplate = `You are a top-tier venture capitalist representing %s.
Your persona is sharp, insightful, and skeptical but fair. You are not easily impressed.
Your goal is to rigorously pressure-test a startup founder's pitch.

Here are your instructions:
1.  **Be Critical:** Ask tough, pointed questions about their business model, market size, traction, and competitive landscape.
2.  **Stay Focused:** Do not get sidetracked. Your questions should be concise and directly related to evaluating a startup for investment.
3.  **Maintain the Persona:** Do not break character. You are a busy VC with high standards.
4.  **Listen Carefully:** Pay close attention to the user's answers and ask relevant follow-up questions.
5.  **Keep it Conversational:** Despite your critical nature, the interaction should feel like a real, high-stakes meeting, not a robotic interrogation.

The user will start the conversation. Listen to their opening and then begin your questioning.`

const firstMessageTemplate = "Hi, I'm a partner from %s. Nice to meet you and thanks for taking the time. Can you please let me know more about your startup?"

// voiceService implements the VoiceService interface
type voiceService struct {
	deckService   services.DeckService
	conversations repositories.ConversationRepository
	firms         *firms.Registry
	model         string
	logger        *slog.Logger
}

// NewVoiceService creates the voice session bridge.
func NewVoiceService(
	deckService services.DeckService,
	conversations repositories.ConversationRepository,
	firmRegistry *firms.Registry,
	model string,
	logger *slog.Logger,
) services.VoiceService {
	return &voiceService{
		deckService:   deckService,
		conversations: conversations,
		firms:         firmRegistry,
		model:         model,
		logger:        logger,
	}
}

// GetAssistantConfig assembles the session config for a firm persona.
//
// A deckOption other than the freestyle sentinel is treated as a deck id;
// when it resolves to a deck the caller owns, the deck's slides are
// serialized into the persona prompt so the mock VC can question the
// actual pitch. Resolution failures silently degrade to a freestyle
// session rather than blocking the call.
func (s *voiceService) GetAssistantConfig(ctx context.Context, firmTag, deckOption, userID string) (*services.AssistantConfig, error) {
	firmTag = strings.TrimSpace(firmTag)
	if firmTag == "" {
		return nil, fmt.Errorf("%w: firm tag is required", domain.ErrValidation)
	}

	firmName := s.firms.DisplayName(firmTag)
	prompt := fmt.Sprintf(personaPromptTemplate, firmName)

	if deckOption != "" && deckOption != services.FreestyleDeckOption {
		// GetDeckByStringID never errors; nil means freestyle fallback
		deck, _ := s.deckService.GetDeckByStringID(ctx, deckOption, userID)
		if deck != nil {
			prompt += deckContext(deck)
		} else {
			s.logger.Warn("voice session deck did not resolve, falling back to freestyle",
				"deck_option", deckOption,
			)
		}
	}

	return &services.AssistantConfig{
		Model: services.AssistantModelConfig{
			Provider: "openai",
			Model:    s.model,
			Messages: []services.AssistantMessage{
				{Role: "system", Content: prompt},
			},
		},
		Transcriber: services.TranscriberConfig{
			Provider: "deepgram",
			Model:    "nova-2",
			Language: "en",
		},
		Voice: services.VoiceConfig{
			Provider: "vapi",
			VoiceID:  "Elliot",
		},
		FirstMessage: fmt.Sprintf(firstMessageTemplate, firmName),
	}, nil
}

// deckContext renders a deck's slides as a bulleted appendix to the
// persona prompt.
func deckContext(deck *models.DeckWithSlides) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\nThe founder is pitching the deck %q. Its current slides are:\n", deck.Title)
	for _, slide := range deck.Slides {
		fmt.Fprintf(&b, "- %s: %s\n", slide.Title, slide.Content)
	}
	b.WriteString("Ground your questions in this material where possible.")
	return b.String()
}

// SaveConversation stores a finished transcript after coalescing
// consecutive same-role fragments into single logical turns.
func (s *voiceService) SaveConversation(ctx context.Context, req *services.SaveConversationRequest) (*models.VoiceConversation, error) {
	if req.UserID == "" {
		return nil, fmt.Errorf("%w: user ID is required", domain.ErrUnauthorized)
	}
	if err := validation.ValidateStruct(req,
		validation.Field(&req.FirmTag, validation.Required),
		validation.Field(&req.Transcript, validation.Required),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	transcript := coalesceTranscript(req.Transcript)
	if len(transcript) == 0 {
		return nil, fmt.Errorf("%w: transcript has no content", domain.ErrValidation)
	}

	conversation := &models.VoiceConversation{
		UserID:     req.UserID,
		FirmTag:    strings.TrimSpace(req.FirmTag),
		DeckID:     req.DeckID,
		Transcript: transcript,
	}
	if err := s.conversations.Create(ctx, conversation); err != nil {
		return nil, err
	}

	s.logger.Info("voice conversation saved",
		"conversation_id", conversation.ID,
		"user_id", conversation.UserID,
		"firm_tag", conversation.FirmTag,
		"turns", len(conversation.Transcript),
	)

	return conversation, nil
}

// ListConversations returns the caller's saved sessions, newest first.
func (s *voiceService) ListConversations(ctx context.Context, userID string) ([]models.VoiceConversation, error) {
	if userID == "" {
		return []models.VoiceConversation{}, nil
	}
	return s.conversations.ListByUser(ctx, userID)
}

// coalesceTranscript merges runs of same-role fragments into one entry per
// logical turn. Speech-to-text emits partial utterances as separate
// fragments; stored transcripts keep one entry per speaker turn.
func coalesceTranscript(entries []models.TranscriptEntry) []models.TranscriptEntry {
	coalesced := make([]models.TranscriptEntry, 0, len(entries))
	for _, entry := range entries {
		content := strings.TrimSpace(entry.Content)
		if content == "" {
			continue
		}
		if n := len(coalesced); n > 0 && coalesced[n-1].Role == entry.Role {
			coalesced[n-1].Content += " " + content
			continue
		}
		coalesced = append(coalesced, models.TranscriptEntry{Role: entry.Role, Content: content})
	}
	return coalesced
}
