package services

import (
	"context"

	"pitchforge/internal/domain/models"
)

// FreestyleDeckOption is the sentinel deck option for sessions not tied to
// any deck.
const FreestyleDeckOption = "freestyle"

// AssistantModelConfig is the language-model section of the voice config.
type AssistantModelConfig struct {
	Provider string             `json:"provider"`
	Model    string             `json:"model"`
	Messages []AssistantMessage `json:"messages"`
}

// AssistantMessage is one message of the assistant's priming conversation.
type AssistantMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// TranscriberConfig selects the speech-to-text provider for the session.
type TranscriberConfig struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
	Language string `json:"language"`
}

// VoiceConfig selects the text-to-speech voice for the session.
type VoiceConfig struct {
	Provider string `json:"provider"`
	VoiceID  string `json:"voiceId"`
}

// AssistantConfig is the configuration object consumed by the external
// voice-agent SDK. Field names follow the SDK's wire format.
type AssistantConfig struct {
	Model        AssistantModelConfig `json:"model"`
	Transcriber  TranscriberConfig    `json:"transcriber"`
	Voice        VoiceConfig          `json:"voice"`
	FirstMessage string               `json:"firstMessage"`
}

// SaveConversationRequest persists a finished voice session.
type SaveConversationRequest struct {
	UserID     string                   `json:"user_id"`
	FirmTag    string                   `json:"firm_tag"`
	DeckID     string                   `json:"deck_id"`
	Transcript []models.TranscriptEntry `json:"transcript"`
}

// VoiceService builds voice-agent configuration and records transcripts.
type VoiceService interface {
	// GetAssistantConfig assembles the session config for a firm persona.
	// When deckOption is not FreestyleDeckOption it is treated as a deck id
	// whose slides are serialized into the persona prompt. Performs no
	// side effects beyond that one read.
	GetAssistantConfig(ctx context.Context, firmTag, deckOption, userID string) (*AssistantConfig, error)

	// SaveConversation stores the final transcript. Consecutive same-role
	// fragments are coalesced into one logical turn before insert.
	SaveConversation(ctx context.Context, req *SaveConversationRequest) (*models.VoiceConversation, error)

	// ListConversations returns the caller's saved sessions, newest first
	ListConversations(ctx context.Context, userID string) ([]models.VoiceConversation, error)
}
