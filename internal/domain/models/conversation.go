package models

import (
	"time"
)

// TranscriptEntry is one logical turn of a voice session transcript.
type TranscriptEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// VoiceConversation is the durable record of a completed mock-VC voice
// session. Created once at session end and immutable thereafter. DeckID is
// empty for freestyle sessions not tied to any deck.
type VoiceConversation struct {
	ID         string            `json:"id" db:"id"`
	UserID     string            `json:"user_id" db:"user_id"`
	FirmTag    string            `json:"firm_tag" db:"firm_tag"`
	DeckID     string            `json:"deck_id,omitempty" db:"deck_id"`
	Transcript []TranscriptEntry `json:"transcript" db:"transcript"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
}
