package models

import (
	"time"
)

// Message roles. The transcript only ever contains these two.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one turn of the deck's chat transcript. Messages are
// append-only; the full set ordered ascending by Timestamp is exactly the
// context window sent to the text-generation provider, so ordering is
// load-bearing for conversational coherence.
type Message struct {
	ID        string    `json:"id" db:"id"`
	DeckID    string    `json:"deck_id" db:"deck_id"`
	Role      string    `json:"role" db:"role"`
	Content   string    `json:"content" db:"content"`
	Timestamp time.Time `json:"timestamp" db:"created_at"`
}
