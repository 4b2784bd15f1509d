package models

import (
	"time"
)

// Deck is a pitch presentation, the top-level container owned by a user.
type Deck struct {
	ID        string    `json:"id" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Title     string    `json:"title" db:"title"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DeckWithSlides is the read shape returned by GetDeck: the deck plus its
// slides sorted ascending by order.
type DeckWithSlides struct {
	Deck
	Slides []Slide `json:"slides"`
}
