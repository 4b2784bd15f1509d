package models

import (
	"time"
)

// SlideType is the optional predefined category of a slide.
type SlideType string

const (
	SlideTypeTitle         SlideType = "title"
	SlideTypeProblem       SlideType = "problem"
	SlideTypeSolution      SlideType = "solution"
	SlideTypeProduct       SlideType = "product"
	SlideTypeMarket        SlideType = "market"
	SlideTypeCompetition   SlideType = "competition"
	SlideTypeBusinessModel SlideType = "business_model"
	SlideTypeTraction      SlideType = "traction"
	SlideTypeTeam          SlideType = "team"
	SlideTypeRoadmap       SlideType = "roadmap"
	SlideTypeAsk           SlideType = "ask"
	SlideTypeCustom        SlideType = "custom"
)

// Valid returns true if t is one of the declared slide types.
func (t SlideType) Valid() bool {
	switch t {
	case SlideTypeTitle, SlideTypeProblem, SlideTypeSolution, SlideTypeProduct,
		SlideTypeMarket, SlideTypeCompetition, SlideTypeBusinessModel,
		SlideTypeTraction, SlideTypeTeam, SlideTypeRoadmap, SlideTypeAsk,
		SlideTypeCustom:
		return true
	}
	return false
}

// Slide is one titled content unit belonging to a deck.
//
// Order is a sort hint, not a dense sequence: concurrent creations can
// assign the same value, and reorders can leave gaps. Readers must sort
// ascending by Order before display.
type Slide struct {
	ID        string    `json:"id" db:"id"`
	DeckID    string    `json:"deck_id" db:"deck_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	Type      SlideType `json:"type" db:"type"`
	Order     int       `json:"order" db:"slide_order"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
