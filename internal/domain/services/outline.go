package services

import (
	"context"
)

// OutlineRequest is the brief used to generate a full slide outline.
type OutlineRequest struct {
	DeckID      string `json:"deck_id"`
	Title       string `json:"title"`
	StartupName string `json:"startup_name"`
	Overview    string `json:"overview"`
}

// OutlineResult reports the slides created from a brief.
type OutlineResult struct {
	Success    bool     `json:"success"`
	SlideCount int      `json:"slide_count"`
	SlideIDs   []string `json:"slide_ids"`
}

// OutlineService generates a complete slide outline from a short brief.
//
// Unlike the chat path, failures are not contained: parse, format and
// empty-outline conditions propagate as typed errors, and slides already
// created before a failure are not rolled back.
type OutlineService interface {
	GenerateDeckOutline(ctx context.Context, req *OutlineRequest) (*OutlineResult, error)
}
