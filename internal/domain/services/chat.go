package services

import (
	"context"
)

// CreatedSlide describes the slide created by an embedded directive.
type CreatedSlide struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ChatResult is the envelope returned by the chat orchestrator. Provider
// failures are contained: Success is false and Error carries a static
// description, but no raw provider exception ever reaches the caller.
type ChatResult struct {
	Success      bool          `json:"success"`
	Response     string        `json:"response,omitempty"`
	Error        string        `json:"error,omitempty"`
	SlideCreated *CreatedSlide `json:"slide_created"`
}

// ChatService runs the chat-driven slide-authoring workflow.
type ChatService interface {
	// ChatWithAI persists the user turn, calls the text-generation
	// provider with the full transcript, applies any embedded
	// slide-creation directive, and persists the assistant turn.
	ChatWithAI(ctx context.Context, deckID, userMessage string) (*ChatResult, error)
}
