package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"pitchforge/internal/config"
	"pitchforge/internal/domain/services"
	"pitchforge/internal/httputil"
)

// ChatHandler handles the AI workflow HTTP requests: chat turns and
// outline generation.
type ChatHandler struct {
	chatService    services.ChatService
	outlineService services.OutlineService
	logger         *slog.Logger
}

// NewChatHandler creates a new chat handler
func NewChatHandler(
	chatService services.ChatService,
	outlineService services.OutlineService,
	logger *slog.Logger,
) *ChatHandler {
	return &ChatHandler{
		chatService:    chatService,
		outlineService: outlineService,
		logger:         logger,
	}
}

// chatRequest is the body of a chat turn.
type chatRequest struct {
	Message string `json:"message"`
}

// Chat runs one chat turn against a deck's transcript.
// Provider failures still answer 200: the envelope's success flag carries
// the outcome and an apology turn is already on the transcript.
// POST /api/decks/{id}/chat
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	var req chatRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Message is required")
		return
	}
	if len(message) > config.MaxMessageLength {
		httputil.RespondError(w, http.StatusBadRequest, "Message is too long")
		return
	}

	result, err := h.chatService.ChatWithAI(r.Context(), deckID, message)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}

// outlineRequest is the brief submitted for outline generation.
type outlineRequest struct {
	Title       string `json:"title"`
	StartupName string `json:"startup_name"`
	Overview    string `json:"overview"`
}

// Outline generates a full slide outline from a brief
// POST /api/decks/{id}/outline
func (h *ChatHandler) Outline(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	var req outlineRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.outlineService.GenerateDeckOutline(r.Context(), &services.OutlineRequest{
		DeckID:      deckID,
		Title:       req.Title,
		StartupName: req.StartupName,
		Overview:    req.Overview,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, result)
}
