package handler

import (
	"log/slog"
	"net/http"

	"pitchforge/internal/domain/services"
	"pitchforge/internal/httputil"
)

// MessageHandler handles chat-log HTTP requests
type MessageHandler struct {
	messageService services.MessageService
	logger         *slog.Logger
}

// NewMessageHandler creates a new message handler
func NewMessageHandler(messageService services.MessageService, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
		logger:         logger,
	}
}

// SendMessage appends a message to a deck's transcript
// POST /api/decks/{id}/messages
func (h *MessageHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	var req services.SendMessageRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.DeckID = deckID

	message, err := h.messageService.SendMessage(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, message)
}

// ListMessages retrieves a deck's transcript in chronological order
// GET /api/decks/{id}/messages
func (h *MessageHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	messages, err := h.messageService.GetMessages(r.Context(), deckID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, messages)
}

// LatestMessage retrieves the newest message, null body when the
// transcript is empty
// GET /api/decks/{id}/messages/latest
func (h *MessageHandler) LatestMessage(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	message, err := h.messageService.GetLatestMessage(r.Context(), deckID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, message)
}

// ClearMessages deletes a deck's entire transcript
// DELETE /api/decks/{id}/messages
func (h *MessageHandler) ClearMessages(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	if err := h.messageService.ClearChatHistory(r.Context(), deckID); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
