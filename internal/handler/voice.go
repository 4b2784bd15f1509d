package handler

import (
	"log/slog"
	"net/http"

	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/services"
	"pitchforge/internal/httputil"
)

// VoiceHandler handles voice session HTTP requests
type VoiceHandler struct {
	voiceService services.VoiceService
	logger       *slog.Logger
}

// NewVoiceHandler creates a new voice handler
func NewVoiceHandler(voiceService services.VoiceService, logger *slog.Logger) *VoiceHandler {
	return &VoiceHandler{
		voiceService: voiceService,
		logger:       logger,
	}
}

// AssistantConfig assembles the voice-agent SDK configuration
// GET /api/voice/config?firm_tag=...&deck=...
func (h *VoiceHandler) AssistantConfig(w http.ResponseWriter, r *http.Request) {
	firmTag := r.URL.Query().Get("firm_tag")
	deckOption := r.URL.Query().Get("deck")
	if deckOption == "" {
		deckOption = services.FreestyleDeckOption
	}

	cfg, err := h.voiceService.GetAssistantConfig(r.Context(), firmTag, deckOption, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, cfg)
}

// saveConversationRequest is the body of a transcript save.
type saveConversationRequest struct {
	FirmTag    string                   `json:"firm_tag"`
	DeckID     string                   `json:"deck_id"`
	Transcript []models.TranscriptEntry `json:"transcript"`
}

// SaveConversation stores a finished session transcript
// POST /api/voice/conversations
func (h *VoiceHandler) SaveConversation(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	if userID == "" {
		handleError(w, domain.ErrUnauthorized)
		return
	}

	var req saveConversationRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	conversation, err := h.voiceService.SaveConversation(r.Context(), &services.SaveConversationRequest{
		UserID:     userID,
		FirmTag:    req.FirmTag,
		DeckID:     req.DeckID,
		Transcript: req.Transcript,
	})
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, conversation)
}

// ListConversations returns the caller's saved sessions
// GET /api/voice/conversations
func (h *VoiceHandler) ListConversations(w http.ResponseWriter, r *http.Request) {
	conversations, err := h.voiceService.ListConversations(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, conversations)
}
