package handler

import (
	"log/slog"
	"net/http"

	"pitchforge/internal/httputil"
)

// ResearchHandler accepts competitor research requests. The scraping
// pipeline behind it is not built yet; requests are acknowledged and
// logged so the frontend contract is stable when it lands.
// TODO: wire a scraping backend and persist results per deck.
type ResearchHandler struct {
	logger *slog.Logger
}

// NewResearchHandler creates a new research handler
func NewResearchHandler(logger *slog.Logger) *ResearchHandler {
	return &ResearchHandler{logger: logger}
}

// researchRequest lists competitor domains to scrape.
type researchRequest struct {
	Domains []string `json:"domains"`
}

// Research accepts a competitor research request
// POST /api/decks/{id}/research
func (h *ResearchHandler) Research(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	var req researchRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(req.Domains) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "At least one domain is required")
		return
	}

	h.logger.Info("competitor research requested",
		"deck_id", deckID,
		"domains", req.Domains,
	)

	httputil.RespondJSON(w, http.StatusAccepted, map[string]string{"status": "pending"})
}
