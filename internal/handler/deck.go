package handler

import (
	"log/slog"
	"net/http"

	"pitchforge/internal/domain/services"
	"pitchforge/internal/httputil"
)

// DeckHandler handles deck HTTP requests
type DeckHandler struct {
	deckService services.DeckService
	logger      *slog.Logger
}

// NewDeckHandler creates a new deck handler
func NewDeckHandler(deckService services.DeckService, logger *slog.Logger) *DeckHandler {
	return &DeckHandler{
		deckService: deckService,
		logger:      logger,
	}
}

// CreateDeck creates a new deck
// POST /api/decks
func (h *DeckHandler) CreateDeck(w http.ResponseWriter, r *http.Request) {
	var req services.CreateDeckRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.UserID = httputil.GetUserID(r)

	deck, err := h.deckService.CreateDeck(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, deck)
}

// ListDecks retrieves the caller's decks, newest first.
// Unauthenticated callers get an empty list, not a 401, so the frontend
// can render a blank dashboard during sign-in transitions.
// GET /api/decks
func (h *DeckHandler) ListDecks(w http.ResponseWriter, r *http.Request) {
	decks, err := h.deckService.ListDecks(r.Context(), httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, decks)
}

// GetDeck retrieves a deck with its slides
// GET /api/decks/{id}
func (h *DeckHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	deck, err := h.deckService.GetDeck(r.Context(), id, httputil.GetUserID(r))
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, deck)
}

// UpdateDeck renames a deck
// PATCH /api/decks/{id}
func (h *DeckHandler) UpdateDeck(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	var req services.UpdateDeckRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	deck, err := h.deckService.UpdateDeck(r.Context(), id, httputil.GetUserID(r), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, deck)
}

// LookupDeck resolves a deck from an untrusted string id. Any resolution
// failure answers 200 with a null body rather than an error status; the
// frontend treats null as "show the picker" and must not see transient
// 4xx/5xx here.
// GET /api/decks/lookup?id=...
func (h *DeckHandler) LookupDeck(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("id")

	deck, err := h.deckService.GetDeckByStringID(r.Context(), raw, httputil.GetUserID(r))
	if err != nil {
		// GetDeckByStringID never errors; kept for interface symmetry
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, deck)
}
