package handler

import (
	"log/slog"
	"net/http"

	"pitchforge/internal/domain/services"
	"pitchforge/internal/httputil"
)

// SlideHandler handles slide HTTP requests
type SlideHandler struct {
	slideService services.SlideService
	logger       *slog.Logger
}

// NewSlideHandler creates a new slide handler
func NewSlideHandler(slideService services.SlideService, logger *slog.Logger) *SlideHandler {
	return &SlideHandler{
		slideService: slideService,
		logger:       logger,
	}
}

// CreateSlide appends a slide to a deck
// POST /api/decks/{id}/slides
func (h *SlideHandler) CreateSlide(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	var req services.CreateSlideRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	req.DeckID = deckID

	slide, err := h.slideService.CreateSlide(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, slide)
}

// ListSlides retrieves a deck's slides in presentation order
// GET /api/decks/{id}/slides
func (h *SlideHandler) ListSlides(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	slides, err := h.slideService.ListSlides(r.Context(), deckID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, slides)
}

// GetSlide retrieves a single slide
// GET /api/slides/{id}
func (h *SlideHandler) GetSlide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Slide ID is required")
		return
	}

	slide, err := h.slideService.GetSlide(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, slide)
}

// UpdateSlide applies a partial patch
// PATCH /api/slides/{id}
func (h *SlideHandler) UpdateSlide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Slide ID is required")
		return
	}

	var req services.UpdateSlideRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	slide, err := h.slideService.UpdateSlide(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, slide)
}

// DeleteSlide removes a slide
// DELETE /api/slides/{id}
func (h *SlideHandler) DeleteSlide(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Slide ID is required")
		return
	}

	if err := h.slideService.DeleteSlide(r.Context(), id); err != nil {
		handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// reorderRequest carries the slide/position pairs of a reorder.
type reorderRequest struct {
	Orders []services.SlideOrder `json:"orders"`
}

// ReorderSlides applies new positions to a deck's slides
// PUT /api/decks/{id}/slides/order
func (h *SlideHandler) ReorderSlides(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	var req reorderRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.slideService.ReorderSlides(r.Context(), deckID, req.Orders); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}
