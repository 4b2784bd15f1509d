package handler

import (
	"log/slog"
	"net/http"

	"pitchforge/internal/events"
	"pitchforge/internal/handler/sse"
	"pitchforge/internal/httputil"
)

// EventsHandler streams deck change notices over SSE.
type EventsHandler struct {
	broker *events.Broker
	logger *slog.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(broker *events.Broker, logger *slog.Logger) *EventsHandler {
	return &EventsHandler{
		broker: broker,
		logger: logger,
	}
}

// Stream subscribes the client to one deck's change events. Events carry
// identifiers only; the client refetches through the read endpoints.
// The stream ends when the client disconnects.
// GET /api/decks/{id}/events
func (h *EventsHandler) Stream(w http.ResponseWriter, r *http.Request) {
	deckID := r.PathValue("id")
	if deckID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Deck ID is required")
		return
	}

	writer, err := sse.NewWriter(w)
	if err != nil {
		httputil.RespondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	eventCh, cancel := h.broker.Subscribe(deckID)
	defer cancel()

	keepAlive := sse.NewTickerKeepAlive(sse.DefaultKeepAliveInterval)
	keepAliveDone := keepAlive.Start(writer, h.logger)
	defer keepAlive.Stop()

	h.logger.Debug("event stream opened", "deck_id", deckID)

	for {
		select {
		case event, ok := <-eventCh:
			if !ok {
				return
			}
			if err := writer.WriteEvent(string(event.Type), event); err != nil {
				h.logger.Debug("event stream write failed", "deck_id", deckID, "error", err)
				return
			}

		case <-keepAliveDone:
			// Keep-alive detected a dead connection
			return

		case <-r.Context().Done():
			h.logger.Debug("event stream closed by client", "deck_id", deckID)
			return
		}
	}
}
