// Package sse implements the server-sent-events plumbing for deck update
// streams.
package sse

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Writer formats and flushes SSE frames to one client connection. Writes
// are serialized: the keepalive ticker and the event loop call into the
// same Writer from different goroutines, and http.ResponseWriter is not
// safe for concurrent use.
type Writer struct {
	mu      sync.Mutex
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewWriter prepares the connection for streaming and returns a frame
// writer. Fails when the ResponseWriter cannot flush, which means a
// buffering proxy or an incompatible wrapper sits in front of us.
func NewWriter(w http.ResponseWriter) (*Writer, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, errors.New("streaming unsupported: response writer is not a flusher")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &Writer{w: w, flusher: flusher}, nil
}

// WriteEvent writes one named SSE event with a JSON payload and flushes.
func (s *Writer) WriteEvent(event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode event payload: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintf(s.w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return fmt.Errorf("write event failed: %w", err)
	}

	s.flusher.Flush()
	return nil
}

// WriteKeepAlive writes an SSE comment (: keepalive\n\n) and flushes.
// Returns error if connection is closed or write fails.
func (s *Writer) WriteKeepAlive() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// SSE spec: lines starting with : are comments (ignored by client)
	if _, err := fmt.Fprintf(s.w, ": keepalive\n\n"); err != nil {
		return fmt.Errorf("write keepalive failed: %w", err)
	}

	s.flusher.Flush()

	// Health check: attempt zero-byte write to detect closed connections
	if _, err := s.w.Write([]byte{}); err != nil {
		return fmt.Errorf("connection closed: %w", err)
	}

	return nil
}
