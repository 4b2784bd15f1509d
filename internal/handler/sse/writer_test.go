package sse

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// nonFlushingWriter promotes only the ResponseWriter methods, so the
// wrapper does not satisfy http.Flusher.
type nonFlushingWriter struct {
	http.ResponseWriter
}

func TestNewWriter_RequiresFlusher(t *testing.T) {
	if _, err := NewWriter(nonFlushingWriter{httptest.NewRecorder()}); err == nil {
		t.Fatal("expected an error for a non-flushing writer")
	}
}

func TestWriter_WriteEvent(t *testing.T) {
	rec := httptest.NewRecorder()
	writer, err := NewWriter(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Header().Get("Content-Type") != "text/event-stream" {
		t.Errorf("content type: got %q", rec.Header().Get("Content-Type"))
	}

	if err := writer.WriteEvent("slide.created", map[string]string{"deck_id": "deck-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "event: slide.created\ndata: {\"deck_id\":\"deck-1\"}\n\n"
	if rec.Body.String() != want {
		t.Errorf("frame: expected %q, got %q", want, rec.Body.String())
	}
	if !rec.Flushed {
		t.Error("frame was not flushed")
	}
}

func TestWriter_KeepAliveConcurrentWithEvents(t *testing.T) {
	rec := httptest.NewRecorder()
	writer, err := NewWriter(rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Run the real keepalive goroutine against the same writer the event
	// loop is using, the way the stream handler does
	keepAlive := NewTickerKeepAlive(time.Millisecond)
	done := keepAlive.Start(writer, slog.New(slog.NewTextHandler(io.Discard, nil)))

	deadline := time.Now().Add(25 * time.Millisecond)
	for time.Now().Before(deadline) {
		if err := writer.WriteEvent("deck.updated", map[string]string{"deck_id": "deck-1"}); err != nil {
			t.Fatalf("event write failed: %v", err)
		}
		time.Sleep(50 * time.Microsecond)
	}

	keepAlive.Stop()
	<-done

	body := rec.Body.String()
	if strings.Count(body, ": keepalive") == 0 {
		t.Fatal("keepalive ticker never fired; the test did not overlap the writers")
	}

	// Both goroutines wrote to one connection; every frame must still be
	// intact, never interleaved mid-write
	for _, frame := range strings.Split(body, "\n\n") {
		if frame == "" || frame == ": keepalive" {
			continue
		}
		if !strings.HasPrefix(frame, "event: deck.updated\ndata: {\"deck_id\":\"deck-1\"}") {
			t.Errorf("corrupted frame: %q", frame)
		}
	}
}
