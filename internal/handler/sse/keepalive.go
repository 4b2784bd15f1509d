package sse

import (
	"log/slog"
	"time"
)

// DefaultKeepAliveInterval is how often keep-alive comments are sent.
// 10 seconds stays under most proxy idle timeouts.
const DefaultKeepAliveInterval = 10 * time.Second

// KeepAliveWriter abstracts the mechanism for writing keep-alive messages.
// Allows testing without real HTTP connections.
type KeepAliveWriter interface {
	// WriteKeepAlive writes a keep-alive message (SSE comment).
	// Returns error if connection is closed or write fails.
	WriteKeepAlive() error
}

// TickerKeepAlive sends keep-alive pings at fixed intervals until stopped
// or the connection fails.
type TickerKeepAlive struct {
	interval time.Duration
	ticker   *time.Ticker
	done     chan struct{}
}

// NewTickerKeepAlive creates a new ticker-based keep-alive.
func NewTickerKeepAlive(interval time.Duration) *TickerKeepAlive {
	return &TickerKeepAlive{
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins sending keep-alive pings on the configured interval.
// Automatically stops if a write fails (connection dropped). Returns a
// channel that closes when keep-alive terminates.
func (k *TickerKeepAlive) Start(writer KeepAliveWriter, logger *slog.Logger) <-chan struct{} {
	k.ticker = time.NewTicker(k.interval)
	stopChan := make(chan struct{})

	go func() {
		defer close(stopChan)
		defer k.ticker.Stop()

		for {
			select {
			case <-k.ticker.C:
				if err := writer.WriteKeepAlive(); err != nil {
					logger.Warn("keep-alive write failed, stopping",
						"error", err,
					)
					return
				}

			case <-k.done:
				return
			}
		}
	}()

	return stopChan
}

// Stop terminates the keep-alive mechanism.
// Safe to call multiple times.
func (k *TickerKeepAlive) Stop() {
	select {
	case <-k.done:
		// Already closed
	default:
		close(k.done)
	}
}
