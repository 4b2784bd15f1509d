package events

import (
	"sync"
	"time"
)

// Type identifies what changed inside a deck.
type Type string

const (
	TypeSlideCreated    Type = "slide.created"
	TypeSlideUpdated    Type = "slide.updated"
	TypeSlideDeleted    Type = "slide.deleted"
	TypeSlidesReordered Type = "slides.reordered"
	TypeMessageSent     Type = "message.sent"
	TypeMessagesCleared Type = "messages.cleared"
)

// Event is a change notice for one deck. Carries identifiers only; clients
// refetch through the regular read endpoints, which keeps the stream cheap
// and the data path authoritative.
type Event struct {
	DeckID   string    `json:"deck_id"`
	Type     Type      `json:"type"`
	EntityID string    `json:"entity_id,omitempty"`
	At       time.Time `json:"at"`
}

// Publisher is the write side of the broker, injected into services so
// tests can substitute a recording stub.
type Publisher interface {
	Publish(event Event)
}

// Broker is an in-process, per-deck fan-out of change events. Delivery is
// best effort: a subscriber that cannot keep up has events dropped rather
// than blocking mutation paths. Clients fall back to polling, so a missed
// notice only delays visibility by one poll interval.
type Broker struct {
	mu     sync.RWMutex
	nextID int
	subs   map[string]map[int]chan Event
}

// subscriberBuffer bounds the per-subscriber queue before drops begin.
const subscriberBuffer = 16

// NewBroker creates an empty broker.
func NewBroker() *Broker {
	return &Broker{
		subs: make(map[string]map[int]chan Event),
	}
}

// Subscribe registers interest in one deck's events. The returned cancel
// function must be called when the subscriber goes away; it closes the
// channel.
func (b *Broker) Subscribe(deckID string) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan Event, subscriberBuffer)
	if b.subs[deckID] == nil {
		b.subs[deckID] = make(map[int]chan Event)
	}
	b.subs[deckID][id] = ch

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if subs, ok := b.subs[deckID]; ok {
			if ch, ok := subs[id]; ok {
				delete(subs, id)
				close(ch)
			}
			if len(subs) == 0 {
				delete(b.subs, deckID)
			}
		}
	}

	return ch, cancel
}

// Publish delivers an event to every subscriber of its deck without
// blocking. Full subscriber queues are skipped.
func (b *Broker) Publish(event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.subs[event.DeckID] {
		select {
		case ch <- event:
		default:
			// Slow consumer, drop
		}
	}
}
