package events

import (
	"testing"
	"time"
)

func TestBroker_PublishReachesSubscriber(t *testing.T) {
	broker := NewBroker()
	ch, cancel := broker.Subscribe("deck-1")
	defer cancel()

	broker.Publish(Event{DeckID: "deck-1", Type: TypeSlideCreated, EntityID: "slide-1"})

	select {
	case event := <-ch:
		if event.Type != TypeSlideCreated {
			t.Errorf("expected %s, got %s", TypeSlideCreated, event.Type)
		}
		if event.EntityID != "slide-1" {
			t.Errorf("expected entity slide-1, got %s", event.EntityID)
		}
		if event.At.IsZero() {
			t.Error("expected At to be stamped")
		}
	case <-time.After(time.Second):
		t.Fatal("event not delivered")
	}
}

func TestBroker_ScopedToDeck(t *testing.T) {
	broker := NewBroker()
	ch, cancel := broker.Subscribe("deck-1")
	defer cancel()

	broker.Publish(Event{DeckID: "deck-2", Type: TypeMessageSent})

	select {
	case event := <-ch:
		t.Fatalf("unexpected event for other deck: %+v", event)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBroker_CancelClosesChannel(t *testing.T) {
	broker := NewBroker()
	ch, cancel := broker.Subscribe("deck-1")
	cancel()

	if _, open := <-ch; open {
		t.Error("expected channel to be closed after cancel")
	}

	// Publish after cancel must not panic
	broker.Publish(Event{DeckID: "deck-1", Type: TypeSlideDeleted})
}

func TestBroker_SlowConsumerDoesNotBlock(t *testing.T) {
	broker := NewBroker()
	_, cancel := broker.Subscribe("deck-1")
	defer cancel()

	done := make(chan struct{})
	go func() {
		defer close(done)
		// More events than the subscriber buffer holds; nobody reads.
		for i := 0; i < subscriberBuffer*4; i++ {
			broker.Publish(Event{DeckID: "deck-1", Type: TypeMessageSent})
		}
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on slow consumer")
	}
}
