package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"

	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/events"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingPublisher captures published events for assertions.
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(event events.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) byType(t events.Type) []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []events.Event
	for _, event := range p.events {
		if event.Type == t {
			out = append(out, event)
		}
	}
	return out
}

// fakeDeckRepo is an in-memory DeckRepository. IDs are real UUIDs so the
// string-id lookup path can parse them.
type fakeDeckRepo struct {
	decks []*models.Deck
}

func (f *fakeDeckRepo) Create(ctx context.Context, deck *models.Deck) error {
	deck.ID = uuid.New().String()
	stored := *deck
	f.decks = append(f.decks, &stored)
	return nil
}

func (f *fakeDeckRepo) GetByID(ctx context.Context, id string) (*models.Deck, error) {
	for _, deck := range f.decks {
		if deck.ID == id {
			copied := *deck
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("deck %s: %w", id, domain.ErrNotFound)
}

func (f *fakeDeckRepo) ListByUser(ctx context.Context, userID string) ([]models.Deck, error) {
	out := []models.Deck{}
	for _, deck := range f.decks {
		if deck.UserID == userID {
			out = append(out, *deck)
		}
	}
	// Newest first
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (f *fakeDeckRepo) Update(ctx context.Context, deck *models.Deck) error {
	for i, existing := range f.decks {
		if existing.ID == deck.ID {
			copied := *deck
			f.decks[i] = &copied
			return nil
		}
	}
	return fmt.Errorf("deck %s: %w", deck.ID, domain.ErrNotFound)
}

// fakeSlideRepo is an in-memory SlideRepository.
type fakeSlideRepo struct {
	slides      []*models.Slide
	orderErrAt  string // slide ID whose UpdateOrder call fails
	orderCalled []string
}

func (f *fakeSlideRepo) Create(ctx context.Context, slide *models.Slide) error {
	slide.ID = uuid.New().String()
	stored := *slide
	f.slides = append(f.slides, &stored)
	return nil
}

func (f *fakeSlideRepo) GetByID(ctx context.Context, id string) (*models.Slide, error) {
	for _, slide := range f.slides {
		if slide.ID == id {
			copied := *slide
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
}

func (f *fakeSlideRepo) ListByDeck(ctx context.Context, deckID string) ([]models.Slide, error) {
	out := []models.Slide{}
	for _, slide := range f.slides {
		if slide.DeckID == deckID {
			out = append(out, *slide)
		}
	}
	return out, nil
}

func (f *fakeSlideRepo) CountByDeck(ctx context.Context, deckID string) (int, error) {
	count := 0
	for _, slide := range f.slides {
		if slide.DeckID == deckID {
			count++
		}
	}
	return count, nil
}

func (f *fakeSlideRepo) UpdateFields(ctx context.Context, id string, title, content *string) error {
	for _, slide := range f.slides {
		if slide.ID == id {
			if title != nil {
				slide.Title = *title
			}
			if content != nil {
				slide.Content = *content
			}
			return nil
		}
	}
	return fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
}

func (f *fakeSlideRepo) UpdateOrder(ctx context.Context, id string, order int) error {
	f.orderCalled = append(f.orderCalled, id)
	if f.orderErrAt == id {
		return errors.New("injected order failure")
	}
	for _, slide := range f.slides {
		if slide.ID == id {
			slide.Order = order
			return nil
		}
	}
	return fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
}

func (f *fakeSlideRepo) Delete(ctx context.Context, id string) error {
	for i, slide := range f.slides {
		if slide.ID == id {
			f.slides = append(f.slides[:i], f.slides[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("slide %s: %w", id, domain.ErrNotFound)
}

// fakeMessageRepo is an in-memory MessageRepository.
type fakeMessageRepo struct {
	messages  []*models.Message
	deleteErr string // message ID whose Delete call fails
}

func (f *fakeMessageRepo) Create(ctx context.Context, message *models.Message) error {
	message.ID = uuid.New().String()
	stored := *message
	f.messages = append(f.messages, &stored)
	return nil
}

func (f *fakeMessageRepo) ListByDeck(ctx context.Context, deckID string) ([]models.Message, error) {
	out := []models.Message{}
	for _, message := range f.messages {
		if message.DeckID == deckID {
			out = append(out, *message)
		}
	}
	return out, nil
}

func (f *fakeMessageRepo) LatestByDeck(ctx context.Context, deckID string) (*models.Message, error) {
	var latest *models.Message
	for _, message := range f.messages {
		if message.DeckID == deckID {
			copied := *message
			latest = &copied
		}
	}
	return latest, nil
}

func (f *fakeMessageRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr == id {
		return errors.New("injected delete failure")
	}
	for i, message := range f.messages {
		if message.ID == id {
			f.messages = append(f.messages[:i], f.messages[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("message %s: %w", id, domain.ErrNotFound)
}
