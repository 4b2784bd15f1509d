package ai

import (
	"context"
	"fmt"
	"time"

	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/services"
	domainllm "pitchforge/internal/domain/services/llm"
)

// fakeMessageService is an in-memory MessageService.
type fakeMessageService struct {
	messages []models.Message
	sendErr  error
	nextID   int
}

func (f *fakeMessageService) SendMessage(ctx context.Context, req *services.SendMessageRequest) (*models.Message, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.nextID++
	message := models.Message{
		ID:        fmt.Sprintf("msg-%d", f.nextID),
		DeckID:    req.DeckID,
		Role:      req.Role,
		Content:   req.Content,
		Timestamp: time.Now(),
	}
	f.messages = append(f.messages, message)
	return &message, nil
}

func (f *fakeMessageService) GetMessages(ctx context.Context, deckID string) ([]models.Message, error) {
	out := []models.Message{}
	for _, message := range f.messages {
		if message.DeckID == deckID {
			out = append(out, message)
		}
	}
	return out, nil
}

func (f *fakeMessageService) GetLatestMessage(ctx context.Context, deckID string) (*models.Message, error) {
	var latest *models.Message
	for i := range f.messages {
		if f.messages[i].DeckID == deckID {
			latest = &f.messages[i]
		}
	}
	return latest, nil
}

func (f *fakeMessageService) ClearChatHistory(ctx context.Context, deckID string) error {
	kept := f.messages[:0]
	for _, message := range f.messages {
		if message.DeckID != deckID {
			kept = append(kept, message)
		}
	}
	f.messages = kept
	return nil
}

// fakeSlideService is an in-memory SlideService.
type fakeSlideService struct {
	slides    []models.Slide
	createErr error
	nextID    int
}

func (f *fakeSlideService) CreateSlide(ctx context.Context, req *services.CreateSlideRequest) (*models.Slide, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.nextID++
	slideType := req.Type
	if slideType == "" {
		slideType = models.SlideTypeCustom
	}
	slide := models.Slide{
		ID:        fmt.Sprintf("slide-%d", f.nextID),
		DeckID:    req.DeckID,
		Title:     req.Title,
		Content:   req.Content,
		Type:      slideType,
		Order:     len(f.slides) + 1,
		CreatedAt: time.Now(),
	}
	f.slides = append(f.slides, slide)
	return &slide, nil
}

func (f *fakeSlideService) GetSlide(ctx context.Context, id string) (*models.Slide, error) {
	for i := range f.slides {
		if f.slides[i].ID == id {
			return &f.slides[i], nil
		}
	}
	return nil, fmt.Errorf("slide %s not found", id)
}

func (f *fakeSlideService) ListSlides(ctx context.Context, deckID string) ([]models.Slide, error) {
	out := []models.Slide{}
	for _, slide := range f.slides {
		if slide.DeckID == deckID {
			out = append(out, slide)
		}
	}
	return out, nil
}

func (f *fakeSlideService) UpdateSlide(ctx context.Context, id string, req *services.UpdateSlideRequest) (*models.Slide, error) {
	return f.GetSlide(ctx, id)
}

func (f *fakeSlideService) DeleteSlide(ctx context.Context, id string) error { return nil }

func (f *fakeSlideService) ReorderSlides(ctx context.Context, deckID string, orders []services.SlideOrder) error {
	return nil
}

// scriptedProvider returns canned replies and records requests. It
// resolves itself for any model, standing in for the registry.
type scriptedProvider struct {
	replies  []string
	err      error
	requests []*domainllm.GenerateRequest
}

func (p *scriptedProvider) Name() string                    { return "scripted" }
func (p *scriptedProvider) SupportsModel(model string) bool { return true }

func (p *scriptedProvider) GenerateResponse(ctx context.Context, req *domainllm.GenerateRequest) (*domainllm.GenerateResponse, error) {
	p.requests = append(p.requests, req)
	if p.err != nil {
		return nil, p.err
	}
	if len(p.replies) == 0 {
		return nil, fmt.Errorf("scripted provider exhausted")
	}
	reply := p.replies[0]
	p.replies = p.replies[1:]
	return &domainllm.GenerateResponse{Text: reply, Model: req.Model}, nil
}

func (p *scriptedProvider) ProviderForModel(model string) (domainllm.Provider, error) {
	return p, nil
}
