package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"pitchforge/internal/domain"
	"pitchforge/internal/domain/models"
	"pitchforge/internal/domain/services"
	"pitchforge/internal/events"
)

func newMessageFixture() (services.MessageService, *fakeMessageRepo, *recordingPublisher) {
	repo := &fakeMessageRepo{}
	publisher := &recordingPublisher{}
	return NewMessageService(repo, publisher, testLogger()), repo, publisher
}

func TestSendMessage(t *testing.T) {
	svc, repo, publisher := newMessageFixture()

	message, err := svc.SendMessage(context.Background(), &services.SendMessageRequest{
		DeckID:  "deck-1",
		Role:    models.RoleUser,
		Content: "hello",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message.ID == "" {
		t.Error("expected a generated ID")
	}
	if message.Timestamp.IsZero() {
		t.Error("expected a server-assigned timestamp")
	}
	if len(repo.messages) != 1 {
		t.Errorf("expected 1 stored message, got %d", len(repo.messages))
	}
	if len(publisher.byType(events.TypeMessageSent)) != 1 {
		t.Error("expected one message event")
	}
}

func TestSendMessage_Validation(t *testing.T) {
	svc, repo, _ := newMessageFixture()

	tests := []struct {
		name string
		req  *services.SendMessageRequest
	}{
		{name: "missing deck", req: &services.SendMessageRequest{Role: models.RoleUser, Content: "x"}},
		{name: "missing role", req: &services.SendMessageRequest{DeckID: "d", Content: "x"}},
		{name: "unknown role", req: &services.SendMessageRequest{DeckID: "d", Role: "system", Content: "x"}},
		{name: "missing content", req: &services.SendMessageRequest{DeckID: "d", Role: models.RoleUser}},
		{name: "content too long", req: &services.SendMessageRequest{DeckID: "d", Role: models.RoleUser, Content: strings.Repeat("a", 8001)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.SendMessage(context.Background(), tt.req); !errors.Is(err, domain.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}

	if len(repo.messages) != 0 {
		t.Errorf("nothing should be stored, got %d", len(repo.messages))
	}
}

func TestGetMessages_ChronologicalAppendOnly(t *testing.T) {
	svc, _, _ := newMessageFixture()

	for _, content := range []string{"one", "two", "three"} {
		role := models.RoleUser
		if content == "two" {
			role = models.RoleAssistant
		}
		if _, err := svc.SendMessage(context.Background(), &services.SendMessageRequest{
			DeckID:  "deck-1",
			Role:    role,
			Content: content,
		}); err != nil {
			t.Fatalf("send %q: %v", content, err)
		}
	}

	messages, err := svc.GetMessages(context.Background(), "deck-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i, want := range []string{"one", "two", "three"} {
		if messages[i].Content != want {
			t.Errorf("messages[%d]: expected %q, got %q", i, want, messages[i].Content)
		}
	}
}

func TestGetLatestMessage(t *testing.T) {
	svc, _, _ := newMessageFixture()

	// Empty transcript yields nil, not an error
	latest, err := svc.GetLatestMessage(context.Background(), "deck-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest != nil {
		t.Errorf("expected nil, got %+v", latest)
	}

	svc.SendMessage(context.Background(), &services.SendMessageRequest{DeckID: "deck-1", Role: models.RoleUser, Content: "first"})
	svc.SendMessage(context.Background(), &services.SendMessageRequest{DeckID: "deck-1", Role: models.RoleAssistant, Content: "second"})

	latest, err = svc.GetLatestMessage(context.Background(), "deck-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest == nil || latest.Content != "second" {
		t.Errorf("expected the newest message, got %+v", latest)
	}
}

func TestClearChatHistory(t *testing.T) {
	svc, repo, publisher := newMessageFixture()

	svc.SendMessage(context.Background(), &services.SendMessageRequest{DeckID: "deck-1", Role: models.RoleUser, Content: "a"})
	svc.SendMessage(context.Background(), &services.SendMessageRequest{DeckID: "deck-1", Role: models.RoleAssistant, Content: "b"})
	svc.SendMessage(context.Background(), &services.SendMessageRequest{DeckID: "deck-2", Role: models.RoleUser, Content: "keep"})

	if err := svc.ClearChatHistory(context.Background(), "deck-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the target deck's transcript is gone
	if len(repo.messages) != 1 || repo.messages[0].DeckID != "deck-2" {
		t.Errorf("unexpected surviving messages: %+v", repo.messages)
	}
	if len(publisher.byType(events.TypeMessagesCleared)) != 1 {
		t.Error("expected one cleared event")
	}
}

func TestClearChatHistory_PartialFailure(t *testing.T) {
	svc, repo, publisher := newMessageFixture()

	svc.SendMessage(context.Background(), &services.SendMessageRequest{DeckID: "deck-1", Role: models.RoleUser, Content: "a"})
	second, _ := svc.SendMessage(context.Background(), &services.SendMessageRequest{DeckID: "deck-1", Role: models.RoleAssistant, Content: "b"})

	repo.deleteErr = second.ID
	if err := svc.ClearChatHistory(context.Background(), "deck-1"); err == nil {
		t.Fatal("expected an error")
	}

	// Deletion is per-row: the first row is gone, the failing row stays
	if len(repo.messages) != 1 || repo.messages[0].ID != second.ID {
		t.Errorf("expected only the failing message to survive, got %+v", repo.messages)
	}
	if len(publisher.byType(events.TypeMessagesCleared)) != 0 {
		t.Error("failed clear must not publish a cleared event")
	}
}
