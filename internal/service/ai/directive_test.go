package ai

import (
	"strings"
	"testing"
)

func TestExtractSlideDirective(t *testing.T) {
	tests := []struct {
		name        string
		reply       string
		wantTitle   string
		wantContent string
		wantClean   string
	}{
		{
			name:        "directive followed by prose",
			reply:       `SLIDE_CREATE: {"title": "Problem", "content": "Market pain"} I've drafted a problem slide for you.`,
			wantTitle:   "Problem",
			wantContent: "Market pain",
			wantClean:   "I've drafted a problem slide for you.",
		},
		{
			name:      "directive only",
			reply:     `SLIDE_CREATE: {"title": "Team", "content": "Founders"}`,
			wantTitle: "Team",
			wantClean: "",
		},
		{
			name:      "directive mid-reply",
			reply:     "Sure. SLIDE_CREATE: {\"title\": \"Ask\", \"content\": \"$2M seed\"}\nLet me know what to adjust.",
			wantTitle: "Ask",
			wantClean: "Sure. Let me know what to adjust.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directive, cleaned := extractSlideDirective(tt.reply)
			if directive == nil {
				t.Fatal("expected a directive")
			}
			if directive.Title != tt.wantTitle {
				t.Errorf("title: expected %q, got %q", tt.wantTitle, directive.Title)
			}
			if tt.wantContent != "" && directive.Content != tt.wantContent {
				t.Errorf("content: expected %q, got %q", tt.wantContent, directive.Content)
			}
			if cleaned != tt.wantClean {
				t.Errorf("cleaned: expected %q, got %q", tt.wantClean, cleaned)
			}
			if strings.Contains(cleaned, directiveSentinel) {
				t.Errorf("cleaned reply still contains sentinel: %q", cleaned)
			}
		})
	}
}

func TestExtractSlideDirective_NoDirective(t *testing.T) {
	reply := "A strong problem slide names the customer and quantifies the pain."
	directive, cleaned := extractSlideDirective(reply)
	if directive != nil {
		t.Fatalf("unexpected directive: %+v", directive)
	}
	if cleaned != reply {
		t.Errorf("reply must be unchanged, got %q", cleaned)
	}
}

func TestExtractSlideDirective_MalformedJSON(t *testing.T) {
	tests := []struct {
		name  string
		reply string
	}{
		{name: "unterminated object", reply: `SLIDE_CREATE: {"title": "Broken"`},
		{name: "not json", reply: `SLIDE_CREATE: {not json at all}`},
		{name: "missing title", reply: `SLIDE_CREATE: {"content": "orphan content"}`},
		{name: "sentinel without object", reply: `SLIDE_CREATE: and then nothing`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directive, cleaned := extractSlideDirective(tt.reply)
			if directive != nil {
				t.Fatalf("expected no directive, got %+v", directive)
			}
			// Parse failure falls through with the original, unstripped text
			if cleaned != tt.reply {
				t.Errorf("reply must be unchanged, got %q", cleaned)
			}
		})
	}
}
