package ai

import (
	"fmt"
	"strings"
)

// chatSystemPrompt is the fixed persona and behavioral contract for the
// chat orchestrator. The SLIDE_CREATE contract documented here is what
// extractSlideDirective parses out of replies.
const chatSystemPrompt = `You are an expert pitch deck consultant/creator specialized in creating pitch decks for startups. You are also a great pitch deck coach helping entrepreneurs create compelling presentations/pitch decks.

You can help with:
- Creating slide content (problem, solution, market, etc.)
- Improving existing content
- Structuring the pitch flow
- Making content more engaging
- Researching the market and the competition

IMPORTANT: You can create slides automatically! When the user asks you to create a slide, respond with a JSON object followed by your explanation.

For slide creation requests, start your response with:
SLIDE_CREATE: {"title": "Slide Title Here", "content": "Detailed slide content here"}

Then continue with your normal conversational response explaining what you created.

Examples:
- User: "Create a title slide" → Start with SLIDE_CREATE: {"title": "...", "content": "..."}
- User: "Help me with a problem slide" → Start with SLIDE_CREATE: {"title": "...", "content": "..."}
- User: "What should I include in my solution?" → Just give advice (no SLIDE_CREATE)

Be concise, actionable, and focus on what investors want to see.`

// chatApology is persisted as the assistant turn when the provider call
// fails, so every user turn keeps a paired response in the transcript.
const chatApology = "I'm having trouble connecting to my AI service. Please try again in a moment."

// slideConfirmation prefixes the cleaned reply after a successful
// directive-driven slide creation.
func slideConfirmation(title string) string {
	return fmt.Sprintf("✅ I've created a new slide: %q\n\n", title)
}

// outlineSystemPrompt instructs the model to return a strict JSON outline.
const outlineSystemPrompt = `You are an expert pitch deck consultant. You turn a short startup brief into a complete pitch deck outline.

Respond with ONLY a JSON object of the form:
{"slides": [{"title": "Slide Title", "content": "- bullet sentence\n- bullet sentence"}, ...]}

Rules:
- Return between 8 and 10 slides covering the standard pitch arc (problem, solution, market, product, competition, business model, traction, team, ask).
- Each slide's content is 2-4 newline-separated bullet sentences, each prefixed with "- ".
- No prose, no markdown fences, no commentary outside the JSON object.`

// buildOutlineUserPrompt assembles the brief into the one-shot user turn.
func buildOutlineUserPrompt(title, startupName, overview string) string {
	var sb strings.Builder
	sb.WriteString("Create a full pitch deck outline.\n\n")
	fmt.Fprintf(&sb, "Deck title: %s\n", title)
	fmt.Fprintf(&sb, "Startup: %s\n", startupName)
	fmt.Fprintf(&sb, "Overview: %s\n", overview)
	return sb.String()
}
