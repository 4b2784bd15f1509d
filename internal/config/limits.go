package config

const (
	// MaxDeckTitleLength is the maximum length for deck titles.
	// Limited to 255 to fit in PostgreSQL VARCHAR(255) and provide
	// reasonable UX (titles should be short and descriptive).
	MaxDeckTitleLength = 255

	// MaxSlideTitleLength is the maximum length for slide titles.
	// Generated outlines are truncated to this length before insert.
	MaxSlideTitleLength = 100

	// MaxMessageLength is the maximum length for a single chat message.
	MaxMessageLength = 8000

	// ChatMaxTokens is the output token budget for the chat orchestrator.
	ChatMaxTokens = 800

	// ChatTemperature is the sampling temperature for the chat orchestrator.
	ChatTemperature = 0.5

	// OutlineMaxTokens is the output token budget for outline generation.
	// Larger than chat because a full 8-10 slide outline is returned at once.
	OutlineMaxTokens = 2000

	// OutlineTemperature favors determinism for structured JSON output.
	OutlineTemperature = 0.3
)
