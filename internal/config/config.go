package config

import (
	"os"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	AuthJWKSURL string
	CORSOrigins string
	TablePrefix string
	// LLM configuration
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	AnthropicAPIKey string
	ChatModel       string
	OutlineModel    string
	// Voice assistant configuration
	VoiceModel string
	// Debug flags
	Debug bool
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		AuthJWKSURL: getEnv("AUTH_JWKS_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),
		// LLM configuration
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		ChatModel:       getEnv("CHAT_MODEL", "gpt-4"),
		OutlineModel:    getEnv("OUTLINE_MODEL", "gpt-4"),
		// Voice assistant configuration
		VoiceModel: getEnv("VOICE_MODEL", "gpt-4o-mini"),
		// Debug flags - default to true outside production
		Debug: getEnv("DEBUG", getDefaultDebug(env)) == "true",
	}
}

// getDefaultDebug returns the default debug setting based on environment
func getDefaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
