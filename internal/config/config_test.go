package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")
	t.Setenv("GOOGLE_API_KEY", "google-key")
	t.Setenv("LLM_TEMPERATURE", "not-a-number")

	cfg := Load()

	assert.Equal(t, "gemini", cfg.Ai.LLMProvider)
	assert.Equal(t, 0.7, cfg.Ai.Temperature)
	assert.Equal(t, 100, cfg.Ai.MaxTokens)
	assert.Equal(t, 40, cfg.Ai.TopK)
	assert.Equal(t, "google-key", cfg.Keys.GoogleGemini)
	// speech reuses the Google key unless SPEECH_API_KEY is set
	assert.Equal(t, "google-key", cfg.Keys.Speech)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SPEECH_API_KEY", "speech-key")
	t.Setenv("TURN_GUARD_TTL_SECONDS", "15")
	t.Setenv("GO_ENV", "production")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "speech-key", cfg.Keys.Speech)
	assert.Equal(t, 15, cfg.App.TurnGuardTTL)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.Tracing.Enabled)
}
