package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaBaseURL)
	assert.Equal(t, "llama3", cfg.OllamaModel)
	assert.Equal(t, 2, cfg.AIMaxRetries)
	assert.Equal(t, 60*time.Second, cfg.ProcessTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("AI_MAX_RETRIES", "5")
	t.Setenv("PROCESS_TIMEOUT", "90s")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5, cfg.AIMaxRetries)
	assert.Equal(t, 90*time.Second, cfg.ProcessTimeout)
}

func TestLoadIgnoresInvalidNumbers(t *testing.T) {
	t.Setenv("AI_MAX_RETRIES", "many")
	t.Setenv("PROCESS_TIMEOUT", "soon")

	cfg := Load()
	assert.Equal(t, 2, cfg.AIMaxRetries)
	assert.Equal(t, 60*time.Second, cfg.ProcessTimeout)
}
