package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "")
	t.Setenv("SIMILARITY_MAX_SAMPLES", "")
	t.Setenv("REASONING_TIMEOUT", "")
	t.Setenv("SIMILARITY_BANK_TIMEOUT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.Reasoning.Model)
	assert.Equal(t, 30*time.Second, cfg.Reasoning.Timeout)
	assert.Equal(t, 500, cfg.Similarity.MaxSamples)
	assert.Equal(t, 10*time.Second, cfg.Similarity.BankTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("REASONING_TIMEOUT", "5s")
	t.Setenv("SIMILARITY_MAX_SAMPLES", "25")
	t.Setenv("SIMILARITY_BANK_TIMEOUT", "750ms")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Reasoning.Timeout)
	assert.Equal(t, 25, cfg.Similarity.MaxSamples)
	assert.Equal(t, 750*time.Millisecond, cfg.Similarity.BankTimeout)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowedOrigins)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server:     ServerConfig{Port: "8080"},
			Database:   DatabaseConfig{Host: "localhost"},
			Reasoning:  ReasoningConfig{APIKey: "sk", Timeout: time.Second},
			Similarity: SimilarityConfig{MaxSamples: 10, BankTimeout: time.Second},
		}
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, base().Validate())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := base()
		cfg.Reasoning.APIKey = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive sample cap", func(t *testing.T) {
		cfg := base()
		cfg.Similarity.MaxSamples = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive bank timeout", func(t *testing.T) {
		cfg := base()
		cfg.Similarity.BankTimeout = 0
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := base()
		cfg.Reasoning.Timeout = 0
		assert.Error(t, cfg.Validate())
	})
}
