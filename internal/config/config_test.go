package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/vocabflash/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                ":8080",
		DBPath:              "test.db",
		LogLevel:            "INFO",
		SiteURL:             "https://vocab-practice.com",
		LLMProvider:         config.ProviderGemini,
		LLMAPIKey:           "secret",
		LLMTimeoutSeconds:   30,
		SessionTTLMinutes:   120,
		SessionSweepSeconds: 60,
		SessionMaxCount:     10000,
		WorkerCount:         1,
		WorkerQueueSize:     16,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "debug upper", level: "DEBUG"},
		{name: "lowercase accepted", level: "warn"},
		{name: "error", level: "ERROR"},
		{name: "invalid", level: "INVALID", wantErr: true},
		{name: "empty", level: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_SiteURL(t *testing.T) {
	for _, bad := range []string{"", "vocab-practice.com", "/relative"} {
		t.Run(bad, func(t *testing.T) {
			cfg := validConfig()
			cfg.SiteURL = bad

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "SITE_URL")
		})
	}
}

func TestValidate_LLMProvider(t *testing.T) {
	tests := []struct {
		name     string
		provider string
		apiKey   string
		wantErr  string
	}{
		{name: "gemini with key", provider: config.ProviderGemini, apiKey: "k"},
		{name: "openai with key", provider: config.ProviderOpenAI, apiKey: "k"},
		{name: "none without key", provider: config.ProviderNone},
		{name: "gemini without key", provider: config.ProviderGemini, wantErr: "LLM_API_KEY"},
		{name: "unknown provider", provider: "genkit", apiKey: "k", wantErr: "LLM_PROVIDER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LLMProvider = tt.provider
			cfg.LLMAPIKey = tt.apiKey

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_LLMTimeoutBounds(t *testing.T) {
	for _, secs := range []int{0, -1, 301} {
		cfg := validConfig()
		cfg.LLMTimeoutSeconds = secs

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "LLM_TIMEOUT_SECONDS")
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		LogLevel:    "INVALID",
		LLMProvider: "nope",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "SITE_URL")
	assert.Contains(t, errStr, "LLM_PROVIDER")
	assert.Contains(t, errStr, "LLM_TIMEOUT_SECONDS")
	assert.Contains(t, errStr, "SESSION_TTL_MINUTES")
	assert.Contains(t, errStr, "SESSION_SWEEP_SECONDS")
	assert.Contains(t, errStr, "WORKER_COUNT")
	assert.Contains(t, errStr, "WORKER_QUEUE_SIZE")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SITE_URL", "https://example.com/")
	t.Setenv("LLM_PROVIDER", "OpenAI")
	t.Setenv("SESSION_TTL_MINUTES", "15")
	t.Setenv("WORKER_COUNT", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, "DEBUG", cfg.LogLevel)
	assert.Equal(t, "https://example.com", cfg.SiteURL)
	assert.Equal(t, config.ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, 15*time.Minute, cfg.SessionTTL())
	assert.Equal(t, 1, cfg.WorkerCount, "invalid integers fall back to the default")
}

func TestValidate_SessionMaxCount(t *testing.T) {
	cfg := validConfig()
	cfg.SessionMaxCount = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_MAX_COUNT must be positive")
}
