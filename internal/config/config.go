package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/vytor/vocabflash/internal/logger"
)

// Supported values for LLM_PROVIDER.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
	ProviderNone   = "none"
)

type Config struct {
	Addr                string
	DBPath              string
	LogLevel            string
	SiteURL             string
	LLMProvider         string
	LLMAPIKey           string
	LLMModel            string
	LLMBaseURL          string
	LLMTimeoutSeconds   int
	SessionTTLMinutes   int
	SessionSweepSeconds int
	SessionMaxCount     int
	WorkerCount         int
	WorkerQueueSize     int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                envOr("ADDR", ":8080"),
		DBPath:              envOr("DB_PATH", "file:vocabflash.db"),
		LogLevel:            strings.ToUpper(envOr("LOG_LEVEL", "INFO")),
		SiteURL:             strings.TrimRight(envOr("SITE_URL", "https://vocab-practice.com"), "/"),
		LLMProvider:         strings.ToLower(envOr("LLM_PROVIDER", ProviderGemini)),
		LLMAPIKey:           os.Getenv("LLM_API_KEY"),
		LLMModel:            os.Getenv("LLM_MODEL"),
		LLMBaseURL:          os.Getenv("LLM_BASE_URL"),
		LLMTimeoutSeconds:   envIntOr("LLM_TIMEOUT_SECONDS", 30),
		SessionTTLMinutes:   envIntOr("SESSION_TTL_MINUTES", 120),
		SessionSweepSeconds: envIntOr("SESSION_SWEEP_SECONDS", 60),
		SessionMaxCount:     envIntOr("SESSION_MAX_COUNT", 10000),
		WorkerCount:         envIntOr("WORKER_COUNT", 1),
		WorkerQueueSize:     envIntOr("WORKER_QUEUE_SIZE", 16),
	}
}

// Validate reports every invalid setting in a single error.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if !logger.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q must be one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if u, err := url.Parse(c.SiteURL); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("SITE_URL %q must be an absolute URL", c.SiteURL))
	}

	switch c.LLMProvider {
	case ProviderGemini, ProviderOpenAI:
		if c.LLMAPIKey == "" {
			problems = append(problems, fmt.Sprintf("LLM_API_KEY is required for provider %s", c.LLMProvider))
		}
	case ProviderNone:
	default:
		problems = append(problems, fmt.Sprintf("LLM_PROVIDER %q must be gemini, openai or none", c.LLMProvider))
	}

	if c.LLMTimeoutSeconds < 1 || c.LLMTimeoutSeconds > 300 {
		problems = append(problems, fmt.Sprintf("LLM_TIMEOUT_SECONDS must be between 1 and 300, got %d", c.LLMTimeoutSeconds))
	}
	if c.SessionTTLMinutes <= 0 {
		problems = append(problems, fmt.Sprintf("SESSION_TTL_MINUTES must be positive, got %d", c.SessionTTLMinutes))
	}
	if c.SessionSweepSeconds <= 0 {
		problems = append(problems, fmt.Sprintf("SESSION_SWEEP_SECONDS must be positive, got %d", c.SessionSweepSeconds))
	}
	if c.SessionMaxCount <= 0 {
		problems = append(problems, fmt.Sprintf("SESSION_MAX_COUNT must be positive, got %d", c.SessionMaxCount))
	}
	if c.WorkerCount <= 0 {
		problems = append(problems, fmt.Sprintf("WORKER_COUNT must be positive, got %d", c.WorkerCount))
	}
	if c.WorkerQueueSize <= 0 {
		problems = append(problems, fmt.Sprintf("WORKER_QUEUE_SIZE must be positive, got %d", c.WorkerQueueSize))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c Config) LLMTimeout() time.Duration {
	return time.Duration(c.LLMTimeoutSeconds) * time.Second
}

func (c Config) SessionTTL() time.Duration {
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

func (c Config) SessionSweepInterval() time.Duration {
	return time.Duration(c.SessionSweepSeconds) * time.Second
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
