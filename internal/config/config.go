package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/footylab/mvp-selector/internal/platform/logging"
)

// Config stores runtime configuration for the selector.
type Config struct {
	ServiceName        string
	ServiceVersion     string
	APIFootballKey     string
	APIFootballHost    string
	APIFootballBaseURL string
	APIFootballTimeout time.Duration
	LLMAPIKey          string
	LLMBaseURL         string
	LLMModel           string
	LLMTimeout         time.Duration
	LogLevel           logging.Level
}

// Load reads configuration from the environment. Missing credentials are
// fatal here so the process never reaches the interactive loop without them.
func Load() (Config, error) {
	apiKey := strings.TrimSpace(os.Getenv("APIFOOTBALL_KEY"))
	if apiKey == "" {
		return Config{}, fmt.Errorf("APIFOOTBALL_KEY is required")
	}

	apiHost := strings.TrimSpace(os.Getenv("APIFOOTBALL_HOST"))
	if apiHost == "" {
		return Config{}, fmt.Errorf("APIFOOTBALL_HOST is required")
	}

	llmKey := strings.TrimSpace(os.Getenv("LLM_API_KEY"))
	if llmKey == "" {
		return Config{}, fmt.Errorf("LLM_API_KEY is required")
	}

	apiTimeout, err := time.ParseDuration(getEnv("APIFOOTBALL_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APIFOOTBALL_TIMEOUT: %w", err)
	}
	if apiTimeout <= 0 {
		return Config{}, fmt.Errorf("APIFOOTBALL_TIMEOUT must be > 0")
	}

	llmTimeout, err := time.ParseDuration(getEnv("LLM_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LLM_TIMEOUT: %w", err)
	}
	if llmTimeout <= 0 {
		return Config{}, fmt.Errorf("LLM_TIMEOUT must be > 0")
	}

	return Config{
		ServiceName:        getEnv("APP_SERVICE_NAME", "mvp-selector"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		APIFootballKey:     apiKey,
		APIFootballHost:    apiHost,
		APIFootballBaseURL: getEnv("APIFOOTBALL_BASE_URL", "https://api-football-v1.p.rapidapi.com/v3"),
		APIFootballTimeout: apiTimeout,
		LLMAPIKey:          llmKey,
		LLMBaseURL:         strings.TrimSpace(os.Getenv("LLM_BASE_URL")),
		LLMModel:           getEnv("LLM_MODEL", "gemini-1.5-flash"),
		LLMTimeout:         llmTimeout,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}, nil
}

// SlogLevel maps the zap-style level onto slog for the layers that log
// through log/slog.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case logging.LevelDebug:
		return slog.LevelDebug
	case logging.LevelWarn:
		return slog.LevelWarn
	case logging.LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}
