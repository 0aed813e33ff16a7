package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	LogLevel string

	ItineraryProvider string // "graphql", "openai" or "gemini"
	GraphQLURL        string
	ItineraryTimeout  time.Duration

	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	PostgresURL string

	FormSessionTTL time.Duration
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{
		Port:              getEnvWithDefault("PORT", "8080"),
		GinMode:           getEnvWithDefault("GIN_MODE", "release"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		ItineraryProvider: strings.ToLower(getEnvWithDefault("ITINERARY_PROVIDER", "graphql")),
		GraphQLURL:        getEnvWithDefault("ITINERARY_GRAPHQL_URL", "http://localhost:9000/graphql"),
		OpenAIAPIKey:      os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:       os.Getenv("OPENAI_MODEL"),
		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiModel:       os.Getenv("GEMINI_MODEL"),
		PostgresURL:       os.Getenv("POSTGRES_URL"),
	}

	var err error
	if cfg.ItineraryTimeout, err = getDurationWithDefault("ITINERARY_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}
	if cfg.FormSessionTTL, err = getDurationWithDefault("FORM_SESSION_TTL", 30*time.Minute); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.ItineraryProvider {
	case "graphql":
	case "openai":
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is required when using the openai provider")
		}
	case "gemini":
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is required when using the gemini provider")
		}
	default:
		return fmt.Errorf("unsupported itinerary provider: %s. Use 'graphql', 'openai' or 'gemini'", c.ItineraryProvider)
	}
	return nil
}

// getEnvWithDefault returns environment variable or default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid %s %q: must be positive", key, value)
	}
	return d, nil
}
