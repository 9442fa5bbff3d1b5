package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DBPath      string
	ArticlesDir string
	LegacyCSV   string
	LogLevel    string

	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	AITimeout     time.Duration

	SessionSize int
	ReviewLimit int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:          envOr("ADDR", ":8080"),
		DBPath:        envOr("DB_PATH", "file:lingodrill.db"),
		ArticlesDir:   envOr("ARTICLES_DIR", "articles"),
		LegacyCSV:     envOr("LEGACY_PROGRESS_CSV", "data/word_progress.csv"),
		LogLevel:      envOr("LOG_LEVEL", "INFO"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: envOr("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   envOr("OPENAI_MODEL", "gpt-4"),
		AITimeout:     envDurationOr("AI_TIMEOUT", 30*time.Second),
		SessionSize:   envIntOr("SESSION_SIZE", 15),
		ReviewLimit:   envIntOr("REVIEW_LIMIT", 5),
	}
}

// Validate checks the configuration and returns all problems at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", c.LogLevel))
	}
	if c.SessionSize < 1 {
		problems = append(problems, fmt.Sprintf("SESSION_SIZE must be at least 1, got %d", c.SessionSize))
	}
	if c.ReviewLimit < 1 {
		problems = append(problems, fmt.Sprintf("REVIEW_LIMIT must be at least 1, got %d", c.ReviewLimit))
	}
	if c.AITimeout <= 0 {
		problems = append(problems, fmt.Sprintf("AI_TIMEOUT must be positive, got %s", c.AITimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
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

func envDurationOr(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("invalid value for %s=%q, using default %s", key, v, def)
	}
	return def
}
