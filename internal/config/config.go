package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Corpus files
	RawCorpusPath string // raw curated posts (default: data/raw_posts.json)
	CorpusPath    string // processed corpus read by selection (default: data/processed_posts.json)
	ErrorLogPath  string // append-only preprocessing failure log

	// History database
	DatabasePath string // empty disables history recording

	// Generation provider: "anthropic", "openai" or "mock"
	Provider string
	Model    string

	// Anthropic API
	AnthropicAPIKey string

	// OpenAI-compatible API
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// Selection
	MaxExamples int

	// HTTP server
	ServeAddr string

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables.
// It automatically loads .env file if present.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		RawCorpusPath:   getEnv("RAW_CORPUS_PATH", "data/raw_posts.json"),
		CorpusPath:      getEnv("CORPUS_PATH", "data/processed_posts.json"),
		ErrorLogPath:    getEnv("ERROR_LOG_PATH", "data/preprocess_errors.log"),
		DatabasePath:    getEnv("DATABASE_PATH", "data/postgen.db"),
		Provider:        getEnv("PROVIDER", "anthropic"),
		Model:           getEnv("MODEL", ""),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		OpenAIAPIKey:    getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:   getEnv("OPENAI_BASE_URL", ""),
		ServeAddr:       getEnv("SERVE_ADDR", ":8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	maxExamples, err := strconv.Atoi(getEnv("MAX_EXAMPLES", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_EXAMPLES: %w", err)
	}
	if maxExamples < 1 {
		return nil, fmt.Errorf("MAX_EXAMPLES must be at least 1")
	}
	cfg.MaxExamples = maxExamples

	return cfg, nil
}

// Validate checks that required configuration is present.
func (c *Config) Validate() error {
	if c.CorpusPath == "" {
		return fmt.Errorf("CORPUS_PATH is required")
	}
	return nil
}

// ValidateForPreprocess checks configuration needed for the batch ETL run.
func (c *Config) ValidateForPreprocess() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.RawCorpusPath == "" {
		return fmt.Errorf("RAW_CORPUS_PATH is required for preprocessing")
	}
	return nil
}

// ValidateForGeneration checks configuration needed to call the provider.
func (c *Config) ValidateForGeneration() error {
	if err := c.Validate(); err != nil {
		return err
	}
	switch c.Provider {
	case "anthropic", "":
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when PROVIDER is anthropic")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY is required when PROVIDER is openai")
		}
	case "mock":
		// No credentials needed
	default:
		return fmt.Errorf("invalid PROVIDER: %s (must be 'anthropic', 'openai' or 'mock')", c.Provider)
	}
	return nil
}

// ValidateForServe checks all configuration needed for the HTTP server.
func (c *Config) ValidateForServe() error {
	if err := c.ValidateForGeneration(); err != nil {
		return err
	}
	if c.ServeAddr == "" {
		return fmt.Errorf("SERVE_ADDR is required")
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
