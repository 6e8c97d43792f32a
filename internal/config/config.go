// Package config loads application configuration from the environment,
// with optional .env support for development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/dshills/stemtutor/internal/embedder"
)

// Config represents the complete application configuration
type Config struct {
	Server      ServerConfig
	Embedding   EmbeddingConfig
	Corpus      CorpusConfig
	Tutor       TutorConfig
	LogLevel    string
	Environment string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// EmbeddingConfig holds embedding provider configuration
type EmbeddingConfig struct {
	Provider  string // ollama, openai, local; empty auto-detects
	APIKey    string
	BaseURL   string
	CacheSize int
}

// CorpusConfig holds corpus database and bootstrap configuration
type CorpusConfig struct {
	DBPath        string
	ScienceQAPath string
	MMLUPath      string
	SciQPath      string
}

// TutorConfig holds retrieval cascade configuration
type TutorConfig struct {
	StrategyTimeout time.Duration
}

// New creates a Config by loading environment variables. A .env file in the
// working directory is loaded first when present.
func New() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:     getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getEnvAsDuration("SERVER_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Embedding: EmbeddingConfig{
			Provider:  getEnv(embedder.EnvProvider, ""),
			APIKey:    getEnv(embedder.EnvOpenAIAPIKey, ""),
			BaseURL:   getEnv(embedder.EnvOllamaBaseURL, ""),
			CacheSize: getEnvAsInt("STEMTUTOR_EMBEDDING_CACHE_SIZE", 10000),
		},
		Corpus: CorpusConfig{
			DBPath:        getEnv("STEMTUTOR_DB_PATH", "stemtutor.db"),
			ScienceQAPath: getEnv("STEMTUTOR_SCIENCEQA_PATH", ""),
			MMLUPath:      getEnv("STEMTUTOR_MMLU_PATH", ""),
			SciQPath:      getEnv("STEMTUTOR_SCIQ_PATH", ""),
		},
		Tutor: TutorConfig{
			StrategyTimeout: getEnvAsDuration("STEMTUTOR_STRATEGY_TIMEOUT", 30*time.Second),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks configuration invariants.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Corpus.DBPath == "" {
		return fmt.Errorf("corpus database path is required")
	}
	if c.Tutor.StrategyTimeout <= 0 {
		return fmt.Errorf("strategy timeout must be positive")
	}
	if c.LogLevel == "" {
		return fmt.Errorf("log level is required")
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development" || c.Environment == "dev"
}

// Address returns the HTTP server address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
