package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENVIRONMENT", "LOG_LEVEL",
		"SERVER_HOST", "SERVER_PORT", "SERVER_READ_TIMEOUT",
		"STEMTUTOR_EMBEDDING_PROVIDER", "OPENAI_API_KEY", "OLLAMA_BASE_URL",
		"STEMTUTOR_DB_PATH", "STEMTUTOR_STRATEGY_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestNew_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.True(t, cfg.IsDevelopment())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "stemtutor.db", cfg.Corpus.DBPath)
	assert.Equal(t, 30*time.Second, cfg.Tutor.StrategyTimeout)
	assert.Empty(t, cfg.Embedding.Provider)
}

func TestNew_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "5s")
	t.Setenv("STEMTUTOR_EMBEDDING_PROVIDER", "local")
	t.Setenv("STEMTUTOR_DB_PATH", "/var/lib/stemtutor/corpus.db")
	t.Setenv("STEMTUTOR_STRATEGY_TIMEOUT", "10s")

	cfg, err := New()
	require.NoError(t, err)

	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "local", cfg.Embedding.Provider)
	assert.Equal(t, "/var/lib/stemtutor/corpus.db", cfg.Corpus.DBPath)
	assert.Equal(t, 10*time.Second, cfg.Tutor.StrategyTimeout)
}

func TestNew_MalformedValuesFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "not-a-number")
	t.Setenv("SERVER_READ_TIMEOUT", "eleven seconds")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestValidate(t *testing.T) {
	clearEnv(t)
	cfg, err := New()
	require.NoError(t, err)

	cfg.Server.Port = 0
	assert.Error(t, cfg.Validate())

	cfg.Server.Port = 8080
	cfg.Corpus.DBPath = ""
	assert.Error(t, cfg.Validate())

	cfg.Corpus.DBPath = "x.db"
	cfg.Tutor.StrategyTimeout = 0
	assert.Error(t, cfg.Validate())

	cfg.Tutor.StrategyTimeout = time.Second
	assert.NoError(t, cfg.Validate())
}
