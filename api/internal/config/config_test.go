package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY", "MODEL_TIMEOUT",
		"SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT", "GIN_MODE",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "k-123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Port)
	assert.Equal(t, "k-123", cfg.GeminiAPIKey)
	assert.Equal(t, 60*time.Second, cfg.ModelTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "0.0.0.0:8000", cfg.Addr())
}

func TestLoadMissingAPIKey(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	assert.Nil(t, cfg)
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
}

func TestLoadWhitespaceAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "   ")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadAPIKeyAlias(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_GEMINI_API_KEY", "legacy")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "legacy", cfg.GeminiAPIKey)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("PORT", "9090")
	t.Setenv("MODEL_TIMEOUT", "15")
	t.Setenv("SHUTDOWN_TIMEOUT", "2m")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.ModelTimeout)
	assert.Equal(t, 2*time.Minute, cfg.ShutdownTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadZeroTimeoutDisables(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "k")
	t.Setenv("MODEL_TIMEOUT", "0")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.ModelTimeout)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, key, val string
	}{
		{"port", "PORT", "http"},
		{"model timeout", "MODEL_TIMEOUT", "soon"},
		{"negative timeout", "MODEL_TIMEOUT", "-5s"},
		{"log format", "LOG_FORMAT", "xml"},
		{"gin mode", "GIN_MODE", "prod"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("GEMINI_API_KEY", "k")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
