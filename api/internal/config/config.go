package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServiceName is reported by the health probe and in logs.
const ServiceName = "hint-relay"

var ErrMissingAPIKey = errors.New("missing required env GEMINI_API_KEY")

type Config struct {
	Port string

	GeminiAPIKey string
	ModelTimeout time.Duration

	ShutdownTimeout time.Duration
	LogLevel        string
	LogFormat       string
	GinMode         string
}

// Load reads the process environment. A missing API key is an error; the
// caller is expected to abort startup on any error.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("PORT", "8000")
	v.SetDefault("MODEL_TIMEOUT", "60s")
	v.SetDefault("SHUTDOWN_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("GIN_MODE", "release")
	if err := v.BindEnv("GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_GEMINI_API_KEY"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:         strings.TrimSpace(v.GetString("PORT")),
		GeminiAPIKey: strings.TrimSpace(v.GetString("GEMINI_API_KEY")),
		LogLevel:     strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		LogFormat:    strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT"))),
		GinMode:      strings.TrimSpace(v.GetString("GIN_MODE")),
	}
	if cfg.GeminiAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Port == "" {
		cfg.Port = "8000"
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", cfg.Port, err)
	}

	var err error
	if cfg.ModelTimeout, err = parseDuration("MODEL_TIMEOUT", v.GetString("MODEL_TIMEOUT")); err != nil {
		return nil, err
	}
	if cfg.ShutdownTimeout, err = parseDuration("SHUTDOWN_TIMEOUT", v.GetString("SHUTDOWN_TIMEOUT")); err != nil {
		return nil, err
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT %q: want text or json", cfg.LogFormat)
	}
	switch cfg.GinMode {
	case "debug", "release", "test":
	default:
		return nil, fmt.Errorf("invalid GIN_MODE %q: want debug, release or test", cfg.GinMode)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string { return "0.0.0.0:" + c.Port }

// parseDuration accepts Go durations ("90s", "2m") or a bare number of seconds.
func parseDuration(key, s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("invalid %s %q: negative", key, s)
		}
		return time.Duration(n) * time.Second, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid %s %q: negative", key, s)
	}
	return d, nil
}
