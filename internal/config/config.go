package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration.
type Config struct {
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"ECE_LIFE_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	Seed         uint64 `env:"ECE_LIFE_SEED" envDefault:"0"`
	Difficulty   string `env:"ECE_LIFE_DIFFICULTY" envDefault:"normal"`
	BalanceFile  string `env:"ECE_LIFE_BALANCE_FILE"`
	LogFile      string `env:"ECE_LIFE_LOG_FILE" envDefault:"ece-life.log"`
	LogLevel     string `env:"ECE_LIFE_LOG_LEVEL" envDefault:"info"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}

// NarrationEnabled reports whether an API key for the AI narrator is set.
func (c *Config) NarrationEnabled() bool {
	return c.GeminiAPIKey != ""
}

// Level maps LogLevel onto a slog level, defaulting to info.
func (c *Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Balance resolves the difficulty preset and, when set, applies the balance
// file on top of it.
func (c *Config) Balance() (Game, error) {
	base, err := Preset(c.Difficulty)
	if err != nil {
		return Game{}, err
	}
	if c.BalanceFile == "" {
		return base, base.Validate()
	}
	return LoadGame(c.BalanceFile, base)
}
