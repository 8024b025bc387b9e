package main

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
)

// Config is the process configuration. Flags override the environment.
type Config struct {
	RedisAddr   string        `env:"SHEET_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisTLS    bool          `env:"SHEET_REDIS_TLS"`
	Lang        string        `env:"SHEET_LANG" envDefault:"en"`
	LogLevel    string        `env:"SHEET_LOG_LEVEL" envDefault:"warn"`
	RollHistory int           `env:"SHEET_ROLL_HISTORY" envDefault:"50"`
	RollTTL     time.Duration `env:"SHEET_ROLL_TTL" envDefault:"24h"`
}

var (
	flagRedisAddr string
	flagLang      string
	flagLogLevel  string

	cfg *Config
)

// loadConfig reads the environment and applies flags that were set.
func loadConfig(cmd *cobra.Command) (*Config, error) {
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	flags := cmd.Flags()
	if flags.Changed("redis") {
		c.RedisAddr = flagRedisAddr
	}
	if flags.Changed("lang") {
		c.Lang = flagLang
	}
	if flags.Changed("log-level") {
		c.LogLevel = flagLogLevel
	}

	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return c, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(c.RedisAddr) == "" {
		vb.RequiredField("SHEET_REDIS_ADDR")
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.InvalidField("SHEET_LOG_LEVEL", "must be debug, info, warn or error")
	}
	if c.RollHistory < 0 {
		vb.InvalidField("SHEET_ROLL_HISTORY", "cannot be negative")
	}
	if c.RollTTL < 0 {
		vb.InvalidField("SHEET_ROLL_TTL", "cannot be negative")
	}
	return vb.Build()
}

func parseLevel(level string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func setup(cmd *cobra.Command, _ []string) error {
	c, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg = c

	level, _ := parseLevel(c.LogLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
