// Package config provides centralized configuration for cavetimer runtime values.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"

	"github.com/manav03panchal/cavetimer/internal/clock"
	errs "github.com/manav03panchal/cavetimer/internal/errors"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "cavetimer"

// FileName is the name of the config file inside the config directory.
const FileName = "config.yaml"

// RuntimeConfig holds all runtime configuration values.
type RuntimeConfig struct {
	// Board configuration
	Board BoardConfig `yaml:"board"`

	// Tick driver configuration
	Tick TickConfig `yaml:"tick"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`
}

// BoardConfig holds cave board configuration.
type BoardConfig struct {
	// CaveCount is the number of caves on the board.
	// Default: 4
	CaveCount int `yaml:"cave_count"`

	// DefaultCooldown is the cooldown given to fresh caves, as picked on the
	// clock face (before the 6x multiplier).
	// Default: 01:00
	DefaultCooldown clock.Time `yaml:"default_cooldown"`
}

// TickConfig holds tick driver configuration.
type TickConfig struct {
	// Interval is the time between recomputations. Must be a whole number of
	// seconds, at least one.
	// Default: 1s
	Interval time.Duration `yaml:"interval"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum level: debug, info, warn or error.
	// Default: info
	Level string `yaml:"level"`

	// File is where the dashboard writes logs. Empty means the XDG state dir.
	File string `yaml:"file"`
}

// DefaultRuntimeConfig returns the default runtime configuration.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		Board: BoardConfig{
			CaveCount:       4,
			DefaultCooldown: clock.New(1, 0),
		},
		Tick: TickConfig{
			Interval: time.Second,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the config file location under XDG_CONFIG_HOME.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, FileName)
}

// Load builds a configuration from defaults, the YAML file at path and
// CAVETIMER_* environment variables, in that order. An empty path uses
// DefaultPath; a missing file is not an error.
func Load(path string) (*RuntimeConfig, error) {
	cfg := DefaultRuntimeConfig()

	if path == "" {
		path = DefaultPath()
	}
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFile merges the YAML file at path into c.
func (c *RuntimeConfig) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return errs.NewSystemErrorWithOp("read config", err.Error(), errs.ErrConfigUnreadable)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return &errs.UserError{
			Message:    "invalid config file",
			Field:      "config",
			Value:      path,
			Suggestion: errs.Suggestions[errs.ErrConfigUnreadable],
			Cause:      errs.Wrap(errs.ErrConfigUnreadable, err.Error()),
		}
	}
	return nil
}

// loadFromEnv loads configuration overrides from environment variables.
func (c *RuntimeConfig) loadFromEnv() {
	// Board configuration
	if v := os.Getenv("CAVETIMER_CAVE_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Board.CaveCount = n
		}
	}
	if v := os.Getenv("CAVETIMER_DEFAULT_COOLDOWN"); v != "" {
		if t, err := clock.Parse(v); err == nil {
			c.Board.DefaultCooldown = t
		}
	}

	// Tick configuration
	if v := os.Getenv("CAVETIMER_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Tick.Interval = d
		}
	}

	// Logging configuration
	if v := os.Getenv("CAVETIMER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CAVETIMER_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// Validate rejects values the board or tick driver cannot run with.
func (c *RuntimeConfig) Validate() error {
	if c.Board.CaveCount < 1 {
		return errs.InvalidValue(errs.ErrInvalidCaveCount, "cave_count", strconv.Itoa(c.Board.CaveCount))
	}
	if c.Tick.Interval < time.Second || c.Tick.Interval%time.Second != 0 {
		return errs.InvalidValue(errs.ErrInvalidInterval, "interval", c.Tick.Interval.String())
	}
	return nil
}

// ReloadFromEnv reloads configuration from environment variables.
// This is useful for testing or when environment variables change.
func (c *RuntimeConfig) ReloadFromEnv() {
	c.loadFromEnv()
}

// Reset resets the configuration to defaults.
// This is primarily useful for testing.
func (c *RuntimeConfig) Reset() {
	defaults := DefaultRuntimeConfig()
	*c = *defaults
}
