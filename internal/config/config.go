// Package config loads termwordle settings from defaults, an optional YAML
// file and environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/termwordle/internal/game"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Environment variables.
const (
	EnvConfigFile     = "TERMWORDLE_CONFIG"
	EnvLogLevel       = "TERMWORDLE_LOG_LEVEL"
	EnvLogFile        = "TERMWORDLE_LOG_FILE"
	EnvSeed           = "TERMWORDLE_SEED"
	EnvKeyboardPolicy = "TERMWORDLE_KEYBOARD_POLICY"
	EnvAnswersFile    = "TERMWORDLE_ANSWERS_FILE"
	EnvAllowedFile    = "TERMWORDLE_ALLOWED_FILE"
	EnvTelemetry      = "TERMWORDLE_TELEMETRY"
)

// Config holds every user-tunable setting.
type Config struct {
	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`

	// Seed for secret word selection. 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`

	// KeyboardPolicy is "last-write" or "monotonic".
	KeyboardPolicy string `yaml:"keyboard_policy"`

	AnswersFile string `yaml:"answers_file"`
	AllowedFile string `yaml:"allowed_file"`

	FlashFrames int           `yaml:"flash_frames"`
	FlashDelay  time.Duration `yaml:"flash_delay"`

	// Telemetry enables OTLP trace export. The exporter itself is configured
	// through the standard OTEL_* variables.
	Telemetry bool `yaml:"telemetry"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:       "info",
		LogFile:        filepath.Join(os.TempDir(), "termwordle.log"),
		KeyboardPolicy: "last-write",
		FlashFrames:    4,
		FlashDelay:     150 * time.Millisecond,
	}
}

// Load builds the configuration: defaults, then the YAML file named by
// TERMWORDLE_CONFIG (if set), then individual environment overrides.
func Load() (Config, error) {
	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.mergeEnv(os.Getenv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// mergeFile overlays the YAML file at path. Missing keys keep their value.
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// mergeEnv overlays non-empty environment variables.
func (c *Config) mergeEnv(getenv func(string) string) error {
	str := map[string]*string{
		EnvLogLevel:       &c.LogLevel,
		EnvLogFile:        &c.LogFile,
		EnvKeyboardPolicy: &c.KeyboardPolicy,
		EnvAnswersFile:    &c.AnswersFile,
		EnvAllowedFile:    &c.AllowedFile,
	}
	for key, dst := range str {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}

	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v := getenv(EnvTelemetry); v != "" {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvTelemetry, v, err)
		}
		c.Telemetry = on
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.FlashFrames < 0 {
		return fmt.Errorf("%w: flash_frames must not be negative", ErrInvalid)
	}
	if c.FlashDelay < 0 {
		return fmt.Errorf("%w: flash_delay must not be negative", ErrInvalid)
	}
	if _, err := game.ParseMergePolicy(c.KeyboardPolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}
