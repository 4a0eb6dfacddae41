// Package config loads markergen settings from defaults, an optional YAML
// file and MARKERGEN_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is returned when a loaded configuration fails validation.
var ErrInvalid = errors.New("config: invalid")

// Config holds all generator configuration.
type Config struct {
	OutputDir string        `yaml:"output_dir"`
	Size      int           `yaml:"size"`
	Markers   []string      `yaml:"markers"`
	Font      FontConfig    `yaml:"font"`
	Logging   LoggingConfig `yaml:"logging"`
}

// FontConfig holds label font settings.
type FontConfig struct {
	// Paths are tried before the system font candidates.
	Paths []string `yaml:"paths"`

	// Size is the label size at a 640 pixel canvas. It scales with Size.
	Size float64 `yaml:"size"`

	// SkipSystem disables the built-in list of system font locations.
	SkipSystem bool `yaml:"skip_system"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level          string `yaml:"level"`
	Format         string `yaml:"format"`
	File           string `yaml:"file"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxFiles   int    `yaml:"file_max_files"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// Default returns a Config with the stock marker settings.
func Default() *Config {
	return &Config{
		OutputDir: "assets/markers",
		Size:      640,
		Markers:   []string{"bcc", "fcc", "hcp"},
		Font: FontConfig{
			Size: 40,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// Load reads config from a YAML file (if path is set and the file exists)
// and applies environment overrides. Environment variables take
// precedence over the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFromFile(path); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := cfg.loadFromEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, c)
}

func (c *Config) loadFromEnv() error {
	if v := os.Getenv("MARKERGEN_OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("MARKERGEN_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: MARKERGEN_SIZE=%q is not an integer", ErrInvalid, v)
		}
		c.Size = size
	}
	if v := os.Getenv("MARKERGEN_FONT"); v != "" {
		c.Font.Paths = SplitList(v)
	}
	if v := os.Getenv("MARKERGEN_MARKERS"); v != "" {
		c.Markers = SplitList(v)
	}
	if v := os.Getenv("MARKERGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("MARKERGEN_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("MARKERGEN_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	return nil
}

// Validate checks ranges and normalizes list values.
func (c *Config) Validate() error {
	c.OutputDir = strings.TrimSpace(c.OutputDir)
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir is required", ErrInvalid)
	}
	if c.Size < 64 || c.Size > 8192 {
		return fmt.Errorf("%w: size %d outside [64, 8192]", ErrInvalid, c.Size)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("%w: font size %v must be positive", ErrInvalid, c.Font.Size)
	}
	if len(c.Markers) == 0 {
		return fmt.Errorf("%w: no markers selected", ErrInvalid)
	}
	for i, m := range c.Markers {
		c.Markers[i] = strings.ToLower(strings.TrimSpace(m))
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Logging.Format)
	}
	return nil
}

// SplitList splits a comma-separated value and drops empty items.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
