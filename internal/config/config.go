package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/runger/pickline/internal/hint"
)

// Config represents the pickline configuration file.
type Config struct {
	Picker PickerConfig `yaml:"picker"`
	Log    LogConfig    `yaml:"log"`
}

// PickerConfig holds defaults for the interactive picker. Command-line flags
// take precedence over these values.
type PickerConfig struct {
	PageSize  string `yaml:"page_size"` // Positive integer or "auto"
	Alphabet  string `yaml:"alphabet"`  // Hint symbols, at least 2, all distinct
	Delimiter string `yaml:"delimiter"` // Column delimiter (empty = no columns)
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file path (empty = only when debugging)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Picker: PickerConfig{
			PageSize: "auto",
			Alphabet: "asdfhjkl",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadFromFile loads configuration from path. A missing file yields the
// defaults with environment overrides applied.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.ApplyEnvOverrides()
			return cfg, nil // Return defaults if file doesn't exist
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves the configuration to path.
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Get returns the value of key, in "section.key" form.
func (c *Config) Get(key string) (string, error) {
	section, field, err := splitKey(key)
	if err != nil {
		return "", err
	}

	switch section {
	case "picker":
		return c.getPickerField(field)
	case "log":
		return c.getLogField(field)
	default:
		return "", fmt.Errorf("unknown section: %s", section)
	}
}

// Set updates the value of key, in "section.key" form.
func (c *Config) Set(key, value string) error {
	section, field, err := splitKey(key)
	if err != nil {
		return err
	}

	switch section {
	case "picker":
		return c.setPickerField(field, value)
	case "log":
		return c.setLogField(field, value)
	default:
		return fmt.Errorf("unknown section: %s", section)
	}
}

func splitKey(key string) (string, string, error) {
	parts := strings.Split(key, ".")
	if len(parts) != 2 {
		return "", "", errors.New("key must be in format 'section.key'")
	}
	return parts[0], parts[1], nil
}

func (c *Config) getPickerField(field string) (string, error) {
	switch field {
	case "page_size":
		return c.Picker.PageSize, nil
	case "alphabet":
		return c.Picker.Alphabet, nil
	case "delimiter":
		return c.Picker.Delimiter, nil
	default:
		return "", fmt.Errorf("unknown field: picker.%s", field)
	}
}

func (c *Config) setPickerField(field, value string) error {
	switch field {
	case "page_size":
		if !isValidPageSize(value) {
			return fmt.Errorf("invalid page_size: %s (must be a positive integer or auto)", value)
		}
		c.Picker.PageSize = value
	case "alphabet":
		if _, err := hint.NewAlphabet(value); err != nil {
			return fmt.Errorf("invalid alphabet: %w", err)
		}
		c.Picker.Alphabet = value
	case "delimiter":
		c.Picker.Delimiter = value
	default:
		return fmt.Errorf("unknown field: picker.%s", field)
	}
	return nil
}

func (c *Config) getLogField(field string) (string, error) {
	switch field {
	case "level":
		return c.Log.Level, nil
	case "file":
		return c.Log.File, nil
	default:
		return "", fmt.Errorf("unknown field: log.%s", field)
	}
}

func (c *Config) setLogField(field, value string) error {
	switch field {
	case "level":
		if !isValidLogLevel(value) {
			return fmt.Errorf("invalid level: %s (must be debug, info, warn, or error)", value)
		}
		c.Log.Level = value
	case "file":
		c.Log.File = value
	default:
		return fmt.Errorf("unknown field: log.%s", field)
	}
	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if !isValidPageSize(c.Picker.PageSize) {
		return fmt.Errorf("picker.page_size must be a positive integer or auto (got: %s)", c.Picker.PageSize)
	}

	if _, err := hint.NewAlphabet(c.Picker.Alphabet); err != nil {
		return fmt.Errorf("picker.alphabet: %w (got: %q)", err, c.Picker.Alphabet)
	}

	if !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("log.level must be debug, info, warn, or error (got: %s)", c.Log.Level)
	}

	return nil
}

func isValidLogLevel(level string) bool {
	switch level {
	case "debug", "info", "warn", "error":
		return true
	}
	return false
}

func isValidPageSize(s string) bool {
	if strings.EqualFold(s, "auto") {
		return true
	}
	n, err := strconv.Atoi(s)
	return err == nil && n > 0
}

// ApplyEnvOverrides applies PICKLINE_* environment variables on top of the
// loaded values. Invalid values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("PICKLINE_PAGE_SIZE"); v != "" && isValidPageSize(v) {
		c.Picker.PageSize = v
	}
	if v := os.Getenv("PICKLINE_ALPHABET"); v != "" {
		if _, err := hint.NewAlphabet(v); err == nil {
			c.Picker.Alphabet = v
		}
	}
	if v := os.Getenv("PICKLINE_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil && b {
			c.Log.Level = "debug"
		}
	}
	if v := os.Getenv("PICKLINE_LOG_LEVEL"); v != "" {
		if isValidLogLevel(v) {
			c.Log.Level = v
		}
	}
}

// ListKeys returns all user-facing configuration keys.
func ListKeys() []string {
	return []string{
		"picker.page_size",
		"picker.alphabet",
		"picker.delimiter",
		"log.level",
		"log.file",
	}
}
