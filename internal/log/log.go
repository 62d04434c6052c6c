// Package log provides JSON-lines structured logging for pickline.
//
// The terminal belongs to the picker UI, so log output never goes to the
// tty. It is written to a file when debugging is enabled or a log file is
// configured, and discarded otherwise.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Config configures the structured logger.
type Config struct {
	// Output is the writer for log output (default: io.Discard)
	Output io.Writer

	// Level is the minimum log level (default: LevelInfo)
	Level slog.Level

	// Debug enables debug level logging (overrides Level)
	Debug bool
}

// DefaultConfig returns the default logging configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: io.Discard,
		Level:  slog.LevelInfo,
	}
}

// New creates a new JSON-lines structured logger. Log lines look like:
//
//	{"ts":"2024-01-15T10:30:00Z","level":"INFO","msg":"session started","session_id":"..."}
func New(cfg *Config) *slog.Logger {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	output := cfg.Output
	if output == nil {
		output = io.Discard
	}

	level := cfg.Level
	if cfg.Debug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				a.Key = "ts"
			}
			return a
		},
	}

	return slog.New(slog.NewJSONHandler(output, opts))
}

// ParseLevel maps a config level name to a slog level. Unknown names map to
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

// Open builds the session logger. When file is empty and level is not debug,
// output is discarded and no file is created. Otherwise logs are appended to
// file, or to defaultFile when file is empty. The returned close func is
// always non-nil.
func Open(level, file, defaultFile string) (*slog.Logger, func() error, error) {
	noop := func() error { return nil }
	lvl := ParseLevel(level)

	if file == "" && lvl != slog.LevelDebug {
		return WithSession(New(&Config{Level: lvl})), noop, nil
	}

	if file == "" {
		file = defaultFile
	}
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return nil, noop, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, noop, fmt.Errorf("failed to open log file: %w", err)
	}

	return WithSession(New(&Config{Output: f, Level: lvl})), f.Close, nil
}

// WithSession tags every record from logger with a fresh session id.
func WithSession(logger *slog.Logger) *slog.Logger {
	return logger.With("session_id", uuid.New().String())
}

// SessionInfo holds information to log when a picker session starts.
type SessionInfo struct {
	Version    string
	ConfigPath string
	Records    int
	PageSize   int
	Alphabet   string
	Delimiter  string
	PID        int
}

// LogSessionStart logs picker startup information.
func LogSessionStart(logger *slog.Logger, info SessionInfo) {
	logger.Info("session started",
		"version", info.Version,
		"config_path", info.ConfigPath,
		"records", info.Records,
		"page_size", info.PageSize,
		"alphabet", info.Alphabet,
		"delimiter", info.Delimiter,
		"pid", info.PID,
	)
}

// LogSessionEnd logs how the session ended and how many lines were emitted.
func LogSessionEnd(logger *slog.Logger, selected int, cancelled bool) {
	logger.Info("session ended", "selected", selected, "cancelled", cancelled)
}

// LogSessionError logs a fatal session error.
func LogSessionError(logger *slog.Logger, stage string, err error) {
	logger.Error("session failed", "stage", stage, "error", err)
}
