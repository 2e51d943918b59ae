package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls the optional log file.
type FileConfig struct {
	// Path of the log file. Empty disables file logging.
	Path          string
	MaxSizeMB     int
	MaxBackups    int
	WriteToStderr bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger writing to stderr.
func New(cfg Config) zerolog.Logger {
	return build(cfg, formatWriter(cfg, os.Stderr, true))
}

func build(cfg Config, w io.Writer) zerolog.Logger {
	return zerolog.New(w).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// formatWriter wraps out in a console writer unless JSON was requested.
func formatWriter(cfg Config, out io.Writer, color bool) io.Writer {
	if cfg.Format == "json" {
		return out
	}
	return zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: cfg.TimeFormat,
		NoColor:    !color,
	}
}

// NewWithFile creates a logger that writes to the configured file and,
// optionally, stderr. With no file and no stderr the logger is disabled so
// full-screen terminal output stays clean.
// The returned cleanup closes the file.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	noop := func() {}

	if fileCfg.Path == "" {
		if !fileCfg.WriteToStderr {
			return zerolog.Nop(), noop, nil
		}
		return New(cfg), noop, nil
	}

	if err := os.MkdirAll(filepath.Dir(fileCfg.Path), 0o755); err != nil {
		return zerolog.Nop(), noop, fmt.Errorf("create log dir: %w", err)
	}

	rotator, err := NewLogRotator(fileCfg.Path, fileCfg.MaxSizeMB, fileCfg.MaxBackups)
	if err != nil {
		return zerolog.Nop(), noop, err
	}

	var w io.Writer = formatWriter(cfg, rotator, false)
	if fileCfg.WriteToStderr {
		w = zerolog.MultiLevelWriter(w, formatWriter(cfg, os.Stderr, true))
	}

	cleanup := func() {
		if err := rotator.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
		}
	}
	return build(cfg, w), cleanup, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info", "":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromConfigValues builds a stderr logger from raw config strings.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)
	if format == "json" || format == "console" {
		cfg.Format = format
	}
	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// CLIPFETCH_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// CLIPFETCH_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	return NewFromConfigValues(os.Getenv("CLIPFETCH_LOG_LEVEL"), os.Getenv("CLIPFETCH_LOG_FORMAT"))
}
