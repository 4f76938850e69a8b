// Package logging configures the process-wide slog logger for the CLI.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ErrInvalidConfig is returned for an unknown level or format.
var ErrInvalidConfig = errors.New("invalid log config")

// Config selects the log level and handler.
type Config struct {
	Level  string // debug, info, warn or error
	Format string // text or json
}

// New builds a logger writing to w.
func New(w io.Writer, cfg Config) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("%w: format %q", ErrInvalidConfig, cfg.Format)
	}
	return slog.New(handler), nil
}

// Setup builds a logger with New and installs it as the slog default.
func Setup(w io.Writer, cfg Config) (*slog.Logger, error) {
	logger, err := New(w, cfg)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return logger, nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: level %q", ErrInvalidConfig, level)
	}
}
