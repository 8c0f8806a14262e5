package main

import (
	"io"
	"log/slog"
)

var logger *slog.Logger

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string    // "DEBUG", "INFO", "WARN", "ERROR"
	Format string    // "json" or "text"
	Output io.Writer // nil discards everything
}

// InitLogging initializes the structured logger based on configuration.
// stdout belongs to the banner and stderr must stay empty, so the default
// destination is io.Discard.
func InitLogging(cfg LogConfig) {
	var level slog.Level
	switch cfg.Level {
	case "DEBUG":
		level = slog.LevelDebug
	case "INFO":
		level = slog.LevelInfo
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}

	logger = slog.New(handler)
}

// GetLogger returns the main application logger
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogging(LogConfig{Level: "INFO", Format: "text"})
	}
	return logger
}
