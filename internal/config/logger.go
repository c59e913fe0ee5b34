package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "balance-tracker"

// NewLogger creates a structured JSON logger writing to stdout
func (c *LoggerConfig) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo creates a structured JSON logger writing to w
func (c *LoggerConfig) NewLoggerTo(w io.Writer) *slog.Logger {
	level := parseLogLevel(c.Level)

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug || level == slog.LevelError,
	}

	return slog.New(slog.NewJSONHandler(w, opts)).With("service", serviceName)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
