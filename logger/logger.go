// ABOUTME: This file provides slog-based JSON logging for the langler service
// ABOUTME: Level and service name come from environment variables
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Init configures and returns the service logger. Output is JSON with
// service and version attributes so log aggregation can key on them.
func Init() *slog.Logger {
	return NewWithLevel(os.Stdout, getEnvOrDefault("SERVICE_NAME", "langler"), getEnvOrDefault("LOG_LEVEL", "info"))
}

// NewWithLevel creates a logger writing to output at the given level.
func NewWithLevel(output io.Writer, serviceName, level string) *slog.Logger {
	var slogLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn", "warning":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(output, &slog.HandlerOptions{
		Level: slogLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					return slog.Attr{Key: slog.LevelKey, Value: slog.StringValue(strings.ToLower(lvl.String()))}
				}
			}
			return a
		},
	})

	return slog.New(handler).With("service", serviceName, "version", "1.0.0")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
