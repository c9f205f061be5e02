// internal/util/logger.go
package util

import (
	"log/slog"
	"os"
)

var logger *slog.Logger

// InitLogger initializes the global structured logger.
// Diagnostics go to stderr as JSON so they never mix with the interactive
// terminal output on stdout. The default level is warn; set
// COINBASE_CLI_DEBUG=1 to see per-request diagnostics.
func InitLogger() {
	level := slog.LevelWarn
	if os.Getenv("COINBASE_CLI_DEBUG") != "" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	logger = slog.New(handler)
	slog.SetDefault(logger) // Set as default logger for convenience
}

// GetLogger returns the initialized global logger.
func GetLogger() *slog.Logger {
	if logger == nil {
		InitLogger() // Initialize if not already initialized (should be called explicitly at app start)
	}
	return logger
}
