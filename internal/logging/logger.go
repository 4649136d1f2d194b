package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/wire"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// LogLevelEnv overrides the configured level when set
const LogLevelEnv = "CATAPULT_LOG_LEVEL"

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	return New(os.Stderr, ResolveLevel(cfg))
}

// New builds a text logger writing to w.
func New(w io.Writer, level slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Drop timestamps
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// ResolveLevel picks the log level: --debug wins, then CATAPULT_LOG_LEVEL,
// then the configured log_level, then warn.
func ResolveLevel(cfg *config.RuntimeConfig) slog.Level {
	if cfg != nil && cfg.Debug {
		return slog.LevelDebug
	}

	raw := os.Getenv(LogLevelEnv)
	if raw == "" && cfg != nil {
		raw = cfg.LogLevel
	}

	return ParseLevel(raw, slog.LevelWarn)
}

// ParseLevel maps a level name to slog.Level, returning fallback for unknown values.
func ParseLevel(raw string, fallback slog.Level) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return fallback
	}
}
