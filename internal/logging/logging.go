// Package logging builds the slog logger used for diagnostics. Report output
// is written directly to the command's writer and never goes through here.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	LevelTrace = slog.Level(-8)
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// EnvVar overrides the configured level when set.
const EnvVar = "STORY_LOG_LEVEL"

// New returns a text logger writing to w at level and above.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && a.Value.Any() == LevelTrace {
				return slog.String(slog.LevelKey, "TRACE")
			}
			return a
		},
	}))
}

// ParseLevel converts a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return LevelTrace, nil
	case "DEBUG":
		return LevelDebug, nil
	case "INFO":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	default:
		return LevelWarn, fmt.Errorf("unknown log level: %q", s)
	}
}

// Resolve picks the first non-empty level name from names, in priority
// order, and parses it. With no names set the level is WARN.
func Resolve(names ...string) (slog.Level, error) {
	for _, name := range names {
		if name != "" {
			return ParseLevel(name)
		}
	}
	return LevelWarn, nil
}
