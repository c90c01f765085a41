// Package logging provides the application logger and a deduplicating
// wrapper that suppresses repeated identical messages within a sliding
// time window.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger creates and configures a new slog.Logger writing to w. The
// rendered document goes to stdout, so diagnostics must go elsewhere
// (normally stderr).
func NewLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler)
}
