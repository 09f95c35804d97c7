// Package logging builds the process-wide slog.Logger from LogConfig.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/katalvlaran/sixdegrees/internal/config"
)

// New returns a text or JSON logger writing to w at the configured level.
// Unknown levels fall back to info and unknown formats to text.
func New(cfg config.LogConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h)
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a
// slog.Level.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
