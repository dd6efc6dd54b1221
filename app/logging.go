package app

import (
	"io"
	"log/slog"
	"strings"
)

// SetupLogger installs the default slog logger. Unknown levels fall back to info, unknown formats to text.
func SetupLogger(w io.Writer, level string, format string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	slog.SetDefault(slog.New(handler))
}
