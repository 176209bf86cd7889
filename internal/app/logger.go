package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/sustainage/materiality-survey/internal/config"
)

// NewLogger builds the process logger from LogConfig, writes to stderr and
// installs it as the slog default.
//
// "json" is the production format. Anything else yields text output with
// source locations. Unknown levels fall back to info.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	jsonFormat := strings.EqualFold(cfg.Format, "json")
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !jsonFormat,
	}

	if jsonFormat {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
