package logging

import (
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// NewTerminalHandler returns a handler writing to stderr: colorized via tint
// when stderr is a terminal, plain text otherwise (pipes, CI).
func NewTerminalHandler() slog.Handler {
	w := os.Stderr
	if isatty.IsTerminal(w.Fd()) || isatty.IsCygwinTerminal(w.Fd()) {
		return tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
}
