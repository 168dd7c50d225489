// Package logger builds the process-wide structured logger.  Unlike a
// package-level init, the logger is constructed once in main and passed
// to the components that need it.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a slog text logger writing to stdout.  When logFile is
// non-empty the output is additionally appended to that file; a file
// that cannot be opened downgrades to stdout-only rather than failing
// startup.  Debug level is enabled outside prod.
func New(env, logFile string) *slog.Logger {
	var w io.Writer = os.Stdout
	if logFile != "" {
		if f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
			w = io.MultiWriter(os.Stdout, f)
		}
	}
	level := slog.LevelDebug
	if env == "prod" {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
