// Package logging sets up the structured log file. The terminal belongs to
// the UI, so nothing is ever written to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// DefaultPath returns $XDG_STATE_HOME/parley/parley.log, creating the
// directory if needed.
func DefaultPath() (string, error) {
	return xdg.StateFile(filepath.Join("parley", "parley.log"))
}

// ParseLevel maps a config level name to a slog level. Unknown names map to
// info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
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

// New returns a text logger writing to w at the given level.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Open opens (appending) the log file at path and returns a logger writing
// to it. An empty path uses DefaultPath. The returned closer closes the file.
func Open(path, level string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	logger := New(f, level)
	logger.Info("logger initialized", "path", path, "level", ParseLevel(level).String())
	return logger, f, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Component returns l with a component attribute attached. A nil l yields a
// discarding logger.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l.With(slog.String("component", name))
}
