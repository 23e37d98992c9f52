package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

type Config struct {
	Dir   string
	File  string
	Debug bool
}

// Setup opens (appending) the persistent error log and returns a logger bound to it.
// The caller owns the returned cleanup and must call it once the run is over.
func Setup(cfg Config) (*slog.Logger, func() error, error) {
	dir := filepath.Clean(cfg.Dir)
	if cfg.Dir == "" {
		dir = "."
	}
	name := cfg.File
	if name == "" {
		name = "radar_errors.log"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Discard(), nil, err
	}

	path := filepath.Join(dir, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return Discard(), nil, err
	}

	l := New(f, cfg.Debug)
	l.Debug("logger.initialized", "path", path, "debug", cfg.Debug)

	return l, f.Close, nil
}

// New builds a JSON logger writing to w.
func New(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	addSource := false
	if debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})
	return slog.New(h)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
