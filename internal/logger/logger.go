// Package logger configures the structured log file shared by all hourglass
// packages
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxSizeMB  = 5
	maxBackups = 3
	maxAgeDays = 28
)

// Options controls where and how verbosely hourglass logs.
type Options struct {
	Path  string
	Level string
	// Writer overrides Path when set. Used in tests.
	Writer io.Writer
}

// ParseLevel converts a level name from the config file into a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level

	err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(s))))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return l, nil
}

// New builds a JSON logger writing to a size-rotated file. Every record
// carries the id of the current run so that interleaved runs can be told
// apart.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	w := opts.Writer

	var closer io.Closer = nopCloser{}

	if w == nil {
		lj := &lumberjack.Logger{
			Filename:   opts.Path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}

		w, closer = lj, lj
	}

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	})

	l := slog.New(handler).With(slog.String("run_id", uuid.NewString()))

	return l, closer, nil
}

// Init installs a logger built from opts as the slog default.
func Init(opts Options) (io.Closer, error) {
	l, closer, err := New(opts)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(l)

	return closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
