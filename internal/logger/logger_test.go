package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for in, want := range cases {
		got, _ := ParseLevel(in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewAddsRunID(t *testing.T) {
	var buf bytes.Buffer

	l, closer, err := New(Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	defer closer.Close()

	l.Debug("tick", slog.Int("remaining", 59))

	var rec map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	assert.Equal(t, "tick", rec["msg"])
	assert.EqualValues(t, 59, rec["remaining"])
	assert.NotEmpty(t, rec["run_id"])
}

func TestNewFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer

	l, _, err := New(Options{Level: "warn", Writer: &buf})
	require.NoError(t, err)

	l.Info("ignored")

	assert.Zero(t, buf.Len())
}
