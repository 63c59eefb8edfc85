package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warn "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "api", "warn")

	log.Info("dropped")
	log.Warn("kept", "date", "2024-01-15")

	var rec map[string]any
	err := json.Unmarshal(buf.Bytes(), &rec)
	assert.Equal(t, nil, err)
	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "api", rec["service"])
	assert.Equal(t, "2024-01-15", rec["date"])
}
