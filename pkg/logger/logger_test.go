package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/gnames/itismatch/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "info", Format: "text"}

	log := New(cfg, &buf)
	log.Info("test message", "key", "value")

	output := buf.String()
	assert.Contains(t, output, "test message")
	assert.Contains(t, output, "key=value")
	assert.Contains(t, output, "level=INFO")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.LogConfig{Level: "info", Format: "json"}

	log := New(cfg, &buf)
	log.Info("test message", "key", "value")

	var logEntry map[string]any
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	require.NoError(t, err, "Output should be valid JSON")

	assert.Equal(t, "test message", logEntry["msg"])
	assert.Equal(t, "value", logEntry["key"])
	assert.Equal(t, "INFO", logEntry["level"])
	assert.Contains(t, logEntry, "time")
}

func TestNew_LogLevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    slog.Level
		shouldLog   bool
	}{
		{"debug shows debug", "debug", slog.LevelDebug, true},
		{"info hides debug", "info", slog.LevelDebug, false},
		{"warn hides info", "warn", slog.LevelInfo, false},
		{"warn shows warn", "warn", slog.LevelWarn, true},
		{"error hides warn", "error", slog.LevelWarn, false},
		{"invalid level is warn", "trace", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cfg := config.LogConfig{Level: tt.configLevel, Format: "text"}
			log := New(cfg, &buf)
			log.Log(context.Background(), tt.logLevel, "message")
			assert.Equal(t, tt.shouldLog, buf.Len() > 0)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(""))
	assert.Equal(t, slog.LevelError, ParseLevel("Error"))
}
