//go:build unit

package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"hotel-guest-manager/internal/pkg/config"
	"hotel-guest-manager/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logger.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logger.ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, logger.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logger.ParseLevel("verbose"))
}

func TestNewWithWriter(t *testing.T) {
	cfg := config.NewTestConfig().Log
	cfg.Level = "info"
	cfg.Format = "json"
	cfg.TimeZone = "JST"
	cfg.TimeZoneOffset = 9 * 60 * 60
	cfg.TimeFormat = "-0700"

	var buf bytes.Buffer
	l := logger.NewWithWriter(cfg, &buf)
	l.Debug("hidden")
	l.Info("guest added", slog.Int("guest_id", 1))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "guest added", entry["msg"])
	assert.Equal(t, "+0900", entry["time"])
	assert.EqualValues(t, 1, entry["guest_id"])
}
