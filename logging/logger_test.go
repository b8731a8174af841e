package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layover/config"
	"github.com/katalvlaran/layover/logging"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, logging.ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, logging.ParseLevel(" warning "))
	assert.Equal(t, slog.LevelError, logging.ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, logging.ParseLevel("anything"))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	logger.Info("dropped")
	logger.Warn("missing edge", "from", "A", "to", "B")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "missing edge", rec["msg"])
	assert.Equal(t, "A", rec["from"])
	assert.NotContains(t, buf.String(), "dropped")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(config.LoggingConfig{Level: "info", Format: "text"}, &buf)
	logger.Info("route found", "hops", 2)
	assert.Contains(t, buf.String(), "msg=\"route found\"")
	assert.Contains(t, buf.String(), "hops=2")
}
