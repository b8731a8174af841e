package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/layover/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layover.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Network)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
network: flights.yaml
http:
  addr: 127.0.0.1:9090
  shutdown_timeout: 3s
  allowed_origins: [http://localhost:3000]
logging:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "flights.yaml", cfg.Network)
	assert.Equal(t, "127.0.0.1:9090", cfg.HTTP.Addr)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 15*time.Second, cfg.HTTP.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "logging:\n  level: debug\n")
	t.Setenv("LAYOVER_LOG_LEVEL", "warn")
	t.Setenv("LAYOVER_ADDR", ":7070")
	t.Setenv("LAYOVER_NETWORK", "other.yaml")
	t.Setenv("LAYOVER_LOG_CALLER", "true")
	t.Setenv("LAYOVER_ALLOWED_ORIGINS", "a.example, ,b.example")
	t.Setenv("LAYOVER_SHUTDOWN_TIMEOUT", "1s")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "other.yaml", cfg.Network)
	assert.True(t, cfg.Logging.IncludeCaller)
	assert.Equal(t, []string{"a.example", "b.example"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "logging: [\n"))
	require.Error(t, err)

	_, err = config.Load(writeFile(t, "logging:\n  level: loud\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = config.Load(writeFile(t, "logging:\n  format: xml\n"))
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	t.Setenv("LAYOVER_SHUTDOWN_TIMEOUT", "soon")
	_, err = config.Load("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.HTTP.Addr = ""
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	cfg = config.Default()
	cfg.HTTP.ReadTimeout = 0
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
}

func TestRead_DoesNotValidate(t *testing.T) {
	t.Setenv("LAYOVER_LOG_LEVEL", "loud")

	cfg, err := config.Read("")
	require.NoError(t, err)
	assert.Equal(t, "loud", cfg.Logging.Level)
	require.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)

	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)
}
