package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/rockpaperscissors/internal/factory"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, factory.StorageTypeFile, cfg.StorageType)
	assert.Equal(t, "leaderboard.txt", cfg.DataFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Output)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("RPS_DATA_FILE", "/tmp/scores.txt")
	t.Setenv("RPS_STORAGE", "redis")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/scores.txt", cfg.DataFile)

	fc := cfg.FactoryConfig(nil)
	require.NotNil(t, fc.RedisConfig)
	assert.Equal(t, "redis://localhost:6379", fc.RedisConfig.URL)
	assert.Equal(t, "rps", fc.RedisConfig.KeyPrefix)
}

func TestLoadConfigFromDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("RPS_LOG_LEVEL=debug\n"), 0o600))
	t.Setenv("RPS_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("RPS_LOG_LEVEL"))

	cfg, err := LoadConfig(envFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestNewLogger(t *testing.T) {
	cfg := &Config{LogLevel: "info", LogFormat: "json"}
	buf := &bytes.Buffer{}

	logger, err := cfg.NewLogger(buf)
	require.NoError(t, err)
	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	_, err = (&Config{LogLevel: "info", LogFormat: "xml"}).NewLogger(buf)
	assert.Error(t, err)
}
