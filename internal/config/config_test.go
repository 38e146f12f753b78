package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Config{
			Server: ServerConfig{Host: "localhost", Port: 8080},
			Render: RenderConfig{Indented: false},
			Log:    LogConfig{Development: false, Level: "info"},
		}, *cfg)
		assert.Equal(t, "localhost:8080", cfg.Server.Address())
	})

	t.Run("file", func(t *testing.T) {
		path := writeConfig(t, `
server:
  host: 0.0.0.0
  port: 9000
render:
  indented: true
log:
  level: debug
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:9000", cfg.Server.Address())
		assert.True(t, cfg.Render.Indented)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("environment overrides file", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: 9000\n")
		t.Setenv("CATALOG_SERVER_PORT", "9100")
		t.Setenv("CATALOG_LOG_DEVELOPMENT", "true")
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 9100, cfg.Server.Port)
		assert.True(t, cfg.Log.Development)
	})

	t.Run("file found up the tree", func(t *testing.T) {
		root := filepath.Dir(writeConfig(t, "render:\n  indented: true\n"))
		nested := filepath.Join(root, "a", "b")
		require.NoError(t, os.MkdirAll(nested, 0o755))
		t.Chdir(nested)

		cfg, err := Load("")
		require.NoError(t, err)
		assert.True(t, cfg.Render.Indented)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("invalid values", func(t *testing.T) {
		path := writeConfig(t, "server:\n  port: 70000\nlog:\n  level: verbose\n")
		_, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
		assert.Contains(t, err.Error(), "server.port")
		assert.Contains(t, err.Error(), "log.level")
	})
}

func TestLogConfig_NewLogger(t *testing.T) {
	logger, err := LogConfig{Level: "warn"}.NewLogger()
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	_, err = LogConfig{Level: "loud"}.NewLogger()
	require.Error(t, err)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
