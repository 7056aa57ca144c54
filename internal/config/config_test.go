package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.FallbackModel)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeConfig(t, `
gemini:
  api_key: yaml-key
  model: gemini-2.0-flash
  timeout: 30s
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml-key", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Fields absent from the file keep their defaults.
	assert.Equal(t, "gemini-1.5-pro", cfg.Gemini.FallbackModel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
gemini:
  api_key: yaml-key
  model: from-file
`)
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("CAREERPULSE_MODEL", "from-env")
	t.Setenv("CAREERPULSE_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.Gemini.APIKey)
	assert.Equal(t, "from-env", cfg.Gemini.Model)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestLoadBadYAMLErrors(t *testing.T) {
	path := writeConfig(t, "gemini: [not a mapping")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestClientConfig(t *testing.T) {
	cfg := Default()
	cfg.Gemini.APIKey = "k"
	cfg.Gemini.MaxOutputTokens = 4096

	cc, err := cfg.ClientConfig()
	require.NoError(t, err)
	assert.Equal(t, "k", cc.APIKey)
	assert.Equal(t, 90*time.Second, cc.Timeout)
	assert.Equal(t, 4096, cc.MaxOutputTokens)
}

func TestClientConfigBadTimeout(t *testing.T) {
	cfg := Default()
	cfg.Gemini.Timeout = "ninety seconds"
	_, err := cfg.ClientConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid timeout")
}
