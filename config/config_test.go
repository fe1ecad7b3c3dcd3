package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	t.Setenv("BACKEND_URL", "https://api.example.com/v1/")
	t.Setenv("MEDIA_BASE_URL", "")
	t.Setenv("BACKEND_TIMEOUT", "3")
	t.Setenv("RATE_LIMIT_THRESHOLD", "not-a-number")
	t.Setenv("SESSION_ALLOW_UNVERIFIED", "")
	t.Setenv("SESSION_IDLE_TIMEOUT", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/v1", cfg.BackendURL)
	assert.Equal(t, cfg.BackendURL, cfg.MediaBaseURL)
	assert.Equal(t, 3*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 120, cfg.RateLimitThreshold)
	assert.False(t, cfg.SessionAllowUnverified)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
}

func TestLoadConfigFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
port = "9000"
media_base_url = "https://cdn.example.com/"
backend_timeout = "30s"
rate_limit_threshold = 10
log_format = "console"
session_allow_unverified = true
session_idle_timeout = "5m"
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "https://cdn.example.com", cfg.MediaBaseURL)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 10, cfg.RateLimitThreshold)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.SessionAllowUnverified)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdleTimeout)
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	_, err := LoadConfig()
	assert.Error(t, err)
}
