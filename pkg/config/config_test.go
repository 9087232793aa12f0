package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, 1500*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 3, cfg.Poll.Attempts)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rzdrail.yaml")
	contents := "http:\n  timeout_seconds: 10\n  user_agent: test-agent\npoll:\n  interval_milliseconds: 500\n  attempts: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, "test-agent", cfg.HTTP.UserAgent)
	assert.Equal(t, 500*time.Millisecond, cfg.PollInterval())
	assert.Equal(t, 5, cfg.Poll.Attempts)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("RZDRAIL_USER_AGENT", "env-agent")
	t.Setenv("RZDRAIL_POLL_ATTEMPTS", "7")
	t.Setenv("RZDRAIL_HTTP_TIMEOUT_SECONDS", "not-a-number")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "env-agent", cfg.HTTP.UserAgent)
	assert.Equal(t, 7, cfg.Poll.Attempts)
	// a non-numeric override is ignored
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())
}
