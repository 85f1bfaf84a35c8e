package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (added in Go 1.24) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	// Run from a scratch directory so a developer's config.yaml can't leak in.
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "task_manager.db", cfg.DatabaseURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "your_verify_token", cfg.WhatsApp.VerifyToken)
	assert.Empty(t, cfg.Telegram.Token)
	assert.Empty(t, cfg.Digest.Time)
}

func TestLoadEnvOverride(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("WHATSAPP_VERIFY_TOKEN", "hunter2")
	t.Setenv("DIGEST_TIME", "08:30")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "hunter2", cfg.WhatsApp.VerifyToken)
	assert.Equal(t, "08:30", cfg.Digest.Time)
}

func TestLoadRejectsBadPort(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HTTP_PORT", "70000")

	_, err := Load()
	assert.Error(t, err)
}
