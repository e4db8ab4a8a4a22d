package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, "http://localhost:3000", cfg.App.CORSAllowOrigins)
	assert.Equal(t, "Africa/Cairo", cfg.Banner.DefaultTimezone)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
app:
  port: 9090
  cors_allow_origins: https://example.org
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.App.Port)
	assert.Equal(t, "https://example.org", cfg.App.CORSAllowOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "7000")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://naebak.com,https://admin.naebak.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.App.Port)
	assert.Equal(t, "https://naebak.com,https://admin.naebak.com", cfg.App.CORSAllowOrigins)
}
