package config_test

import (
	"os"
	"path/filepath"
	"secondchance/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_FileAndDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
http:
  addr: ":9090"
database:
  host: db.internal
reputation:
  cooldown: 30s
`), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, "db.internal", cfg.Database.Host)
	require.Equal(t, 30*time.Second, cfg.Reputation.Cooldown)

	// untouched keys fall back to env-default
	require.Equal(t, 2*time.Second, cfg.Database.WriteTimeout)
	require.Equal(t, "https://www.virustotal.com/api/v3", cfg.Reputation.BaseURL)
	require.Equal(t, 4, cfg.CLI.Concurrency)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
