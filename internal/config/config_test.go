package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_DSN", "SNAPSHOT_FILE", "LOG_FILE", "REFRESH_INTERVAL", "CONFIG_FILE"} {
		t.Setenv(k, "")
	}
	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "nepshop.db", cfg.DBDSN)
	assert.Equal(t, "products.json", cfg.SnapshotFile)
	assert.Equal(t, 5*time.Second, cfg.RefreshInterval)
}

func TestLoadYAMLOverlayWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"port: \"9090\"\ndb_dsn: shop.db\nrefresh_interval: 30s\n"), 0644))

	t.Setenv("PORT", "8081")
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("REFRESH_INTERVAL", "")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "shop.db", cfg.DBDSN)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
}

func TestOverlayRejectsBadInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("refresh_interval: soonish\n"), 0644))

	cfg := Config{RefreshInterval: 5 * time.Second}
	err := overlayYAML(&cfg, path)
	assert.Error(t, err)
	assert.Equal(t, 5*time.Second, cfg.RefreshInterval)
}
