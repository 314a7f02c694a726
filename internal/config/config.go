package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port            string
	DBDSN           string
	SnapshotFile    string
	LogFile         string
	RefreshInterval time.Duration
}

// Load builds the config from environment variables with defaults, then
// applies an optional YAML overlay named by CONFIG_FILE. YAML values win
// over env so a deploy can pin everything in one file.
func Load() Config {
	cfg := Config{
		Port:            envOr("PORT", "8080"),
		DBDSN:           envOr("DB_DSN", "nepshop.db"), // sqlite file in project root
		SnapshotFile:    envOr("SNAPSHOT_FILE", "products.json"),
		LogFile:         envOr("LOG_FILE", "./nepshop.log"),
		RefreshInterval: 5 * time.Second,
	}
	if v := os.Getenv("REFRESH_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RefreshInterval = d
		} else {
			log.Printf("[config] ignoring bad REFRESH_INTERVAL=%q: %v", v, err)
		}
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := overlayYAML(&cfg, path); err != nil {
			log.Printf("[config] could not apply %s: %v", path, err)
		}
	}

	log.Printf("[config] PORT=%s DB_DSN=%s SNAPSHOT_FILE=%s LOG_FILE=%s REFRESH_INTERVAL=%s",
		cfg.Port, cfg.DBDSN, cfg.SnapshotFile, cfg.LogFile, cfg.RefreshInterval)
	return cfg
}

// fileConfig is the YAML shape; durations are strings ("5s", "1m") so the
// file stays hand-editable.
type fileConfig struct {
	Port            string `yaml:"port"`
	DBDSN           string `yaml:"db_dsn"`
	SnapshotFile    string `yaml:"snapshot_file"`
	LogFile         string `yaml:"log_file"`
	RefreshInterval string `yaml:"refresh_interval"`
}

func overlayYAML(cfg *Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var over fileConfig
	if err := yaml.Unmarshal(raw, &over); err != nil {
		return err
	}
	if over.Port != "" {
		cfg.Port = over.Port
	}
	if over.DBDSN != "" {
		cfg.DBDSN = over.DBDSN
	}
	if over.SnapshotFile != "" {
		cfg.SnapshotFile = over.SnapshotFile
	}
	if over.LogFile != "" {
		cfg.LogFile = over.LogFile
	}
	if over.RefreshInterval != "" {
		d, err := time.ParseDuration(over.RefreshInterval)
		if err != nil || d <= 0 {
			return fmt.Errorf("bad refresh_interval %q", over.RefreshInterval)
		}
		cfg.RefreshInterval = d
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
