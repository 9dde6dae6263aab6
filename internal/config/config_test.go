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
	p := filepath.Join(t.TempDir(), "rogue_config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{}`))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
}

func TestLoadConfigValues(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, `{
		"server": {"address": "127.0.0.1:9000"},
		"catalog_path": " content.yaml ",
		"default_difficulty": 0,
		"save_ttl": "48h",
		"janitor_interval": "30m",
		"log_level": "DEBUG"
	}`))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.ServerAddress)
	assert.Equal(t, "content.yaml", cfg.CatalogPath)
	assert.Equal(t, 0, cfg.DefaultDifficulty)
	assert.Equal(t, 48*time.Hour, cfg.SaveTTL)
	assert.Equal(t, 30*time.Minute, cfg.JanitorInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigRejects(t *testing.T) {
	cases := map[string]string{
		"bad json":         `{`,
		"difficulty":       `{"default_difficulty": 9}`,
		"ttl syntax":       `{"save_ttl": "soon"}`,
		"janitor too slow": `{"save_ttl": "1h", "janitor_interval": "2h"}`,
		"janitor missing":  `{"save_ttl": "1h", "janitor_interval": "0s"}`,
		"log level":        `{"log_level": "loud"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("ROGUE_ADDR", ":9999")
	t.Setenv("ROGUE_LOG_LEVEL", "warn")
	t.Setenv("ROGUE_DB", "/tmp/x.db")

	e, err := LoadEnv()
	require.NoError(t, err)
	assert.Equal(t, "./rogue_config.json", e.ConfigPath)
	assert.Equal(t, "/tmp/x.db", e.DBPath)

	cfg := Defaults()
	require.NoError(t, cfg.Apply(e))
	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, "warn", cfg.LogLevel)

	assert.Error(t, cfg.Apply(Env{LogLevel: "shout"}))
}
