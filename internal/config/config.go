package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// MaxDifficulty mirrors the highest difficulty a player can select.
const MaxDifficulty = 5

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Optional path to a YAML catalog. Empty keeps the built-in content.
	CatalogPath       string `json:"catalog_path"`
	DefaultDifficulty *int   `json:"default_difficulty"`
	// Durations use Go syntax, e.g. "720h" or "30m".
	SaveTTL         string `json:"save_ttl"`
	JanitorInterval string `json:"janitor_interval"`
	LogLevel        string `json:"log_level"`
}

// LoadedConfig is the validated server configuration.
type LoadedConfig struct {
	ServerAddress     string
	CatalogPath       string
	DefaultDifficulty int
	// SaveTTL of zero keeps saves forever.
	SaveTTL         time.Duration
	JanitorInterval time.Duration
	LogLevel        string
}

func Defaults() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress:     ":8080",
		DefaultDifficulty: 1,
		SaveTTL:           30 * 24 * time.Hour,
		JanitorInterval:   time.Hour,
		LogLevel:          "info",
	}
}

// LoadConfig reads the JSON configuration file at path. Missing keys keep
// their defaults.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg := Defaults()
	if rc.Server != nil && rc.Server.Address != "" {
		cfg.ServerAddress = rc.Server.Address
	}
	cfg.CatalogPath = strings.TrimSpace(rc.CatalogPath)
	if rc.DefaultDifficulty != nil {
		cfg.DefaultDifficulty = *rc.DefaultDifficulty
	}
	if rc.SaveTTL != "" {
		if cfg.SaveTTL, err = time.ParseDuration(rc.SaveTTL); err != nil {
			return nil, fmt.Errorf("config file %s: invalid save_ttl %q: %w", path, rc.SaveTTL, err)
		}
	}
	if rc.JanitorInterval != "" {
		if cfg.JanitorInterval, err = time.ParseDuration(rc.JanitorInterval); err != nil {
			return nil, fmt.Errorf("config file %s: invalid janitor_interval %q: %w", path, rc.JanitorInterval, err)
		}
	}
	if rc.LogLevel != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(rc.LogLevel))
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c *LoadedConfig) validate() error {
	if c.DefaultDifficulty < 0 || c.DefaultDifficulty > MaxDifficulty {
		return fmt.Errorf("default_difficulty %d out of range 0..%d", c.DefaultDifficulty, MaxDifficulty)
	}
	if c.SaveTTL < 0 {
		return fmt.Errorf("save_ttl must not be negative")
	}
	// A janitor only runs when saves expire.
	if c.SaveTTL > 0 && c.JanitorInterval <= 0 {
		return fmt.Errorf("janitor_interval must be positive when save_ttl is set")
	}
	if c.SaveTTL > 0 && c.JanitorInterval > c.SaveTTL {
		return fmt.Errorf("janitor_interval %s exceeds save_ttl %s", c.JanitorInterval, c.SaveTTL)
	}
	if !logLevels[c.LogLevel] {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Env holds the process environment the server reads at startup.
type Env struct {
	ConfigPath string `env:"ROGUE_CONFIG" envDefault:"./rogue_config.json"`
	DBPath     string `env:"ROGUE_DB" envDefault:"./data/rogue.db"`
	Addr       string `env:"ROGUE_ADDR"`
	LogLevel   string `env:"ROGUE_LOG_LEVEL"`
}

func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// Apply lets environment values win over the file.
func (c *LoadedConfig) Apply(e Env) error {
	if e.Addr != "" {
		c.ServerAddress = e.Addr
	}
	if e.LogLevel != "" {
		c.LogLevel = strings.ToLower(strings.TrimSpace(e.LogLevel))
	}
	return c.validate()
}
