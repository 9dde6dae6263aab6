package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Noty-chan/rogue-prison/internal/config"
	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/content"
	"github.com/Noty-chan/rogue-prison/internal/logging"
	"github.com/Noty-chan/rogue-prison/internal/storage"
)

func loadEnvOrExit() config.Env {
	e, err := config.LoadEnv()
	if err != nil {
		logging.Fatal("Invalid environment", err, nil)
	}
	return e
}

func loadConfigOrExit(e config.Env) *config.LoadedConfig {
	cfg, err := config.LoadConfig(e.ConfigPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			logging.Fatal("Missing or invalid rogue configuration", err, logging.Fields{constants.LogFieldPath: e.ConfigPath})
		}
		logging.Warn("config file not found, using defaults", logging.Fields{constants.LogFieldPath: e.ConfigPath})
		cfg = config.Defaults()
	}
	if err := cfg.Apply(e); err != nil {
		logging.Fatal("Invalid configuration override", err, nil)
	}
	return cfg
}

func loadCatalogOrExit(path string) *content.Catalog {
	cat, err := content.LoadFile(path)
	if err != nil {
		logging.Fatal("Failed to load card catalog", err, logging.Fields{constants.LogFieldPath: path})
	}
	return cat
}

func createRepositoryOrExit(dbPath string) storage.Repository {
	if dir := filepath.Dir(dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logging.Fatal("Failed to create data directory", err, logging.Fields{"dir": dir})
		}
	}
	db, err := storage.OpenAndMigrate(dbPath)
	if err != nil {
		logging.Fatal("Failed to initialize database", err, nil)
	}
	return storage.NewSQLiteRepository(db)
}
