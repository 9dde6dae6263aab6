package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Noty-chan/rogue-prison/internal/api"
	"github.com/Noty-chan/rogue-prison/internal/constants"
	"github.com/Noty-chan/rogue-prison/internal/logging"
	"github.com/Noty-chan/rogue-prison/internal/progression"
	"github.com/Noty-chan/rogue-prison/internal/version"

	"github.com/gin-gonic/gin"
)

func main() {
	defer logging.Sync()

	// ROGUE_CONFIG defaults to ./rogue_config.json; a missing file keeps
	// the defaults, a broken one is fatal.
	env := loadEnvOrExit()
	cfg := loadConfigOrExit(env)
	logging.SetLevel(cfg.LogLevel)

	cat := loadCatalogOrExit(cfg.CatalogPath)
	repo := createRepositoryOrExit(env.DBPath)

	d := progression.NewDispatcher(cat, progression.WithDefaultDifficulty(cfg.DefaultDifficulty))
	handler := api.NewGameHandler(repo, d)

	router := gin.Default()
	api.Register(router, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr:    cfg.ServerAddress,
		constants.LogFieldVersion: version.String(),
	})
	if err := serve(ctx, cfg, router, repo); err != nil {
		logging.Fatal("Server stopped", err, nil)
	}
	logging.Info("Server stopped", nil)
}
