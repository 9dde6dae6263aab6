package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Noty-chan/rogue-prison/internal/config"
	"github.com/Noty-chan/rogue-prison/internal/logging"
	"github.com/Noty-chan/rogue-prison/internal/service"

	"golang.org/x/sync/errgroup"
)

const shutdownGrace = 5 * time.Second

// serve runs the HTTP server and the save janitor until ctx is cancelled or
// one of them fails.
func serve(ctx context.Context, cfg *config.LoadedConfig, h http.Handler, repo service.PurgeRepo) error {
	srv := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.SaveTTL > 0 {
		g.Go(func() error {
			runJanitor(ctx, repo, cfg.JanitorInterval, cfg.SaveTTL)
			return nil
		})
	}
	return g.Wait()
}

// runJanitor periodically deletes saves untouched for longer than ttl.
func runJanitor(ctx context.Context, repo service.PurgeRepo, every, ttl time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if _, err := service.PurgeStaleSaves(repo, now, ttl); err != nil {
				logging.Error("save janitor failed", err, nil)
			}
		}
	}
}
