package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"musicfun/internal/catalog"
	"musicfun/internal/config"
	"musicfun/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(logging.Config{}).Fatal(err, "Failed to load configuration")
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	logging.SetGlobalLogger(logger)

	curated := catalog.DefaultCuratedBase()

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           newHTTPHandler(cfg, curated),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Upstream.Timeout + 10*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.WithFields(map[string]interface{}{
			"addr":             server.Addr,
			"upstream":         cfg.Upstream.TracksURL,
			"upstream_timeout": cfg.Upstream.Timeout.String(),
			"curated_tracks":   curated.Len(),
		}).Info().Msg("Backend server starting")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(err, "Server stopped with error")
		os.Exit(1)
	}

	logger.Info("Server exited")
}
