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

	"contium/internal/platform/config"
	"contium/internal/platform/logger"
)

// main loads configuration, builds the application graph, and runs the HTTP
// server until SIGINT or SIGTERM. Business logic lives in internal packages.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("prod", "error").Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Environment, cfg.LogLevel)

	log.Info("initializing contium",
		"addr", cfg.Addr,
		"environment", cfg.Environment,
		"seed_demo_data", cfg.SeedDemoData,
		"verification_pacing", cfg.VerificationPacing,
		"lock_terminal_status", cfg.LockTerminalStatus,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := build(ctx, cfg, log)
	if err != nil {
		log.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           application.handler,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server gracefully")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(shutdownCtx)
		application.close()
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}
