/*
Package main is the entry point for the Kith social-graph service.

It is responsible for loading configuration, initializing the global logging
system, constructing the snapshot store and the social service (which loads
the persisted account graph), running the console command surface, and
gracefully handling operating system interrupt signals (SIGINT, SIGTERM) so
the account graph is saved on the way out.
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kith/internal/app/snapshot"
	"kith/internal/app/social"
	"kith/internal/configs"
	"kith/internal/handler"
	"kith/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Str("snapshot_backend", cfg.SnapshotBackend).
		Str("snapshot_path", cfg.SnapshotPath).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the snapshot store and the social service (loads the snapshot).
	store, err := snapshot.NewStore(cfg)
	if err != nil {
		logx.Fatal(err, "Failed to initialize snapshot store")
	}

	svc, err := social.New(ctx, cfg, store)
	if err != nil {
		logx.Fatal(err, "Failed to initialize service from snapshot")
	}

	// Run the console command surface until EOF, quit, or an OS signal.
	console := handler.NewConsole(svc, os.Stdin, os.Stdout)

	done := make(chan error, 1)
	go func() {
		logx.Info("Kith Server ready. Reading commands from stdin.")
		done <- console.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		logx.Info("Received shutdown signal. Starting graceful shutdown...")
	case err := <-done:
		if err != nil {
			logx.Error(err, "Console loop terminated with error")
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := svc.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Failed to save snapshot during shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
