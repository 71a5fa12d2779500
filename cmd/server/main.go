package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ktmtfamily/family-tree-api/internal/bootstrap"
	"github.com/ktmtfamily/family-tree-api/internal/config"
	"github.com/ktmtfamily/family-tree-api/internal/imagehost"
	"github.com/ktmtfamily/family-tree-api/internal/router"
	"github.com/ktmtfamily/family-tree-api/internal/shared/database"
	"github.com/ktmtfamily/family-tree-api/internal/shared/logger"
	"github.com/ktmtfamily/family-tree-api/internal/shared/metrics"
	"github.com/ktmtfamily/family-tree-api/internal/shared/validator"
)

func main() {
	// Parse command line flags
	env := parseFlags()

	// Initialize logger
	logger.Setup(env)
	slog.Info("Server initialization started", "env", env)

	// Run application
	if err := run(env); err != nil {
		slog.Error("Server initialization failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped", "env", env)
}

// parseFlags parses command line arguments
func parseFlags() string {
	env := flag.String("env", "local", "Environment (local|dev|production)")
	flag.Parse()
	return *env
}

// run contains the main application logic
func run(env string) error {
	// Create root context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	slog.Info("Configuration loaded", "driver", cfg.Database.Driver, "storage", cfg.Storage.Provider)

	// Connect to the store
	conn, err := database.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer closeCancel()
		if err := conn.Close(closeCtx); err != nil {
			slog.Error("Failed to close store", "error", err)
		}
	}()

	// Image host client
	uploader, err := imagehost.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("create image uploader: %w", err)
	}
	if closer, ok := uploader.(io.Closer); ok {
		defer closer.Close()
	}

	// Setup server
	srv, err := setupServer(cfg, conn, uploader)
	if err != nil {
		return err
	}

	// Start server with graceful shutdown
	return startWithGracefulShutdown(ctx, srv, cfg.Server.GracefulTimeout)
}

// setupServer initializes and configures the HTTP server
func setupServer(cfg *config.Config, conn database.Conn, uploader imagehost.Uploader) (*bootstrap.Server, error) {
	recorder := metrics.New(cfg.App.Name)

	// Bootstrap server with common setup
	boot := bootstrap.NewBootstrap(cfg, recorder)
	ginEngine := boot.SetupEngine()

	// Register common validators
	if err := validator.RegisterAll(); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}

	// Setup application-specific routes
	if err := router.Setup(ginEngine, cfg, conn, uploader, recorder); err != nil {
		return nil, fmt.Errorf("setup routes: %w", err)
	}

	slog.Info("Server configured", "env", cfg.App.Env)

	return bootstrap.New(cfg, ginEngine), nil
}

// startWithGracefulShutdown starts the server and handles graceful shutdown
func startWithGracefulShutdown(ctx context.Context, srv *bootstrap.Server, gracefulTimeout time.Duration) error {
	// Channel to receive server errors
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		serverErrors <- srv.Start()
	}()

	// Channel to receive OS signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either server error or interrupt signal
	select {
	case err := <-serverErrors:
		// Server failed to start or stopped unexpectedly
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil

	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())

		// Create shutdown context with timeout
		shutdownCtx, cancel := context.WithTimeout(ctx, gracefulTimeout)
		defer cancel()

		slog.Info("Shutting down server", "port", srv.Port())
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
		return nil
	}
}
