// Skiftkoll worker: finalizes idle capture sessions into schedule
// events and notifications, with an optional operational HTTP API.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/skiftkoll/skiftkoll/pkg/api"
	"github.com/skiftkoll/skiftkoll/pkg/cleanup"
	"github.com/skiftkoll/skiftkoll/pkg/config"
	"github.com/skiftkoll/skiftkoll/pkg/database"
	"github.com/skiftkoll/skiftkoll/pkg/notify"
	"github.com/skiftkoll/skiftkoll/pkg/objectstore"
	"github.com/skiftkoll/skiftkoll/pkg/ocr"
	"github.com/skiftkoll/skiftkoll/pkg/queue"
	"github.com/skiftkoll/skiftkoll/pkg/store"
	"github.com/skiftkoll/skiftkoll/pkg/version"
)

func main() {
	envFile := flag.String("env-file", ".env", "Path to environment file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting skiftkoll worker",
		"version", version.Full(),
		"worker_id", cfg.WorkerID,
		"input_mode", cfg.Input.Mode,
		"worker_count", cfg.Queue.WorkerCount,
		"idle_timeout", cfg.Queue.IdleTimeout)

	// 2. Connect to the database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database", "schema", dbConfig.Schema)

	// 3. One-time startup orphan cleanup
	if err := queue.CleanupStartupOrphans(ctx, dbClient.Client, cfg.WorkerID, cfg.States); err != nil {
		slog.Error("Failed to cleanup startup orphans", "error", err)
		// Non-fatal, continue
	}

	// 4. Build the input source for the configured mode
	source, err := buildInputSource(ctx, cfg.Input)
	if err != nil {
		slog.Error("Failed to initialize input source", "mode", cfg.Input.Mode, "error", err)
		os.Exit(1)
	}

	// 5. Wire the pipeline executor
	eventStore := store.New(dbClient.DB(), dbConfig.Schema)
	builder, err := notify.NewBuilder(cfg.Queue.SummaryThreshold)
	if err != nil {
		slog.Error("Failed to initialize notification builder", "error", err)
		os.Exit(1)
	}
	executor := queue.NewPipelineExecutor(dbClient.Client, eventStore, builder, source)

	// 6. Start the worker pool
	workerPool := queue.NewWorkerPool(cfg.WorkerID, dbClient.Client, cfg.Queue, cfg.States, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 7. Start retention cleanup when configured
	var cleanupSvc *cleanup.Service
	if cfg.Retention.Enabled() {
		cleanupSvc = cleanup.NewService(dbClient.Client, cfg.Retention, cfg.States)
		cleanupSvc.Start(ctx)
	}

	// 8. Start the optional HTTP API
	errCh := make(chan error, 1)
	var httpServer *api.Server
	if cfg.HTTPPort != "" {
		httpServer = api.NewServer(dbClient, workerPool)
		go func() {
			slog.Info("HTTP server listening", "port", cfg.HTTPPort)
			if err := httpServer.Start(cfg.HTTPPort); err != nil && err != http.ErrServerClosed {
				slog.Error("HTTP server error", "error", err)
				errCh <- err
			}
		}()
	}

	slog.Info("Skiftkoll worker started", "worker_id", cfg.WorkerID)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: workers finish their current session first
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	if cleanupSvc != nil {
		cleanupSvc.Stop()
	}

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, incomplete sessions will be orphan-recovered")
	}

	if httpServer != nil {
		httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
		defer httpCancel()
		if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
			slog.Error("HTTP server shutdown error", "error", err)
		}
	}

	slog.Info("Shutdown complete")
}

// buildInputSource constructs the observation source for the configured
// input mode.
func buildInputSource(ctx context.Context, cfg config.InputConfig) (queue.InputSource, error) {
	switch cfg.Mode {
	case config.InputModeFixture:
		slog.Info("Using fixture input mode", "payload_path", cfg.FixturePayloadPath)
		return &queue.FixtureSource{PayloadPath: cfg.FixturePayloadPath}, nil

	case config.InputModeOCR:
		objects, err := objectstore.NewClient(ctx, cfg.ObjectStore)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize object store client: %w", err)
		}
		engine := ocr.NewClient(cfg.OCR)
		slog.Info("Using OCR input mode",
			"ocr_service_url", cfg.OCR.ServiceURL,
			"bucket", cfg.ObjectStore.Bucket)
		return &queue.OCRSource{
			Objects:     objects,
			Engine:      engine,
			DefaultYear: cfg.OCR.DefaultYear,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported input mode %q", cfg.Mode)
	}
}
