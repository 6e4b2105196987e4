package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"showcase/internal/adapters/http/api"
	"showcase/internal/adapters/http/uploads"
	"showcase/internal/adapters/repository"
	"showcase/internal/config"
	"showcase/internal/notify"
	"showcase/internal/ratelimit"
	"showcase/pkg/logger"

	"github.com/go-chi/chi/v5"
)

// HTTP server timeout constants.
const (
	readTimeout       = 10 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 30 * time.Second
)

func main() {
	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env).
	cfg, err := config.Load(ctx)
	if err != nil {
		// The logger is configured from the config, so it is not available yet.
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Init(cfg.IsDevelopment())
	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input).
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	// Explicitly owned components, injected into the pipeline.
	store := repository.NewMemStore()
	limiter := ratelimit.New(
		ratelimit.WithLimit(cfg.RateLimitMax),
		ratelimit.WithWindow(cfg.RateLimitWindow()),
	)
	dispatcher := notify.NewDispatcher(notify.NewLogSender(logger.Named("notify")), log)
	defer dispatcher.Close()

	apiServer := api.NewServer(store, dispatcher, limiter, log,
		api.WithEnvironment(cfg.Environment),
		api.WithVersion(cfg.Version),
		api.WithFrontendOrigin(cfg.FrontendURL),
		api.WithMaxBodyBytes(cfg.MaxBodyBytes),
		api.WithDevelopmentMode(cfg.IsDevelopment()),
	)

	r := chi.NewRouter()
	apiServer.Register(ctx, r)
	uploads.Register(ctx, r, cfg.UploadsDir)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "server listening",
			logger.Int("port", cfg.Port),
			logger.String("environment", cfg.Environment),
			logger.String("frontend_origin", cfg.FrontendURL),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
			stop()
		}
	}()

	// Wait for shutdown signal.
	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
}
