package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/daygrid/internal/adapters/http/api"
	"github.com/okian/daygrid/internal/adapters/http/site"
	"github.com/okian/daygrid/internal/adapters/repository"
	app "github.com/okian/daygrid/internal/app"
	"github.com/okian/daygrid/internal/config"
	"github.com/okian/daygrid/pkg/logger"
	"github.com/okian/daygrid/pkg/metrics"
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
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	log := logger.Get()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		return
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	metrics.Init()

	var storeOpts []repository.Option
	if cfg.SnapshotPath != "" {
		storeOpts = append(storeOpts, repository.WithSnapshotPath(cfg.SnapshotPath))
	}
	store, err := repository.NewMemStore(storeOpts...)
	if err != nil {
		log.Error(ctx, "failed to open store", logger.Error(err))
		return
	}

	svc, err := app.New(
		app.WithStore(store),
		app.WithLogger(log),
		app.WithSlotHeight(cfg.SlotHeightPx),
		app.WithWindowSize(cfg.WindowSize),
		app.WithExtendStep(cfg.ExtendStepDays),
		app.WithExtendGuard(time.Duration(cfg.ExtendGuardMS)*time.Millisecond),
		app.WithDemoEvents(cfg.DemoEvents),
	)
	if err != nil {
		log.Error(ctx, "failed to build service", logger.Error(err))
		return
	}

	// HTTP mux and routes.
	mux := http.NewServeMux()
	api.NewServer(svc).Register(ctx, mux)
	site.Register(ctx, mux)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			os.Stderr.WriteString("HTTP server failed: " + err.Error() + "\n")
		}
	}()

	<-ctx.Done()
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}
	log.Info(ctx, "server stopped")
}
