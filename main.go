package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/exercise-tracker/internal/config"
	"github.com/msomdec/exercise-tracker/internal/handler"
	"github.com/msomdec/exercise-tracker/internal/logger"
	"github.com/msomdec/exercise-tracker/internal/repository"
	"github.com/msomdec/exercise-tracker/internal/service"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Fatal("load config", "error", err)
	}
	logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn := cfg.Database.DSN()
	connectCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	db, err := repository.Open(connectCtx, dsn, cfg.Database.Name)
	cancel()
	if err != nil {
		logger.Fatal("failed to open database", "backend", repository.BackendFor(dsn), "error", err)
	}
	defer db.Close()
	slog.Info("connected to database", "backend", repository.BackendFor(dsn))

	if err := db.Migrate(ctx); err != nil {
		logger.Fatal("failed to run migrations", "error", err)
	}
	slog.Info("database migrations applied")

	userService := service.NewUserService(db.Users())
	exerciseService := service.NewExerciseService(db.Users(), db.Exercises())

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, userService, exerciseService, db)

	var h http.Handler = mux
	if cfg.RateLimit.Enabled() {
		limiter := service.NewRateLimiter(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
		h = handler.RateLimit(limiter, h)
		slog.Info("rate limiting enabled", "rps", cfg.RateLimit.RPS, "burst", cfg.RateLimit.Burst)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.RequestLogger(handler.CORS(h)),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Fatal("server error", "error", err)
		}
	case <-ctx.Done():
	}
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	slog.Info("server stopped")
}
