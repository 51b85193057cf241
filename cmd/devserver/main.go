package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/resumeai/internal/config"
	"github.com/iudanet/resumeai/internal/logger"
	"github.com/iudanet/resumeai/internal/server/handlers"
	"github.com/iudanet/resumeai/internal/server/jwt"
	"github.com/iudanet/resumeai/internal/server/middleware"
	"github.com/iudanet/resumeai/internal/server/storage"
	"github.com/iudanet/resumeai/internal/server/storage/sqlite"
	"github.com/iudanet/resumeai/internal/validation"
	"github.com/iudanet/resumeai/pkg/api"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const (
	shutdownTimeout      = 10 * time.Second
	tokenCleanupInterval = 10 * time.Minute
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadServer(ctx, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	log, err := logger.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}
	slog.SetDefault(log)

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		log.Error("failed to open database", slog.String("path", cfg.DBPath), slog.Any("error", err))
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close database", slog.Any("error", err))
		}
	}()

	tokens := jwt.NewService(cfg.JWTSecret, cfg.TokenTTL)
	validator := validation.New()

	if cfg.Seed {
		auth := handlers.NewAuthHandler(log, store, store, tokens, validator)
		if err := auth.EnsureUser(ctx, api.RegisterRequest{
			Username:  "demo",
			Email:     "demo@example.com",
			Password:  "password",
			FirstName: "Demo",
			LastName:  "User",
		}); err != nil {
			log.Error("failed to seed demo user", slog.Any("error", err))
			return 1
		}
		log.Info("demo user ready", slog.String("username", "demo"))
	}

	var limiter *middleware.RateLimiter
	if cfg.AuthRateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.AuthRateLimit, time.Minute)
		defer limiter.Stop()
	}

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: handlers.NewRouter(handlers.Deps{
			Logger:    log,
			Store:     store,
			Tokens:    tokens,
			Validator: validator,
			Limiter:   limiter,
			Version:   Version,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go cleanupRevokedTokens(ctx, store, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("devserver listening", slog.String("addr", cfg.Addr), slog.String("version", Version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", slog.Any("error", err))
			return 1
		}
	case <-ctx.Done():
		log.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", slog.Any("error", err))
		return 1
	}

	return 0
}

// cleanupRevokedTokens периодически удаляет истекшие записи отозванных токенов
func cleanupRevokedTokens(ctx context.Context, tokens storage.TokenStorage, log *slog.Logger) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			n, err := tokens.DeleteExpiredTokens(ctx, now)
			if err != nil {
				log.Warn("failed to delete expired tokens", slog.Any("error", err))
				continue
			}
			if n > 0 {
				log.Debug("expired tokens deleted", slog.Int("count", n))
			}
		}
	}
}

func printVersion() {
	fmt.Printf("ResumeAI Devserver\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
