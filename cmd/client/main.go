package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/resumeai/internal/client/api"
	"github.com/iudanet/resumeai/internal/client/auth"
	"github.com/iudanet/resumeai/internal/client/cli"
	"github.com/iudanet/resumeai/internal/client/iocli"
	"github.com/iudanet/resumeai/internal/client/storage/boltdb"
	"github.com/iudanet/resumeai/internal/config"
	"github.com/iudanet/resumeai/internal/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, args, err := config.LoadClient(ctx, os.Args[1:])
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

	// Открываем BoltDB storage
	boltStorage, err := boltdb.New(ctx, cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			log.Error("failed to close database", slog.Any("error", err))
		}
	}()

	apiClient := api.NewClient(cfg.APIURL,
		api.WithTimeout(cfg.Timeout),
		api.WithTokenSource(boltStorage),
		api.WithLogger(log),
	)

	session := auth.NewSession(apiClient, boltStorage, log)
	if err := session.Init(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Error("failed to close session", slog.Any("error", err))
		}
	}()

	// Один раз обновляем токен, который скоро истечет; ошибка не фатальна
	if refreshed, err := session.RefreshIfExpiring(ctx, cfg.RefreshBefore); err != nil {
		log.Warn("failed to refresh expiring token", slog.Any("error", err))
	} else if refreshed {
		log.Debug("expiring token refreshed")
	}

	client := cli.New(iocli.NewStdio(), apiClient, session, boltStorage, cli.Options{
		DownloadDir:     cfg.DownloadDir,
		PageSize:        cfg.PageSize,
		CompletionDelay: cfg.CompletionDelay,
	}, log)

	command := ""
	if len(args) > 0 {
		command, args = args[0], args[1:]
	}
	if command == "" && !session.IsAuthenticated() {
		_ = client.PrintUsage()
		return 1
	}

	if err := client.Run(ctx, command, args); err != nil {
		return 1
	}
	return 0
}

func printVersion() {
	fmt.Printf("ResumeAI Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
