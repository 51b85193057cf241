// Package cli реализует экраны терминального клиента и маршрутизацию команд.
package cli

import (
	"context"
	"log/slog"
	"time"

	clientapi "github.com/iudanet/resumeai/internal/client/api"
	"github.com/iudanet/resumeai/internal/client/auth"
	"github.com/iudanet/resumeai/internal/client/iocli"
	"github.com/iudanet/resumeai/internal/client/storage"
	"github.com/iudanet/resumeai/internal/validation"
)

// Options содержит настройки экранов из конфигурации клиента
type Options struct {
	DownloadDir     string
	PageSize        int
	CompletionDelay time.Duration
}

// Cli реализует экраны клиента
type Cli struct {
	io        iocli.IO
	api       clientapi.ClientAPI
	session   *auth.Session
	prefs     storage.MetadataStorage
	validator *validation.Validator
	logger    *slog.Logger
	sleep     func(ctx context.Context, d time.Duration) error
	opts      Options
}

func New(
	io iocli.IO,
	client clientapi.ClientAPI,
	session *auth.Session,
	prefs storage.MetadataStorage,
	opts Options,
	logger *slog.Logger,
) *Cli {
	if opts.DownloadDir == "" {
		opts.DownloadDir = "."
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Cli{
		io:        io,
		api:       client,
		session:   session,
		prefs:     prefs,
		validator: validation.New(),
		logger:    logger,
		sleep:     sleepContext,
		opts:      opts,
	}
}

// sleepContext ждет d или отмены ctx
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
