package config

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"
)

// Client содержит настройки терминального клиента
type Client struct {
	APIURL          string        `env:"API_URL, default=http://localhost:8000/v1"`
	DBPath          string        `env:"DB, default=resumeai-client.db"`
	LogLevel        string        `env:"LOG_LEVEL, default=warn"`
	DownloadDir     string        `env:"DOWNLOAD_DIR, default=."`
	Timeout         time.Duration `env:"TIMEOUT, default=30s"`
	CompletionDelay time.Duration `env:"COMPLETION_DELAY, default=1s"`
	RefreshBefore   time.Duration `env:"REFRESH_BEFORE, default=5m"`
	PageSize        int           `env:"PAGE_SIZE, default=10"`

	ShowVersion bool
}

// LoadClient собирает конфигурацию клиента и возвращает аргументы после флагов
// (имя команды и ее параметры).
func LoadClient(ctx context.Context, args []string) (*Client, []string, error) {
	return loadClient(ctx, args, defaultSource(), nil)
}

func loadClient(ctx context.Context, args []string, src source, output io.Writer) (*Client, []string, error) {
	cfg := &Client{}
	if err := processEnv(ctx, src, ClientEnvPrefix, cfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("resumeai", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.APIURL, "server", cfg.APIURL, "API base URL")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to local session database")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.StringVar(&cfg.DownloadDir, "download-dir", cfg.DownloadDir, "Directory for downloaded resumes")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "Per-request timeout")
	fs.IntVar(&cfg.PageSize, "page-size", cfg.PageSize, "Sessions page size")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

func (c *Client) validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("api url cannot be empty")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	return nil
}
