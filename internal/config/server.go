package config

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"
)

// Server содержит настройки devserver
type Server struct {
	Addr      string        `env:"ADDR, default=localhost:8000"`
	DBPath    string        `env:"DB, default=resumeai-dev.db"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-secret-change-me"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	// AuthRateLimit: запросов login/register в минуту с одного IP, 0 отключает
	AuthRateLimit int `env:"AUTH_RATE_LIMIT, default=20"`
	// Seed создает демо-пользователя demo/password при старте
	Seed bool `env:"SEED, default=true"`

	ShowVersion bool
}

// LoadServer собирает конфигурацию devserver
func LoadServer(ctx context.Context, args []string) (*Server, error) {
	return loadServer(ctx, args, defaultSource(), nil)
}

func loadServer(ctx context.Context, args []string, src source, output io.Writer) (*Server, error) {
	cfg := &Server{}
	if err := processEnv(ctx, src, ServerEnvPrefix, cfg); err != nil {
		return nil, err
	}

	fs := flag.NewFlagSet("resumeai-devserver", flag.ContinueOnError)
	if output != nil {
		fs.SetOutput(output)
	}
	fs.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "Listen address")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path to SQLite database (:memory: for in-memory)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	fs.DurationVar(&cfg.TokenTTL, "token-ttl", cfg.TokenTTL, "Access token lifetime")
	fs.IntVar(&cfg.AuthRateLimit, "auth-rate-limit", cfg.AuthRateLimit, "Login/register requests per minute per IP (0 disables)")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "Create demo user")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("jwt secret cannot be empty")
	}
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", cfg.TokenTTL)
	}

	if cfg.AuthRateLimit < 0 {
		return nil, fmt.Errorf("auth rate limit cannot be negative, got %d", cfg.AuthRateLimit)
	}

	return cfg, nil
}
