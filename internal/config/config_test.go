package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sethvargo/go-envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSource(t *testing.T, env map[string]string, dotenv string) source {
	t.Helper()
	src := source{lookuper: envconfig.MapLookuper(env)}
	if dotenv != "" {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte(dotenv), 0o600))
		src.envFile = path
	}
	return src
}

func TestLoadClient_Defaults(t *testing.T) {
	cfg, rest, err := loadClient(context.Background(), nil, testSource(t, nil, ""), io.Discard)
	require.NoError(t, err)
	assert.Empty(t, rest)

	want := &Client{
		APIURL:          "http://localhost:8000/v1",
		DBPath:          "resumeai-client.db",
		LogLevel:        "warn",
		DownloadDir:     ".",
		Timeout:         30 * time.Second,
		CompletionDelay: time.Second,
		RefreshBefore:   5 * time.Minute,
		PageSize:        10,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadClient_Precedence(t *testing.T) {
	dotenv := "RESUMEAI_API_URL=http://dotenv/v1\nRESUMEAI_PAGE_SIZE=20\nRESUMEAI_LOG_LEVEL=info\n"
	env := map[string]string{
		"RESUMEAI_API_URL": "http://env/v1",
		"RESUMEAI_TIMEOUT": "5s",
	}

	cfg, rest, err := loadClient(context.Background(),
		[]string{"--timeout", "2s", "--db", "/tmp/x.db", "login", "alice"},
		testSource(t, env, dotenv), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "http://env/v1", cfg.APIURL, "env overrides .env")
	assert.Equal(t, 20, cfg.PageSize, ".env overrides defaults")
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 2*time.Second, cfg.Timeout, "flags override env")
	assert.Equal(t, "/tmp/x.db", cfg.DBPath)
	assert.Equal(t, []string{"login", "alice"}, rest)
}

func TestLoadClient_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "zero timeout", args: []string{"--timeout", "0s"}},
		{name: "negative page size", env: map[string]string{"RESUMEAI_PAGE_SIZE": "-1"}},
		{name: "bad duration", env: map[string]string{"RESUMEAI_TIMEOUT": "soon"}},
		{name: "unknown flag", args: []string{"--nope"}},
		{name: "empty server", args: []string{"--server", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := loadClient(context.Background(), tt.args, testSource(t, tt.env, ""), io.Discard)
			assert.Error(t, err)
		})
	}
}

func TestLoadClient_Version(t *testing.T) {
	cfg, _, err := loadClient(context.Background(), []string{"--version"}, testSource(t, nil, ""), io.Discard)
	require.NoError(t, err)
	assert.True(t, cfg.ShowVersion)
}

func TestLoadServer(t *testing.T) {
	env := map[string]string{
		"RESUMEAI_DEV_JWT_SECRET": "s3cret",
		"RESUMEAI_DEV_TOKEN_TTL":  "10m",
	}
	cfg, err := loadServer(context.Background(), []string{"--addr", ":9000", "--seed=false"},
		testSource(t, env, ""), io.Discard)
	require.NoError(t, err)

	want := &Server{
		Addr:          ":9000",
		DBPath:        "resumeai-dev.db",
		JWTSecret:     "s3cret",
		LogLevel:      "info",
		TokenTTL:      10 * time.Minute,
		AuthRateLimit: 20,
		Seed:          false,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadServer_MissingEnvFileIsIgnored(t *testing.T) {
	src := source{
		lookuper: envconfig.MapLookuper(nil),
		envFile:  filepath.Join(t.TempDir(), "missing.env"),
	}
	cfg, err := loadServer(context.Background(), nil, src, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestLoadServer_NegativeRateLimit(t *testing.T) {
	_, err := loadServer(context.Background(), []string{"--auth-rate-limit", "-1"},
		testSource(t, nil, ""), io.Discard)
	assert.ErrorContains(t, err, "auth rate limit")
}
