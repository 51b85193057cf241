package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/resumeai/internal/client/api"
	"github.com/iudanet/resumeai/internal/client/auth"
	"github.com/iudanet/resumeai/internal/client/iocli"
	"github.com/iudanet/resumeai/internal/client/storage/boltdb"
	"github.com/iudanet/resumeai/internal/server/handlers"
	"github.com/iudanet/resumeai/internal/server/jwt"
	"github.com/iudanet/resumeai/internal/server/storage/sqlite"
	"github.com/iudanet/resumeai/internal/validation"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

// harness держит клиент, подключенный к devserver в httptest, со скриптованным вводом
type harness struct {
	cli       *Cli
	io        *iocli.IOMock
	api       *clientapi.Client
	session   *auth.Session
	store     *boltdb.Storage
	baseURL   string
	dir       string
	mu        sync.Mutex
	out       bytes.Buffer
	inputs    []string
	passwords []string
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	ctx := context.Background()
	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	serverStore, err := sqlite.New(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverStore.Close() })

	srv := httptest.NewServer(handlers.NewRouter(handlers.Deps{
		Logger:    discard,
		Store:     serverStore,
		Tokens:    jwt.NewService("test-secret", time.Hour),
		Validator: validation.New(),
	}))
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	store, err := boltdb.New(ctx, filepath.Join(dir, "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	h := &harness{store: store, baseURL: srv.URL + "/v1", dir: filepath.Join(dir, "downloads")}
	h.api = clientapi.NewClient(h.baseURL, clientapi.WithTokenSource(store), clientapi.WithLogger(discard))
	h.session = auth.NewSession(h.api, store, discard)
	require.NoError(t, h.session.Init(ctx))

	h.io = &iocli.IOMock{
		PrintlnFunc: func(a ...any) { h.write(fmt.Sprintln(a...)) },
		PrintfFunc:  func(format string, a ...any) { h.write(fmt.Sprintf(format, a...)) },
		WriteFunc: func(p []byte) (int, error) {
			h.write(string(p))
			return len(p), nil
		},
		ReadInputFunc: func(prompt string) (string, error) {
			h.write(prompt)
			return h.next(&h.inputs)
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			h.write(prompt)
			return h.next(&h.passwords)
		},
	}

	opts.DownloadDir = h.dir
	h.cli = New(h.io, h.api, h.session, store, opts, discard)
	h.cli.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return h
}

func (h *harness) write(s string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.out.WriteString(s)
}

// next выдает следующую строку ввода, io.EOF когда строки кончились
func (h *harness) next(queue *[]string) (string, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(*queue) == 0 {
		return "", io.EOF
	}
	line := (*queue)[0]
	*queue = (*queue)[1:]
	return line, nil
}

func (h *harness) typeLines(lines ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.inputs = append(h.inputs, lines...)
}

func (h *harness) typePasswords(lines ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.passwords = append(h.passwords, lines...)
}

// output возвращает накопленный вывод и очищает буфер
func (h *harness) output() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	s := h.out.String()
	h.out.Reset()
	return s
}

func (h *harness) run(t *testing.T, command string, args ...string) error {
	t.Helper()
	return h.cli.Run(context.Background(), command, args)
}

// signUp регистрирует пользователя напрямую через Session
func (h *harness) signUp(t *testing.T, username string) {
	t.Helper()
	_, err := h.session.Register(context.Background(), pkgapi.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret123",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
}

// signUpOther регистрирует другого пользователя, не трогая локальную сессию
func (h *harness) signUpOther(t *testing.T, username string) {
	t.Helper()
	other := clientapi.NewClient(h.baseURL)
	_, err := other.Register(context.Background(), pkgapi.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret123",
		FirstName: "Other",
		LastName:  "User",
	})
	require.NoError(t, err)
}

// completedSession проходит интервью через API и возвращает сессию и резюме
func (h *harness) completedSession(t *testing.T) (pkgapi.InterviewSession, pkgapi.Resume) {
	t.Helper()
	ctx := context.Background()

	session, err := h.api.CreateSession(ctx, pkgapi.CreateSessionRequest{Language: pkgapi.LanguageEN})
	require.NoError(t, err)
	for _, answer := range interviewAnswers {
		_, err := h.api.SendMessage(ctx, session.ID, pkgapi.SendMessageRequest{Message: answer})
		require.NoError(t, err)
	}

	resume, err := h.api.GetSessionResume(ctx, session.ID)
	require.NoError(t, err)
	return *session, *resume
}

var interviewAnswers = []string{
	"Ivan Petrov, ivan@example.com, Moscow",
	"Backend developer with 5 years of Go",
	"Go developer at Acme: payment APIs",
	"BSc Computer Science, MSU",
	"Go, PostgreSQL, Docker",
}
