package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/resumeai/internal/server/jwt"
	"github.com/iudanet/resumeai/internal/server/middleware"
	"github.com/iudanet/resumeai/internal/server/storage/sqlite"
	"github.com/iudanet/resumeai/internal/validation"
	"github.com/iudanet/resumeai/pkg/api"
)

type testServer struct {
	*httptest.Server
	store *sqlite.Storage
}

func newTestServer(t *testing.T, limiter *middleware.RateLimiter) *testServer {
	t.Helper()

	store, err := sqlite.New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	router := NewRouter(Deps{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Store:     store,
		Tokens:    jwt.NewService("test-secret", time.Hour),
		Validator: validation.New(),
		Limiter:   limiter,
		Version:   "test",
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, store: store}
}

// do отправляет запрос и возвращает статус и тело ответа
func (s *testServer) do(t *testing.T, method, path, token string, body any) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, s.URL+"/v1"+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

// decode выполняет запрос, проверяет статус и разбирает JSON ответ в out
func (s *testServer) decode(t *testing.T, method, path, token string, body any, wantStatus int, out any) {
	t.Helper()

	resp, data := s.do(t, method, path, token, body)
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", data)
	if out != nil {
		require.NoError(t, json.Unmarshal(data, out))
	}
}

// register создает пользователя и возвращает его токен
func (s *testServer) register(t *testing.T, username string) string {
	t.Helper()

	var resp api.AuthResponse
	s.decode(t, http.MethodPost, "/auth/register", "", api.RegisterRequest{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "secret123",
		FirstName: "Test",
		LastName:  "User",
	}, http.StatusCreated, &resp)
	require.NotEmpty(t, resp.Token)
	return resp.Token
}
