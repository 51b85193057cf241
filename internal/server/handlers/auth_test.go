package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/resumeai/internal/server/jwt"
	"github.com/iudanet/resumeai/internal/server/middleware"
	"github.com/iudanet/resumeai/internal/validation"
	"github.com/iudanet/resumeai/pkg/api"
)

func TestRegister(t *testing.T) {
	srv := newTestServer(t, nil)

	var resp api.AuthResponse
	srv.decode(t, http.MethodPost, "/auth/register", "", api.RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		FirstName: "Alice",
	}, http.StatusCreated, &resp)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(3600), resp.ExpiresIn)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, "Alice", resp.User.FirstName)
	assert.NotEmpty(t, resp.User.ID)

	var profile api.User
	srv.decode(t, http.MethodGet, "/user/profile", resp.Token, nil, http.StatusOK, &profile)
	assert.Equal(t, resp.User.ID, profile.ID)
}

func TestRegister_Duplicate(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.register(t, "alice")

	resp, body := srv.do(t, http.MethodPost, "/auth/register", "", api.RegisterRequest{
		Username: "alice",
		Email:    "other@example.com",
		Password: "secret123",
	})

	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Username or email already registered"}`, string(body))
}

func TestRegister_Validation(t *testing.T) {
	srv := newTestServer(t, nil)

	var resp api.ValidationErrorResponse
	srv.decode(t, http.MethodPost, "/auth/register", "", api.RegisterRequest{
		Username: "al",
		Email:    "not-an-email",
		Password: "123",
	}, http.StatusUnprocessableEntity, &resp)

	fields := make([]any, 0, len(resp.Detail))
	for _, issue := range resp.Detail {
		require.Len(t, issue.Loc, 2)
		assert.Equal(t, "body", issue.Loc[0])
		assert.NotEmpty(t, issue.Msg)
		fields = append(fields, issue.Loc[1])
	}
	assert.ElementsMatch(t, []any{"username", "email", "password"}, fields)
}

func TestRegister_BadJSON(t *testing.T) {
	srv := newTestServer(t, nil)

	resp, body := srv.do(t, http.MethodPost, "/auth/register", "", "just a string")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Invalid request body"}`, string(body))
}

func TestLogin(t *testing.T) {
	srv := newTestServer(t, nil)
	srv.register(t, "alice")

	t.Run("success", func(t *testing.T) {
		var resp api.AuthResponse
		srv.decode(t, http.MethodPost, "/auth/login", "", api.LoginRequest{
			Username: "alice",
			Password: "secret123",
		}, http.StatusOK, &resp)

		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "alice", resp.User.Username)
	})

	tests := []struct {
		name string
		req  api.LoginRequest
	}{
		{"wrong password", api.LoginRequest{Username: "alice", Password: "wrong-pass"}},
		{"unknown user", api.LoginRequest{Username: "bob", Password: "secret123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := srv.do(t, http.MethodPost, "/auth/login", "", tt.req)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.JSONEq(t, `{"detail":"Incorrect username or password"}`, string(body))
		})
	}

	t.Run("missing fields", func(t *testing.T) {
		resp, _ := srv.do(t, http.MethodPost, "/auth/login", "", api.LoginRequest{})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestLogout_RevokesToken(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.register(t, "alice")

	resp, _ := srv.do(t, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, body := srv.do(t, http.MethodGet, "/user/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.JSONEq(t, `{"detail":"Token has been revoked"}`, string(body))
}

func TestRefresh(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.register(t, "alice")

	var refreshed api.RefreshTokenResponse
	srv.decode(t, http.MethodPost, "/auth/refresh", token, nil, http.StatusOK, &refreshed)

	assert.NotEqual(t, token, refreshed.Token)
	assert.Equal(t, int64(3600), refreshed.ExpiresIn)

	srv.decode(t, http.MethodGet, "/user/profile", refreshed.Token, nil, http.StatusOK, nil)

	resp, _ := srv.do(t, http.MethodGet, "/user/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "old token is revoked")
}

func TestProtectedRoutes_RequireToken(t *testing.T) {
	srv := newTestServer(t, nil)

	paths := []struct{ method, path string }{
		{http.MethodGet, "/interview/sessions"},
		{http.MethodPost, "/interview/sessions"},
		{http.MethodGet, "/resumes"},
		{http.MethodGet, "/user/profile"},
		{http.MethodPost, "/auth/logout"},
		{http.MethodPost, "/auth/refresh"},
	}

	for _, p := range paths {
		t.Run(p.method+" "+p.path, func(t *testing.T) {
			resp, body := srv.do(t, p.method, p.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.JSONEq(t, `{"detail":"Not authenticated"}`, string(body))
		})
	}
}

func TestAuthRateLimit(t *testing.T) {
	limiter := middleware.NewRateLimiter(2, time.Minute)
	t.Cleanup(limiter.Stop)
	srv := newTestServer(t, limiter)

	req := api.LoginRequest{Username: "nobody", Password: "secret123"}
	for range 2 {
		resp, _ := srv.do(t, http.MethodPost, "/auth/login", "", req)
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	resp, body := srv.do(t, http.MethodPost, "/auth/login", "", req)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
	assert.Contains(t, string(body), `"message"`)

	srv.decode(t, http.MethodGet, "/health", "", nil, http.StatusOK, nil)
}

func TestEnsureUser(t *testing.T) {
	srv := newTestServer(t, nil)
	h := NewAuthHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), srv.store, srv.store,
		jwt.NewService("test-secret", time.Hour), validation.New())

	req := api.RegisterRequest{Username: "demo", Email: "demo@example.com", Password: "password"}
	require.NoError(t, h.EnsureUser(context.Background(), req))
	require.NoError(t, h.EnsureUser(context.Background(), req), "second call is a no-op")

	srv.decode(t, http.MethodPost, "/auth/login", "", api.LoginRequest{Username: "demo", Password: "password"}, http.StatusOK, nil)

	err := h.EnsureUser(context.Background(), api.RegisterRequest{Username: "x"})
	assert.Error(t, err)
}
