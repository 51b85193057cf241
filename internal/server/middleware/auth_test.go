package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/resumeai/internal/server/jwt"
)

func setupTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeRevocations struct {
	err     error
	revoked map[string]bool
}

func (f *fakeRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	return f.revoked[tokenID], f.err
}

func serveAuth(t *testing.T, revoked RevocationChecker, header string) (*httptest.ResponseRecorder, *jwt.Claims) {
	t.Helper()

	var got *jwt.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		require.True(t, ok)
		got = claims
		w.WriteHeader(http.StatusNoContent)
	})

	handler := AuthMiddleware(setupTestLogger(), testTokens, revoked)(next)

	req := httptest.NewRequest(http.MethodGet, "/v1/user/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, got
}

var testTokens = jwt.NewService("test-secret", time.Minute)

func TestAuthMiddleware_Success(t *testing.T) {
	token, _, err := testTokens.Generate("user-1", "alice")
	require.NoError(t, err)

	rec, claims := serveAuth(t, &fakeRevocations{}, "Bearer "+token)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotNil(t, claims)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestAuthMiddleware_CaseInsensitiveScheme(t *testing.T) {
	token, _, err := testTokens.Generate("user-1", "alice")
	require.NoError(t, err)

	rec, _ := serveAuth(t, &fakeRevocations{}, "bearer "+token)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestAuthMiddleware_Rejects(t *testing.T) {
	token, _, err := testTokens.Generate("user-1", "alice")
	require.NoError(t, err)
	claims, err := testTokens.Validate(token)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		revoked    *fakeRevocations
		wantStatus int
		wantDetail string
	}{
		{"missing header", "", &fakeRevocations{}, http.StatusUnauthorized, "Not authenticated"},
		{"wrong scheme", "Basic " + token, &fakeRevocations{}, http.StatusUnauthorized, "Not authenticated"},
		{"empty token", "Bearer   ", &fakeRevocations{}, http.StatusUnauthorized, "Not authenticated"},
		{"garbage token", "Bearer nope", &fakeRevocations{}, http.StatusUnauthorized, "Invalid or expired token"},
		{
			"revoked token", "Bearer " + token,
			&fakeRevocations{revoked: map[string]bool{claims.ID: true}},
			http.StatusUnauthorized, "Token has been revoked",
		},
		{
			"storage failure", "Bearer " + token,
			&fakeRevocations{err: errors.New("db down")},
			http.StatusInternalServerError, "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, got := serveAuth(t, tt.revoked, tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, `{"detail":"`+tt.wantDetail+`"}`, rec.Body.String())
			assert.Nil(t, got, "next handler must not run")
		})
	}
}

func TestClaimsFromContext_Empty(t *testing.T) {
	_, ok := ClaimsFromContext(context.Background())
	assert.False(t, ok)
}
