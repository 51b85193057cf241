package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/resumeai/internal/server/jwt"
	"github.com/iudanet/resumeai/internal/server/respond"
)

type contextKey string

const claimsKey contextKey = "claims"

// RevocationChecker проверяет, отозван ли токен по jti
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// WithClaims кладет claims в контекст
func WithClaims(ctx context.Context, claims *jwt.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ClaimsFromContext возвращает claims аутентифицированного запроса
func ClaimsFromContext(ctx context.Context) (*jwt.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*jwt.Claims)
	return claims, ok && claims != nil
}

// AuthMiddleware создает middleware для проверки JWT токена
func AuthMiddleware(logger *slog.Logger, tokens *jwt.Service, revoked RevocationChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				logger.Warn("Missing or malformed Authorization header", slog.String("path", r.URL.Path))
				respond.Detail(w, http.StatusUnauthorized, "Not authenticated")
				return
			}

			claims, err := tokens.Validate(tokenString)
			if err != nil {
				logger.Warn("Invalid access token", slog.Any("error", err))
				respond.Detail(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			isRevoked, err := revoked.IsRevoked(r.Context(), claims.ID)
			if err != nil {
				logger.Error("Failed to check token revocation", slog.Any("error", err))
				respond.Detail(w, http.StatusInternalServerError, "Internal server error")
				return
			}
			if isRevoked {
				logger.Warn("Revoked token used", slog.String("user_id", claims.UserID))
				respond.Detail(w, http.StatusUnauthorized, "Token has been revoked")
				return
			}

			logger.Debug("User authenticated", slog.String("user_id", claims.UserID), slog.String("username", claims.Username))
			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// bearerToken извлекает токен из "Authorization: Bearer <token>"
func bearerToken(r *http.Request) (string, bool) {
	scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
