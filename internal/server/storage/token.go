package storage

import (
	"context"
	"time"

	"github.com/iudanet/resumeai/internal/models"
)

// TokenStorage хранит отозванные access token до истечения их срока
type TokenStorage interface {
	// RevokeToken отзывает token. Повторный отзыв не ошибка.
	RevokeToken(ctx context.Context, token *models.RevokedToken) error

	// IsRevoked сообщает, отозван ли token с данным jti
	IsRevoked(ctx context.Context, tokenID string) (bool, error)

	// DeleteExpiredTokens удаляет записи, срок которых прошел до now.
	// Returns number of deleted tokens
	DeleteExpiredTokens(ctx context.Context, now time.Time) (int, error)
}
