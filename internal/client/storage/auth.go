package storage

import (
	"context"
	"time"

	"github.com/iudanet/resumeai/pkg/api"
)

// AuthStorage хранит токен доступа, время его истечения и профиль пользователя.
// Значения лежат под тремя независимыми ключами, каждый метод изменяет их
// в одной транзакции.
type AuthStorage interface {
	// SaveAuth сохраняет токен, срок и пользователя одним блоком (login/register)
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth возвращает сохраненные данные.
	// Returns ErrAuthNotFound если токен не сохранен.
	GetAuth(ctx context.Context) (*AuthData, error)

	// SetToken записывает токен и абсолютный срок now+ttl
	SetToken(ctx context.Context, token string, ttl time.Duration) error

	// GetToken возвращает токен или пустую строку если его нет
	GetToken(ctx context.Context) (string, error)

	// SaveUser заменяет кэшированный профиль
	SaveUser(ctx context.Context, user *api.User) error

	// GetUser возвращает кэшированный профиль.
	// Returns ErrAuthNotFound если профиль не сохранен.
	GetUser(ctx context.Context) (*api.User, error)

	// ClearToken удаляет токен, срок и профиль. Повторный вызов не ошибка.
	ClearToken(ctx context.Context) error

	// IsExpired сообщает, что срок не записан или уже прошел
	IsExpired(ctx context.Context) (bool, error)

	// IsAuthenticated проверяет, что токен есть и не истек
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData хранится в auth bucket
type AuthData struct {
	User      *api.User
	Token     string
	ExpiresAt int64 // unix time в миллисекундах, 0 если срок не записан
}

// Expired сообщает, истек ли токен на момент now. Без срока токен считается истекшим.
func (a *AuthData) Expired(now time.Time) bool {
	return a.ExpiresAt == 0 || now.UnixMilli() > a.ExpiresAt
}

// ExpiresAtTime возвращает срок как time.Time, нулевое значение если срока нет
func (a *AuthData) ExpiresAtTime() time.Time {
	if a.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.UnixMilli(a.ExpiresAt)
}
