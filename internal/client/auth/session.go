// Package auth хранит состояние аутентификации клиента.
//
// Session создается один раз в main, Init восстанавливает состояние из
// локального хранилища, Close вызывается при завершении. Экраны получают
// Session через конструктор CLI.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	clientapi "github.com/iudanet/resumeai/internal/client/api"
	"github.com/iudanet/resumeai/internal/client/storage"
	"github.com/iudanet/resumeai/internal/validation"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

// Session хранит состояние аутентификации процесса.
// Мьютекс защищает только поля в памяти: операции не исключают друг друга,
// при конкурентных login побеждает последняя запись.
type Session struct {
	api       API
	store     storage.AuthStorage
	validator *validation.Validator
	logger    *slog.Logger
	now       func() time.Time

	mu            sync.RWMutex
	user          *pkgapi.User
	expiresAt     time.Time
	lastErr       string
	authenticated bool
}

// NewSession создает сессию. До Init она не аутентифицирована.
func NewSession(client API, store storage.AuthStorage, logger *slog.Logger) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	return &Session{
		api:       client,
		store:     store,
		validator: validation.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// Init восстанавливает состояние из хранилища без обращения к серверу.
// Истекший токен удаляется, сессия остается неаутентифицированной.
func (s *Session) Init(ctx context.Context) error {
	auth, err := s.store.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			s.reset()
			return nil
		}
		return fmt.Errorf("failed to read cached auth: %w", err)
	}

	if auth.Expired(s.now()) {
		s.logger.InfoContext(ctx, "cached token expired, clearing")
		s.reset()
		if err := s.store.ClearToken(ctx); err != nil {
			return fmt.Errorf("failed to clear expired auth: %w", err)
		}
		return nil
	}

	s.mu.Lock()
	s.user = auth.User
	s.expiresAt = auth.ExpiresAtTime()
	s.authenticated = true
	s.lastErr = ""
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "session restored", slog.Time("expires_at", auth.ExpiresAtTime()))
	return nil
}

// Close сбрасывает состояние в памяти. Хранилище закрывает владелец.
func (s *Session) Close() error {
	s.reset()
	return nil
}

// Login аутентифицирует пользователя и сохраняет токен и профиль
func (s *Session) Login(ctx context.Context, username, password string) (*pkgapi.User, error) {
	req := pkgapi.LoginRequest{Username: username, Password: password}
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(err)
	}

	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, s.fail(err)
	}

	if err := s.persist(ctx, resp); err != nil {
		return nil, s.fail(err)
	}

	s.logger.InfoContext(ctx, "logged in", slog.String("username", resp.User.Username))
	return s.User(), nil
}

// Register регистрирует пользователя и сразу аутентифицирует его
func (s *Session) Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, s.fail(err)
	}

	resp, err := s.api.Register(ctx, req)
	if err != nil {
		return nil, s.fail(err)
	}

	if err := s.persist(ctx, resp); err != nil {
		return nil, s.fail(err)
	}

	s.logger.InfoContext(ctx, "registered", slog.String("username", resp.User.Username))
	return s.User(), nil
}

// Logout уведомляет сервер (ошибка только логируется) и всегда очищает
// локальное состояние. Ошибка возвращается лишь если не удалось очистить хранилище.
func (s *Session) Logout(ctx context.Context) error {
	token, err := s.store.GetToken(ctx)
	switch {
	case err != nil:
		s.logger.DebugContext(ctx, "no auth data found during logout", slog.Any("error", err))
	case token != "":
		if logoutErr := s.api.Logout(ctx); logoutErr != nil {
			s.logger.WarnContext(ctx, "failed to logout on server", slog.Any("error", logoutErr))
		}
	}

	s.reset()

	if err := s.store.ClearToken(ctx); err != nil {
		return fmt.Errorf("failed to delete local auth data: %w", err)
	}
	return nil
}

// Refresh обновляет токен, кэшированный профиль не меняется
func (s *Session) Refresh(ctx context.Context) error {
	resp, err := s.api.RefreshToken(ctx)
	if err != nil {
		return s.fail(err)
	}

	expiresAt := s.expiryFor(resp.Token, resp.ExpiresIn)
	ttl := expiresAt.Sub(s.now())
	if expiresAt.IsZero() || ttl <= 0 {
		return s.fail(fmt.Errorf("refreshed token has no valid expiry"))
	}

	if err := s.store.SetToken(ctx, resp.Token, ttl); err != nil {
		return s.fail(fmt.Errorf("failed to save refreshed token: %w", err))
	}

	s.mu.Lock()
	s.expiresAt = expiresAt
	s.authenticated = true
	s.lastErr = ""
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "token refreshed", slog.Time("expires_at", expiresAt))
	return nil
}

// RefreshIfExpiring обновляет токен один раз, если он истекает раньше чем через before.
// Возвращает true если обновление выполнялось.
func (s *Session) RefreshIfExpiring(ctx context.Context, before time.Duration) (bool, error) {
	s.mu.RLock()
	authenticated, expiresAt := s.authenticated, s.expiresAt
	s.mu.RUnlock()

	if !authenticated || expiresAt.IsZero() || expiresAt.Sub(s.now()) > before {
		return false, nil
	}
	return true, s.Refresh(ctx)
}

// UpdateUser заменяет кэшированный профиль в памяти и в хранилище.
// Сервер не вызывается: изменение уже выполнено вызывающим.
func (s *Session) UpdateUser(ctx context.Context, user *pkgapi.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}
	if err := s.store.SaveUser(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	u := *user
	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

// User возвращает копию профиля или nil
func (s *Session) User() *pkgapi.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated проверяет, что токен есть и не истек
func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.authenticated {
		return false
	}
	return !s.expiresAt.IsZero() && s.now().Before(s.expiresAt)
}

// ExpiresAt возвращает срок действия токена, нулевое значение если он неизвестен
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

// LastError возвращает сообщение последней неудачной операции
func (s *Session) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ClearError сбрасывает LastError
func (s *Session) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *Session) persist(ctx context.Context, resp *pkgapi.AuthResponse) error {
	if resp.Token == "" {
		return fmt.Errorf("server returned empty token")
	}

	// токен без срока считается истекшим и не сохраняется
	expiresAt := s.expiryFor(resp.Token, resp.ExpiresIn)
	if expiresAt.IsZero() || !s.now().Before(expiresAt) {
		return fmt.Errorf("server returned token without valid expiry")
	}

	user := resp.User
	auth := &storage.AuthData{
		Token:     resp.Token,
		ExpiresAt: expiresAt.UnixMilli(),
		User:      &user,
	}

	if err := s.store.SaveAuth(ctx, auth); err != nil {
		return fmt.Errorf("failed to save auth data: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.expiresAt = expiresAt
	s.authenticated = true
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// expiryFor вычисляет абсолютный срок: expiresIn секунд от текущего момента,
// иначе claim exp из токена (подпись не проверяется, это делает сервер).
func (s *Session) expiryFor(token string, expiresIn int64) time.Time {
	if expiresIn > 0 {
		return s.now().Add(time.Duration(expiresIn) * time.Second)
	}

	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == nil {
		return time.Time{}
	}
	return claims.ExpiresAt.Time
}

// fail запоминает сообщение для экрана: текст ошибки API без префиксов обертки
func (s *Session) fail(err error) error {
	msg := err.Error()
	if apiErr, ok := clientapi.AsError(err); ok {
		msg = apiErr.Error()
	}
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
	return err
}

func (s *Session) reset() {
	s.mu.Lock()
	s.user = nil
	s.expiresAt = time.Time{}
	s.authenticated = false
	s.mu.Unlock()
}
