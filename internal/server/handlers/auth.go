package handlers

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/resumeai/internal/models"
	"github.com/iudanet/resumeai/internal/server/jwt"
	"github.com/iudanet/resumeai/internal/server/middleware"
	"github.com/iudanet/resumeai/internal/server/respond"
	"github.com/iudanet/resumeai/internal/server/storage"
	"github.com/iudanet/resumeai/internal/validation"
	"github.com/iudanet/resumeai/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	now       func() time.Time
	logger    *slog.Logger
	users     storage.UserStorage
	revoked   storage.TokenStorage
	tokens    *jwt.Service
	validator *validation.Validator
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, revoked storage.TokenStorage, tokens *jwt.Service, v *validation.Validator) *AuthHandler {
	return &AuthHandler{
		now:       time.Now,
		logger:    logger,
		users:     users,
		revoked:   revoked,
		tokens:    tokens,
		validator: v,
	}
}

// Register обрабатывает POST /v1/auth/register.
// Ответ совпадает с Login: пользователь сразу получает токен.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if !decodeBody(w, r, h.logger, &req, false) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		h.logger.WarnContext(ctx, "invalid register request", slog.String("username", req.Username), slog.Any("error", err))
		respond.Invalid(w, err)
		return
	}

	user, err := h.createUser(ctx, req)
	if err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			respond.Detail(w, http.StatusConflict, "Username or email already registered")
			return
		}
		serverError(w, r, h.logger, "failed to create user", err)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	h.issue(w, r, user, http.StatusCreated)
}

// EnsureUser создает пользователя, если username еще не занят
func (h *AuthHandler) EnsureUser(ctx context.Context, req api.RegisterRequest) error {
	if err := h.validator.Struct(req); err != nil {
		return err
	}

	_, err := h.users.GetUserByUsername(ctx, req.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}

	_, err = h.createUser(ctx, req)
	return err
}

func (h *AuthHandler) createUser(ctx context.Context, req api.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := h.now()
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastLogin:    &now,
	}

	if err := h.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login обрабатывает POST /v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if !decodeBody(w, r, h.logger, &req, false) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respond.Invalid(w, err)
		return
	}

	user, err := h.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			respond.Detail(w, http.StatusUnauthorized, "Incorrect username or password")
			return
		}
		serverError(w, r, h.logger, "failed to get user", err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		respond.Detail(w, http.StatusUnauthorized, "Incorrect username or password")
		return
	}

	if err := h.users.UpdateLastLogin(ctx, user.ID, h.now()); err != nil {
		// не критично для входа
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID))
	h.issue(w, r, user, http.StatusOK)
}

func (h *AuthHandler) issue(w http.ResponseWriter, r *http.Request, user *models.User, status int) {
	token, expiresIn, err := h.tokens.Generate(user.ID, user.Username)
	if err != nil {
		serverError(w, r, h.logger, "failed to generate access token", err)
		return
	}

	respond.JSON(w, status, api.AuthResponse{
		User:      user.API(),
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Logout обрабатывает POST /v1/auth/logout: текущий токен отзывается
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respond.Detail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	if err := h.revoke(r.Context(), claims); err != nil {
		serverError(w, r, h.logger, "failed to revoke token", err)
		return
	}

	h.logger.InfoContext(r.Context(), "user logged out", slog.String("user_id", claims.UserID))
	w.WriteHeader(http.StatusNoContent)
}

// Refresh обрабатывает POST /v1/auth/refresh: старый токен отзывается, выдается новый
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		respond.Detail(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	token, expiresIn, err := h.tokens.Generate(claims.UserID, claims.Username)
	if err != nil {
		serverError(w, r, h.logger, "failed to generate access token", err)
		return
	}
	if err := h.revoke(r.Context(), claims); err != nil {
		serverError(w, r, h.logger, "failed to revoke token", err)
		return
	}

	h.logger.DebugContext(r.Context(), "token refreshed", slog.String("user_id", claims.UserID))
	respond.JSON(w, http.StatusOK, api.RefreshTokenResponse{Token: token, ExpiresIn: expiresIn})
}

func (h *AuthHandler) revoke(ctx context.Context, claims *jwt.Claims) error {
	expiresAt := h.now().Add(h.tokens.TTL())
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return h.revoked.RevokeToken(ctx, &models.RevokedToken{
		TokenID:   claims.ID,
		UserID:    claims.UserID,
		ExpiresAt: expiresAt,
	})
}
