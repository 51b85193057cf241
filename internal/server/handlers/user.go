package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/resumeai/internal/models"
	"github.com/iudanet/resumeai/internal/server/respond"
	"github.com/iudanet/resumeai/internal/server/storage"
	"github.com/iudanet/resumeai/internal/validation"
	"github.com/iudanet/resumeai/pkg/api"
)

// UserHandler обрабатывает /v1/user
type UserHandler struct {
	now       func() time.Time
	logger    *slog.Logger
	users     storage.UserStorage
	validator *validation.Validator
}

// NewUserHandler создает handler профиля
func NewUserHandler(logger *slog.Logger, users storage.UserStorage, v *validation.Validator) *UserHandler {
	return &UserHandler{
		now:       time.Now,
		logger:    logger,
		users:     users,
		validator: v,
	}
}

// Profile обрабатывает GET /v1/user/profile
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := h.load(w, r)
	if !ok {
		return
	}
	respond.JSON(w, http.StatusOK, user.API())
}

// UpdateProfile обрабатывает PATCH /v1/user/profile. Меняются только переданные поля.
func (h *UserHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req api.UpdateProfileRequest
	if !decodeBody(w, r, h.logger, &req, false) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respond.Invalid(w, err)
		return
	}

	user, ok := h.load(w, r)
	if !ok {
		return
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Phone != nil {
		user.Phone = req.Phone
		if *req.Phone == "" {
			user.Phone = nil
		}
	}
	user.UpdatedAt = h.now()

	if err := h.users.UpdateUser(r.Context(), user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			respond.Detail(w, http.StatusConflict, "Email already registered")
			return
		}
		serverError(w, r, h.logger, "failed to update user", err)
		return
	}

	h.logger.InfoContext(r.Context(), "profile updated", slog.String("user_id", user.ID))
	respond.JSON(w, http.StatusOK, user.API())
}

// ChangePassword обрабатывает POST /v1/user/change-password
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req api.ChangePasswordRequest
	if !decodeBody(w, r, h.logger, &req, false) {
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respond.Invalid(w, err)
		return
	}

	user, ok := h.load(w, r)
	if !ok {
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		h.logger.WarnContext(r.Context(), "password change rejected: wrong current password", slog.String("user_id", user.ID))
		respond.Detail(w, http.StatusBadRequest, "Current password is incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		serverError(w, r, h.logger, "failed to hash password", err)
		return
	}
	user.PasswordHash = string(hash)
	user.UpdatedAt = h.now()

	if err := h.users.UpdateUser(r.Context(), user); err != nil {
		serverError(w, r, h.logger, "failed to update password", err)
		return
	}

	h.logger.InfoContext(r.Context(), "password changed", slog.String("user_id", user.ID))
	w.WriteHeader(http.StatusNoContent)
}

func (h *UserHandler) load(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	user, err := h.users.GetUserByID(r.Context(), currentUserID(r))
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			respond.Detail(w, http.StatusUnauthorized, "User no longer exists")
			return nil, false
		}
		serverError(w, r, h.logger, "failed to get user", err)
		return nil, false
	}
	return user, true
}
