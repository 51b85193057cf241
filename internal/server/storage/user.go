package storage

import (
	"context"
	"time"

	"github.com/iudanet/resumeai/internal/models"
)

// UserStorage определяет интерфейс хранения пользователей
type UserStorage interface {
	// CreateUser сохраняет нового пользователя, занятые username или email дают ErrUserAlreadyExists
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	// UpdateUser перезаписывает профиль и хеш пароля. Email, принадлежащий
	// другому пользователю, дает ErrUserAlreadyExists.
	UpdateUser(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, userID string, lastLogin time.Time) error
}
