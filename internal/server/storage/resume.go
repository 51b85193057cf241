package storage

import (
	"context"

	"github.com/iudanet/resumeai/internal/models"
)

// ResumeStorage хранит резюме. У сессии не больше одного резюме.
type ResumeStorage interface {
	// SaveResume создает резюме или заменяет существующее с тем же id
	SaveResume(ctx context.Context, resume *models.Resume) error

	// GetResume returns ErrResumeNotFound if resume doesn't exist
	GetResume(ctx context.Context, userID, resumeID string) (*models.Resume, error)

	// GetSessionResume возвращает резюме сессии или ErrResumeNotFound
	GetSessionResume(ctx context.Context, userID, sessionID string) (*models.Resume, error)

	// ListResumes возвращает страницу резюме (новые первыми) и общее количество
	ListResumes(ctx context.Context, userID string, limit, offset int) ([]*models.Resume, int, error)
}

// Storage объединяет все хранилища devserver
type Storage interface {
	UserStorage
	TokenStorage
	SessionStorage
	ResumeStorage
	Close() error
}
