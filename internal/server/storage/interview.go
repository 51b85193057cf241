package storage

import (
	"context"

	"github.com/iudanet/resumeai/internal/models"
	"github.com/iudanet/resumeai/pkg/api"
)

// SessionFilter задает выборку сессий пользователя
type SessionFilter struct {
	Status api.SessionStatus // пустой статус не фильтрует
	Limit  int
	Offset int
}

// SessionStorage хранит интервью-сессии и их сообщения.
// Все методы ограничены владельцем: чужая сессия неотличима от отсутствующей.
type SessionStorage interface {
	// CreateSession сохраняет сессию вместе с первыми сообщениями
	CreateSession(ctx context.Context, session *models.Session, messages ...*models.Message) error

	// GetSession returns ErrSessionNotFound if session doesn't exist
	GetSession(ctx context.Context, userID, sessionID string) (*models.Session, error)

	// ListSessions возвращает страницу сессий (новые первыми) и общее количество
	ListSessions(ctx context.Context, userID string, filter SessionFilter) ([]*models.Session, int, error)

	// UpdateSession сохраняет статус, прогресс и ответы, добавляя сообщения
	// в той же транзакции
	UpdateSession(ctx context.Context, session *models.Session, messages ...*models.Message) error

	// DeleteSession удаляет сессию, ее сообщения и резюме
	DeleteSession(ctx context.Context, userID, sessionID string) error

	// ListMessages возвращает сообщения сессии в порядке создания
	ListMessages(ctx context.Context, sessionID string) ([]*models.Message, error)
}
