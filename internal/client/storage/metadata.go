package storage

import (
	"context"

	"github.com/iudanet/resumeai/pkg/api"
)

// MetadataStorage хранит локальные настройки клиента между запусками
type MetadataStorage interface {
	// SaveLastSession запоминает последнюю открытую сессию интервью
	SaveLastSession(ctx context.Context, sessionID string) error

	// GetLastSession возвращает последнюю сессию, пустую строку если ее нет
	GetLastSession(ctx context.Context) (string, error)

	// SaveLanguage запоминает выбранный язык интервью
	SaveLanguage(ctx context.Context, lang api.Language) error

	// GetLanguage возвращает сохраненный язык, пустую строку если выбора не было
	GetLanguage(ctx context.Context) (api.Language, error)
}
