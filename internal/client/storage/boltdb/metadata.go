package boltdb

import (
	"context"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/resumeai/pkg/api"
)

var (
	keyLastSession = []byte("last_session_id")
	keyLanguage    = []byte("language")
)

// SaveLastSession saves id of the last opened interview session
func (s *Storage) SaveLastSession(ctx context.Context, sessionID string) error {
	return s.putMeta(keyLastSession, sessionID)
}

// GetLastSession returns id of the last opened interview session
// Returns empty string if nothing was saved
func (s *Storage) GetLastSession(ctx context.Context) (string, error) {
	return s.getMeta(keyLastSession)
}

// SaveLanguage saves preferred interview language
func (s *Storage) SaveLanguage(ctx context.Context, lang api.Language) error {
	return s.putMeta(keyLanguage, string(lang))
}

// GetLanguage returns preferred interview language
func (s *Storage) GetLanguage(ctx context.Context) (api.Language, error) {
	v, err := s.getMeta(keyLanguage)
	return api.Language(v), err
}

func (s *Storage) putMeta(key []byte, value string) error {
	return s.update(bucketMetadata, func(b *bbolt.Bucket) error {
		// Пустое значение удаляет ключ
		if value == "" {
			return b.Delete(key)
		}
		if err := b.Put(key, []byte(value)); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
		return nil
	})
}

func (s *Storage) getMeta(key []byte) (string, error) {
	var value string
	err := s.view(bucketMetadata, func(b *bbolt.Bucket) error {
		value = string(b.Get(key))
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, nil
}
