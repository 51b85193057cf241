package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/resumeai/internal/client/storage"
	"github.com/iudanet/resumeai/pkg/api"
)

var (
	keyToken  = []byte("auth_token")
	keyExpiry = []byte("token_expiry")
	keyUser   = []byte("user_data")
)

// SaveAuth stores token, expiry and user in one transaction
func (s *Storage) SaveAuth(ctx context.Context, auth *storage.AuthData) error {
	if auth == nil || auth.Token == "" {
		return fmt.Errorf("auth token cannot be empty")
	}

	var userData []byte
	if auth.User != nil {
		var err error
		userData, err = json.Marshal(auth.User)
		if err != nil {
			return fmt.Errorf("failed to marshal user data: %w", err)
		}
	}

	return s.update(bucketAuth, func(b *bbolt.Bucket) error {
		if err := b.Put(keyToken, []byte(auth.Token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		if err := putExpiry(b, auth.ExpiresAt); err != nil {
			return err
		}
		if userData == nil {
			return b.Delete(keyUser)
		}
		if err := b.Put(keyUser, userData); err != nil {
			return fmt.Errorf("failed to save user data: %w", err)
		}
		return nil
	})
}

// GetAuth retrieves stored authentication data
func (s *Storage) GetAuth(ctx context.Context) (*storage.AuthData, error) {
	var auth *storage.AuthData

	err := s.view(bucketAuth, func(b *bbolt.Bucket) error {
		token := b.Get(keyToken)
		if token == nil {
			return storage.ErrAuthNotFound
		}

		auth = &storage.AuthData{Token: string(token)}

		expiresAt, err := readExpiry(b)
		if err != nil {
			return err
		}
		auth.ExpiresAt = expiresAt

		if data := b.Get(keyUser); data != nil {
			auth.User = &api.User{}
			if err := json.Unmarshal(data, auth.User); err != nil {
				return fmt.Errorf("failed to unmarshal user data: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return auth, nil
}

// SetToken stores token with absolute expiry now+ttl
func (s *Storage) SetToken(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return fmt.Errorf("auth token cannot be empty")
	}
	expiresAt := s.now().Add(ttl).UnixMilli()

	return s.update(bucketAuth, func(b *bbolt.Bucket) error {
		if err := b.Put(keyToken, []byte(token)); err != nil {
			return fmt.Errorf("failed to save token: %w", err)
		}
		return putExpiry(b, expiresAt)
	})
}

// GetToken returns stored token or empty string
func (s *Storage) GetToken(ctx context.Context) (string, error) {
	var token string
	err := s.view(bucketAuth, func(b *bbolt.Bucket) error {
		token = string(b.Get(keyToken))
		return nil
	})
	return token, err
}

// SaveUser replaces cached user
func (s *Storage) SaveUser(ctx context.Context, user *api.User) error {
	if user == nil {
		return fmt.Errorf("user cannot be nil")
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user data: %w", err)
	}

	return s.update(bucketAuth, func(b *bbolt.Bucket) error {
		if err := b.Put(keyUser, data); err != nil {
			return fmt.Errorf("failed to save user data: %w", err)
		}
		return nil
	})
}

// GetUser returns cached user
func (s *Storage) GetUser(ctx context.Context) (*api.User, error) {
	var user *api.User
	err := s.view(bucketAuth, func(b *bbolt.Bucket) error {
		data := b.Get(keyUser)
		if data == nil {
			return storage.ErrAuthNotFound
		}
		user = &api.User{}
		if err := json.Unmarshal(data, user); err != nil {
			return fmt.Errorf("failed to unmarshal user data: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ClearToken removes token, expiry and user (logout)
func (s *Storage) ClearToken(ctx context.Context) error {
	return s.update(bucketAuth, func(b *bbolt.Bucket) error {
		// Delete на отсутствующем ключе не возвращает ошибку
		for _, key := range [][]byte{keyToken, keyExpiry, keyUser} {
			if err := b.Delete(key); err != nil {
				return fmt.Errorf("failed to delete %s: %w", key, err)
			}
		}
		return nil
	})
}

// IsExpired reports whether expiry is missing or already passed
func (s *Storage) IsExpired(ctx context.Context) (bool, error) {
	var expiresAt int64
	err := s.view(bucketAuth, func(b *bbolt.Bucket) error {
		var err error
		expiresAt, err = readExpiry(b)
		return err
	})
	if err != nil {
		return true, err
	}

	auth := storage.AuthData{ExpiresAt: expiresAt}
	return auth.Expired(s.now()), nil
}

// IsAuthenticated checks if valid authentication exists
func (s *Storage) IsAuthenticated(ctx context.Context) (bool, error) {
	auth, err := s.GetAuth(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrAuthNotFound) {
			return false, nil
		}
		return false, err
	}

	return !auth.Expired(s.now()), nil
}

func putExpiry(b *bbolt.Bucket, expiresAt int64) error {
	if expiresAt == 0 {
		return b.Delete(keyExpiry)
	}
	if err := b.Put(keyExpiry, []byte(strconv.FormatInt(expiresAt, 10))); err != nil {
		return fmt.Errorf("failed to save token expiry: %w", err)
	}
	return nil
}

// readExpiry читает срок в миллисекундах, 0 если ключа нет
func readExpiry(b *bbolt.Bucket) (int64, error) {
	raw := b.Get(keyExpiry)
	if raw == nil {
		return 0, nil
	}
	expiresAt, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token expiry %q: %w", raw, err)
	}
	return expiresAt, nil
}
