package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/resumeai/internal/models"
	"github.com/iudanet/resumeai/internal/server/storage"
)

func setupTestStorage(t *testing.T) *Storage {
	t.Helper()

	// Используем in-memory database для тестов
	s, err := New(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func newTestUser(username string) *models.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func createTestUser(t *testing.T, s *Storage) *models.User {
	t.Helper()
	user := newTestUser("user_" + uuid.New().String()[:8])
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func TestUserStorage_CreateUser(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	phone := "+7 900 000-00-00"
	withPhone := newTestUser("with_phone")
	withPhone.Phone = &phone
	withPhone.FirstName = "Ivan"

	tests := []struct {
		user *models.User
		name string
	}{
		{name: "create new user successfully", user: newTestUser("testuser1")},
		{name: "create user with optional fields", user: withPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NoError(t, s.CreateUser(ctx, tt.user))

			// Verify user was created
			retrieved, err := s.GetUserByID(ctx, tt.user.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.user.Username, retrieved.Username)
			assert.Equal(t, tt.user.Email, retrieved.Email)
			assert.Equal(t, tt.user.PasswordHash, retrieved.PasswordHash)
			assert.Equal(t, tt.user.FirstName, retrieved.FirstName)
			assert.Equal(t, tt.user.Phone, retrieved.Phone)
			assert.Nil(t, retrieved.LastLogin)
		})
	}
}

func TestUserStorage_CreateUser_Duplicate(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	require.NoError(t, s.CreateUser(ctx, newTestUser("duplicate")))

	sameUsername := newTestUser("duplicate")
	sameUsername.Email = "other@example.com"
	assert.ErrorIs(t, s.CreateUser(ctx, sameUsername), storage.ErrUserAlreadyExists)

	sameEmail := newTestUser("another")
	sameEmail.Email = "duplicate@example.com"
	assert.ErrorIs(t, s.CreateUser(ctx, sameEmail), storage.ErrUserAlreadyExists)
}

func TestUserStorage_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	_, err := s.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	_, err = s.GetUserByID(ctx, uuid.New().String())
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestUserStorage_UpdateUser(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	user := createTestUser(t, s)

	phone := "+1 555 0100"
	user.FirstName = "Anna"
	user.LastName = "Smith"
	user.Email = "anna@example.com"
	user.Phone = &phone
	user.PasswordHash = "new-hash"
	user.UpdatedAt = time.Now().UTC()
	require.NoError(t, s.UpdateUser(ctx, user))

	retrieved, err := s.GetUserByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, "Anna", retrieved.FirstName)
	assert.Equal(t, "Smith", retrieved.LastName)
	assert.Equal(t, "anna@example.com", retrieved.Email)
	assert.Equal(t, "new-hash", retrieved.PasswordHash)
	require.NotNil(t, retrieved.Phone)
	assert.Equal(t, phone, *retrieved.Phone)

	missing := newTestUser("missing")
	assert.ErrorIs(t, s.UpdateUser(ctx, missing), storage.ErrUserNotFound)
}

func TestUserStorage_UpdateUser_EmailTaken(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	first := createTestUser(t, s)
	second := createTestUser(t, s)

	second.Email = first.Email
	assert.ErrorIs(t, s.UpdateUser(ctx, second), storage.ErrUserAlreadyExists)
}

func TestUserStorage_UpdateLastLogin(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	user := createTestUser(t, s)

	loginTime := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, s.UpdateLastLogin(ctx, user.ID, loginTime))

	retrieved, err := s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, retrieved.LastLogin)
	assert.True(t, loginTime.Equal(*retrieved.LastLogin))

	assert.ErrorIs(t, s.UpdateLastLogin(ctx, uuid.New().String(), loginTime), storage.ErrUserNotFound)
}
