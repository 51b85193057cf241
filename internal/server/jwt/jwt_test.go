package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_GenerateAndValidate(t *testing.T) {
	svc := NewService("secret", time.Hour)

	token, expiresIn, err := svc.Generate("user-1", "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(3600), expiresIn)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestService_UniqueTokenIDs(t *testing.T) {
	svc := NewService("secret", time.Hour)

	first, _, err := svc.Generate("user-1", "alice")
	require.NoError(t, err)
	second, _, err := svc.Generate("user-1", "alice")
	require.NoError(t, err)

	c1, err := svc.Validate(first)
	require.NoError(t, err)
	c2, err := svc.Validate(second)
	require.NoError(t, err)
	assert.NotEqual(t, c1.ID, c2.ID)
}

func TestService_ValidateRejects(t *testing.T) {
	svc := NewService("secret", time.Hour)
	valid, _, err := svc.Generate("user-1", "alice")
	require.NoError(t, err)

	expiredSvc := NewService("secret", time.Hour)
	expiredSvc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := expiredSvc.Generate("user-1", "alice")
	require.NoError(t, err)

	otherSecret, _, err := NewService("other", time.Hour).Generate("user-1", "alice")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-jwt"},
		{name: "tampered", token: valid + "x"},
		{name: "expired", token: expired},
		{name: "wrong secret", token: otherSecret},
		{name: "alg none", token: unsigned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
