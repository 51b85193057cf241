package auth

import (
	"context"

	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

//go:generate moq -out api_mock.go . API

// API описывает endpoint'ы /auth/*, которые вызывает Session
type API interface {
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error)
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error)
	Logout(ctx context.Context) error
	RefreshToken(ctx context.Context) (*pkgapi.RefreshTokenResponse, error)
}
