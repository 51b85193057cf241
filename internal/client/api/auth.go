package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/resumeai/pkg/api"
)

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/login", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Register регистрирует нового пользователя, ответ совпадает с Login
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/register", nil, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Logout отзывает текущий токен на сервере
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/auth/logout", nil, nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// RefreshToken получает новый токен по текущему
func (c *Client) RefreshToken(ctx context.Context) (*api.RefreshTokenResponse, error) {
	var resp api.RefreshTokenResponse
	err := c.doRequest(ctx, http.MethodPost, "/auth/refresh", nil, nil, &resp)
	if err != nil {
		return nil, fmt.Errorf("refresh token request failed: %w", err)
	}
	return &resp, nil
}
