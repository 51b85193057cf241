package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iudanet/resumeai/pkg/api"
)

// GetProfile возвращает профиль текущего пользователя
func (c *Client) GetProfile(ctx context.Context) (*api.User, error) {
	var resp api.User
	if err := c.doRequest(ctx, http.MethodGet, "/user/profile", nil, nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// UpdateProfile изменяет заполненные поля профиля
func (c *Client) UpdateProfile(ctx context.Context, req api.UpdateProfileRequest) (*api.User, error) {
	var resp api.User
	if err := c.doRequest(ctx, http.MethodPatch, "/user/profile", nil, req, &resp); err != nil {
		return nil, fmt.Errorf("update profile request failed: %w", err)
	}
	return &resp, nil
}

// ChangePassword меняет пароль пользователя
func (c *Client) ChangePassword(ctx context.Context, req api.ChangePasswordRequest) error {
	if err := c.doRequest(ctx, http.MethodPost, "/user/change-password", nil, req, nil); err != nil {
		return fmt.Errorf("change password request failed: %w", err)
	}
	return nil
}
