// Package models содержит записи, которые devserver хранит в БД.
package models

import (
	"time"

	"github.com/iudanet/resumeai/pkg/api"
)

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	LastLogin    *time.Time
	Phone        *string
	ID           string // UUID пользователя
	Username     string // уникальный username
	Email        string
	PasswordHash string // bcrypt хеш пароля
	FirstName    string
	LastName     string
}

// API возвращает публичное представление пользователя
func (u *User) API() api.User {
	return api.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// RevokedToken представляет отозванный access token (logout, refresh)
type RevokedToken struct {
	ExpiresAt time.Time // после этого момента запись можно удалить
	TokenID   string    // jti
	UserID    string
}
