// Package validation содержит правила проверки пользовательского ввода
// и обертку над go-playground/validator для DTO запросов.
package validation

import (
	"errors"
	"fmt"
	"regexp"
)

// UsernamePattern определяет допустимый формат username
// Только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
var UsernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

const (
	// MinUsernameLen минимальная длина username
	MinUsernameLen = 3
	// MaxUsernameLen максимальная длина username
	MaxUsernameLen = 32
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
)

// Ошибки диалога смены пароля
var (
	ErrPasswordFieldsRequired = errors.New("all password fields are required")
	ErrPasswordTooShort       = fmt.Errorf("new password must be at least %d characters long", MinPasswordLen)
	ErrPasswordMismatch       = errors.New("new password and confirmation do not match")
	ErrPasswordUnchanged      = errors.New("new password must differ from the current one")
)

// ValidateUsername проверяет, что username соответствует требованиям
// Формат: только латинские буквы (a-z, A-Z), цифры (0-9), нижнее подчеркивание (_)
// Длина: 3-32 символа
func ValidateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) < MinUsernameLen {
		return fmt.Errorf("username must be at least %d characters long", MinUsernameLen)
	}

	if len(username) > MaxUsernameLen {
		return fmt.Errorf("username must not exceed %d characters", MaxUsernameLen)
	}

	if !UsernamePattern.MatchString(username) {
		return fmt.Errorf("username can only contain letters (a-z, A-Z), numbers (0-9), and underscores (_)")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len([]rune(password)) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidatePasswordChange проверяет поля диалога смены пароля.
// Порядок проверок: заполненность, длина, совпадение подтверждения, отличие от текущего.
func ValidatePasswordChange(current, next, confirm string) error {
	if current == "" || next == "" || confirm == "" {
		return ErrPasswordFieldsRequired
	}
	if len([]rune(next)) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	if next != confirm {
		return ErrPasswordMismatch
	}
	if next == current {
		return ErrPasswordUnchanged
	}
	return nil
}
