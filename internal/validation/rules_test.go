package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
		errMsg   string
	}{
		{name: "valid - lowercase", username: "alice"},
		{name: "valid - with underscore", username: "alice_smith"},
		{name: "valid - all numbers", username: "123456"},
		{name: "valid - max length", username: "a1234567890123456789012345678901"}, // 32 символа
		{name: "invalid - empty", username: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "invalid - too short", username: "ab", wantErr: true, errMsg: "at least 3 characters"},
		{name: "invalid - too long", username: "a12345678901234567890123456789012", wantErr: true, errMsg: "must not exceed 32"},
		{name: "invalid - with dash", username: "alice-smith", wantErr: true, errMsg: "can only contain letters"},
		{name: "invalid - cyrillic", username: "алиса", wantErr: true, errMsg: "can only contain letters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
		errMsg   string
	}{
		{name: "valid - exactly 6 chars", password: "secret"},
		{name: "valid - unicode counted by runes", password: "пароль"},
		{name: "invalid - empty", password: "", wantErr: true, errMsg: "cannot be empty"},
		{name: "invalid - too short", password: "12345", wantErr: true, errMsg: "at least 6 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidatePasswordChange(t *testing.T) {
	tests := []struct {
		name    string
		current string
		next    string
		confirm string
		wantErr error
	}{
		{name: "ok", current: "oldpass", next: "newpass", confirm: "newpass"},
		{name: "missing current", next: "newpass", confirm: "newpass", wantErr: ErrPasswordFieldsRequired},
		{name: "missing confirm", current: "oldpass", next: "newpass", wantErr: ErrPasswordFieldsRequired},
		{name: "too short", current: "oldpass", next: "abc", confirm: "abc", wantErr: ErrPasswordTooShort},
		{name: "mismatch", current: "oldpass", next: "newpass", confirm: "newpas5", wantErr: ErrPasswordMismatch},
		{name: "unchanged", current: "samepass", next: "samepass", confirm: "samepass", wantErr: ErrPasswordUnchanged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePasswordChange(tt.current, tt.next, tt.confirm)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
