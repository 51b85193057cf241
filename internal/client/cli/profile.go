package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

// recentSessions: сколько сессий показывает профиль
const recentSessions = 10

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	if len(args) > 0 {
		switch args[0] {
		case "edit":
			return c.editProfile(ctx)
		default:
			return fmt.Errorf("unknown profile action %q. Usage: resumeai profile [edit]", args[0])
		}
	}

	user, err := c.api.GetProfile(ctx)
	if err != nil {
		return err
	}
	if err := c.session.UpdateUser(ctx, user); err != nil {
		c.logger.WarnContext(ctx, "failed to cache profile", slog.Any("error", err))
	}

	c.io.Println("=== Profile ===")
	c.io.Println()
	c.io.Printf("Username:   %s\n", user.Username)
	c.io.Printf("Email:      %s\n", user.Email)
	c.io.Printf("First name: %s\n", user.FirstName)
	c.io.Printf("Last name:  %s\n", user.LastName)
	c.io.Printf("Phone:      %s\n", deref(user.Phone))
	c.io.Printf("Member since: %s\n", formatTime(user.CreatedAt))
	c.io.Println()

	page, err := c.api.ListSessions(ctx, pkgapi.SessionListParams{Limit: recentSessions})
	if err != nil {
		// профиль уже показан, ошибка списка не прерывает экран
		c.io.Println("Error:", errorText(err))
		return nil
	}

	c.io.Printf("Recent interviews (%d total):\n", page.Total)
	if len(page.Items) == 0 {
		c.io.Println("  none yet")
	}
	for _, s := range page.Items {
		c.io.Printf("  %s  %s  [%s]  %d%%\n", shortID(s.ID), formatTime(s.CreatedAt), statusLabel(s.Status), s.Progress.Percentage)
	}
	c.io.Println()
	c.io.Println("Edit with 'resumeai profile edit', change password with 'resumeai password'.")
	return nil
}

// editProfile спрашивает новые значения полей, пустой ввод оставляет значение
func (c *Cli) editProfile(ctx context.Context) error {
	current := c.session.User()
	if current == nil {
		user, err := c.api.GetProfile(ctx)
		if err != nil {
			return err
		}
		current = user
	}

	c.io.Println("=== Edit Profile ===")
	c.io.Println("Press Enter to keep the current value.")
	c.io.Println()

	var req pkgapi.UpdateProfileRequest
	fields := []struct {
		target  **string
		label   string
		current string
	}{
		{&req.FirstName, "First name", current.FirstName},
		{&req.LastName, "Last name", current.LastName},
		{&req.Email, "Email", current.Email},
		{&req.Phone, "Phone", deref(current.Phone)},
	}

	changed := false
	for _, f := range fields {
		value, err := c.io.ReadInput(fmt.Sprintf("%s [%s]: ", f.label, f.current))
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("failed to read %s: %w", strings.ToLower(f.label), err)
		}
		if value == "" || value == f.current {
			continue
		}
		*f.target = &value
		changed = true
	}

	if !changed {
		c.io.Println("Nothing to update.")
		return nil
	}

	if err := c.validator.Struct(req); err != nil {
		return err
	}

	user, err := c.api.UpdateProfile(ctx, req)
	if err != nil {
		return err
	}
	if err := c.session.UpdateUser(ctx, user); err != nil {
		return err
	}

	c.io.Println("✓ Profile updated")
	return nil
}
