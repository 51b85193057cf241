package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/resumeai/internal/validation"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

func (c *Cli) runPassword(ctx context.Context, _ []string) error {
	c.io.Println("=== Change Password ===")
	c.io.Println()

	current, err := c.io.ReadPassword("Current password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	next, err := c.io.ReadPassword("New password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm new password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	if err := validation.ValidatePasswordChange(current, next, confirm); err != nil {
		return err
	}

	err = c.api.ChangePassword(ctx, pkgapi.ChangePasswordRequest{
		CurrentPassword: current,
		NewPassword:     next,
	})
	if err != nil {
		return err
	}

	c.io.Println("✓ Password changed")
	return nil
}
