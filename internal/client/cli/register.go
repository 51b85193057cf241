package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/resumeai/internal/validation"
	pkgapi "github.com/iudanet/resumeai/pkg/api"
)

func (c *Cli) runRegister(ctx context.Context, _ []string) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if err := validation.ValidateUsername(username); err != nil {
		return fmt.Errorf("invalid username: %w", err)
	}

	email, err := c.io.ReadInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	firstName, err := c.io.ReadInput("First name (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read first name: %w", err)
	}

	lastName, err := c.io.ReadInput("Last name (optional): ")
	if err != nil {
		return fmt.Errorf("failed to read last name: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if err := validation.ValidatePassword(password); err != nil {
		return fmt.Errorf("invalid password: %w", err)
	}

	confirm, err := c.io.ReadPassword("Confirm password: ")
	if err != nil {
		return fmt.Errorf("failed to read password confirmation: %w", err)
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	c.io.Println()
	c.io.Println("Creating account...")

	user, err := c.session.Register(ctx, pkgapi.RegisterRequest{
		Username:  username,
		Email:     email,
		Password:  password,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("Logged in as %s\n", user.Username)
	c.io.Println()
	c.io.Println("Run 'resumeai start' to begin your first interview.")
	return nil
}
