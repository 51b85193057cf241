package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context, _ []string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	user, err := c.session.Login(ctx, username, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Welcome back, %s\n", user.DisplayName())
	if exp := c.session.ExpiresAt(); !exp.IsZero() {
		c.io.Printf("Session expires: %s\n", formatTime(exp))
	}
	c.io.Println()
	c.io.Println("Run 'resumeai start' to begin an interview.")
	return nil
}
