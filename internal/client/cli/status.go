package cli

import (
	"context"
	"fmt"
	"time"
)

func (c *Cli) runStatus(ctx context.Context, _ []string) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if !c.session.IsAuthenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'resumeai login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	if user := c.session.User(); user != nil {
		c.io.Printf("Username: %s\n", user.Username)
		c.io.Printf("Email: %s\n", user.Email)
	}

	if exp := c.session.ExpiresAt(); !exp.IsZero() {
		c.io.Printf("Token expires: %s\n", exp.Format(time.RFC3339))
		c.io.Printf("Time remaining: %s\n", time.Until(exp).Round(time.Second))
	}

	lastSession, err := c.prefs.GetLastSession(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last session: %w", err)
	}
	if lastSession != "" {
		c.io.Println()
		c.io.Printf("Last interview: %s (resume with 'resumeai interview')\n", lastSession)
	}
	return nil
}
