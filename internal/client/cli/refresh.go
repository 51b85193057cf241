package cli

import "context"

func (c *Cli) runRefresh(ctx context.Context, _ []string) error {
	if err := c.session.Refresh(ctx); err != nil {
		return err
	}
	c.io.Printf("✓ Token refreshed, expires %s\n", formatTime(c.session.ExpiresAt()))
	return nil
}
