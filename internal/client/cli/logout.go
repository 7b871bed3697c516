package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogout(ctx context.Context, _ []string) error {
	c.io.Println("=== Logout ===")

	if err := c.svc.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Your local session and profile have been deleted. The cart was kept.")

	return nil
}
