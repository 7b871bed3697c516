package cli

import (
	"context"
	"time"

	"github.com/iudanet/fitkeeper/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context, _ []string) error {
	c.io.Println("=== Session Status ===")
	c.io.Println()

	session := c.svc.Session(ctx)
	if session.AccessToken == "" {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'fitkeeper login' to authenticate.")
		c.printCartSummary()
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Guard: %s\n", c.svc.Guard().State())
	if session.User != nil {
		c.io.Printf("Username: %s\n", session.User.Username)
	}

	if expiresAt, ok := auth.TokenExpiry(session.AccessToken); ok {
		remaining := time.Until(expiresAt)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
		if remaining > 0 {
			c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
		} else {
			c.io.Println("⚠️  Token has expired. Please login again.")
		}
	}

	if pending := len(c.svc.Profile().Pending()); pending > 0 {
		c.io.Printf("⚠️  %d action(s) waiting for the server\n", pending)
	}

	c.printCartSummary()
	return nil
}

func (c *Cli) printCartSummary() {
	cart := c.svc.Cart()
	if items := cart.Items(); len(items) > 0 {
		c.io.Println()
		c.io.Printf("Cart: %d item(s), total %.2f\n", len(items), cart.Total())
	}
}
