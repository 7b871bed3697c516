package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/fitkeeper/internal/client/auth"
)

func (c *Cli) runRegister(ctx context.Context, _ []string) error {
	c.io.Println("=== Registration ===")
	c.io.Println()

	var in auth.RegisterInput
	var err error

	if in.Username, err = c.io.ReadInput("Username: "); err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}
	if in.Email, err = c.io.ReadInput("Email: "); err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}
	if in.Bio, err = c.io.ReadInput("Bio: "); err != nil {
		return fmt.Errorf("failed to read bio: %w", err)
	}
	if in.Avatar, err = c.io.ReadInput("Avatar (emoji, empty for " + auth.DefaultAvatar + "): "); err != nil {
		return fmt.Errorf("failed to read avatar: %w", err)
	}
	if in.Password, err = c.getPassword("Password: "); err != nil {
		return err
	}
	// Подтверждение нужно только при интерактивном вводе
	in.ConfirmPassword = in.Password
	if c.interactivePassword() {
		if in.ConfirmPassword, err = c.io.ReadPassword("Confirm password: "); err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
	}

	c.io.Println()
	c.io.Println("Registering user...")

	session, err := c.svc.Register(ctx, in)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Registration successful!")
	c.io.Printf("User ID: %d\n", session.User.ID)
	c.io.Printf("Username: %s\n", session.User.Username)
	c.io.Println()
	c.io.Println("You are signed in.")

	return nil
}
