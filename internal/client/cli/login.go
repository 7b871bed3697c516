package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runLogin(ctx context.Context, _ []string) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	// Запрашиваем username
	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.getPassword("Password: ")
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("Authenticating...")

	session, err := c.svc.Login(ctx, username, password)
	if err != nil {
		return err
	}

	snap := c.svc.Profile().Snapshot()

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Username: %s\n", session.User.Username)
	c.io.Printf("Completed workouts: %d, challenges: %d, friends: %d\n",
		len(snap.CompletedWorkouts), len(snap.CommunityChallenges), len(snap.Friends))
	c.io.Println()
	c.io.Println("Your session has been saved.")

	return nil
}
