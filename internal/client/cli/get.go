package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/fitkeeper/internal/client/guard"
)

func (c *Cli) runProfile(ctx context.Context, _ []string) error {
	if err := c.requireView(ctx, guard.ViewProfile); err != nil {
		return err
	}

	snap := c.svc.Profile().Snapshot()

	c.io.Println("=== Profile ===")
	c.io.Println()
	c.io.Printf("%s %s\n", snap.Avatar, snap.Username)
	if snap.Email != "" {
		c.io.Printf("Email: %s\n", snap.Email)
	}
	c.io.Println()

	c.io.Printf("Completed workouts (%d):\n", len(snap.CompletedWorkoutDetails))
	for _, w := range snap.CompletedWorkoutDetails {
		c.io.Printf("  #%d %s%s\n", w.ID, w.Name, formatDate(w.CompletedAt))
	}

	c.io.Printf("Challenges (%d):\n", len(snap.CommunityChallenges))
	for _, ch := range snap.CommunityChallenges {
		if ch.Target > 0 {
			c.io.Printf("  %s (%d/%d)\n", ch.Name, ch.Progress, ch.Target)
		} else {
			c.io.Printf("  %s\n", ch.Name)
		}
	}

	c.io.Printf("Friends (%d):\n", len(snap.Friends))
	for _, f := range snap.Friends {
		c.io.Printf("  #%d %s\n", f.ID, f.Username)
	}

	c.io.Printf("Saved recipes (%d):\n", len(snap.SavedRecipes))
	for _, r := range snap.SavedRecipes {
		c.io.Printf("  #%d %s\n", r.ID, r.Name)
	}

	c.io.Printf("Posts (%d):\n", len(snap.Posts))
	for _, p := range snap.Posts {
		pending := ""
		if p.Provisional {
			pending = " (sending)"
		}
		c.io.Printf("  %s%s%s\n", p.Content, formatDate(p.CreatedAt), pending)
	}

	return nil
}

func (c *Cli) runOpen(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: open <view>", ErrUsage)
	}

	decision := c.svc.Guard().Check(ctx, args[0])
	switch decision.Action {
	case guard.Render:
		c.io.Printf("render %s\n", args[0])
	default:
		c.io.Printf("%s to %s\n", decision.Action, decision.Location)
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return " · " + t.Format(time.DateOnly)
}
