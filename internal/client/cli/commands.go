package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/fitkeeper/internal/client/events"
)

type command func(ctx context.Context, args []string) error

func (c *Cli) commands() map[string]command {
	return map[string]command{
		"register":         c.runRegister,
		"login":            c.runLogin,
		"logout":           c.runLogout,
		"status":           c.runStatus,
		"profile":          c.runProfile,
		"open":             c.runOpen,
		"workouts":         c.runListWorkouts,
		"complete-workout": c.runCompleteWorkout,
		"delete-workout":   c.runDeleteWorkout,
		"challenges":       c.runListChallenges,
		"join-challenge":   c.runJoinChallenge,
		"friends":          c.runListFriends,
		"suggestions":      c.runSuggestions,
		"add-friend":       c.runAddFriend,
		"remove-friend":    c.runRemoveFriend,
		"recipes":          c.runListRecipes,
		"save-recipe":      c.runSaveRecipe,
		"delete-recipe":    c.runDeleteRecipe,
		"feed":             c.runFeed,
		"post":             c.runPost,
		"products":         c.runListProducts,
		"cart":             c.runCart,
	}
}

// Run выполняет команду. Уведомления, опубликованные во время выполнения, печатаются.
func (c *Cli) Run(ctx context.Context, name string, args []string) error {
	cmd, ok := c.commands()[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	unsubscribe := events.Subscribe(c.svc.Bus(), events.NoticeTopic, c.printNotice)
	defer unsubscribe()

	return cmd(ctx, args)
}

func (c *Cli) printNotice(n events.Notice) {
	switch n.Level {
	case events.LevelError:
		c.io.Printf("✗ %s\n", n.Message)
	default:
		c.io.Printf("✓ %s\n", n.Message)
	}
}
