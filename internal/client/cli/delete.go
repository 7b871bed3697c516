package cli

import (
	"context"

	"github.com/iudanet/fitkeeper/internal/client/guard"
)

func (c *Cli) runDeleteWorkout(ctx context.Context, args []string) error {
	if err := c.requireView(ctx, guard.ViewWorkouts); err != nil {
		return err
	}
	id, _, err := parseID(args, "delete-workout <id>")
	if err != nil {
		return err
	}

	res, err := c.svc.Mutations().DeleteWorkout(ctx, id)
	if err != nil {
		return actionError(err)
	}
	c.printResult(res, "Workout is not in your completed list.")
	return nil
}

func (c *Cli) runRemoveFriend(ctx context.Context, args []string) error {
	if err := c.requireView(ctx, guard.ViewCommunity); err != nil {
		return err
	}
	id, _, err := parseID(args, "remove-friend <id>")
	if err != nil {
		return err
	}

	res, err := c.svc.Mutations().RemoveFriend(ctx, id)
	if err != nil {
		return actionError(err)
	}
	c.printResult(res, "Not in your friends list.")
	return nil
}

func (c *Cli) runDeleteRecipe(ctx context.Context, args []string) error {
	if err := c.requireView(ctx, guard.ViewNutrition); err != nil {
		return err
	}
	id, _, err := parseID(args, "delete-recipe <id>")
	if err != nil {
		return err
	}

	res, err := c.svc.Mutations().DeleteRecipe(ctx, id)
	if err != nil {
		return actionError(err)
	}
	c.printResult(res, "Recipe is not saved.")
	return nil
}
