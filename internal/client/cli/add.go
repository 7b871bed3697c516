package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/fitkeeper/internal/client/guard"
	"github.com/iudanet/fitkeeper/internal/models"
)

func (c *Cli) runCompleteWorkout(ctx context.Context, args []string) error {
	if err := c.requireView(ctx, guard.ViewWorkouts); err != nil {
		return err
	}
	id, name, err := parseID(args, "complete-workout <id> [name]")
	if err != nil {
		return err
	}

	res, err := c.svc.Mutations().CompleteWorkout(ctx, models.CompletedWorkout{
		ID:          id,
		Name:        name,
		CompletedAt: time.Now().UTC(),
	})
	if err != nil {
		return actionError(err)
	}
	c.printResult(res, "Workout is already completed.")
	return nil
}

func (c *Cli) runJoinChallenge(ctx context.Context, args []string) error {
	if err := c.requireView(ctx, guard.ViewCommunity); err != nil {
		return err
	}
	id, name, err := parseID(args, "join-challenge <id> [name]")
	if err != nil {
		return err
	}

	res, err := c.svc.Mutations().JoinChallenge(ctx, c.resolveChallenge(ctx, id, name))
	if err != nil {
		return actionError(err)
	}
	c.printResult(res, "You are already in this challenge.")
	return nil
}

func (c *Cli) runAddFriend(ctx context.Context, args []string) error {
	if err := c.requireView(ctx, guard.ViewCommunity); err != nil {
		return err
	}
	id, username, err := parseID(args, "add-friend <id> [username]")
	if err != nil {
		return err
	}

	res, err := c.svc.Mutations().AddFriend(ctx, models.FriendRef{ID: id, Username: username})
	if err != nil {
		return actionError(err)
	}
	c.printResult(res, "Already friends.")
	return nil
}

func (c *Cli) runSaveRecipe(ctx context.Context, args []string) error {
	if err := c.requireView(ctx, guard.ViewNutrition); err != nil {
		return err
	}
	id, name, err := parseID(args, "save-recipe <id> [name]")
	if err != nil {
		return err
	}

	res, err := c.svc.Mutations().SaveRecipe(ctx, models.SavedRecipe{
		ID:      id,
		Name:    name,
		SavedAt: time.Now().UTC(),
	})
	if err != nil {
		return actionError(err)
	}
	c.printResult(res, "Recipe is already saved.")
	return nil
}

func (c *Cli) runPost(ctx context.Context, args []string) error {
	if err := c.requireView(ctx, guard.ViewCommunity); err != nil {
		return err
	}
	content := strings.TrimSpace(strings.Join(args, " "))
	if content == "" {
		return fmt.Errorf("%w: post <content>", ErrUsage)
	}

	if _, err := c.svc.Mutations().AddPost(ctx, content); err != nil {
		return actionError(err)
	}
	return nil
}

func challengeRef(id int64, name string) models.ChallengeRef {
	return models.ChallengeRef{ID: id, Name: name}
}

// resolveChallenge дополняет ссылку именем из каталога челленджей:
// профиль хранит челленджи по имени, и ссылка только с id с ним не совпадет
func (c *Cli) resolveChallenge(ctx context.Context, id int64, name string) models.ChallengeRef {
	if name != "" {
		return challengeRef(id, name)
	}
	// Без каталога остается ссылка по id; повтор ответом сервера все равно схлопнется
	challenges, err := c.svc.API().ListChallenges(ctx, c.svc.Token(ctx))
	if err != nil {
		return challengeRef(id, name)
	}
	for _, ch := range challenges {
		if ch.ID == id {
			return challengeRef(id, ch.Name)
		}
	}
	return challengeRef(id, name)
}
