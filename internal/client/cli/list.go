package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/fitkeeper/internal/client/guard"
)

func (c *Cli) runListWorkouts(ctx context.Context, _ []string) error {
	if err := c.requireView(ctx, guard.ViewWorkouts); err != nil {
		return err
	}

	workouts, err := c.svc.API().ListWorkouts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workouts: %w", err)
	}

	c.io.Println("=== Workouts ===")
	c.io.Println()
	if len(workouts) == 0 {
		c.io.Println("No workouts found.")
		return nil
	}

	snap := c.svc.Profile().Snapshot()
	for _, w := range workouts {
		c.io.Printf("%s #%d %s (%d min", mark(snap.HasCompletedWorkout(w.ID)), w.ID, w.Name, w.Duration)
		if w.Difficulty != "" {
			c.io.Printf(", %s", w.Difficulty)
		}
		c.io.Println(")")
	}
	return nil
}

func (c *Cli) runListChallenges(ctx context.Context, _ []string) error {
	if err := c.requireView(ctx, guard.ViewCommunity); err != nil {
		return err
	}

	challenges, err := c.svc.API().ListChallenges(ctx, c.svc.Token(ctx))
	if err != nil {
		return fmt.Errorf("failed to list challenges: %w", err)
	}

	c.io.Println("=== Challenges ===")
	c.io.Println()
	if len(challenges) == 0 {
		c.io.Println("No challenges found.")
		return nil
	}

	snap := c.svc.Profile().Snapshot()
	for _, ch := range challenges {
		joined := snap.HasChallenge(challengeRef(ch.ID, ch.Name))
		c.io.Printf("%s #%d %s (target %d, %d participants)\n",
			mark(joined), ch.ID, ch.Name, ch.Target, ch.ParticipantsCount)
	}
	return nil
}

func (c *Cli) runListFriends(ctx context.Context, _ []string) error {
	if err := c.requireView(ctx, guard.ViewCommunity); err != nil {
		return err
	}

	friends := c.svc.Profile().Snapshot().Friends

	c.io.Println("=== Friends ===")
	c.io.Println()
	if len(friends) == 0 {
		c.io.Println("No friends yet.")
		c.io.Println()
		c.io.Println("Use 'fitkeeper suggestions' to find people.")
		return nil
	}
	for _, f := range friends {
		c.io.Printf("#%d %s %s\n", f.ID, f.Avatar, f.Username)
	}
	return nil
}

func (c *Cli) runSuggestions(ctx context.Context, _ []string) error {
	if err := c.requireView(ctx, guard.ViewCommunity); err != nil {
		return err
	}

	users, err := c.svc.API().Suggestions(ctx, c.svc.Token(ctx))
	if err != nil {
		return fmt.Errorf("failed to load suggestions: %w", err)
	}

	c.io.Println("=== People you may know ===")
	c.io.Println()
	snap := c.svc.Profile().Snapshot()
	shown := 0
	for _, u := range users {
		if snap.HasFriend(u.ID) {
			continue
		}
		c.io.Printf("#%d %s %s\n", u.ID, u.Avatar, u.Username)
		shown++
	}
	if shown == 0 {
		c.io.Println("No suggestions right now.")
	}
	return nil
}

func (c *Cli) runListRecipes(ctx context.Context, _ []string) error {
	if err := c.requireView(ctx, guard.ViewNutrition); err != nil {
		return err
	}

	plans, err := c.svc.API().ListNutrition(ctx)
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}

	c.io.Println("=== Nutrition ===")
	c.io.Println()
	if len(plans) == 0 {
		c.io.Println("No recipes found.")
		return nil
	}

	snap := c.svc.Profile().Snapshot()
	for _, p := range plans {
		c.io.Printf("%s #%d %s (%.0f kcal, P %.0fg, C %.0fg, F %.0fg)\n",
			mark(snap.HasSavedRecipe(p.ID)), p.ID, p.Name, p.Calories, p.Protein, p.Carbs, p.Fats)
	}
	return nil
}

func (c *Cli) runFeed(ctx context.Context, _ []string) error {
	if err := c.requireView(ctx, guard.ViewCommunity); err != nil {
		return err
	}

	posts, err := c.svc.API().ListPosts(ctx, c.svc.Token(ctx))
	if err != nil {
		return fmt.Errorf("failed to load feed: %w", err)
	}

	c.io.Println("=== Community ===")
	c.io.Println()
	if len(posts) == 0 {
		c.io.Println("No posts yet.")
		return nil
	}
	for _, p := range posts {
		author := "someone"
		if p.Author != nil {
			author = p.Author.Username
		}
		c.io.Printf("%s%s: %s (♥ %d)\n", author, formatDate(p.CreatedAt), p.Content, p.Likes)
	}
	return nil
}

func (c *Cli) runListProducts(ctx context.Context, _ []string) error {
	if err := c.requireView(ctx, guard.ViewProducts); err != nil {
		return err
	}

	products, err := c.svc.API().ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}

	c.io.Println("=== Products ===")
	c.io.Println()
	if len(products) == 0 {
		c.io.Println("No products found.")
		return nil
	}
	for _, p := range products {
		c.io.Printf("#%d %s %.2f\n", p.ID, p.Name, p.Price)
	}
	return nil
}
