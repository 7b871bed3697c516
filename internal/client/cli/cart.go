package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/fitkeeper/internal/client/guard"
)

func (c *Cli) runCart(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return c.printCart()
	}

	switch args[0] {
	case "add":
		return c.runCartAdd(ctx, args[1:])
	case "clear":
		if err := c.svc.Cart().Clear(ctx); err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		c.io.Println("✓ Cart cleared")
		return nil
	default:
		return fmt.Errorf("%w: cart [add <id>|clear]", ErrUsage)
	}
}

func (c *Cli) runCartAdd(ctx context.Context, args []string) error {
	if err := c.requireView(ctx, guard.ViewProducts); err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: cart add <id>", ErrUsage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: cart add <id>: id must be a number", ErrUsage)
	}

	products, err := c.svc.API().ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	for _, p := range products {
		if p.ID != id {
			continue
		}
		if err := c.svc.Cart().Add(ctx, p); err != nil {
			return fmt.Errorf("failed to add to cart: %w", err)
		}
		c.io.Printf("✓ Added %s to cart\n", p.Name)
		return nil
	}
	return fmt.Errorf("product %d not found", id)
}

func (c *Cli) printCart() error {
	cart := c.svc.Cart()
	items := cart.Items()

	c.io.Println("=== Cart ===")
	c.io.Println()
	if len(items) == 0 {
		c.io.Println("Your cart is empty.")
		return nil
	}
	for _, p := range items {
		c.io.Printf("#%d %s %.2f\n", p.ID, p.Name, p.Price)
	}
	c.io.Println()
	c.io.Printf("Total: %.2f\n", cart.Total())
	return nil
}
