// Package cart keeps the product cart. The cart is independent of the
// session: it survives logout and is persisted for anonymous users too.
package cart

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/iudanet/fitkeeper/internal/client/events"
	"github.com/iudanet/fitkeeper/internal/client/persist"
	"github.com/iudanet/fitkeeper/internal/models"
)

// Cart упорядоченный список товаров
type Cart struct {
	persist *persist.Adapter
	bus     *events.Bus
	logger  *slog.Logger
	state   models.CartState
	mu      sync.Mutex
}

// New создает пустую корзину; сохраненное состояние загружается через Load
func New(p *persist.Adapter, bus *events.Bus, logger *slog.Logger) *Cart {
	return &Cart{
		persist: p,
		bus:     bus,
		logger:  logger,
		state:   models.CartState{Items: []models.Product{}},
	}
}

// Load поднимает сохраненную корзину
func (c *Cart) Load(ctx context.Context) models.CartState {
	// В хранилище корзина лежит JSON-массивом товаров
	items := persist.Load(ctx, c.persist, persist.KeyCart, []models.Product{})
	if items == nil {
		items = []models.Product{}
	}

	c.mu.Lock()
	c.state = models.CartState{Items: items}
	out := c.cloneLocked()
	c.mu.Unlock()

	return out
}

// Add добавляет товар в конец корзины. Один товар может лежать несколько раз.
func (c *Cart) Add(ctx context.Context, p models.Product) error {
	c.mu.Lock()
	c.state.Items = append(c.state.Items, p)
	out := c.cloneLocked()
	err := c.persist.Save(ctx, persist.KeyCart, out.Items)
	if err != nil {
		c.state.Items = c.state.Items[:len(c.state.Items)-1]
	}
	c.mu.Unlock()

	if err != nil {
		return fmt.Errorf("failed to add %q to cart: %w", p.Name, err)
	}

	c.logger.Debug("Product added to cart", "product_id", p.ID, "items", len(out.Items))
	events.Publish(c.bus, events.CartUpdate, out)
	return nil
}

// Clear очищает корзину
func (c *Cart) Clear(ctx context.Context) error {
	c.mu.Lock()
	if err := c.persist.Remove(ctx, persist.KeyCart); err != nil {
		c.mu.Unlock()
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	c.state = models.CartState{Items: []models.Product{}}
	out := c.cloneLocked()
	c.mu.Unlock()

	events.Publish(c.bus, events.CartUpdate, out)
	return nil
}

// Items возвращает копию содержимого корзины
func (c *Cart) Items() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cloneLocked().Items
}

// Total сумма цен товаров
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Total()
}

func (c *Cart) cloneLocked() models.CartState {
	items := make([]models.Product, len(c.state.Items))
	copy(items, c.state.Items)
	return models.CartState{Items: items}
}
