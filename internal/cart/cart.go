// Package cart accumulates prospective request lines ahead of checkout.
// The cart is deliberately independent of the session: it is persisted
// under its own storage key and survives a logout/login cycle, matching
// the single-workstation deployment this client targets.
package cart

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"inventory-requisition-client/internal/models"
	"inventory-requisition-client/internal/storage"
)

// Cart holds at most one line per item id, in insertion order. Every
// mutation persists the whole cart synchronously.
type Cart struct {
	mu    sync.Mutex
	store storage.Store
	lines []models.CartLine
}

func New(store storage.Store) *Cart {
	return &Cart{store: store}
}

// Load restores the persisted cart. Missing or corrupt state reads as an
// empty cart, never an error.
func (c *Cart) Load(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok, _ := c.store.Get(ctx, storage.KeyCart)
	if !ok {
		return
	}
	var lines []models.CartLine
	if err := json.Unmarshal([]byte(raw), &lines); err != nil {
		log.Printf("Error loading cart from storage: %v", err)
		return
	}
	c.lines = lines
}

// Add appends a new line, or increments the quantity when a line for the
// same item id already exists. The quantity-vs-available-stock bound is a
// caller responsibility; the cart enforces only positivity and unique ids.
func (c *Cart) Add(ctx context.Context, item models.ItemRef, quantity int, unit string) {
	if quantity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity += quantity
			c.persist(ctx)
			return
		}
	}
	c.lines = append(c.lines, models.CartLine{Item: item, Quantity: quantity, Unit: unit})
	c.persist(ctx)
}

// Remove deletes the line for the item id; absent ids are a no-op.
func (c *Cart) Remove(ctx context.Context, itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.lines[:0]
	for _, line := range c.lines {
		if line.Item.ID != itemID {
			kept = append(kept, line)
		}
	}
	c.lines = kept
	c.persist(ctx)
}

// UpdateQuantity replaces a line's quantity. A quantity of zero or less
// removes the line.
func (c *Cart) UpdateQuantity(ctx context.Context, itemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(ctx, itemID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines[i].Quantity = quantity
			c.persist(ctx)
			return
		}
	}
}

// Clear empties the cart and erases its persisted state.
func (c *Cart) Clear(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	if err := c.store.Delete(ctx, storage.KeyCart); err != nil {
		log.Printf("Error clearing cart storage: %v", err)
	}
}

// Lines returns a copy of the current lines in insertion order.
func (c *Cart) Lines() []models.CartLine {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Total is the sum of all line quantities, used for the badge count.
func (c *Cart) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Len reports the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.lines)
}

func (c *Cart) persist(ctx context.Context) {
	raw, err := json.Marshal(c.lines)
	if err == nil {
		err = c.store.Set(ctx, storage.KeyCart, string(raw))
	}
	if err != nil {
		log.Printf("Error saving cart to storage: %v", err)
	}
}
