// Package cart implements the client-side shopping cart. The cart
// stores only item IDs and quantities; names and prices are resolved
// against the live catalog when the cart is read, so a price change or
// removal on the server is reflected immediately.
package cart

import (
	"context"
	"sort"
	"sync"

	"github.com/SIDDHI-1105/canteen-connect-now-09/models"
)

// CatalogSource resolves menu items by ID. The HTTP client satisfies
// this through a thin adapter; tests use a map-backed fake.
type CatalogSource interface {
	ItemByID(ctx context.Context, id int) (*models.MenuItem, error)
}

// Line is one resolved cart entry. A line is stale when its item no
// longer resolves or is no longer available; stale lines contribute
// nothing to the total but stay visible so the user can drop them.
type Line struct {
	ItemID   int
	Name     string
	Price    float64
	Quantity int
	Subtotal float64
	Stale    bool
}

// Cart accumulates menu item quantities.
type Cart struct {
	mu         sync.Mutex
	quantities map[int]int
	names      map[int]string
}

func New() *Cart {
	return &Cart{
		quantities: make(map[int]int),
		names:      make(map[int]string),
	}
}

// Add increments the quantity for an item. The name is remembered so
// stale lines can still be labelled.
func (c *Cart) Add(item *models.MenuItem, quantity int) {
	if item == nil || quantity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities[item.ID] += quantity
	c.names[item.ID] = item.Name
}

// Remove decrements the quantity for an item, dropping the line when it
// reaches zero.
func (c *Cart) Remove(itemID int, quantity int) {
	if quantity <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	remaining := c.quantities[itemID] - quantity
	if remaining <= 0 {
		delete(c.quantities, itemID)
		delete(c.names, itemID)
		return
	}
	c.quantities[itemID] = remaining
}

// Drop removes a line entirely regardless of quantity.
func (c *Cart) Drop(itemID int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.quantities, itemID)
	delete(c.names, itemID)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.quantities = make(map[int]int)
	c.names = make(map[int]string)
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.quantities)
}

// Lines resolves every entry against the catalog, ordered by item ID.
func (c *Cart) Lines(ctx context.Context, catalog CatalogSource) ([]Line, error) {
	c.mu.Lock()
	ids := make([]int, 0, len(c.quantities))
	for id := range c.quantities {
		ids = append(ids, id)
	}
	quantities := make(map[int]int, len(c.quantities))
	names := make(map[int]string, len(c.names))
	for id, qty := range c.quantities {
		quantities[id] = qty
		names[id] = c.names[id]
	}
	c.mu.Unlock()

	sort.Ints(ids)

	lines := make([]Line, 0, len(ids))
	for _, id := range ids {
		line := Line{
			ItemID:   id,
			Name:     names[id],
			Quantity: quantities[id],
		}

		item, err := catalog.ItemByID(ctx, id)
		switch {
		case err != nil || item == nil || !item.IsAvailable:
			line.Stale = true
		default:
			line.Name = item.Name
			line.Price = item.Price
			line.Subtotal = item.Price * float64(line.Quantity)
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// Total sums the fresh lines' subtotals.
func (c *Cart) Total(ctx context.Context, catalog CatalogSource) (float64, error) {
	lines, err := c.Lines(ctx, catalog)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, line := range lines {
		if !line.Stale {
			total += line.Subtotal
		}
	}
	return total, nil
}
