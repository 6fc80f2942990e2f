package store

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

var ErrInvalidQuantity = errors.New("quantity must be at least 1")

type CartEntry struct {
	ProductId string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart maps product id to quantity. Entries with a zero quantity are never kept.
type Cart struct {
	Items map[string]int `json:"items"`
}

// PriceLookup returns the unit price for a product, or false when the
// product is no longer in the catalog.
type PriceLookup func(productId string) (decimal.Decimal, bool)

func NewCart() Cart {
	return Cart{Items: make(map[string]int)}
}

// Add increments the entry for productId, creating it when absent.
func (c *Cart) Add(productId string, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}
	if c.Items == nil {
		c.Items = make(map[string]int)
	}
	c.Items[productId] += qty
	return nil
}

// Set replaces the quantity. qty <= 0 removes the entry.
func (c *Cart) Set(productId string, qty int) {
	if qty <= 0 {
		c.Remove(productId)
		return
	}
	if c.Items == nil {
		c.Items = make(map[string]int)
	}
	c.Items[productId] = qty
}

func (c *Cart) Remove(productId string) {
	delete(c.Items, productId)
}

func (c *Cart) Clear() {
	c.Items = make(map[string]int)
}

func (c Cart) Quantity(productId string) int {
	return c.Items[productId]
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Count is the number of units across all entries.
func (c Cart) Count() int {
	n := 0
	for _, qty := range c.Items {
		n += qty
	}
	return n
}

// Entries lists the cart sorted by product id so output is stable.
func (c Cart) Entries() []CartEntry {
	entries := make([]CartEntry, 0, len(c.Items))
	for id, qty := range c.Items {
		if qty <= 0 {
			continue
		}
		entries = append(entries, CartEntry{ProductId: id, Quantity: qty})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ProductId < entries[j].ProductId })
	return entries
}

// Total sums price * quantity over entries whose product still exists.
func (c Cart) Total(price PriceLookup) decimal.Decimal {
	total := decimal.Zero
	for id, qty := range c.Items {
		if qty <= 0 {
			continue
		}
		unit, ok := price(id)
		if !ok {
			continue
		}
		total = total.Add(unit.Mul(decimal.NewFromInt(int64(qty))))
	}
	return total
}

func (c Cart) Clone() Cart {
	items := make(map[string]int, len(c.Items))
	for id, qty := range c.Items {
		items[id] = qty
	}
	return Cart{Items: items}
}
