// Package cart implements the client-side shopping cart. The cart is never
// persisted server-side: it lives as one JSON-encoded array under a fixed
// key in client-local storage and is rewritten whole on every mutation.
package cart

import (
	"encoding/json"
	"log"

	"github.com/decorhaven/decorhaven-api/models"
)

// StorageKey is the fixed key the cart is persisted under.
const StorageKey = "storefront_cart"

// Item is one line in the cart. The embedded Product is a snapshot taken at
// add time and is not refreshed if the catalog entry changes later.
type Item struct {
	ProductID      string         `json:"productId"`
	Quantity       int            `json:"quantity"`
	Product        models.Product `json:"product"`
	CustomName     *string        `json:"customName,omitempty"`
	CustomModality *string        `json:"customModality,omitempty"`
	SelectedColor  *string        `json:"selectedColor,omitempty"`
}

// Customization carries the optional per-line personalization. Nil means the
// option was not chosen, and nil only matches nil when lines are compared.
type Customization struct {
	CustomName     *string
	CustomModality *string
	SelectedColor  *string
}

// matches reports whether this line is the same cart line as the given
// product + customization 4-tuple. Unset options must match unset, not
// loosely compare equal to empty strings.
func (i Item) matches(productID string, custom Customization) bool {
	return i.ProductID == productID &&
		ptrEqual(i.CustomName, custom.CustomName) &&
		ptrEqual(i.CustomModality, custom.CustomModality) &&
		ptrEqual(i.SelectedColor, custom.SelectedColor)
}

func ptrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Cart manages the cart lines held in a Storage. It is not safe against a
// second process mutating the same storage concurrently; as in the browser,
// the last writer wins.
type Cart struct {
	storage Storage
}

func New(storage Storage) *Cart {
	return &Cart{storage: storage}
}

// Items returns the current cart lines. A corrupted cart resets to empty
// rather than erroring; the storefront must never fail to render over a bad
// cart payload.
func (c *Cart) Items() []Item {
	raw, ok := c.storage.Get(StorageKey)
	if !ok || raw == "" {
		return []Item{}
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("cart: corrupted cart payload, resetting: %v", err)
		c.save([]Item{})
		return []Item{}
	}
	if items == nil {
		return []Item{}
	}
	return items
}

// Add puts quantity units of the product into the cart. If a line with the
// same product and customization already exists its quantity is incremented;
// otherwise a new line is appended with a snapshot of the product. Stock
// limits, if any, are the caller's concern.
func (c *Cart) Add(p models.Product, quantity int, custom Customization) {
	if quantity < 1 {
		quantity = 1
	}
	items := c.Items()
	for i := range items {
		if items[i].matches(p.ID, custom) {
			items[i].Quantity += quantity
			c.save(items)
			return
		}
	}
	items = append(items, Item{
		ProductID:      p.ID,
		Quantity:       quantity,
		Product:        p,
		CustomName:     custom.CustomName,
		CustomModality: custom.CustomModality,
		SelectedColor:  custom.SelectedColor,
	})
	c.save(items)
}

// UpdateQuantity sets the quantity of the matching line. A quantity below 1
// removes the line.
func (c *Cart) UpdateQuantity(productID string, custom Customization, quantity int) {
	if quantity < 1 {
		c.Remove(productID, custom)
		return
	}
	items := c.Items()
	for i := range items {
		if items[i].matches(productID, custom) {
			items[i].Quantity = quantity
			c.save(items)
			return
		}
	}
}

// Remove deletes the matching line.
func (c *Cart) Remove(productID string, custom Customization) {
	items := c.Items()
	for i := range items {
		if items[i].matches(productID, custom) {
			c.save(append(items[:i], items[i+1:]...))
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.save([]Item{})
}

// Count returns the total number of units across all lines.
func (c *Cart) Count() int {
	total := 0
	for _, item := range c.Items() {
		total += item.Quantity
	}
	return total
}

// Subtotal sums the discounted snapshot price of every line.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.Items() {
		price := item.Product.Price * (1 - float64(item.Product.Discount)/100)
		total += price * float64(item.Quantity)
	}
	return total
}

// save rewrites the whole cart as one storage write, which also fires the
// storage-change notification for other consumers.
func (c *Cart) save(items []Item) {
	b, err := json.Marshal(items)
	if err != nil {
		log.Printf("cart: failed to encode cart: %v", err)
		return
	}
	c.storage.Set(StorageKey, string(b))
}
