package cart

import (
	"testing"

	"github.com/decorhaven/decorhaven-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func frame() models.Product {
	return models.Product{
		ID:       "frame-1",
		Name:     "Engraved Oak Photo Frame",
		Price:    40,
		Discount: 10,
		Stock:    25,
	}
}

func vase() models.Product {
	return models.Product{ID: "vase-1", Name: "Ceramic Vase Set", Price: 49}
}

func newTestCart() *Cart {
	return New(NewMemoryStorage())
}

func TestAddMergesIdenticalLines(t *testing.T) {
	c := newTestCart()

	c.Add(frame(), 1, Customization{})
	c.Add(frame(), 1, Customization{})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestAddWithDifferentCustomNameAppendsNewLine(t *testing.T) {
	c := newTestCart()

	c.Add(frame(), 1, Customization{CustomName: strPtr("Alice")})
	c.Add(frame(), 1, Customization{CustomName: strPtr("Bob")})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Alice", *items[0].CustomName)
	assert.Equal(t, "Bob", *items[1].CustomName)
}

func TestUnsetCustomizationOnlyMatchesUnset(t *testing.T) {
	c := newTestCart()

	c.Add(frame(), 1, Customization{})
	c.Add(frame(), 1, Customization{CustomName: strPtr("")})

	// nil and empty-string personalization are different lines.
	assert.Len(t, c.Items(), 2)
}

func TestMergeComparesWholeTuple(t *testing.T) {
	c := newTestCart()
	custom := Customization{
		CustomName:     strPtr("Alice"),
		CustomModality: strPtr("engraved"),
		SelectedColor:  strPtr("walnut"),
	}

	c.Add(frame(), 1, custom)
	c.Add(frame(), 2, custom)
	c.Add(frame(), 1, Customization{
		CustomName:     strPtr("Alice"),
		CustomModality: strPtr("engraved"),
		SelectedColor:  strPtr("natural"),
	})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 3, items[0].Quantity)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestSnapshotIsNotRefreshed(t *testing.T) {
	c := newTestCart()
	p := frame()

	c.Add(p, 1, Customization{})
	p.Price = 99
	c.Add(p, 1, Customization{})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 40.0, items[0].Product.Price)
}

func TestCorruptedCartResetsToEmpty(t *testing.T) {
	storage := NewMemoryStorage()
	storage.Set(StorageKey, "{not a cart")
	c := New(storage)

	assert.Empty(t, c.Items())

	raw, ok := storage.Get(StorageKey)
	require.True(t, ok)
	assert.Equal(t, "[]", raw)
}

func TestUpdateQuantity(t *testing.T) {
	c := newTestCart()
	c.Add(frame(), 1, Customization{})

	c.UpdateQuantity("frame-1", Customization{}, 5)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 5, c.Items()[0].Quantity)

	c.UpdateQuantity("frame-1", Customization{}, 0)
	assert.Empty(t, c.Items())
}

func TestRemoveMatchesCustomization(t *testing.T) {
	c := newTestCart()
	c.Add(frame(), 1, Customization{CustomName: strPtr("Alice")})
	c.Add(frame(), 1, Customization{CustomName: strPtr("Bob")})

	c.Remove("frame-1", Customization{CustomName: strPtr("Alice")})

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Bob", *items[0].CustomName)
}

func TestClear(t *testing.T) {
	c := newTestCart()
	c.Add(frame(), 2, Customization{})
	c.Add(vase(), 1, Customization{})

	c.Clear()

	assert.Empty(t, c.Items())
}

func TestCountAndSubtotal(t *testing.T) {
	c := newTestCart()
	c.Add(frame(), 2, Customization{}) // 40 * 0.9 * 2 = 72
	c.Add(vase(), 1, Customization{})  // 49

	assert.Equal(t, 3, c.Count())
	assert.InDelta(t, 121.0, c.Subtotal(), 0.001)
}

func TestMutationNotifiesSubscribers(t *testing.T) {
	storage := NewMemoryStorage()
	var notified []string
	storage.Subscribe(func(key string) { notified = append(notified, key) })

	c := New(storage)
	c.Add(frame(), 1, Customization{})
	c.Clear()

	require.Len(t, notified, 2)
	assert.Equal(t, StorageKey, notified[0])
}

func TestFileStoragePersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	storage, err := NewFileStorage(dir)
	require.NoError(t, err)
	New(storage).Add(frame(), 2, Customization{CustomName: strPtr("Alice")})

	reopened, err := NewFileStorage(dir)
	require.NoError(t, err)
	items := New(reopened).Items()

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Alice", *items[0].CustomName)
	assert.Equal(t, "Engraved Oak Photo Frame", items[0].Product.Name)
}
