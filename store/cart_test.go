package store

import (
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	headphones = models.Product{ID: 1, Name: "Wireless Headphones", Category: "Electronics", Price: 100, Rating: 4.5}
	sneakers   = models.Product{ID: 7, Name: "Casual Sneakers", Category: "Footwear", Price: 1799, Rating: 4.1}
)

func TestCartAddSameProductMergesLines(t *testing.T) {
	cart := NewCartStore(nil)

	cart.AddItem(headphones)
	cart.AddItem(headphones)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, cart.TotalItems())
}

func TestCartTotalsMatchLineQuantities(t *testing.T) {
	cart := NewCartStore(nil)

	cart.AddItem(headphones)
	cart.AddItem(headphones)
	cart.AddItem(headphones)
	cart.AddItem(sneakers)

	assert.Equal(t, 4, cart.TotalItems())
	assert.Equal(t, 3*100.0+1799.0, cart.TotalPrice())
}

func TestCartUpdateQuantity(t *testing.T) {
	cart := NewCartStore(nil)
	cart.AddItem(headphones)

	cart.UpdateQuantity(headphones.ID, 5)
	assert.Equal(t, 5, cart.TotalItems())

	// Zero and negative quantities remove the line instead of storing it.
	cart.UpdateQuantity(headphones.ID, 0)
	assert.Empty(t, cart.Items())

	cart.AddItem(headphones)
	cart.UpdateQuantity(headphones.ID, -3)
	assert.Empty(t, cart.Items())

	// Updating an absent line does nothing.
	cart.UpdateQuantity(999, 4)
	assert.Empty(t, cart.Items())
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := NewCartStore(nil)

	cart.AddItem(headphones)
	cart.UpdateQuantity(headphones.ID, 3)
	assert.Equal(t, 300.0, cart.TotalPrice())
	assert.Equal(t, 3, cart.TotalItems())

	cart.RemoveItem(headphones.ID)
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0, cart.TotalItems())

	// Removing again is a no-op.
	cart.RemoveItem(headphones.ID)

	cart.AddItem(headphones)
	cart.AddItem(sneakers)
	cart.Clear()
	assert.Empty(t, cart.Items())
	assert.Equal(t, 0.0, cart.TotalPrice())
}

func TestCartPersistsAcrossRestart(t *testing.T) {
	db := storage.NewMemoryStore()

	cart := NewCartStore(db)
	cart.AddItem(headphones)
	cart.AddItem(headphones)
	cart.AddItem(sneakers)

	reloaded := NewCartStore(db)
	assert.Equal(t, 3, reloaded.TotalItems())
	assert.Equal(t, cart.TotalPrice(), reloaded.TotalPrice())
}
