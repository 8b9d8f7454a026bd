package store

import (
	"testing"

	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWishlistToggleRoundTrip(t *testing.T) {
	wishlist := NewWishlistStore(nil)

	assert.True(t, wishlist.Toggle(headphones))
	assert.True(t, wishlist.IsPresent(headphones.ID))

	assert.False(t, wishlist.Toggle(headphones))
	assert.False(t, wishlist.IsPresent(headphones.ID))
	assert.Empty(t, wishlist.Products())
}

func TestWishlistNoDuplicates(t *testing.T) {
	wishlist := NewWishlistStore(nil)

	wishlist.Toggle(headphones)
	wishlist.Toggle(sneakers)
	wishlist.Toggle(headphones)
	wishlist.Toggle(headphones)

	products := wishlist.Products()
	require.Len(t, products, 2)
	assert.Equal(t, headphones.ID, products[0].ID)
	assert.Equal(t, sneakers.ID, products[1].ID)
}

func TestWishlistRemove(t *testing.T) {
	wishlist := NewWishlistStore(nil)

	wishlist.Toggle(headphones)
	wishlist.Remove(headphones.ID)
	assert.False(t, wishlist.IsPresent(headphones.ID))

	// Removing an absent product is a no-op.
	wishlist.Remove(999)
	assert.Empty(t, wishlist.Products())
}

func TestWishlistPersistsAcrossRestart(t *testing.T) {
	db := storage.NewMemoryStore()

	wishlist := NewWishlistStore(db)
	wishlist.Toggle(headphones)
	wishlist.Toggle(sneakers)

	reloaded := NewWishlistStore(db)
	assert.True(t, reloaded.IsPresent(headphones.ID))
	assert.True(t, reloaded.IsPresent(sneakers.ID))
	assert.Len(t, reloaded.Products(), 2)
}
