package store

import (
	"encoding/json"
	"log"
	"sort"
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

const keyWishlist = "wishlist"

// WishlistStore owns the set of saved products, unique by product id.
// Pass a nil storage.Store for a memory-only wishlist.
type WishlistStore struct {
	mu       sync.Mutex
	db       storage.Store
	products map[uint]models.Product
}

// NewWishlistStore loads any persisted wishlist from db. db may be nil.
func NewWishlistStore(db storage.Store) *WishlistStore {
	s := &WishlistStore{db: db, products: make(map[uint]models.Product)}
	if db == nil {
		return s
	}
	if raw, ok, err := db.Get(keyWishlist); err == nil && ok {
		var products []models.Product
		if json.Unmarshal(raw, &products) == nil {
			for _, p := range products {
				s.products[p.ID] = p
			}
		}
	}
	return s
}

// Toggle adds the product when absent and removes it when present.
// Returns true when the product is in the wishlist after the call.
func (s *WishlistStore) Toggle(p models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[p.ID]; ok {
		delete(s.products, p.ID)
		s.persist()
		return false
	}
	s.products[p.ID] = p
	s.persist()
	return true
}

// IsPresent reports whether productID is saved.
func (s *WishlistStore) IsPresent(productID uint) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.products[productID]
	return ok
}

// Remove drops productID from the wishlist. No-op when absent.
func (s *WishlistStore) Remove(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, productID)
	s.persist()
}

// Products returns the saved products ordered by id for stable display.
func (s *WishlistStore) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *WishlistStore) persist() {
	if s.db == nil {
		return
	}
	products := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	if err := s.db.Set(keyWishlist, raw); err != nil {
		log.Printf("persist wishlist: %v", err)
	}
}
