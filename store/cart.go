package store

import (
	"encoding/json"
	"log"
	"sort"
	"sync"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

const keyCart = "cart"

// CartStore owns the in-progress shopping cart. All operations are total:
// they never fail, and lookups are by product id. Pass a nil storage.Store
// for a memory-only cart.
type CartStore struct {
	mu    sync.Mutex
	db    storage.Store
	lines map[uint]models.CartLine
}

// NewCartStore loads any persisted cart from db. db may be nil.
func NewCartStore(db storage.Store) *CartStore {
	s := &CartStore{db: db, lines: make(map[uint]models.CartLine)}
	if db == nil {
		return s
	}
	if raw, ok, err := db.Get(keyCart); err == nil && ok {
		var lines []models.CartLine
		if json.Unmarshal(raw, &lines) == nil {
			for _, l := range lines {
				if l.Quantity >= 1 {
					s.lines[l.Product.ID] = l
				}
			}
		}
	}
	return s
}

// AddItem inserts a line with quantity 1, or bumps the quantity when a line
// for the product already exists.
func (s *CartStore) AddItem(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	line, ok := s.lines[p.ID]
	if ok {
		line.Quantity++
	} else {
		line = models.CartLine{Product: p, Quantity: 1}
	}
	s.lines[p.ID] = line
	s.persist()
}

// RemoveItem drops the line for productID. No-op when absent.
func (s *CartStore) RemoveItem(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines, productID)
	s.persist()
}

// UpdateQuantity sets the quantity for productID. A quantity of zero or
// below removes the line; a stored line never has quantity under 1.
func (s *CartStore) UpdateQuantity(productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		delete(s.lines, productID)
		s.persist()
		return
	}
	line, ok := s.lines[productID]
	if !ok {
		return
	}
	line.Quantity = quantity
	s.lines[productID] = line
	s.persist()
}

// Clear empties the cart.
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[uint]models.CartLine)
	s.persist()
}

// Items returns the cart lines ordered by product id for stable display.
func (s *CartStore) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Product.ID < out[j].Product.ID })
	return out
}

// TotalItems is the sum of quantities across lines.
func (s *CartStore) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.lines {
		total += l.Quantity
	}
	return total
}

// TotalPrice is the sum of price times quantity across lines.
func (s *CartStore) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *CartStore) persist() {
	if s.db == nil {
		return
	}
	lines := make([]models.CartLine, 0, len(s.lines))
	for _, l := range s.lines {
		lines = append(lines, l)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Product.ID < lines[j].Product.ID })
	raw, err := json.Marshal(lines)
	if err != nil {
		return
	}
	if err := s.db.Set(keyCart, raw); err != nil {
		log.Printf("persist cart: %v", err)
	}
}
