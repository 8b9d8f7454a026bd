// Package store holds the shared storefront state: the authenticated
// session with its order history, the shopping cart, and the wishlist.
// Each store owns its collection, persists every mutation synchronously
// before returning, and is safe for concurrent handlers.
package store

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
)

// Storage keys, one JSON document each.
const (
	keyUser   = "user"
	keyOrders = "orders"
	keyUsers  = "users"
)

// AuthStore owns the current user session, the credential records, and the
// authenticated user's order history.
type AuthStore struct {
	mu          sync.Mutex
	db          storage.Store
	user        *models.User
	orders      []models.Order
	lastOrderID int64
}

// NewAuthStore loads any persisted session and order history from db.
func NewAuthStore(db storage.Store) *AuthStore {
	s := &AuthStore{db: db}
	if raw, ok, err := db.Get(keyUser); err == nil && ok {
		var u models.User
		if json.Unmarshal(raw, &u) == nil {
			s.user = &u
		}
	}
	if raw, ok, err := db.Get(keyOrders); err == nil && ok {
		var orders []models.Order
		if json.Unmarshal(raw, &orders) == nil {
			s.orders = orders
		}
	}
	for _, o := range s.orders {
		if o.ID > s.lastOrderID {
			s.lastOrderID = o.ID
		}
	}
	return s
}

// CurrentUser returns the session user, or nil when logged out.
func (s *AuthStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Orders returns the order history, newest first.
func (s *AuthStore) Orders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// Login matches username and password against the credential records and
// establishes a session on success. The session never carries the password.
func (s *AuthStore) Login(username, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cred := range s.loadCredentials() {
		if cred.Username == username && cred.Password == password {
			u := models.User{Username: cred.Username, Email: cred.Email}
			s.user = &u
			s.persistUser()
			return u, nil
		}
	}
	return models.User{}, ErrInvalidCredentials
}

// Signup creates a credential record and establishes a session. Username
// and email must both be unused.
func (s *AuthStore) Signup(username, password, email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	creds := s.loadCredentials()
	for _, cred := range creds {
		if cred.Username == username {
			return models.User{}, ErrDuplicateUsername
		}
	}
	for _, cred := range creds {
		if cred.Email == email {
			return models.User{}, ErrDuplicateEmail
		}
	}

	creds = append(creds, models.Credential{Username: username, Password: password, Email: email})
	s.persistCredentials(creds)

	u := models.User{Username: username, Email: email}
	s.user = &u
	s.persistUser()
	return u, nil
}

// Logout clears the session. Safe to call when already logged out.
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.persistUser()
}

// AddOrder assigns a unique id, reference and timestamp to data and
// prepends the resulting order to the history. Requires a session.
func (s *AuthStore) AddOrder(data models.OrderData) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.Order{}, ErrNotAuthenticated
	}

	now := time.Now()
	id := now.UnixMilli()
	if id <= s.lastOrderID {
		id = s.lastOrderID + 1
	}
	s.lastOrderID = id

	order := models.Order{
		ID:              id,
		Reference:       generateOrderRef(),
		Items:           data.Items,
		Total:           data.Total,
		ShippingAddress: data.ShippingAddress,
		Phone:           data.Phone,
		CustomerName:    data.CustomerName,
		CreatedAt:       now,
	}
	s.orders = append([]models.Order{order}, s.orders...)
	s.persistOrders()
	return order, nil
}

// UpdatePassword overwrites the stored password for the session's
// credential record. The session itself is unaffected.
func (s *AuthStore) UpdatePassword(current, updated string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return ErrNotAuthenticated
	}

	creds := s.loadCredentials()
	idx := -1
	for i, cred := range creds {
		if cred.Username == s.user.Username {
			idx = i
			break
		}
	}
	if idx == -1 {
		return ErrUserNotFound
	}
	if creds[idx].Password != current {
		return ErrWrongPassword
	}
	if len(updated) < 6 {
		return ErrPasswordTooShort
	}

	creds[idx].Password = updated
	s.persistCredentials(creds)
	return nil
}

// generateOrderRef returns a human-scannable unique order reference,
// e.g. "20250908130500-<uuid>".
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func (s *AuthStore) loadCredentials() []models.Credential {
	raw, ok, err := s.db.Get(keyUsers)
	if err != nil || !ok {
		return nil
	}
	var creds []models.Credential
	if err := json.Unmarshal(raw, &creds); err != nil {
		return nil
	}
	return creds
}

func (s *AuthStore) persistCredentials(creds []models.Credential) {
	raw, err := json.Marshal(creds)
	if err != nil {
		return
	}
	if err := s.db.Set(keyUsers, raw); err != nil {
		log.Printf("persist users: %v", err)
	}
}

func (s *AuthStore) persistUser() {
	if s.user == nil {
		if err := s.db.Delete(keyUser); err != nil {
			log.Printf("remove user: %v", err)
		}
		return
	}
	raw, err := json.Marshal(s.user)
	if err != nil {
		return
	}
	if err := s.db.Set(keyUser, raw); err != nil {
		log.Printf("persist user: %v", err)
	}
}

// persistOrders writes the orders key only when the list is non-empty.
// No clear-orders operation exists, so an empty list is only ever the
// initial state.
func (s *AuthStore) persistOrders() {
	if len(s.orders) == 0 {
		return
	}
	raw, err := json.Marshal(s.orders)
	if err != nil {
		return
	}
	if err := s.db.Set(keyOrders, raw); err != nil {
		log.Printf("persist orders: %v", err)
	}
}
