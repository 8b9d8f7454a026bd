package store

import (
	"testing"

	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	auth := NewAuthStore(storage.NewMemoryStore())

	user, err := auth.Signup("a", "password", "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, models.User{Username: "a", Email: "a@x.com"}, user)
	require.NotNil(t, auth.CurrentUser())

	auth.Logout()
	assert.Nil(t, auth.CurrentUser())

	_, err = auth.Login("a", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, auth.CurrentUser())

	user, err = auth.Login("a", "password")
	require.NoError(t, err)
	assert.Equal(t, models.User{Username: "a", Email: "a@x.com"}, user)
}

func TestSignupRejectsDuplicates(t *testing.T) {
	auth := NewAuthStore(storage.NewMemoryStore())

	_, err := auth.Signup("a", "p", "a@x.com")
	require.NoError(t, err)

	_, err = auth.Signup("a", "q", "b@y.com")
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = auth.Signup("b", "q", "a@x.com")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginUnknownUser(t *testing.T) {
	auth := NewAuthStore(storage.NewMemoryStore())

	_, err := auth.Login("nobody", "p")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutIsIdempotent(t *testing.T) {
	auth := NewAuthStore(storage.NewMemoryStore())

	_, err := auth.Signup("a", "password", "a@x.com")
	require.NoError(t, err)

	auth.Logout()
	auth.Logout()
	assert.Nil(t, auth.CurrentUser())
}

func TestAddOrderNewestFirst(t *testing.T) {
	auth := NewAuthStore(storage.NewMemoryStore())
	_, err := auth.Signup("a", "password", "a@x.com")
	require.NoError(t, err)

	first, err := auth.AddOrder(models.OrderData{Total: 100, CustomerName: "a", Phone: "1", ShippingAddress: "x"})
	require.NoError(t, err)
	second, err := auth.AddOrder(models.OrderData{Total: 200, CustomerName: "a", Phone: "1", ShippingAddress: "x"})
	require.NoError(t, err)

	orders := auth.Orders()
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	assert.Greater(t, second.ID, first.ID)
	assert.NotEmpty(t, orders[0].Reference)
}

func TestAddOrderRequiresSession(t *testing.T) {
	auth := NewAuthStore(storage.NewMemoryStore())

	_, err := auth.AddOrder(models.OrderData{Total: 100})
	assert.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, auth.Orders())
}

func TestUpdatePassword(t *testing.T) {
	db := storage.NewMemoryStore()
	auth := NewAuthStore(db)
	_, err := auth.Signup("a", "oldpassword", "a@x.com")
	require.NoError(t, err)

	err = auth.UpdatePassword("wrong", "newpassword")
	assert.ErrorIs(t, err, ErrWrongPassword)

	err = auth.UpdatePassword("oldpassword", "short")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	// Failed attempts leave the stored credential unchanged.
	_, err = NewAuthStore(db).Login("a", "oldpassword")
	require.NoError(t, err)

	err = auth.UpdatePassword("oldpassword", "newpassword")
	require.NoError(t, err)

	// Session survives the change; only the credential record moved.
	require.NotNil(t, auth.CurrentUser())
	_, err = NewAuthStore(db).Login("a", "newpassword")
	assert.NoError(t, err)
}

func TestUpdatePasswordWithoutCredentialRecord(t *testing.T) {
	db := storage.NewMemoryStore()
	auth := NewAuthStore(db)
	_, err := auth.Signup("a", "password", "a@x.com")
	require.NoError(t, err)

	// Simulate a stale session whose credential record disappeared.
	require.NoError(t, db.Delete(keyUsers))

	err = auth.UpdatePassword("password", "newpassword")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSessionAndOrdersPersistAcrossRestart(t *testing.T) {
	db := storage.NewMemoryStore()

	auth := NewAuthStore(db)
	_, err := auth.Signup("a", "password", "a@x.com")
	require.NoError(t, err)
	placed, err := auth.AddOrder(models.OrderData{Total: 100, CustomerName: "a", Phone: "1", ShippingAddress: "x"})
	require.NoError(t, err)

	reloaded := NewAuthStore(db)
	require.NotNil(t, reloaded.CurrentUser())
	assert.Equal(t, "a", reloaded.CurrentUser().Username)
	orders := reloaded.Orders()
	require.Len(t, orders, 1)
	assert.Equal(t, placed.ID, orders[0].ID)

	// New ids stay above everything restored from disk.
	next, err := reloaded.AddOrder(models.OrderData{Total: 50, CustomerName: "a", Phone: "1", ShippingAddress: "x"})
	require.NoError(t, err)
	assert.Greater(t, next.ID, placed.ID)
}

func TestOrdersKeyWrittenOnlyWhenNonEmpty(t *testing.T) {
	db := storage.NewMemoryStore()
	auth := NewAuthStore(db)
	_, err := auth.Signup("a", "password", "a@x.com")
	require.NoError(t, err)

	_, exists, err := db.Get(keyOrders)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = auth.AddOrder(models.OrderData{Total: 100, CustomerName: "a", Phone: "1", ShippingAddress: "x"})
	require.NoError(t, err)

	_, exists, err = db.Get(keyOrders)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLogoutRemovesPersistedSession(t *testing.T) {
	db := storage.NewMemoryStore()
	auth := NewAuthStore(db)
	_, err := auth.Signup("a", "password", "a@x.com")
	require.NoError(t, err)

	auth.Logout()

	_, exists, err := db.Get(keyUser)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, NewAuthStore(db).CurrentUser())
}
