package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/store"
)

// Deps bundles the shared stores and catalog the route handlers close over.
type Deps struct {
	Auth          *store.AuthStore
	Cart          *store.CartStore
	Wishlist      *store.WishlistStore
	Catalog       *catalog.Catalog
	CheckoutDelay time.Duration
}

// SetupRoutes is the single entry-point that wires up the Auth, User, and
// Product route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// Public auth routes (no middleware)
	SetupAuthRoutes(r, deps)

	// Session routes (JWT-protected)
	SetupUserRoutes(r, deps)

	// Public catalog routes
	SetupProductRoutes(r, deps)
}
