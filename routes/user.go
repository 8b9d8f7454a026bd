package routes

import (
	"github.com/gin-gonic/gin"
	authControllers "github.com/junaidrashid-git/storefront-api/controllers/auth"
	cartControllers "github.com/junaidrashid-git/storefront-api/controllers/cart"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	wishlistControllers "github.com/junaidrashid-git/storefront-api/controllers/wishlist"
	"github.com/junaidrashid-git/storefront-api/middleware"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/", authControllers.GetUser(deps.Auth))                // GET /user/
		userGroup.PUT("/password", authControllers.UpdatePassword(deps.Auth)) // PUT /user/password

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(deps.Cart))                           // GET /user/cart
			cartGroup.POST("/", cartControllers.UpdateCartItem(deps.Cart, deps.Catalog))     // POST /user/cart
			cartGroup.DELETE("/:product_id", cartControllers.DeleteCartItem(deps.Cart))      // DELETE /user/cart/:product_id
			cartGroup.DELETE("/", cartControllers.ClearCart(deps.Cart))                      // DELETE /user/cart
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(deps.Wishlist))                               // GET /user/wishlist
			wishlistGroup.POST("/toggle", wishlistControllers.ToggleWishlistItem(deps.Wishlist, deps.Catalog))   // POST /user/wishlist/toggle
			wishlistGroup.DELETE("/:product_id", wishlistControllers.DeleteWishlistItem(deps.Wishlist))          // DELETE /user/wishlist/:product_id
		}

		// ──────────────── Checkout + Orders ────────────────
		userGroup.POST("/checkout", orderControllers.Checkout(deps.Auth, deps.Cart, deps.CheckoutDelay)) // POST /user/checkout
		userGroup.GET("/orders", orderControllers.GetOrders(deps.Auth))                                  // GET /user/orders
		userGroup.GET("/orders/export", orderControllers.ExportOrdersToExcel(deps.Auth))                 // GET /user/orders/export
	}

	// Live order feed; the websocket handshake carries no Authorization
	// header from browsers, so this stays outside the JWT group.
	r.GET("/orders/ws", orderControllers.OrderWebSocketHandler)
}
