package wishlistControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/store"
)

type ToggleInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// GET /user/wishlist
func GetWishlist(wishlist *store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"products": wishlist.Products()})
	}
}

// POST /user/wishlist/toggle
func ToggleWishlistItem(wishlist *store.WishlistStore, products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ToggleInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := products.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		saved := wishlist.Toggle(product)
		c.JSON(http.StatusOK, gin.H{"saved": saved, "products": wishlist.Products()})
	}
}

// DELETE /user/wishlist/:product_id
func DeleteWishlistItem(wishlist *store.WishlistStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		wishlist.Remove(uint(id))
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist item removed"})
	}
}
