package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/store"
)

type CartItemInput struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  *int `json:"quantity"`
}

// GET /user/cart
func GetCart(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"items":       cart.Items(),
			"total_items": cart.TotalItems(),
			"total_price": cart.TotalPrice(),
		})
	}
}

// POST /user/cart
//
// Without a quantity the product is added (insert, or bump an existing
// line by one). With a quantity the line is set to exactly that amount;
// zero or negative removes it.
func UpdateCartItem(cart *store.CartStore, products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, ok := products.ByID(input.ProductID)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			return
		}

		if input.Quantity == nil {
			cart.AddItem(product)
		} else {
			cart.UpdateQuantity(product.ID, *input.Quantity)
		}

		c.JSON(http.StatusOK, gin.H{
			"items":       cart.Items(),
			"total_items": cart.TotalItems(),
			"total_price": cart.TotalPrice(),
		})
	}
}

// DELETE /user/cart/:product_id
func DeleteCartItem(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		cart.RemoveItem(uint(id))
		c.JSON(http.StatusOK, gin.H{"message": "Cart item removed"})
	}
}

// DELETE /user/cart
func ClearCart(cart *store.CartStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		cart.Clear()
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
