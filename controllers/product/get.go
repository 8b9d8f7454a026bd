package productControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/catalog"
)

// GET /products
//
// Supports the storefront's browse controls via query params: search,
// category, min_price, max_price, and sort (price-low, price-high, rating).
func GetProducts(products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.Filter{
			Search:   c.Query("search"),
			Category: c.Query("category"),
			Sort:     c.Query("sort"),
		}
		if v := c.Query("min_price"); v != "" {
			min, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			filter.MinPrice = min
		}
		if v := c.Query("max_price"); v != "" {
			max, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			filter.MaxPrice = max
		}

		c.JSON(http.StatusOK, gin.H{
			"products":   products.Select(filter),
			"categories": products.Categories(),
		})
	}
}

// GET /products/:id
func GetProductByID(products *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
			return
		}

		product, ok := products.ByID(uint(id))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
