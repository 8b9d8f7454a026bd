package routes

import (
	"github.com/gin-gonic/gin"
	productControllers "github.com/junaidrashid-git/storefront-api/controllers/product"
)

// SetupProductRoutes registers the public catalog endpoints.
func SetupProductRoutes(r *gin.Engine, deps Deps) {
	r.GET("/products", productControllers.GetProducts(deps.Catalog))        // GET /products
	r.GET("/products/:id", productControllers.GetProductByID(deps.Catalog)) // GET /products/:id
}
