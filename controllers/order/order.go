package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/storefront-api/models"
	"github.com/junaidrashid-git/storefront-api/store"
)

type CheckoutInput struct {
	CustomerName string `json:"customer_name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
}

// Checkout validates the shipping form, snapshots the cart into a new
// order, and clears the cart. The optional delay simulates payment-network
// latency; the order append and cart clear happen exactly once either way.
func Checkout(auth *store.AuthStore, cart *store.CartStore, delay time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CheckoutInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.CustomerName == "" || input.Phone == "" || input.Address == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please fill in all fields"})
			return
		}

		items := cart.Items()
		if len(items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		if delay > 0 {
			time.Sleep(delay)
		}

		order, err := auth.AddOrder(models.OrderData{
			Items:           items,
			Total:           cart.TotalPrice(),
			ShippingAddress: input.Address,
			Phone:           input.Phone,
			CustomerName:    input.CustomerName,
		})
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, store.ErrNotAuthenticated) {
				status = http.StatusUnauthorized
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		cart.Clear()
		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/orders
func GetOrders(auth *store.AuthStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"orders": auth.Orders()})
	}
}
