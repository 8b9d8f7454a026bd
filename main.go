package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/junaidrashid-git/storefront-api/store"
)

func main() {
	log.Println("✅ Starting storefront...")

	// Load environment variables
	_ = godotenv.Load()

	// Init local store
	db := initStorage()
	defer db.Close()

	auth := store.NewAuthStore(db)
	cart := store.NewCartStore(db)
	wishlist := store.NewWishlistStore(db)
	products := catalog.Default()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Auth:          auth,
		Cart:          cart,
		Wishlist:      wishlist,
		Catalog:       products,
		CheckoutDelay: checkoutDelay(),
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStorage opens the local key/value store backing all persisted state.
func initStorage() *storage.SQLiteStore {
	path := os.Getenv("STORE_PATH")
	if path == "" {
		path = "storefront.db"
	}
	db, err := storage.OpenSQLite(path)
	if err != nil {
		log.Fatalf("❌ Failed to open local store: %v", err)
	}
	return db
}

// checkoutDelay reads the simulated checkout latency, default one second
// to match the storefront's original feel. Set 0 to disable.
func checkoutDelay() time.Duration {
	raw := os.Getenv("CHECKOUT_DELAY_MS")
	if raw == "" {
		return time.Second
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("⚠️ Invalid CHECKOUT_DELAY_MS %q, using 1000", raw)
		return time.Second
	}
	return time.Duration(ms) * time.Millisecond
}
