package catalog

import "github.com/junaidrashid-git/storefront-api/models"

// Default is the storefront's built-in product list.
func Default() *Catalog {
	return New([]models.Product{
		{ID: 1, Name: "Wireless Headphones", Category: "Electronics", Price: 2999, Rating: 4.5},
		{ID: 2, Name: "Smart Watch", Category: "Electronics", Price: 4999, Rating: 4.2},
		{ID: 3, Name: "Bluetooth Speaker", Category: "Electronics", Price: 1999, Rating: 4.0},
		{ID: 4, Name: "Gaming Mouse", Category: "Electronics", Price: 1499, Rating: 4.6},
		{ID: 5, Name: "Mechanical Keyboard", Category: "Electronics", Price: 3499, Rating: 4.7},
		{ID: 6, Name: "Running Shoes", Category: "Footwear", Price: 2499, Rating: 4.3},
		{ID: 7, Name: "Casual Sneakers", Category: "Footwear", Price: 1799, Rating: 4.1},
		{ID: 8, Name: "Leather Boots", Category: "Footwear", Price: 3999, Rating: 4.4},
		{ID: 9, Name: "Denim Jacket", Category: "Clothing", Price: 2199, Rating: 4.2},
		{ID: 10, Name: "Cotton T-Shirt", Category: "Clothing", Price: 599, Rating: 4.0},
		{ID: 11, Name: "Hooded Sweatshirt", Category: "Clothing", Price: 1299, Rating: 4.3},
		{ID: 12, Name: "Slim Fit Jeans", Category: "Clothing", Price: 1899, Rating: 4.1},
		{ID: 13, Name: "Backpack", Category: "Accessories", Price: 1599, Rating: 4.5},
		{ID: 14, Name: "Sunglasses", Category: "Accessories", Price: 999, Rating: 3.9},
		{ID: 15, Name: "Leather Wallet", Category: "Accessories", Price: 799, Rating: 4.2},
		{ID: 16, Name: "Water Bottle", Category: "Accessories", Price: 499, Rating: 4.4},
		{ID: 17, Name: "Yoga Mat", Category: "Sports", Price: 899, Rating: 4.3},
		{ID: 18, Name: "Dumbbell Set", Category: "Sports", Price: 2799, Rating: 4.6},
		{ID: 19, Name: "Tennis Racket", Category: "Sports", Price: 3299, Rating: 4.1},
		{ID: 20, Name: "Football", Category: "Sports", Price: 1099, Rating: 4.0},
	})
}
