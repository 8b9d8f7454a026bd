package models

// Product is a catalog entry. The catalog is fixed and externally supplied;
// products are never mutated after load.
type Product struct {
	ID       uint    `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}
