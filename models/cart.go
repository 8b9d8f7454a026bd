package models

// CartLine associates a product with a quantity. A cart holds at most one
// line per product id; Quantity is never below 1 (the line is removed
// instead of storing zero).
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is price times quantity for this line.
func (l CartLine) Subtotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}
