package models

import "time"

// Order is an immutable snapshot of a checked-out cart. Orders are
// append-only and kept newest-first.
type Order struct {
	ID              int64      `json:"id"`
	Reference       string     `json:"reference"`
	Items           []CartLine `json:"items"`
	Total           float64    `json:"total"`
	ShippingAddress string     `json:"shippingAddress"`
	Phone           string     `json:"phone"`
	CustomerName    string     `json:"customerName"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// OrderData is the caller-supplied part of an order; the store assigns
// ID, Reference and CreatedAt.
type OrderData struct {
	Items           []CartLine
	Total           float64
	ShippingAddress string
	Phone           string
	CustomerName    string
}
