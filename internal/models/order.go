package models

import "time"

// OrderItem is one priced line in an order submission.
type OrderItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Total    float64 `json:"total"`
	Variant  string  `json:"variant,omitempty"`
}

// CreateOrderRequest is the storefront order submission payload.
type CreateOrderRequest struct {
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
}

// CreateOrderResponse carries the confirmation id used to redirect
// to the order detail view.
type CreateOrderResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// Order is an order as returned by the backend API.
type Order struct {
	ID              int         `json:"id"`
	StoreID         int         `json:"storeId,omitempty"`
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
	Status          string      `json:"status,omitempty"`
	Total           float64     `json:"total,omitempty"`
	CreatedAt       time.Time   `json:"createdAt,omitempty"`
}

// OrderListResponse is a paginated order listing.
type OrderListResponse struct {
	Orders []Order `json:"orders"`
	Total  int     `json:"total"`
	Page   int     `json:"page"`
	Limit  int     `json:"limit"`
}
