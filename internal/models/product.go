package models

import "time"

// Product is a product as returned by the backend API.
type Product struct {
	ID          int              `json:"id"`
	StoreID     int              `json:"storeId"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	BasePrice   float64          `json:"basePrice"`
	Stock       int              `json:"stock"`
	Attributes  []Attribute      `json:"attributes,omitempty"`
	Variants    []ProductVariant `json:"variants,omitempty"`
	Media       []Media          `json:"media,omitempty"`
	CreatedAt   time.Time        `json:"createdAt,omitempty"`
	UpdatedAt   time.Time        `json:"updatedAt,omitempty"`
}

// Attribute is a free-form key/value pair attached to a product.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ProductVariant is one purchasable variation of a product.
type ProductVariant struct {
	ID         int               `json:"id,omitempty"`
	Name       string            `json:"name"`
	Price      float64           `json:"price"`
	Stock      int               `json:"stock"`
	Attributes map[string]string `json:"attributes,omitempty"`
	SKU        string            `json:"sku,omitempty"`
}

// MediaType enumerates the accepted media kinds.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// Media is one uploaded media entry on a product.
type Media struct {
	URL  string    `json:"url"`
	Type MediaType `json:"type"`
}

// CreateProductRequest is the admin product submission payload.
type CreateProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	BasePrice   float64          `json:"basePrice"`
	Stock       int              `json:"stock"`
	Attributes  []Attribute      `json:"attributes"`
	Variants    []ProductVariant `json:"variants"`
	Media       []Media          `json:"media"`
	StoreID     int              `json:"storeId"`
}

// ProductListResponse is a paginated product listing.
type ProductListResponse struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
}
