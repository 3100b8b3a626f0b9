package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shariarfaisal/snapshop/internal/models"
)

// ProductListParams filters a product listing.
type ProductListParams struct {
	Page    int
	Limit   int
	StoreID int
	Search  string
}

// AddProduct submits a product draft. Validation failures come back as
// an *Error carrying field-scoped errors.
func (c *Client) AddProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error) {
	var out models.Product
	if err := c.doJSON(ctx, http.MethodPost, "/products", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProducts lists products.
func (c *Client) GetProducts(ctx context.Context, params ProductListParams) (*models.ProductListResponse, error) {
	query := url.Values{}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.Limit > 0 {
		query.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.StoreID > 0 {
		query.Set("storeId", strconv.Itoa(params.StoreID))
	}
	if params.Search != "" {
		query.Set("search", params.Search)
	}

	var out models.ProductListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/products", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	var out models.Product
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/products/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
