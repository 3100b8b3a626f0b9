package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/shariarfaisal/snapshop/internal/models"
)

// OrderListParams filters an order listing.
type OrderListParams struct {
	Page    int
	Limit   int
	StoreID int
	Status  string
}

// PlaceOrder submits a checkout payload. The returned id addresses the
// order confirmation view.
func (c *Client) PlaceOrder(ctx context.Context, req models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	var out models.CreateOrderResponse
	if err := c.doJSON(ctx, http.MethodPost, "/orders", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrders lists orders.
func (c *Client) GetOrders(ctx context.Context, params OrderListParams) (*models.OrderListResponse, error) {
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
	if params.Status != "" {
		query.Set("status", params.Status)
	}

	var out models.OrderListResponse
	if err := c.doJSON(ctx, http.MethodGet, "/orders", query, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetOrder fetches one order by id.
func (c *Client) GetOrder(ctx context.Context, id int) (*models.Order, error) {
	var out models.Order
	if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
