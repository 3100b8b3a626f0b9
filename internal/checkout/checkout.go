// Package checkout turns the persisted cart into an order submission.
// Pricing happens here, lazily: a rehydrated cart may reference
// products that no longer exist, and that surfaces as a per-line error
// at pricing time rather than a failure of the whole cart.
package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/shariarfaisal/snapshop/internal/models"
	"github.com/shariarfaisal/snapshop/internal/store"
)

// ErrEmptyOrder is returned when no cart line could be priced.
var ErrEmptyOrder = errors.New("no purchasable items in cart")

// Catalog prices cart lines. *api.Client satisfies it.
type Catalog interface {
	GetProduct(ctx context.Context, id int) (*models.Product, error)
}

// Orders submits the final order. *api.Client satisfies it.
type Orders interface {
	PlaceOrder(ctx context.Context, req models.CreateOrderRequest) (*models.CreateOrderResponse, error)
}

// LineError reports one cart line that could not be priced.
type LineError struct {
	Item store.CartItem
	Err  error
}

type Checkout struct {
	catalog Catalog
	orders  Orders
}

func New(catalog Catalog, orders Orders) *Checkout {
	return &Checkout{catalog: catalog, orders: orders}
}

// BuildOrder prices each cart line against the catalog and assembles
// the submission payload. Lines that fail to price are reported
// individually and excluded; the rest of the cart is unaffected.
func (c *Checkout) BuildOrder(ctx context.Context, cart []store.CartItem, shippingAddress string) (models.CreateOrderRequest, []LineError) {
	req := models.CreateOrderRequest{
		Items:           []models.OrderItem{},
		ShippingAddress: shippingAddress,
	}
	var lineErrs []LineError

	for _, item := range cart {
		product, err := c.catalog.GetProduct(ctx, item.ProductID)
		if err != nil {
			lineErrs = append(lineErrs, LineError{Item: item, Err: err})
			continue
		}

		price := product.BasePrice
		variantName := ""
		if item.VariantID != 0 {
			found := false
			for _, v := range product.Variants {
				if v.ID == item.VariantID {
					price = v.Price
					variantName = v.Name
					found = true
					break
				}
			}
			if !found {
				lineErrs = append(lineErrs, LineError{
					Item: item,
					Err:  fmt.Errorf("variant %d no longer exists on product %d", item.VariantID, item.ProductID),
				})
				continue
			}
		}

		req.Items = append(req.Items, models.OrderItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    price,
			Quantity: item.Quantity,
			Total:    price * float64(item.Quantity),
			Variant:  variantName,
		})
	}

	return req, lineErrs
}

// Place builds and submits the order. Line errors are returned
// alongside the response so the caller can show them in place; the
// submission itself only fails when nothing was purchasable or the
// backend rejected it.
func (c *Checkout) Place(ctx context.Context, cart []store.CartItem, shippingAddress string) (*models.CreateOrderResponse, []LineError, error) {
	req, lineErrs := c.BuildOrder(ctx, cart, shippingAddress)
	if len(req.Items) == 0 {
		return nil, lineErrs, ErrEmptyOrder
	}

	resp, err := c.orders.PlaceOrder(ctx, req)
	if err != nil {
		return nil, lineErrs, err
	}
	return resp, lineErrs, nil
}
