package draft

import (
	"context"
	"errors"

	"github.com/shariarfaisal/snapshop/internal/api"
	"github.com/shariarfaisal/snapshop/internal/models"
)

// ErrValidation is returned when the schema check blocks submission.
// The offending fields carry their own messages; no network request
// was issued.
var ErrValidation = errors.New("product draft failed validation")

// Submitter is the product endpoint the draft submits through.
// *api.Client satisfies it.
type Submitter interface {
	AddProduct(ctx context.Context, req models.CreateProductRequest) (*models.Product, error)
}

// Submit validates the draft and sends it as one product submission.
// On a backend rejection with structured field errors, each is mapped
// back onto the corresponding field; the caller surfaces the generic
// message once. On success the draft resets to empty.
func (d *Draft) Submit(ctx context.Context, client Submitter, storeID int) (*models.Product, error) {
	if errs := d.Validate(); len(errs) > 0 {
		return nil, ErrValidation
	}

	product, err := client.AddProduct(ctx, d.buildRequest(storeID))
	if err != nil {
		if apiErr, ok := api.AsError(err); ok {
			d.ApplyServerErrors(apiErr.Errors)
		}
		return nil, err
	}

	d.Reset()
	return product, nil
}

// ApplyServerErrors maps backend {path, message} errors onto field
// error state, including nested paths such as "variants.0.price".
// Fields the backend did not name are left untouched.
func (d *Draft) ApplyServerErrors(errs []api.FieldError) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range errs {
		d.fieldErrors[e.Path] = e.Message
	}
}

// buildRequest assembles the submission payload from the validated
// draft. Coercions cannot fail here; Validate has already passed.
func (d *Draft) buildRequest(storeID int) models.CreateProductRequest {
	d.mu.Lock()
	defer d.mu.Unlock()

	basePrice, _ := coerceNumber(d.BasePrice)
	stock, _ := coerceInt(d.Stock)

	req := models.CreateProductRequest{
		Name:        d.Name,
		Description: d.Description,
		BasePrice:   basePrice,
		Stock:       stock,
		StoreID:     storeID,
		Attributes:  []models.Attribute{},
		Variants:    []models.ProductVariant{},
		Media:       []models.Media{},
	}

	for _, a := range d.attributes {
		req.Attributes = append(req.Attributes, models.Attribute{Key: a.Key, Value: a.Value})
	}
	for _, v := range d.variants {
		price, _ := coerceNumber(v.Price)
		vStock, _ := coerceInt(v.Stock)
		req.Variants = append(req.Variants, models.ProductVariant{
			Name:       v.Name,
			Price:      price,
			Stock:      vStock,
			Attributes: v.Attributes,
			SKU:        v.SKU,
		})
	}
	for _, m := range d.media {
		req.Media = append(req.Media, models.Media{URL: m.URL, Type: m.Type})
	}

	return req
}
