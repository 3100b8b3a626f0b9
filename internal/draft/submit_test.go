package draft

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shariarfaisal/snapshop/internal/api"
	"github.com/shariarfaisal/snapshop/internal/models"
)

// stubSubmitter records submissions and resolves with a canned result.
type stubSubmitter struct {
	calls   int
	lastReq models.CreateProductRequest
	product *models.Product
	err     error
}

func (s *stubSubmitter) AddProduct(_ context.Context, req models.CreateProductRequest) (*models.Product, error) {
	s.calls++
	s.lastReq = req
	return s.product, s.err
}

func TestSubmitBlockedByValidationSendsNothing(t *testing.T) {
	d := New()
	d.SetFields("Shirt", "", "-1", "")
	sub := &stubSubmitter{}

	product, err := d.Submit(context.Background(), sub, 1)

	assert.Nil(t, product)
	require.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, sub.calls)
	assert.Equal(t, "Base price must be a non-negative number", d.FieldError("basePrice"))
}

func TestSubmitBuildsRequestAndResets(t *testing.T) {
	d := New()
	d.SetFields("Shirt", "Soft cotton", "19.99", "7")

	attr := d.AddAttribute()
	d.UpdateAttribute(attr, "material", "cotton")

	variant := d.AddVariant()
	d.UpdateVariant(variant, VariantRow{Name: "Large", Price: "24.50", Stock: "3", SKU: "SH-L"})

	sub := &stubSubmitter{product: &models.Product{ID: 42, Name: "Shirt"}}

	product, err := d.Submit(context.Background(), sub, 9)

	require.NoError(t, err)
	require.NotNil(t, product)
	assert.Equal(t, 42, product.ID)

	req := sub.lastReq
	assert.Equal(t, "Shirt", req.Name)
	assert.Equal(t, 19.99, req.BasePrice)
	assert.Equal(t, 7, req.Stock)
	assert.Equal(t, 9, req.StoreID)
	require.Len(t, req.Attributes, 1)
	assert.Equal(t, models.Attribute{Key: "material", Value: "cotton"}, req.Attributes[0])
	require.Len(t, req.Variants, 1)
	assert.Equal(t, 24.50, req.Variants[0].Price)
	assert.Equal(t, 3, req.Variants[0].Stock)
	// Empty collections serialize as arrays, never null.
	assert.NotNil(t, req.Media)

	// Successful submission resets the draft.
	assert.Empty(t, d.Name)
	assert.Empty(t, d.Attributes())
	assert.Empty(t, d.Variants())
}

func TestSubmitMapsServerFieldErrors(t *testing.T) {
	d := New()
	d.SetFields("Shirt", "", "10", "1")
	id := d.AddVariant()
	d.UpdateVariant(id, VariantRow{Name: "Large", Price: "5", Stock: "1"})

	sub := &stubSubmitter{err: &api.Error{
		StatusCode: 422,
		Message:    "Validation failed",
		Errors: []api.FieldError{
			{Path: "variants.0.price", Message: "Required"},
			{Path: "name", Message: "Already taken"},
		},
	}}

	product, err := d.Submit(context.Background(), sub, 1)

	assert.Nil(t, product)
	require.Error(t, err)
	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Validation failed", apiErr.Message)

	assert.Equal(t, "Required", d.FieldError("variants.0.price"))
	assert.Equal(t, "Already taken", d.FieldError("name"))

	// The draft survives a rejection for correction and resubmission.
	assert.Equal(t, "Shirt", d.Name)
	assert.Len(t, d.Variants(), 1)
}

func TestSubmitTransportErrorLeavesFieldsUntouched(t *testing.T) {
	d := New()
	d.SetFields("Shirt", "", "", "")
	sub := &stubSubmitter{err: errors.New("dial tcp: connection refused")}

	_, err := d.Submit(context.Background(), sub, 1)

	require.Error(t, err)
	assert.Empty(t, d.FieldErrors())
	assert.Equal(t, "Shirt", d.Name)
}
