package store

// CartItem is one purchasable line in the cart. VariantID is zero when
// the item has no variant dimension. The pair (ProductID, VariantID)
// uniquely identifies a line; quantity never drops below 1 while the
// line exists.
type CartItem struct {
	ProductID int `json:"productId"`
	VariantID int `json:"variantId,omitempty"`
	Quantity  int `json:"quantity"`
}

// addItem is the pure add-to-cart transition: first add for a key
// inserts quantity 1, repeated adds increment in place. Calling it N
// times with one key yields exactly one line with quantity N.
func addItem(cart []CartItem, productID, variantID int) []CartItem {
	for i := range cart {
		if cart[i].ProductID == productID && cart[i].VariantID == variantID {
			cart[i].Quantity++
			return cart
		}
	}
	return append(cart, CartItem{ProductID: productID, VariantID: variantID, Quantity: 1})
}

// removeItem is the pure removal transition. With clear=false it steps
// the quantity down, deleting the line at quantity 1 so a zero-quantity
// line is never retained. With clear=true the line is deleted outright.
// An absent key is a no-op.
func removeItem(cart []CartItem, productID, variantID int, clear bool) []CartItem {
	for i := range cart {
		if cart[i].ProductID != productID || cart[i].VariantID != variantID {
			continue
		}
		if !clear && cart[i].Quantity > 1 {
			cart[i].Quantity--
			return cart
		}
		return append(cart[:i], cart[i+1:]...)
	}
	return cart
}
