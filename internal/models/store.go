package models

// Store is one merchant's storefront, addressed by a unique subdomain.
type Store struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Subdomain string `json:"subdomain"`
	Logo      string `json:"logo,omitempty"`
	OwnerID   int    `json:"ownerId,omitempty"`
	Active    bool   `json:"active"`
}
