// Package store holds the client-side cart and session state for one
// interactive storefront session. All mutations are synchronous
// read-modify-write against the in-memory snapshot; there is exactly one
// writer per store instance. Cross-tab or cross-device consistency is
// not provided — reconciling carts across devices needs a server-side
// merge at checkout time.
package store

import (
	"context"
	"log"
	"sync"

	"github.com/shariarfaisal/snapshop/internal/models"
)

// Auth is the session state for an authenticated shopper.
type Auth struct {
	Token string          `json:"token"`
	User  models.Customer `json:"user"`
}

// AuthOpen names which auth dialog is currently open. Transient UI
// state; never persisted.
type AuthOpen string

const (
	AuthOpenNone     AuthOpen = "none"
	AuthOpenLogin    AuthOpen = "login"
	AuthOpenRegister AuthOpen = "register"
)

// Store is the cart/session state container. Only cart and auth are
// durable; search text, the active storefront and dialog state are
// transient.
type Store struct {
	mu sync.Mutex

	cart     []CartItem
	auth     *Auth
	search   string
	website  *models.Store
	authOpen AuthOpen

	persister Persister
}

// New creates a store. persister may be nil for a purely in-memory
// session.
func New(persister Persister) *Store {
	return &Store{authOpen: AuthOpenNone, persister: persister}
}

// Hydrate loads the persisted cart and auth snapshot. No validation is
// performed against the backend: a rehydrated cart may reference
// products that no longer exist, which surfaces as a line-level error
// when the cart is priced, not as a load failure here.
func (s *Store) Hydrate(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}
	snap, ok, err := s.persister.Load(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	s.mu.Lock()
	s.cart = snap.Cart
	s.auth = snap.Auth
	s.mu.Unlock()
	return nil
}

// AddToCart inserts a new line with quantity 1, or increments the
// existing line for the same (productID, variantID) key.
func (s *Store) AddToCart(productID, variantID int) {
	s.mu.Lock()
	s.cart = addItem(s.cart, productID, variantID)
	s.mu.Unlock()
	s.persist()
}

// RemoveFromCart decrements the line, deleting it at quantity 1. With
// clear=true the line is deleted regardless of quantity (the explicit
// "remove line" action, as opposed to the quantity stepper).
func (s *Store) RemoveFromCart(productID, variantID int, clear bool) {
	s.mu.Lock()
	s.cart = removeItem(s.cart, productID, variantID, clear)
	s.mu.Unlock()
	s.persist()
}

// ClearCart empties the cart unconditionally.
func (s *Store) ClearCart() {
	s.mu.Lock()
	s.cart = nil
	s.mu.Unlock()
	s.persist()
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

// SetAuth replaces the session state. Callers own the integration side
// effects: writing the durable session cookie and updating the HTTP
// client's credential header happen at the call site, not here.
func (s *Store) SetAuth(auth *Auth) {
	s.mu.Lock()
	s.auth = auth
	s.mu.Unlock()
	s.persist()
}

// RemoveAuth clears the session state.
func (s *Store) RemoveAuth() {
	s.SetAuth(nil)
}

// Auth returns the current session state, nil when anonymous.
func (s *Store) Auth() *Auth {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.auth
}

// SetSearch updates the transient search text.
func (s *Store) SetSearch(search string) {
	s.mu.Lock()
	s.search = search
	s.mu.Unlock()
}

func (s *Store) Search() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.search
}

// SetWebsite records the storefront the session is browsing.
func (s *Store) SetWebsite(website *models.Store) {
	s.mu.Lock()
	s.website = website
	s.mu.Unlock()
}

func (s *Store) Website() *models.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.website
}

// SetAuthOpen updates which auth dialog is open.
func (s *Store) SetAuthOpen(open AuthOpen) {
	s.mu.Lock()
	s.authOpen = open
	s.mu.Unlock()
}

func (s *Store) AuthOpen() AuthOpen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authOpen
}

// persist writes the durable fields after every cart/auth mutation.
// Persistence failures are logged, never fatal: the in-memory state
// stays authoritative for the session.
func (s *Store) persist() {
	if s.persister == nil {
		return
	}
	s.mu.Lock()
	snap := Snapshot{Cart: append([]CartItem(nil), s.cart...), Auth: s.auth}
	s.mu.Unlock()

	if err := s.persister.Save(context.Background(), snap); err != nil {
		log.Printf("failed to persist session snapshot: %v", err)
	}
}
