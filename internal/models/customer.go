package models

// Customer is a storefront shopper account.
type Customer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// User is an operator (merchant dashboard) account.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is the credential exchange payload for both clients.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest registers a new account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned on successful credential exchange.
type AuthResponse struct {
	Token    string    `json:"token"`
	User     *User     `json:"user,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
}
