package api

import (
	"context"
	"net/http"

	"github.com/shariarfaisal/snapshop/internal/models"
)

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Signup registers a new account and returns its session token.
func (c *Client) Signup(ctx context.Context, req models.SignupRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, "/auth/signup", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the account behind the current token.
func (c *Client) Me(ctx context.Context) (*models.AuthResponse, error) {
	var out models.AuthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
