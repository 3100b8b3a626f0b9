// Package api wraps the backend REST API behind typed clients. Two
// configurations exist: the admin client authenticates with the
// operator session token, the storefront client with the customer
// token plus a tenant header derived from the current subdomain.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// TokenSource supplies the bearer token attached to requests. It is
// the in-process view of the session cookie.
type TokenSource interface {
	Token() string
	Clear()
}

// TokenStore is a mutable in-memory TokenSource.
type TokenStore struct {
	mu    sync.Mutex
	token string
}

func NewTokenStore(token string) *TokenStore {
	return &TokenStore{token: token}
}

func (t *TokenStore) Token() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.token
}

func (t *TokenStore) Set(token string) {
	t.mu.Lock()
	t.token = token
	t.mu.Unlock()
}

func (t *TokenStore) Clear() {
	t.Set("")
}

// Client is a configured API client.
type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	tenant  func() string

	// onAuthFailure runs once per 401 response, after the token source
	// has been cleared. Integrators use it to navigate to the login
	// page when not already there.
	onAuthFailure func()
}

type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTokenSource makes the client attach a bearer token per request.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

// WithTenant attaches an X-Tenant header resolved per request, used by
// the storefront client.
func WithTenant(tenant func() string) Option {
	return func(c *Client) { c.tenant = tenant }
}

// WithAuthFailureHandler registers the 401 hook.
func WithAuthFailureHandler(fn func()) Option {
	return func(c *Client) { c.onAuthFailure = fn }
}

func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Source", "web")

	if c.token != nil {
		if token := c.token.Token(); token != "" {
			// Tokens copied from the cookie may already carry the
			// prefix; strip it so it is never doubled.
			req.Header.Set("Authorization", "Bearer "+strings.TrimPrefix(token, "Bearer "))
		}
	}
	if c.tenant != nil {
		if t := c.tenant(); t != "" {
			req.Header.Set("X-Tenant", t)
		}
	}

	return req, nil
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out (which may be nil).
func (c *Client) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

// send executes the request, handling the auth-failure contract and
// structured error responses.
func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// Forced logout: clear the session, then let the integration
		// hook decide how to navigate. Not a retry.
		if c.token != nil {
			c.token.Clear()
		}
		if c.onAuthFailure != nil {
			c.onAuthFailure()
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
