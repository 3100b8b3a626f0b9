package routing

import (
	"context"
	"net/http"
	"strings"
)

// Cookie and path constants shared with the HTTP clients.
const (
	SessionCookie  = "x-auth-token"
	CustomerCookie = "x-customer-token"

	LoginPath    = "/login"
	SignupPath   = "/signup"
	AuthPath     = "/auth"
	NotFoundPath = "/not-found"

	apiPrefix       = "/api/"
	subdomainPrefix = "/subdomain/"
)

// Registry answers whether a subdomain names a known, active tenant.
type Registry interface {
	IsValidSubdomain(ctx context.Context, subdomain string) bool
}

// Action is the kind of outcome the router selected for a request.
// Exactly one action is produced per request.
type Action int

const (
	// ActionServeAdmin passes the request to the admin application.
	ActionServeAdmin Action = iota
	// ActionServeAPI passes the request to the backend API with the
	// Authorization header injected from the session cookie.
	ActionServeAPI
	// ActionRewrite serves the storefront at the rewritten tenant path.
	ActionRewrite
	// ActionRedirect redirects the client to Location.
	ActionRedirect
)

// Decision is the routing outcome for one request.
type Decision struct {
	Action Action
	Tenant TenantContext

	// RewritePath is set for ActionRewrite.
	RewritePath string
	// Location is set for ActionRedirect.
	Location string
	// AuthHeader is set for ActionServeAPI when a session cookie exists.
	AuthHeader string

	// SetSession sets the session cookie to this value (token exchange).
	SetSession string
	// DeleteSession removes the stale session cookie.
	DeleteSession bool
}

// Router decides which application variant serves each request.
type Router struct {
	rootDomain string
	registry   Registry
}

func NewRouter(rootDomain string, registry Registry) *Router {
	return &Router{rootDomain: rootDomain, registry: registry}
}

// Route produces exactly one Decision for the request. Routing is a pure
// synchronous decision; no retries, and failures (absent host, unknown
// subdomain) collapse into the not-found redirect.
func (rt *Router) Route(ctx context.Context, r *http.Request) Decision {
	tc := ResolveTenant(r.Host, rt.rootDomain)

	if strings.HasPrefix(r.URL.Path, apiPrefix) {
		d := Decision{Action: ActionServeAPI, Tenant: tc}
		if token := sessionToken(r); token != "" {
			// The cookie value is used verbatim as a bearer token; strip
			// any existing prefix so we never send "Bearer Bearer x".
			d.AuthHeader = "Bearer " + strings.TrimPrefix(token, "Bearer ")
		}
		return d
	}

	if tc.IsOperatorDomain || r.URL.Path == NotFoundPath {
		if r.URL.Path == AuthPath {
			return exchangeToken(tc, r)
		}
		gr := Gate(r.URL.Path, sessionToken(r) != "", r.URL.Query().Get("auth_error") != "")
		if gr.RedirectTo != "" {
			return Decision{Action: ActionRedirect, Tenant: tc, Location: gr.RedirectTo}
		}
		return Decision{Action: ActionServeAdmin, Tenant: tc, DeleteSession: gr.DeleteSession}
	}

	if tc.Subdomain != "" && rt.registry.IsValidSubdomain(ctx, tc.Subdomain) {
		return Decision{
			Action:      ActionRewrite,
			Tenant:      tc,
			RewritePath: RewriteTenantPath(tc.Subdomain, r.URL.Path, r.URL.RawQuery, r.URL.Fragment),
		}
	}

	return Decision{Action: ActionRedirect, Tenant: tc, Location: NotFoundPath}
}

// RewriteTenantPath builds the internal storefront path
// /subdomain/{subdomain}{path}{query}{hash}, preserving query and
// fragment verbatim.
func RewriteTenantPath(subdomain, path, rawQuery, fragment string) string {
	var b strings.Builder
	b.WriteString(subdomainPrefix)
	b.WriteString(subdomain)
	b.WriteString(path)
	if rawQuery != "" {
		b.WriteString("?")
		b.WriteString(rawQuery)
	}
	if fragment != "" {
		b.WriteString("#")
		b.WriteString(fragment)
	}
	return b.String()
}

// exchangeToken handles the /auth entry point an external auth provider
// redirects to with a freshly issued token.
func exchangeToken(tc TenantContext, r *http.Request) Decision {
	token := r.URL.Query().Get("auth_token")
	if token == "" {
		return Decision{Action: ActionRedirect, Tenant: tc, Location: LoginPath}
	}
	return Decision{Action: ActionRedirect, Tenant: tc, Location: "/", SetSession: token}
}

func sessionToken(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}
