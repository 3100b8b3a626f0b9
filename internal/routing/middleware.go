package routing

import (
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
)

// SessionTTL is the lifetime of both session cookies.
const SessionTTL = 30 * 24 * time.Hour

// TenantHeader carries the resolved subdomain to the storefront upstream.
const TenantHeader = "X-Tenant"

// GatewayOptions configures the edge handler.
type GatewayOptions struct {
	Router             *Router
	AdminUpstream      string
	StorefrontUpstream string
	APIUpstream        string
	SecureCookies      bool
}

// Gateway returns the gin handler that executes routing decisions:
// rewrites storefront requests to their tenant-scoped internal path,
// injects Authorization on API requests, applies gating redirects and
// session cookie changes for the admin application.
func Gateway(opts GatewayOptions) (gin.HandlerFunc, error) {
	adminProxy, err := newProxy(opts.AdminUpstream)
	if err != nil {
		return nil, fmt.Errorf("admin upstream: %w", err)
	}
	storefrontProxy, err := newProxy(opts.StorefrontUpstream)
	if err != nil {
		return nil, fmt.Errorf("storefront upstream: %w", err)
	}
	apiProxy, err := newProxy(opts.APIUpstream)
	if err != nil {
		return nil, fmt.Errorf("api upstream: %w", err)
	}

	return func(c *gin.Context) {
		d := opts.Router.Route(c.Request.Context(), c.Request)

		// Session cookie changes are applied before the response body,
		// regardless of which outcome was selected.
		if d.DeleteSession {
			c.SetSameSite(http.SameSiteNoneMode)
			c.SetCookie(SessionCookie, "", -1, "/", "", opts.SecureCookies, false)
		}
		if d.SetSession != "" {
			c.SetSameSite(http.SameSiteNoneMode)
			c.SetCookie(SessionCookie, d.SetSession, int(SessionTTL.Seconds()), "/", "", opts.SecureCookies, false)
		}

		switch d.Action {
		case ActionRedirect:
			c.Redirect(http.StatusTemporaryRedirect, d.Location)

		case ActionServeAPI:
			if d.AuthHeader != "" {
				c.Request.Header.Set("Authorization", d.AuthHeader)
			}
			apiProxy.ServeHTTP(c.Writer, c.Request)

		case ActionRewrite:
			// Method, body and query survive the rewrite; only the path
			// gains the tenant prefix.
			c.Request.URL.Path = subdomainPrefix + d.Tenant.Subdomain + c.Request.URL.Path
			c.Request.Header.Set(TenantHeader, d.Tenant.Subdomain)
			storefrontProxy.ServeHTTP(c.Writer, c.Request)

		default:
			adminProxy.ServeHTTP(c.Writer, c.Request)
		}
	}, nil
}

func newProxy(upstream string) (*httputil.ReverseProxy, error) {
	target, err := url.Parse(upstream)
	if err != nil {
		return nil, fmt.Errorf("invalid upstream %q: %w", upstream, err)
	}
	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		log.Printf("proxy error for %s %s: %v", r.Method, r.URL.Path, err)
		w.WriteHeader(http.StatusBadGateway)
	}
	return proxy, nil
}
