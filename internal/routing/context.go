package routing

import "strings"

// TenantContext is derived from the Host header of every request. It is
// never persisted; the router recomputes it per request.
type TenantContext struct {
	Host             string
	Subdomain        string // empty when the host carries no tenant label
	IsOperatorDomain bool
}

// ResolveTenant inspects the request host and decides which application
// variant it addresses. The decision is purely syntactic; whether the
// subdomain names a real tenant is checked separately against the registry.
func ResolveTenant(host, rootDomain string) TenantContext {
	tc := TenantContext{Host: host}

	hostname := host
	if i := strings.LastIndex(hostname, ":"); i >= 0 {
		hostname = hostname[:i]
	}
	if hostname == "" {
		// Missing or malformed host: no subdomain, caller falls through
		// to the not-found redirect.
		return tc
	}

	if hostname == rootDomain || hostname == "www."+rootDomain {
		tc.IsOperatorDomain = true
		return tc
	}

	label, rest, found := strings.Cut(hostname, ".")
	if !found || label == "" || rest == "" {
		// Single-label host that is not the operator domain carries no
		// tenant label either.
		return tc
	}

	tc.Subdomain = label
	return tc
}
