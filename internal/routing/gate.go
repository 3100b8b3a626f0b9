package routing

// publicPaths lists the admin pages reachable without a session.
var publicPaths = []string{LoginPath, SignupPath}

// GateResult is the outcome of protected-route gating.
type GateResult struct {
	// RedirectTo is non-empty when the request must be redirected
	// instead of served.
	RedirectTo string
	// DeleteSession requests removal of the stale session cookie
	// before the page is served.
	DeleteSession bool
}

// Gate applies protected-route gating for the admin application.
//
// The authError marker breaks the redirect loop a user would otherwise be
// trapped in after their token expires: without it, the login redirect
// issued on a 401 would bounce straight back to the authenticated area
// because the stale cookie is still present.
func Gate(path string, hasSession, authError bool) GateResult {
	public := false
	for _, p := range publicPaths {
		if p == path {
			public = true
			break
		}
	}

	switch {
	case !hasSession && !public:
		return GateResult{RedirectTo: LoginPath}
	case hasSession && public && !authError:
		return GateResult{RedirectTo: "/"}
	case hasSession && authError:
		return GateResult{DeleteSession: true}
	}
	return GateResult{}
}
