package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGate(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		hasSession bool
		authError  bool
		want       GateResult
	}{
		{
			name: "anonymous on protected page redirects to login",
			path: "/dashboard",
			want: GateResult{RedirectTo: LoginPath},
		},
		{
			name: "anonymous on root redirects to login",
			path: "/",
			want: GateResult{RedirectTo: LoginPath},
		},
		{
			name: "anonymous on login passes",
			path: LoginPath,
			want: GateResult{},
		},
		{
			name: "anonymous on signup passes",
			path: SignupPath,
			want: GateResult{},
		},
		{
			name:       "session on protected page passes",
			path:       "/dashboard",
			hasSession: true,
			want:       GateResult{},
		},
		{
			name:       "session on login redirects home",
			path:       LoginPath,
			hasSession: true,
			want:       GateResult{RedirectTo: "/"},
		},
		{
			name:       "stale session on login serves page and drops cookie",
			path:       LoginPath,
			hasSession: true,
			authError:  true,
			want:       GateResult{DeleteSession: true},
		},
		{
			name:       "stale session on protected page drops cookie",
			path:       "/dashboard",
			hasSession: true,
			authError:  true,
			want:       GateResult{DeleteSession: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Gate(tt.path, tt.hasSession, tt.authError))
		})
	}
}
