package routing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveTenant(t *testing.T) {
	tests := []struct {
		name string
		host string
		want TenantContext
	}{
		{
			name: "root domain",
			host: "example.com",
			want: TenantContext{Host: "example.com", IsOperatorDomain: true},
		},
		{
			name: "www alias",
			host: "www.example.com",
			want: TenantContext{Host: "www.example.com", IsOperatorDomain: true},
		},
		{
			name: "tenant subdomain",
			host: "shop1.example.com",
			want: TenantContext{Host: "shop1.example.com", Subdomain: "shop1"},
		},
		{
			name: "port is ignored",
			host: "shop1.example.com:8080",
			want: TenantContext{Host: "shop1.example.com:8080", Subdomain: "shop1"},
		},
		{
			name: "root domain with port",
			host: "example.com:3000",
			want: TenantContext{Host: "example.com:3000", IsOperatorDomain: true},
		},
		{
			name: "unrelated domain still yields first label",
			host: "shop1.other.com",
			want: TenantContext{Host: "shop1.other.com", Subdomain: "shop1"},
		},
		{
			name: "single label host",
			host: "localhost",
			want: TenantContext{Host: "localhost"},
		},
		{
			name: "empty host",
			host: "",
			want: TenantContext{},
		},
		{
			name: "nested subdomain takes first label",
			host: "a.b.example.com",
			want: TenantContext{Host: "a.b.example.com", Subdomain: "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveTenant(tt.host, "example.com")
			assert.Equal(t, tt.want, got)
		})
	}
}
