package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientIPForRateLimit(t *testing.T) {
	v6Remote := net.JoinHostPort("2001:db8::2", "443")
	tests := []struct {
		name, forwarded, remote, want string
	}{
		{"forwarded address wins", "203.0.113.1", "198.51.100.10:1234", "203.0.113.1"},
		{"first hop of a chain", " 203.0.113.1 , 198.51.100.2 ", "198.51.100.10:1234", "203.0.113.1"},
		{"garbage header ignored", "invalid", "198.51.100.10:1234", "198.51.100.10"},
		{"no header", "", "198.51.100.10:1234", "198.51.100.10"},
		{"ipv6 forwarded", "2001:db8::1", v6Remote, "2001:db8::1"},
		{"ipv6 remote", "invalid", v6Remote, "2001:db8::2"},
		{"bare remote", "invalid", "203.0.113.1", "203.0.113.1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/campaigns", nil)
			req.RemoteAddr = tc.remote
			if tc.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tc.forwarded)
			}
			if got := clientIPForRateLimit(req); got != tc.want {
				t.Fatalf("clientIPForRateLimit() = %q, want %q", got, tc.want)
			}
		})
	}
}
