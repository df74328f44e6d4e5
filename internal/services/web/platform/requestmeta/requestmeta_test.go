package requestmeta

import (
	"crypto/tls"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsHTTPSWithPolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		req    *http.Request
		policy SchemePolicy
		want   bool
	}{
		{
			name: "untrusted forwarded proto is ignored",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "http://blog.example.test/", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			}(),
			policy: SchemePolicy{},
			want:   false,
		},
		{
			name: "trusted forwarded proto is used",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "http://blog.example.test/", nil)
				req.Header.Set("X-Forwarded-Proto", "https")
				return req
			}(),
			policy: SchemePolicy{TrustForwardedProto: true},
			want:   true,
		},
		{
			name: "tls connection",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodGet, "/", nil)
				req.TLS = &tls.ConnectionState{}
				return req
			}(),
			want: true,
		},
		{name: "nil request", req: nil, want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := IsHTTPSWithPolicy(tc.req, tc.policy); got != tc.want {
				t.Fatalf("IsHTTPSWithPolicy() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLocalPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"/articles/a1":       "/articles/a1",
		"/articles/all?x=1":  "/articles/all?x=1",
		"":                   "",
		"articles":           "",
		"//evil.example":     "",
		`/\evil.example`:     "",
		"https://evil.test/": "",
	}
	for raw, want := range tests {
		if got := LocalPath(raw); got != want {
			t.Fatalf("LocalPath(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestReturnPath(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "http://blog.example.test/theme", nil)
	if got := ReturnPath(req, "/articles/a1", "/"); got != "/articles/a1" {
		t.Fatalf("explicit ReturnPath = %q, want %q", got, "/articles/a1")
	}

	req.Header.Set("Referer", "http://blog.example.test/categories/c1?lang=en")
	if got := ReturnPath(req, "", "/"); got != "/categories/c1?lang=en" {
		t.Fatalf("referer ReturnPath = %q, want %q", got, "/categories/c1?lang=en")
	}

	req.Header.Set("Referer", "https://other.example.test/phish")
	if got := ReturnPath(req, "//other.example.test", "/"); got != "/" {
		t.Fatalf("foreign ReturnPath = %q, want %q", got, "/")
	}
}
