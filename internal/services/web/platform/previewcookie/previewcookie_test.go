package previewcookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mashirovoc/blog/internal/services/web/platform/requestmeta"
)

func TestRead(t *testing.T) {
	t.Parallel()

	if _, ok := Read(nil); ok {
		t.Fatalf("expected nil request to have no preview cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	if _, ok := Read(req); ok {
		t.Fatalf("expected missing cookie")
	}

	req.AddCookie(&http.Cookie{Name: Name, Value: "  tok-1  "})
	value, ok := Read(req)
	if !ok {
		t.Fatalf("expected cookie to be present")
	}
	if value != "tok-1" {
		t.Fatalf("value = %q, want %q", value, "tok-1")
	}
}

func TestWrite(t *testing.T) {
	t.Parallel()

	secureReq := httptest.NewRequest(http.MethodGet, "https://blog.example.test", nil)
	secureRR := httptest.NewRecorder()
	Write(secureRR, secureReq, "tok-1", time.Hour, requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(secureRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Name || cookie.Value != "tok-1" {
		t.Fatalf("cookie = %s=%s, want %s=tok-1", cookie.Name, cookie.Value, Name)
	}
	if !cookie.Secure || !cookie.HttpOnly {
		t.Fatalf("expected secure http-only cookie, got %+v", cookie)
	}
	if cookie.MaxAge != 3600 {
		t.Fatalf("MaxAge = %d, want 3600", cookie.MaxAge)
	}

	httpReq := httptest.NewRequest(http.MethodGet, "http://blog.example.test", nil)
	httpRR := httptest.NewRecorder()
	Write(httpRR, httpReq, "tok-1", 0, requestmeta.SchemePolicy{})
	httpCookie, err := http.ParseSetCookie(httpRR.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if httpCookie.Secure {
		t.Fatalf("expected non-secure cookie for http request")
	}
}

func TestClear(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodGet, "http://blog.example.test", nil), requestmeta.SchemePolicy{})
	cookie, err := http.ParseSetCookie(rr.Header().Get("Set-Cookie"))
	if err != nil {
		t.Fatalf("ParseSetCookie() error = %v", err)
	}
	if cookie.Name != Name || cookie.MaxAge != -1 {
		t.Fatalf("cookie = %+v, want expired %s", cookie, Name)
	}
}
