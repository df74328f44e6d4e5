// Package requestmeta provides normalized request metadata helpers.
package requestmeta

import (
	"net/http"
	"net/url"
	"strings"
)

// SchemePolicy controls how request metadata resolves request scheme.
//
// TrustForwardedProto must be explicitly enabled for X-Forwarded-Proto to be
// considered. Keeping this explicit avoids trusting headers from untrusted clients.
type SchemePolicy struct {
	TrustForwardedProto bool
}

// IsHTTPS reports whether a request should be treated as HTTPS.
func IsHTTPS(r *http.Request) bool {
	return IsHTTPSWithPolicy(r, SchemePolicy{})
}

// IsHTTPSWithPolicy reports whether a request should be treated as HTTPS using
// the provided scheme policy.
func IsHTTPSWithPolicy(r *http.Request, policy SchemePolicy) bool {
	return requestScheme(r, policy) == "https"
}

// LocalPath returns raw when it is a site-relative path, or "" otherwise.
// Scheme-relative ("//host") and backslash forms are rejected.
func LocalPath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return ""
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return ""
	}
	return raw
}

// ReturnPath picks a redirect target after a settings change: an explicit
// local path, then a same-origin Referer, then fallback.
func ReturnPath(r *http.Request, explicit string, fallback string) string {
	if path := LocalPath(explicit); path != "" {
		return path
	}
	if r != nil {
		if referer := strings.TrimSpace(r.Header.Get("Referer")); referer != "" && sameHost(r, referer) {
			if parsed, err := url.Parse(referer); err == nil {
				target := parsed.EscapedPath()
				if parsed.RawQuery != "" {
					target += "?" + parsed.RawQuery
				}
				if path := LocalPath(target); path != "" {
					return path
				}
			}
		}
	}
	return fallback
}

func sameHost(r *http.Request, raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	refererHost := strings.ToLower(strings.TrimSpace(parsed.Host))
	if refererHost == "" {
		return false
	}
	return refererHost == strings.ToLower(strings.TrimSpace(r.Host))
}

func requestScheme(r *http.Request, policy SchemePolicy) string {
	if r == nil {
		return ""
	}
	if policy.TrustForwardedProto {
		if forwarded := strings.ToLower(strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))); forwarded == "http" || forwarded == "https" {
			return forwarded
		}
	}
	if r.URL != nil {
		if scheme := strings.ToLower(strings.TrimSpace(r.URL.Scheme)); scheme == "http" || scheme == "https" {
			return scheme
		}
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
