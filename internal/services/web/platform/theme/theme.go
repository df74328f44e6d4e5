// Package theme persists the reader's color scheme choice.
package theme

import (
	"net/http"
	"strings"
	"time"
)

// CookieName stores the selected theme.
const CookieName = "blog_theme"

// Modes offered by the theme menu. System follows prefers-color-scheme.
const (
	Light  = "light"
	Dark   = "dark"
	System = "system"
)

// Parse reports whether value names a theme mode.
func Parse(value string) (string, bool) {
	switch mode := strings.ToLower(strings.TrimSpace(value)); mode {
	case Light, Dark, System:
		return mode, true
	default:
		return "", false
	}
}

// FromRequest returns the stored mode, defaulting to System.
func FromRequest(r *http.Request) string {
	if r == nil {
		return System
	}
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return System
	}
	if mode, ok := Parse(cookie.Value); ok {
		return mode
	}
	return System
}

// Write persists mode for a year. The cookie is readable by site.js so the
// system mode can be resolved client side.
func Write(w http.ResponseWriter, mode string) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    mode,
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
