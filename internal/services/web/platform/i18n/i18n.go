// Package i18n resolves the request locale for web handlers and builds
// localized page copy.
package i18n

import (
	"context"
	"net/http"

	webi18n "github.com/mashirovoc/blog/internal/services/web/i18n"
	"github.com/mashirovoc/blog/internal/services/web/platform/httpx"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer formats catalog messages.
type Localizer interface {
	Sprintf(key message.Reference, a ...any) string
}

type tagKey struct{}

// Language resolves the request language once, persists an explicit
// ?lang= choice and stores the tag on the request context.
func Language() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tag, persist := webi18n.ResolveTag(r)
			if persist {
				webi18n.SetLanguageCookie(w, tag)
			}
			ctx := context.WithValue(r.Context(), tagKey{}, tag)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TagFromRequest returns the tag stored by Language, resolving it directly
// when the middleware did not run.
func TagFromRequest(r *http.Request) language.Tag {
	if r != nil {
		if tag, ok := r.Context().Value(tagKey{}).(language.Tag); ok {
			return tag
		}
	}
	tag, _ := webi18n.ResolveTag(r)
	return tag
}

// ResolveLocalizer returns a printer and the BCP 47 language for r.
func ResolveLocalizer(r *http.Request) (Localizer, string) {
	tag := TagFromRequest(r)
	return webi18n.Printer(tag), tag.String()
}
