// Package i18n registers the site message catalog and exposes locale
// helpers for the web service.
package i18n

import (
	"net/http"

	platformi18n "github.com/mashirovoc/blog/internal/platform/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = platformi18n.LangParam
	// LangCookieName stores the reader's language preference.
	LangCookieName = platformi18n.LangCookieName
)

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	return platformi18n.SupportedTags()
}

// Default returns the default language tag.
func Default() language.Tag {
	return platformi18n.DefaultTag()
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return platformi18n.Printer(tag)
}

// ResolveTag determines the best language tag for the request.
// The bool indicates whether the lang query param should be persisted as a cookie.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	return platformi18n.ResolveTag(r)
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	platformi18n.SetLanguageCookie(w, tag)
}
