package templates

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
)

// ErrorPageTitle returns the page title for an error status.
func ErrorPageTitle(statusCode int, site webi18n.SiteCopy) string {
	if statusCode == http.StatusNotFound {
		return site.NotFoundTitle
	}
	return site.ServerTitle
}

// ErrorState renders the error body for a status code.
func ErrorState(statusCode int, site webi18n.SiteCopy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		message := site.ServerMessage
		if statusCode == http.StatusNotFound {
			message = site.NotFoundMessage
		}
		h.raw(`<div class="container error-state"><h1>`)
		h.text(ErrorPageTitle(statusCode, site))
		h.raw("</h1><p>")
		h.text(message)
		h.raw(`</p><a class="button" href="/">`)
		h.text(site.BackHome)
		h.raw("</a></div>")
		return h.err
	})
}
