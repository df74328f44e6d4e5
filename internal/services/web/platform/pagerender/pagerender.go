// Package pagerender centralizes full-page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"
	"github.com/mashirovoc/blog/internal/services/web/platform/httpx"
	webtemplates "github.com/mashirovoc/blog/internal/services/web/templates"
)

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders body inside the site layout. The page is buffered so a
// render failure can still produce a clean 500.
func WritePage(w http.ResponseWriter, r *http.Request, page webtemplates.Page, statusCode int, body templ.Component) {
	if w == nil {
		return
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if body == nil {
		body = emptyComponent{}
	}
	if r != nil && r.URL != nil {
		if page.Path == "" {
			page.Path = r.URL.Path
		}
		if page.RawQuery == "" {
			page.RawQuery = r.URL.RawQuery
		}
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), body)
	var rendered bytes.Buffer
	if err := webtemplates.Layout(page).Render(ctx, &rendered); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if r != nil && r.Method == http.MethodHead {
		return
	}
	_, _ = w.Write(rendered.Bytes())
}
