// Package publichandler provides a shared base for public web module handlers.
// It centralizes error handling, localization, preview state and page
// rendering that would otherwise be duplicated across modules.
package publichandler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/mashirovoc/blog/internal/preview"
	module "github.com/mashirovoc/blog/internal/services/web/module"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
	"github.com/mashirovoc/blog/internal/services/web/platform/pagerender"
	"github.com/mashirovoc/blog/internal/services/web/platform/theme"
	"github.com/mashirovoc/blog/internal/services/web/platform/weberror"
	webtemplates "github.com/mashirovoc/blog/internal/services/web/templates"
)

// Base provides shared error handling and page rendering for public modules.
// Embed this in handler structs to get WritePage, WriteNotFound, WriteError
// and preview resolution for free.
type Base struct {
	resolvePreview module.ResolvePreview
}

// Option configures a Base.
type Option func(*Base)

// WithResolvePreview attaches the preview cookie resolver.
func WithResolvePreview(resolver module.ResolvePreview) Option {
	return func(b *Base) { b.resolvePreview = resolver }
}

// NewBase builds a public handler base with the given options.
func NewBase(opts ...Option) Base {
	var b Base
	for _, o := range opts {
		o(&b)
	}
	return b
}

// Preview returns the verified preview state for r.
func (b Base) Preview(r *http.Request) (preview.Data, bool) {
	if b.resolvePreview == nil || r == nil {
		return preview.Data{}, false
	}
	return b.resolvePreview(r)
}

// DraftKeyFor returns the draft key to forward when the request's preview
// targets contentID, and "" otherwise.
func (b Base) DraftKeyFor(r *http.Request, contentID string) string {
	data, ok := b.Preview(r)
	if !ok || !data.Matches(contentID) {
		return ""
	}
	return data.DraftKey
}

// Copy returns the localized site copy for r.
func (Base) Copy(r *http.Request) webi18n.SiteCopy {
	return webi18n.Site(webi18n.TagFromRequest(r))
}

// Page builds the layout state for r.
func (b Base) Page(r *http.Request, title string) webtemplates.Page {
	_, inPreview := b.Preview(r)
	return webtemplates.Page{
		Title:   title,
		Copy:    b.Copy(r),
		Theme:   theme.FromRequest(r),
		Preview: inPreview,
	}
}

// WritePage renders body inside the site layout.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page webtemplates.Page, statusCode int, body templ.Component) {
	pagerender.WritePage(w, r, page, statusCode, body)
}

// WriteNotFound renders the localized 404 page.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteAppError(w, r, http.StatusNotFound, b.Page(r, ""))
}

// WriteError renders a user-safe error response: error pages for not-found
// and server errors, plain-text status messages for everything else.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteError(w, r, err, b.Page(r, ""))
}
