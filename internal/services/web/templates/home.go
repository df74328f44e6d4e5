package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
)

// Home is the landing page state.
type Home struct {
	Viewer *Viewer
	Latest []ArticleCard
	Tags   []TagLink
}

// HomePage renders the viewer widget, the latest articles and the tag list.
func HomePage(site webi18n.SiteCopy, home Home) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		if home.Viewer != nil {
			h.component(ctx, ViewerWidget(site, *home.Viewer))
		}
		h.raw(`<div class="container home"><section class="stack"><h2 class="page-heading">`)
		h.text(site.Latest)
		h.raw("</h2>")
		writeCardGrid(h, site, home.Latest)
		h.raw(`<a class="view-all" href="/articles/all">`)
		h.text(site.ViewAll)
		h.raw(`</a></section><section class="stack-sm"><div class="sidebar-heading">`)
		h.text(site.Tags)
		h.raw(`</div><div class="tag-list">`)
		for _, tag := range home.Tags {
			writeTag(h, tag)
		}
		h.raw("</div></section></div>")
		return h.err
	})
}
