package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
)

// ViewerScript is the client that drives the viewer widget.
const ViewerScript = "/static/viewer.js"

// Viewer configures the embedded character viewer widget.
type Viewer struct {
	ManifestURL  string
	LoadingImage string
	// FullScreen stretches the canvas to the viewport.
	FullScreen bool
}

// ViewerWidget renders the canvas, loading overlay and audio controls. The
// overlay text is replaced by viewer.js as progress events arrive.
func ViewerWidget(site webi18n.SiteCopy, viewer Viewer) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		class := "viewer"
		if viewer.FullScreen {
			class += " viewer-full"
		}
		h.raw("<section")
		h.attr("class", class)
		h.raw(" data-viewer")
		h.url("data-manifest", viewer.ManifestURL)
		h.attr("aria-label", site.ViewerTitle)
		h.raw(`><div class="viewer-controls" hidden><button type="button" data-viewer-mute aria-pressed="true">♪</button><button type="button" data-viewer-fullscreen>⛶</button></div>`)
		h.raw(`<div class="viewer-loading" data-viewer-loading>`)
		if viewer.LoadingImage != "" {
			h.raw("<img")
			h.url("src", viewer.LoadingImage)
			h.raw(` alt="Loading..." width="400" height="400">`)
		}
		h.raw("<p>")
		h.text(site.ViewerLoading)
		h.raw(`<br><span data-viewer-progress>`)
		h.text(site.ViewerWait)
		h.raw(`</span></p></div><canvas class="viewer-canvas" data-viewer-canvas></canvas><noscript>`)
		h.text(site.ViewerFallback)
		h.raw("</noscript></section>")
		return h.err
	})
}
