package viewer

import (
	"net/http"

	"github.com/mashirovoc/blog/internal/services/web/platform/httpx"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
	webtemplates "github.com/mashirovoc/blog/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handlePage(w http.ResponseWriter, r *http.Request) {
	if !h.service.enabled() {
		h.WriteNotFound(w, r)
		return
	}
	site := h.Copy(r)
	page := h.Page(r, site.ViewerTitle)
	page.Scripts = append(page.Scripts, webtemplates.ViewerScript)
	h.WritePage(w, r, page, http.StatusOK, webtemplates.ViewerWidget(site, webtemplates.Viewer{
		ManifestURL:  routepath.ViewerManifest,
		LoadingImage: h.service.cfg.LoadingImage,
		FullScreen:   true,
	}))
}

func (h handlers) handleManifest(w http.ResponseWriter, _ *http.Request) {
	if !h.service.enabled() {
		_ = httpx.WriteJSONMessage(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		return
	}
	w.Header().Set("Cache-Control", "no-cache")
	_ = httpx.WriteJSON(w, http.StatusOK, h.service.document())
}
