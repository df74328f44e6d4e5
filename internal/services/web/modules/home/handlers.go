package home

import (
	"net/http"

	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/platform/articleview"
	"github.com/mashirovoc/blog/internal/services/web/platform/httpx"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/platform/requestmeta"
	"github.com/mashirovoc/blog/internal/services/web/platform/theme"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
	webtemplates "github.com/mashirovoc/blog/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
	viewer  module.ViewerConfig
}

func newHandlers(s service, viewer module.ViewerConfig, base publichandler.Base) handlers {
	return handlers{Base: base, service: s, viewer: viewer}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := h.service.loadLanding(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.Page(r, "")
	home := webtemplates.Home{
		Latest: articleview.Cards(page.Copy, data.latest),
		Tags:   articleview.Tags(data.tags),
	}
	if h.viewer.Enabled {
		home.Viewer = &webtemplates.Viewer{
			ManifestURL:  routepath.ViewerManifest,
			LoadingImage: h.viewer.LoadingImage,
		}
		page.Scripts = append(page.Scripts, webtemplates.ViewerScript)
	}
	h.WritePage(w, r, page, http.StatusOK, webtemplates.HomePage(page.Copy, home))
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

// handleTheme stores the chosen color scheme and sends the reader back.
func (h handlers) handleTheme(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	mode, ok := theme.Parse(query.Get(routepath.ThemeModeQueryKey))
	if !ok {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	theme.Write(w, mode)
	http.Redirect(w, r, requestmeta.ReturnPath(r, query.Get(routepath.ThemeReturnKey), routepath.Root), http.StatusSeeOther)
}
