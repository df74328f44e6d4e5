package articles

import (
	"net/http"
	"strings"

	"github.com/mashirovoc/blog/internal/services/web/platform/articleview"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	webtemplates "github.com/mashirovoc/blog/internal/services/web/templates"
)

type handlers struct {
	publichandler.Base
	service service
	siteURL string
}

func newHandlers(s service, siteURL string, base publichandler.Base) handlers {
	return handlers{Base: base, service: s, siteURL: siteURL}
}

func (h handlers) handleAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.allArticles(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	site := h.Copy(r)
	page := h.Page(r, site.AllArticles)
	h.WritePage(w, r, page, http.StatusOK, webtemplates.ArticleGrid(site, site.AllArticles, articleview.Cards(site, items)))
}

func (h handlers) handleDetailRoute(w http.ResponseWriter, r *http.Request) {
	articleID := strings.TrimSpace(r.PathValue("id"))
	if articleID == "" {
		h.WriteNotFound(w, r)
		return
	}
	h.handleDetail(w, r, articleID)
}

func (h handlers) handleDetail(w http.ResponseWriter, r *http.Request, articleID string) {
	ctx := r.Context()
	article, ok := h.service.article(ctx, articleID, h.DraftKeyFor(r, articleID))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	aside, err := h.service.sidebar(ctx)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	site := h.Copy(r)
	detail, err := articleview.Detail(site, h.siteURL, article)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.Page(r, article.Title)
	h.WritePage(w, r, page, http.StatusOK, webtemplates.ArticlePage(site, detail, webtemplates.Sidebar{
		Tags:   articleview.Tags(aside.tags),
		Latest: articleview.Cards(site, aside.latest),
	}))
}
