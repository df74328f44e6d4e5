package categories

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
}

func newHandlers(s service, base publichandler.Base) handlers {
	return handlers{Base: base, service: s}
}

func (h handlers) handleCategoryRoute(w http.ResponseWriter, r *http.Request) {
	categoryID := strings.TrimSpace(r.PathValue("id"))
	if categoryID == "" {
		h.WriteNotFound(w, r)
		return
	}
	h.handleCategory(w, r, categoryID)
}

func (h handlers) handleCategory(w http.ResponseWriter, r *http.Request, categoryID string) {
	ctx := r.Context()
	category, ok := h.service.category(ctx, categoryID)
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	articles, err := h.service.taggedArticles(ctx, category.ID)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	site := h.Copy(r)
	page := h.Page(r, category.Name)
	h.WritePage(w, r, page, http.StatusOK, webtemplates.CategoryPage(site, category.Name, articleview.Cards(site, articles)))
}
