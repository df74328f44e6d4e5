package posts

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

func (h handlers) handlePostRoute(w http.ResponseWriter, r *http.Request) {
	contentID := strings.TrimSpace(r.PathValue("contentId"))
	if contentID == "" {
		h.WriteNotFound(w, r)
		return
	}
	h.handlePost(w, r, contentID)
}

func (h handlers) handlePost(w http.ResponseWriter, r *http.Request, contentID string) {
	post, ok := h.service.post(r.Context(), contentID, h.DraftKeyFor(r, contentID))
	if !ok {
		h.WriteNotFound(w, r)
		return
	}
	site := h.Copy(r)
	detail, err := articleview.Detail(site, h.siteURL, post)
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.Page(r, post.Title)
	h.WritePage(w, r, page, http.StatusOK, webtemplates.ArticlePage(site, detail, webtemplates.Sidebar{}))
}
