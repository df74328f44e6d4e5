package api

import (
	"net/http"
	"time"

	domainerrors "github.com/mashirovoc/blog/internal/platform/errors"
	"github.com/mashirovoc/blog/internal/preview"
	"github.com/mashirovoc/blog/internal/services/web/platform/httpx"
	"github.com/mashirovoc/blog/internal/services/web/platform/previewcookie"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/platform/requestmeta"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// previewEnabledBody is the body sent with the enter-preview redirect.
const previewEnabledBody = "Preview mode enabled"

type handlers struct {
	publichandler.Base
	service    service
	previewTTL time.Duration
	policy     requestmeta.SchemePolicy
}

func newHandlers(s service, base publichandler.Base, previewTTL time.Duration, policy requestmeta.SchemePolicy) handlers {
	return handlers{Base: base, service: s, previewTTL: previewTTL, policy: policy}
}

func (h handlers) handleListArticles(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := h.service.listArticles(r.Context(), listParams{
		Limit:  query.Get("limit"),
		Offset: query.Get("offset"),
		Filter: query.Get("filter"),
		Order:  query.Get("order"),
	})
	if err != nil {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, resp)
}

func (h handlers) handleGetArticle(w http.ResponseWriter, r *http.Request) {
	articleID := r.PathValue("id")
	article, err := h.service.getArticle(r.Context(), articleID, h.DraftKeyFor(r, articleID))
	if err != nil {
		_ = httpx.WriteJSONError(w, err)
		return
	}
	_ = httpx.WriteJSON(w, http.StatusOK, article)
}

// handlePreview verifies the requested draft and stores it in the preview
// cookie. A missing slug or disabled preview is a bare 404; a slug the CMS
// cannot resolve is a 404 with a JSON message.
func (h handlers) handlePreview(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	grant, err := h.service.enterPreview(r.Context(), preview.Request{
		Slug:     query.Get("slug"),
		DraftKey: query.Get("draftKey"),
		Type:     query.Get("type"),
	})
	if err != nil {
		switch domainerrors.CodeOf(err) {
		case domainerrors.CodePreviewSlugMissing, domainerrors.CodePreviewDisabled:
			w.WriteHeader(http.StatusNotFound)
		case domainerrors.CodePreviewSlugInvalid:
			_ = httpx.WriteJSONMessage(w, http.StatusNotFound, preview.ErrInvalidSlug.Message)
		default:
			_ = httpx.WriteJSONError(w, err)
		}
		return
	}
	previewcookie.Write(w, r, grant.Token, h.previewTTL, h.policy)
	httpx.TemporaryRedirect(w, grant.Location, previewEnabledBody)
}

func (h handlers) handleExitPreview(w http.ResponseWriter, r *http.Request) {
	previewcookie.Clear(w, r, h.policy)
	httpx.TemporaryRedirect(w, routepath.Root, "")
}

func (h handlers) handleNotFound(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteJSONMessage(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}
