package api

import (
	"net/http"

	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.APIArticles, h.handleListArticles)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIArticlePattern, h.handleGetArticle)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIPreview, h.handlePreview)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIExitPreview, h.handleExitPreview)
	mux.HandleFunc(http.MethodGet+" "+routepath.APIPrefix+"{rest...}", h.handleNotFound)
}
