package articles

import (
	"net/http"

	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ArticlesAll, h.handleAll)
	mux.HandleFunc(http.MethodGet+" "+routepath.ArticlePattern, h.handleDetailRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.ArticlesPrefix+"{$}", h.WriteNotFound)
	mux.HandleFunc(http.MethodGet+" "+routepath.ArticleRestPattern, h.WriteNotFound)
}
