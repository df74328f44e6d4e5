package viewer

import (
	"net/http"

	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.ViewerPrefix+"{$}", h.handlePage)
	mux.HandleFunc(http.MethodGet+" "+routepath.ViewerManifest, h.handleManifest)
	mux.HandleFunc(http.MethodGet+" "+routepath.ViewerPrefix+"{rest...}", h.WriteNotFound)
}
