package home

import (
	"net/http"

	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.Theme, h.handleTheme)
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{rest...}", h.WriteNotFound)
}
