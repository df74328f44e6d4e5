package categories

import (
	"net/http"

	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.CategoryPattern, h.handleCategoryRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.CategoriesPrefix+"{rest...}", h.WriteNotFound)
}
