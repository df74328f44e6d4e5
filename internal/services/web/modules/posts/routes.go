package posts

import (
	"net/http"

	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.PostPattern, h.handlePostRoute)
	mux.HandleFunc(http.MethodGet+" "+routepath.PostsPrefix+"{rest...}", h.WriteNotFound)
}
