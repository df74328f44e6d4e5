package posts

import (
	"net/http"

	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// Module renders posts-endpoint records, the target of draft previews.
type Module struct {
	gateway ContentGateway
	siteURL string
	base    publichandler.Base
}

// New returns a posts module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a posts module with explicit gateway and handler dependencies.
func NewWithGateway(gateway ContentGateway, siteURL string, base publichandler.Base) Module {
	return Module{gateway: gateway, siteURL: siteURL, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "posts" }

// Mount wires post route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.siteURL, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.PostsPrefix, Handler: mux}, nil
}
