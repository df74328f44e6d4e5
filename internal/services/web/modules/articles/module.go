package articles

import (
	"net/http"

	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// Module provides the article list and article detail routes.
type Module struct {
	gateway ContentGateway
	siteURL string
	base    publichandler.Base
}

// New returns an articles module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns an articles module with explicit gateway and handler
// dependencies. siteURL is the public origin used in share links.
func NewWithGateway(gateway ContentGateway, siteURL string, base publichandler.Base) Module {
	return Module{gateway: gateway, siteURL: siteURL, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "articles" }

// Mount wires article route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.siteURL, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ArticlesPrefix, Handler: mux}, nil
}
