package categories

import (
	"net/http"

	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// Module provides category pages.
type Module struct {
	gateway ContentGateway
	base    publichandler.Base
}

// New returns a categories module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a categories module with explicit gateway and handler dependencies.
func NewWithGateway(gateway ContentGateway, base publichandler.Base) Module {
	return Module{gateway: gateway, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "categories" }

// Mount wires category route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.CategoriesPrefix, Handler: mux}, nil
}
