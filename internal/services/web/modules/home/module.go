package home

import (
	"net/http"

	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// Module provides the landing page, health, theme and site-wide not-found routes.
type Module struct {
	gateway ContentGateway
	viewer  module.ViewerConfig
	base    publichandler.Base
}

// New returns a home module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithGateway returns a home module with explicit gateway and handler dependencies.
func NewWithGateway(gateway ContentGateway, viewer module.ViewerConfig, base publichandler.Base) Module {
	return Module{gateway: gateway, viewer: viewer, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "home" }

// Mount wires home route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.gateway), m.viewer, m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
