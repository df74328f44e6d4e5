package viewer

import (
	"net/http"

	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// Module provides the full-screen viewer page and its manifest.
type Module struct {
	cfg  module.ViewerConfig
	base publichandler.Base
}

// New returns a viewer module with the viewer disabled.
func New() Module {
	return Module{}
}

// NewWithConfig returns a viewer module serving cfg.
func NewWithConfig(cfg module.ViewerConfig, base publichandler.Base) Module {
	return Module{cfg: cfg, base: base}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "viewer" }

// Mount wires viewer route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := newHandlers(newService(m.cfg), m.base)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.ViewerPrefix, Handler: mux}, nil
}
