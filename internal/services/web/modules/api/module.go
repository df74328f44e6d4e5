package api

import (
	"net/http"
	"time"

	"github.com/mashirovoc/blog/internal/preview"
	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
	"github.com/mashirovoc/blog/internal/services/web/platform/requestmeta"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// Config carries the api module collaborators.
type Config struct {
	Articles ArticleGateway
	Preview  PreviewGateway
	// PreviewTTL bounds the preview cookie lifetime.
	PreviewTTL   time.Duration
	SchemePolicy requestmeta.SchemePolicy
	Base         publichandler.Base
}

// Module provides the JSON article API and the preview mode endpoints.
type Module struct {
	cfg Config
}

// New returns an api module with zero-value dependencies (degraded mode).
func New() Module {
	return Module{}
}

// NewWithConfig returns an api module with explicit dependencies.
func NewWithConfig(cfg Config) Module {
	return Module{cfg: cfg}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "api" }

// Mount wires api route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	ttl := m.cfg.PreviewTTL
	if ttl <= 0 {
		ttl = preview.DefaultTTL
	}
	h := newHandlers(newService(m.cfg.Articles, m.cfg.Preview), m.cfg.Base, ttl, m.cfg.SchemePolicy)
	registerRoutes(mux, h)
	return module.Mount{Prefix: routepath.APIPrefix, Handler: mux}, nil
}
