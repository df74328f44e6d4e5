package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/platform/timeouts"
	"github.com/mashirovoc/blog/internal/preview"
	webapp "github.com/mashirovoc/blog/internal/services/web/app"
	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/modules"
	"github.com/mashirovoc/blog/internal/services/web/platform/httpx"
	webi18n "github.com/mashirovoc/blog/internal/services/web/platform/i18n"
	"github.com/mashirovoc/blog/internal/services/web/platform/observability"
	"github.com/mashirovoc/blog/internal/services/web/platform/previewcookie"
	"github.com/mashirovoc/blog/internal/services/web/platform/requestmeta"
	webstatic "github.com/mashirovoc/blog/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// Catalog is the content source. A zero Catalog serves degraded pages.
	Catalog cms.Catalog
	// Preview verifies preview targets. Nil disables preview mode.
	Preview      *preview.Service
	SiteURL      string
	Viewer       module.ViewerConfig
	SchemePolicy requestmeta.SchemePolicy
	Logger       *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	deps := module.Dependencies{
		Catalog:        cfg.Catalog,
		Preview:        cfg.Preview,
		ResolvePreview: newPreviewResolver(cfg.Preview),
		SiteURL:        cfg.SiteURL,
		Viewer:         cfg.Viewer,
		SchemePolicy:   cfg.SchemePolicy,
		Logger:         cfg.Logger,
	}
	h, err := webapp.BuildRootHandler(webapp.Config{
		Modules: modules.DefaultModules(deps),
		Static:  webstatic.FS,
	})
	if err != nil {
		return nil, err
	}
	return httpx.Chain(h,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(cfg.Logger),
		webi18n.Language(),
	), nil
}

// newPreviewResolver reads and verifies the preview cookie. Invalid or
// expired tokens are treated as no preview.
func newPreviewResolver(service *preview.Service) module.ResolvePreview {
	signer := service.Signer()
	return func(r *http.Request) (preview.Data, bool) {
		if !signer.Enabled() {
			return preview.Data{}, false
		}
		token, ok := previewcookie.Read(r)
		if !ok {
			return preview.Data{}, false
		}
		data, err := signer.Verify(token)
		if err != nil {
			return preview.Data{}, false
		}
		return data, true
	}
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
