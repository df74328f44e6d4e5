package modules

import (
	"time"

	"github.com/mashirovoc/blog/internal/preview"
	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/modules/api"
	"github.com/mashirovoc/blog/internal/services/web/modules/articles"
	"github.com/mashirovoc/blog/internal/services/web/modules/assets"
	"github.com/mashirovoc/blog/internal/services/web/modules/categories"
	"github.com/mashirovoc/blog/internal/services/web/modules/home"
	"github.com/mashirovoc/blog/internal/services/web/modules/posts"
	"github.com/mashirovoc/blog/internal/services/web/modules/viewer"
	"github.com/mashirovoc/blog/internal/services/web/platform/publichandler"
)

// DefaultModules returns the web modules in mount order. Content modules are
// built in degraded mode when no content source is configured.
func DefaultModules(deps module.Dependencies) []Module {
	base := publichandler.NewBase(publichandler.WithResolvePreview(deps.ResolvePreview))
	return append(contentModules(deps, base),
		api.NewWithConfig(api.Config{
			Articles:     api.NewReaderGateway(deps.Catalog.Reader()),
			Preview:      previewGateway(deps.Preview),
			PreviewTTL:   previewTTL(deps.Preview),
			SchemePolicy: deps.SchemePolicy,
			Base:         base,
		}),
		viewer.NewWithConfig(deps.Viewer, base),
		assets.NewWithDir(deps.Viewer.AssetDir),
	)
}

func contentModules(deps module.Dependencies, base publichandler.Base) []Module {
	if deps.Catalog.Reader() == nil {
		return []Module{home.New(), articles.New(), categories.New(), posts.New()}
	}
	return []Module{
		home.NewWithGateway(deps.Catalog, deps.Viewer, base),
		articles.NewWithGateway(deps.Catalog, deps.SiteURL, base),
		categories.NewWithGateway(deps.Catalog, base),
		posts.NewWithGateway(deps.Catalog, deps.SiteURL, base),
	}
}

// previewGateway keeps a nil service from becoming a non-nil interface.
func previewGateway(service *preview.Service) api.PreviewGateway {
	if service == nil {
		return nil
	}
	return service
}

func previewTTL(service *preview.Service) time.Duration {
	return service.Signer().TTL()
}
