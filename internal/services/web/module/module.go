// Package module defines the feature contract used by web composition.
package module

import (
	"log"
	"net/http"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/preview"
	"github.com/mashirovoc/blog/internal/scene"
	"github.com/mashirovoc/blog/internal/services/web/platform/requestmeta"
)

// ResolvePreview returns the verified preview state carried by a request.
type ResolvePreview func(*http.Request) (preview.Data, bool)

// ViewerConfig describes the embedded character viewer.
type ViewerConfig struct {
	Enabled bool
	// AssetDir is served under /mmd/. Empty disables asset serving.
	AssetDir string
	Manifest scene.Manifest
	Mode     scene.Mode
	// LoadingImage is shown while assets load.
	LoadingImage string
}

// Dependencies carries the shared collaborators handed to modules.
type Dependencies struct {
	Catalog        cms.Catalog
	Preview        *preview.Service
	ResolvePreview ResolvePreview
	SiteURL        string
	Viewer         ViewerConfig
	SchemePolicy   requestmeta.SchemePolicy
	Logger         *log.Logger
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
