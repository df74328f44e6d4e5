// Package blog parses blog command flags and launches the web server.
package blog

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/cms/source"
	entrypoint "github.com/mashirovoc/blog/internal/platform/cmd"
	"github.com/mashirovoc/blog/internal/platform/config"
	"github.com/mashirovoc/blog/internal/preview"
	"github.com/mashirovoc/blog/internal/scene"
	"github.com/mashirovoc/blog/internal/services/web"
	module "github.com/mashirovoc/blog/internal/services/web/module"
	"github.com/mashirovoc/blog/internal/services/web/platform/requestmeta"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// Config holds blog command configuration.
type Config struct {
	HTTPAddr            string `env:"BLOG_HTTP_ADDR"              envDefault:"localhost:3000"`
	SiteURL             string `env:"BLOG_SITE_URL"               envDefault:"https://mashirovoc.vercel.app"`
	PreviewSecret       string `env:"BLOG_PREVIEW_SECRET"`
	TrustForwardedProto bool   `env:"BLOG_TRUST_FORWARDED_PROTO"`

	ViewerAssetDir string `env:"BLOG_VIEWER_ASSET_DIR"`
	ViewerStage    bool   `env:"BLOG_VIEWER_STAGE"    envDefault:"true"`
	ViewerProgress string `env:"BLOG_VIEWER_PROGRESS" envDefault:"slice"`
	ViewerLoading  string `env:"BLOG_VIEWER_LOADING_IMAGE" envDefault:"/mmd/loading.gif"`

	Content source.Config
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	return parseConfig(fs, args, config.OSLookup)
}

func parseConfig(fs *flag.FlagSet, args []string, lookup config.EnvLookup) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Content.ResolveCredentials(lookup)

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "public site URL used for share links")
	fs.StringVar(&cfg.ViewerAssetDir, "viewer-assets", cfg.ViewerAssetDir, "directory served under /mmd/; empty disables the viewer")
	fs.BoolVar(&cfg.ViewerStage, "viewer-stage", cfg.ViewerStage, "load the optional stage model")
	fs.StringVar(&cfg.ViewerProgress, "viewer-progress", cfg.ViewerProgress, "viewer progress mode: slice or high-water")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honor X-Forwarded-Proto for secure cookies")
	cfg.Content.BindFlags(fs)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := cfg.Content.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ViewerConfig maps the command settings to the web viewer configuration.
func (c Config) ViewerConfig() module.ViewerConfig {
	dir := strings.TrimSpace(c.ViewerAssetDir)
	return module.ViewerConfig{
		Enabled:      dir != "",
		AssetDir:     dir,
		Manifest:     scene.DefaultManifest(routepath.AssetsPrefix, c.ViewerStage),
		Mode:         scene.ParseMode(c.ViewerProgress),
		LoadingImage: c.ViewerLoading,
	}
}

// Run starts the blog web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceBlog, func(ctx context.Context) error {
		reader, closeReader, err := source.Open(ctx, cfg.Content)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeReader(); err != nil {
				log.Printf("close content source: %v", err)
			}
		}()
		if reader == nil {
			log.Printf("content source %q is not configured; serving degraded pages", cfg.Content.Kind)
		}

		var catalog cms.Catalog
		var previews *preview.Service
		if reader != nil {
			catalog = cms.NewCatalog(reader)
			previews = preview.NewService(reader, preview.NewSigner(preview.Config{Secret: []byte(cfg.PreviewSecret)}))
		}

		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			Catalog:      catalog,
			Preview:      previews,
			SiteURL:      cfg.SiteURL,
			Viewer:       cfg.ViewerConfig(),
			SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
			Logger:       log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()
		return server.ListenAndServe(ctx)
	})
}
