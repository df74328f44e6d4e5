// Package source selects the content backend used by commands.
package source

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mashirovoc/blog/internal/cms"
	"github.com/mashirovoc/blog/internal/cms/sqlitestore"
	"github.com/mashirovoc/blog/internal/platform/config"
)

// Backend names accepted by Config.Kind.
const (
	KindMicroCMS = "microcms"
	KindSQLite   = "sqlite"
)

// Config selects and configures a content backend.
type Config struct {
	Kind       string `env:"BLOG_CONTENT_SOURCE" envDefault:"microcms"`
	BaseURL    string `env:"BLOG_CMS_BASE_URL"`
	SQLitePath string `env:"BLOG_SQLITE_PATH"    envDefault:"blog.db"`
	// SQLiteSeed is a JSON seed imported into the store on open.
	SQLiteSeed string

	// Resolved by ResolveCredentials from the current and legacy names.
	ServiceDomain string
	APIKey        string
}

// ResolveCredentials fills the CMS service domain and API key, preferring
// the current variable names over the legacy ones.
func (c *Config) ResolveCredentials(lookup config.EnvLookup) {
	if c.ServiceDomain == "" {
		c.ServiceDomain = config.FirstNonEmpty(lookup, []string{"SERVICE_DOMAIN", "SERVER_DOMAIN"}, "")
	}
	if c.APIKey == "" {
		c.APIKey = config.FirstNonEmpty(lookup, []string{"MICROCMS_API_KEY", "API_KEY"}, "")
	}
}

// BindFlags registers flag overrides for c on fs.
func (c *Config) BindFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Kind, "content-source", c.Kind, "content backend: microcms or sqlite")
	fs.StringVar(&c.BaseURL, "cms-base-url", c.BaseURL, "override the CMS API root")
	fs.StringVar(&c.SQLitePath, "sqlite-path", c.SQLitePath, "SQLite content database (sqlite backend)")
	fs.StringVar(&c.SQLiteSeed, "sqlite-seed", c.SQLiteSeed, "JSON seed imported on start (sqlite backend)")
}

// Configured reports whether Open would produce a reader.
func (c Config) Configured() bool {
	switch c.kind() {
	case KindSQLite:
		return strings.TrimSpace(c.SQLitePath) != ""
	default:
		return strings.TrimSpace(c.ServiceDomain) != "" || strings.TrimSpace(c.BaseURL) != ""
	}
}

func (c Config) kind() string {
	kind := strings.ToLower(strings.TrimSpace(c.Kind))
	if kind == "" {
		return KindMicroCMS
	}
	return kind
}

// Validate reports configuration errors that Open would hit.
func (c Config) Validate() error {
	switch c.kind() {
	case KindMicroCMS, KindSQLite:
		return nil
	default:
		return fmt.Errorf("unknown content source %q", c.Kind)
	}
}

// Open returns the configured reader and a function releasing it. The
// reader is nil when the microCMS backend has neither a service domain nor
// a base URL; callers serve degraded pages in that case.
func Open(ctx context.Context, cfg Config) (cms.Reader, func() error, error) {
	noop := func() error { return nil }
	if err := cfg.Validate(); err != nil {
		return nil, noop, err
	}
	if !cfg.Configured() {
		return nil, noop, nil
	}
	if cfg.kind() == KindMicroCMS {
		return cms.NewClient(cms.Config{
			ServiceDomain: cfg.ServiceDomain,
			APIKey:        cfg.APIKey,
			BaseURL:       cfg.BaseURL,
		}), noop, nil
	}

	store, err := sqlitestore.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return nil, noop, fmt.Errorf("open content store: %w", err)
	}
	if seed := strings.TrimSpace(cfg.SQLiteSeed); seed != "" {
		if err := importSeed(ctx, store, seed); err != nil {
			_ = store.Close()
			return nil, noop, err
		}
	}
	return store, store.Close, nil
}

func importSeed(ctx context.Context, store *sqlitestore.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	if err := store.Import(ctx, f); err != nil {
		return fmt.Errorf("import seed %s: %w", path, err)
	}
	return nil
}
