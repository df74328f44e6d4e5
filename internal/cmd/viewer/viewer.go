// Package viewer runs the character viewer headlessly: it loads the assets,
// prints aggregated progress and keeps the scene playing for a while.
package viewer

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	entrypoint "github.com/mashirovoc/blog/internal/platform/cmd"
	"github.com/mashirovoc/blog/internal/scene"
	"github.com/mashirovoc/blog/internal/scene/headless"
	"github.com/mashirovoc/blog/internal/services/web/routepath"
)

// Config holds viewer command configuration.
type Config struct {
	AssetDir string `env:"BLOG_VIEWER_ASSET_DIR"`
	// AssetURL fetches assets from a running blog instead of a directory.
	AssetURL string        `env:"BLOG_VIEWER_ASSET_URL"`
	Stage    bool          `env:"BLOG_VIEWER_STAGE"    envDefault:"true"`
	Progress string        `env:"BLOG_VIEWER_PROGRESS" envDefault:"high-water"`
	Duration time.Duration `env:"BLOG_VIEWER_DURATION" envDefault:"10s"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "asset directory")
	fs.StringVar(&cfg.AssetURL, "asset-url", cfg.AssetURL, "site URL serving /mmd/ assets")
	fs.BoolVar(&cfg.Stage, "stage", cfg.Stage, "load the optional stage model")
	fs.StringVar(&cfg.Progress, "progress", cfg.Progress, "progress mode: slice or high-water")
	fs.DurationVar(&cfg.Duration, "duration", cfg.Duration, "how long to run after loading")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.AssetDir) == "" && strings.TrimSpace(cfg.AssetURL) == "" {
		return Config{}, errors.New("one of -assets or -asset-url is required")
	}
	return cfg, nil
}

// Run loads the viewer and reports progress to stdout.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceViewer, func(ctx context.Context) error {
		return run(ctx, cfg, os.Stdout, log.Default())
	})
}

func assetSource(cfg Config) headless.Source {
	if dir := strings.TrimSpace(cfg.AssetDir); dir != "" {
		return headless.NewDirSource(dir, strings.TrimRight(routepath.AssetsPrefix, "/"))
	}
	return headless.HTTPSource{BaseURL: strings.TrimSpace(cfg.AssetURL)}
}

func run(ctx context.Context, cfg Config, out io.Writer, logger *log.Logger) error {
	engine, err := headless.New(headless.Config{Source: assetSource(cfg), Logger: logger})
	if err != nil {
		return err
	}
	session, err := scene.NewSession(scene.SessionConfig{
		Engine:   engine,
		Host:     headless.NewHost(),
		Manifest: scene.DefaultManifest(routepath.AssetsPrefix, cfg.Stage),
		Rig:      scene.NewRig(),
		Mode:     scene.ParseMode(cfg.Progress),
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer session.Dispose()

	err = session.Start(ctx, func(p scene.Progress) {
		fmt.Fprintf(out, "%3d%% %s\n", p.Percent, p.Label)
	})
	if err != nil {
		if scene.IsClosed(err) {
			return nil
		}
		return err
	}

	timer := time.NewTimer(cfg.Duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
	fmt.Fprintf(out, "state=%s frames=%d optimized=%t\n", session.State(), session.Frames(), session.Optimized())
	return nil
}
