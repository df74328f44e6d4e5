package scene

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
)

// AssetBundle is everything LoadAssets produced. Stage is nil when the
// manifest has no stage or the stage failed to load.
type AssetBundle struct {
	Manifest     Manifest
	Runtime      Runtime
	Motion       Animation
	CameraMotion Animation
	Model        Model
	Stage        Model
}

// LoadOptions tunes LoadAssets.
type LoadOptions struct {
	Mode       Mode
	OnProgress ProgressFunc
	Logger     *log.Logger
}

// LoadAssets initializes the runtime and loads every asset of m
// concurrently. The first required failure cancels the rest. A stage model
// failure is logged and leaves Stage nil.
func LoadAssets(ctx context.Context, loader Loader, m Manifest, opts LoadOptions) (*AssetBundle, error) {
	if loader == nil {
		return nil, fmt.Errorf("loader is required")
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}

	agg := NewAggregator(m.TotalAssets(), opts.Mode, opts.OnProgress)
	bundle := &AssetBundle{Manifest: m}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rt, err := loader.Initialize(gctx)
		if err != nil {
			return fmt.Errorf("initialize runtime: %w", err)
		}
		bundle.Runtime = rt
		return nil
	})

	for _, spec := range m.Specs() {
		progress := func(loaded, total int64) {
			agg.Report(spec.Index, spec.Label, AssetPercent(loaded, total))
		}
		g.Go(func() error {
			switch spec.Kind {
			case KindMotion, KindCameraMotion:
				name := "motion"
				if spec.Kind == KindCameraMotion {
					name = "cameraMotion"
				}
				anim, err := loader.LoadAnimation(gctx, name, spec.Path, progress)
				if err != nil {
					return fmt.Errorf("load %s %q: %w", spec.Label, spec.Path, err)
				}
				if spec.Kind == KindMotion {
					bundle.Motion = anim
				} else {
					bundle.CameraMotion = anim
				}
			case KindModel:
				model, err := loader.LoadModel(gctx, spec.Path, progress)
				if err != nil {
					return fmt.Errorf("load %s %q: %w", spec.Label, spec.Path, err)
				}
				bundle.Model = model
			case KindStageModel:
				model, err := loader.LoadModel(gctx, spec.Path, progress)
				if err != nil {
					if gctx.Err() != nil {
						return gctx.Err()
					}
					logf(opts.Logger, "stage model load failed path=%s err=%v", spec.Path, err)
					return nil
				}
				bundle.Stage = model
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundle, nil
}

func logf(logger *log.Logger, format string, args ...any) {
	if logger == nil {
		return
	}
	logger.Printf(format, args...)
}
