package viewer

import (
	"github.com/mashirovoc/blog/internal/platform/timeouts"
	"github.com/mashirovoc/blog/internal/scene"
	module "github.com/mashirovoc/blog/internal/services/web/module"
)

// ManifestDocument is the bootstrap document fetched by viewer.js.
type ManifestDocument struct {
	Manifest     scene.Manifest `json:"manifest"`
	Assets       []AssetEntry   `json:"assets"`
	TotalAssets  int            `json:"totalAssets"`
	ProgressMode string         `json:"progressMode"`
	Rig          scene.Rig      `json:"rig"`
	Timings      Timings        `json:"timings"`
}

// AssetEntry is one progress slice of the load plan.
type AssetEntry struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// Timings are the lifecycle delays applied by the client.
type Timings struct {
	StartDelayMs   int64 `json:"startDelayMs"`
	RestartDelayMs int64 `json:"restartDelayMs"`
}

type service struct {
	cfg module.ViewerConfig
}

func newService(cfg module.ViewerConfig) service {
	return service{cfg: cfg}
}

func (s service) enabled() bool {
	return s.cfg.Enabled && s.cfg.Manifest.Validate() == nil
}

func (s service) document() ManifestDocument {
	specs := s.cfg.Manifest.Specs()
	assets := make([]AssetEntry, 0, len(specs))
	for _, spec := range specs {
		assets = append(assets, AssetEntry{Index: spec.Index, Label: spec.Label, Path: spec.Path})
	}
	return ManifestDocument{
		Manifest:     s.cfg.Manifest,
		Assets:       assets,
		TotalAssets:  s.cfg.Manifest.TotalAssets(),
		ProgressMode: s.cfg.Mode.String(),
		Rig:          scene.NewRig(),
		Timings: Timings{
			StartDelayMs:   timeouts.ViewerStartDelay.Milliseconds(),
			RestartDelayMs: timeouts.ViewerRestartDelay.Milliseconds(),
		},
	}
}
