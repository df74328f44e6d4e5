package scene

import (
	"fmt"
	"strings"
)

// AssetKind identifies one progress-reporting asset of a manifest.
type AssetKind int

const (
	KindMotion AssetKind = iota
	KindCameraMotion
	KindModel
	KindStageModel
)

// Label is the name shown next to the loading percentage.
func (k AssetKind) Label() string {
	switch k {
	case KindMotion:
		return "Motion"
	case KindCameraMotion:
		return "Camera Motion"
	case KindModel:
		return "Model"
	case KindStageModel:
		return "Stage Model"
	default:
		return fmt.Sprintf("AssetKind(%d)", int(k))
	}
}

// AssetSpec is one entry of the load plan.
type AssetSpec struct {
	Kind  AssetKind
	Index int
	Label string
	Path  string
}

// Manifest names the files needed to build one scene. StagePath is optional.
// Paths are passed to the engine as-is; format checks belong to the loader.
type Manifest struct {
	ModelPath        string `json:"modelPath"`
	MotionPath       string `json:"motionPath"`
	CameraMotionPath string `json:"cameraMotionPath"`
	StagePath        string `json:"stagePath,omitempty"`
	AudioPath        string `json:"audioPath"`
}

// HasStage reports whether the optional stage model is present.
func (m Manifest) HasStage() bool {
	return strings.TrimSpace(m.StagePath) != ""
}

// TotalAssets is the number of progress slices: 3, or 4 with a stage.
func (m Manifest) TotalAssets() int {
	if m.HasStage() {
		return 4
	}
	return 3
}

// Specs returns the load plan in slice order.
func (m Manifest) Specs() []AssetSpec {
	specs := []AssetSpec{
		{Kind: KindMotion, Path: m.MotionPath},
		{Kind: KindCameraMotion, Path: m.CameraMotionPath},
		{Kind: KindModel, Path: m.ModelPath},
	}
	if m.HasStage() {
		specs = append(specs, AssetSpec{Kind: KindStageModel, Path: m.StagePath})
	}
	for i := range specs {
		specs[i].Index = i
		specs[i].Label = specs[i].Kind.Label()
	}
	return specs
}

// Validate checks that every required path is set.
func (m Manifest) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"model path", m.ModelPath},
		{"motion path", m.MotionPath},
		{"camera motion path", m.CameraMotionPath},
		{"audio path", m.AudioPath},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("manifest %s is required", r.name)
		}
	}
	return nil
}

// DefaultManifest returns the manifest of the bundled viewer assets under
// root. The stage model is included when withStage is true.
func DefaultManifest(root string, withStage bool) Manifest {
	root = strings.TrimRight(root, "/")
	m := Manifest{
		ModelPath:        root + "/Towa.bpmx",
		MotionPath:       root + "/dance.bvmd",
		CameraMotionPath: root + "/camera.bvmd",
		AudioPath:        root + "/sound.mp3",
	}
	if withStage {
		m.StagePath = root + "/stage.bpmx"
	}
	return m
}
