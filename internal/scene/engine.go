// Package scene orchestrates the character-animation viewer: concurrent asset
// loading with aggregated progress, rig assembly, playback looping and
// session teardown. Rendering itself is delegated to an Engine.
package scene

import (
	"context"
	"time"
)

// LoadProgressFunc receives byte progress for one asset. total is -1 when
// the size is unknown.
type LoadProgressFunc func(loaded, total int64)

// Runtime is the initialized physics/animation runtime.
type Runtime interface {
	Name() string
}

// Animation is a loaded motion or camera track.
type Animation interface {
	Name() string
	// Duration is the track length at the engine frame rate.
	Duration() time.Duration
}

// Model is a loaded character or stage model.
type Model interface {
	Name() string
	MeshCount() int
}

// Loader initializes the runtime and decodes assets.
type Loader interface {
	Initialize(ctx context.Context) (Runtime, error)
	LoadAnimation(ctx context.Context, name, path string, progress LoadProgressFunc) (Animation, error)
	LoadModel(ctx context.Context, path string, progress LoadProgressFunc) (Model, error)
}

// Handle identifies a registered listener so it can be removed later.
type Handle uint64

// Player drives the bound timeline.
type Player interface {
	Play()
	Seek(ctx context.Context, position time.Duration) error
	Duration() time.Duration
	Position() time.Duration
	// OnTick registers fn to run after every animation step.
	OnTick(fn func()) Handle
	RemoveTick(h Handle)
}

// Audio is the soundtrack bound to the runtime.
type Audio interface {
	Mute()
	Unmute()
	Muted() bool
}

// Scene is an assembled scene. Release methods are called once each, in
// the order audio, meshes, materials, textures, scene.
type Scene interface {
	Render()
	// Optimize freezes static state. Calls after the first are no-ops.
	Optimize()
	Optimized() bool
	Player() Player
	Audio() Audio

	DisposeAudio()
	DisposeMeshes()
	DisposeMaterials()
	DisposeTextures()
	Dispose()
}

// Engine is the rendering backend.
type Engine interface {
	Loader
	Assemble(ctx context.Context, rig Rig, bundle *AssetBundle) (Scene, error)
	// RunRenderLoop calls onFrame once per frame until StopRenderLoop.
	RunRenderLoop(onFrame func())
	// StopRenderLoop returns once no further frame callbacks will run.
	StopRenderLoop()
	Resize()
	Dispose()
}

// Host is the environment that emits resize notifications.
type Host interface {
	AddResizeListener(fn func()) Handle
	RemoveResizeListener(h Handle)
}
