// Package headless is a scene.Engine without GPU output. It decodes assets
// far enough to know their length, builds an inspectable scene graph from
// the rig and drives frames from a ticker.
package headless

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"sync"
	"time"

	"github.com/mashirovoc/blog/internal/scene"
)

const (
	defaultFrameInterval = time.Second / 60
	defaultDuration      = 3 * time.Minute
)

// Config wires an Engine.
type Config struct {
	Source Source
	Clock  scene.Clock
	// FrameInterval is the render loop period.
	FrameInterval time.Duration
	// DefaultDuration is used for motion formats whose length is not read.
	DefaultDuration time.Duration
	Logger          *log.Logger
}

// Engine implements scene.Engine.
type Engine struct {
	source          Source
	clock           scene.Clock
	frameInterval   time.Duration
	defaultDuration time.Duration
	logger          *log.Logger

	mu       sync.Mutex
	stop     chan struct{}
	done     chan struct{}
	resizes  int
	disposed bool
}

// New returns an engine reading from cfg.Source.
func New(cfg Config) (*Engine, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("asset source is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = scene.SystemClock{}
	}
	if cfg.FrameInterval <= 0 {
		cfg.FrameInterval = defaultFrameInterval
	}
	if cfg.DefaultDuration <= 0 {
		cfg.DefaultDuration = defaultDuration
	}
	return &Engine{
		source:          cfg.Source,
		clock:           cfg.Clock,
		frameInterval:   cfg.FrameInterval,
		defaultDuration: cfg.DefaultDuration,
		logger:          cfg.Logger,
	}, nil
}

type runtime struct{}

func (runtime) Name() string { return "headless" }

func (e *Engine) Initialize(ctx context.Context) (scene.Runtime, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return runtime{}, nil
}

// Animation is a loaded motion track.
type Animation struct {
	name     string
	path     string
	size     int
	info     MotionInfo
	duration time.Duration
}

func (a *Animation) Name() string            { return a.name }
func (a *Animation) Duration() time.Duration { return a.duration }

// Info returns the parsed keyframe summary. It is zero for formats that are
// not parsed.
func (a *Animation) Info() MotionInfo { return a.info }

func (e *Engine) LoadAnimation(ctx context.Context, name, assetPath string, progress scene.LoadProgressFunc) (scene.Animation, error) {
	data, err := readAsset(ctx, e.source, assetPath, progress)
	if err != nil {
		return nil, err
	}
	anim := &Animation{name: name, path: assetPath, size: len(data), duration: e.defaultDuration}
	if info, err := ParseVMD(data); err == nil {
		anim.info = info
		anim.duration = info.Duration()
	} else if !errors.Is(err, errNotVMD) {
		return nil, fmt.Errorf("parse motion %q: %w", assetPath, err)
	}
	return anim, nil
}

// Model is a loaded model file.
type Model struct {
	path   string
	format string
	size   int
}

func (m *Model) Name() string   { return path.Base(m.path) }
func (m *Model) MeshCount() int { return 1 }

// Format is the detected file format.
func (m *Model) Format() string { return m.format }

func (e *Engine) LoadModel(ctx context.Context, assetPath string, progress scene.LoadProgressFunc) (scene.Model, error) {
	data, err := readAsset(ctx, e.source, assetPath, progress)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("model %q is empty", assetPath)
	}
	return &Model{path: assetPath, format: modelFormat(data), size: len(data)}, nil
}

func (e *Engine) Assemble(ctx context.Context, rig scene.Rig, bundle *scene.AssetBundle) (scene.Scene, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if bundle == nil || bundle.Model == nil || bundle.Motion == nil || bundle.CameraMotion == nil {
		return nil, fmt.Errorf("asset bundle is incomplete")
	}
	return newScene(e.clock, rig, bundle), nil
}

// RunRenderLoop starts a ticker goroutine. A running loop is replaced.
func (e *Engine) RunRenderLoop(onFrame func()) {
	e.StopRenderLoop()

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.disposed {
		return
	}
	stop, done := make(chan struct{}), make(chan struct{})
	e.stop, e.done = stop, done
	interval := e.frameInterval
	go func() {
		defer close(done)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				onFrame()
			}
		}
	}()
}

// StopRenderLoop waits for the loop goroutine to exit.
func (e *Engine) StopRenderLoop() {
	e.mu.Lock()
	stop, done := e.stop, e.done
	e.stop, e.done = nil, nil
	e.mu.Unlock()
	if stop == nil {
		return
	}
	close(stop)
	<-done
}

func (e *Engine) Resize() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resizes++
}

// Resizes is the number of Resize calls.
func (e *Engine) Resizes() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resizes
}

func (e *Engine) Dispose() {
	e.StopRenderLoop()
	e.mu.Lock()
	e.disposed = true
	e.mu.Unlock()
	if e.logger != nil {
		e.logger.Printf("headless engine disposed")
	}
}

// Disposed reports whether Dispose ran.
func (e *Engine) Disposed() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disposed
}
