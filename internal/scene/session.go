package scene

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	apperrors "github.com/mashirovoc/blog/internal/platform/errors"
	"github.com/mashirovoc/blog/internal/platform/timeouts"
)

// ErrSessionClosed is returned by Start when the session was disposed or its
// context was cancelled before loading finished.
var ErrSessionClosed = apperrors.New(apperrors.CodeSessionClosed, "scene session closed")

// State is the lifecycle state of a Session.
type State int

const (
	StateUninitialized State = iota
	StateLoading
	StateRunning
	StateDisposed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateRunning:
		return "running"
	case StateDisposed:
		return "disposed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// SessionConfig wires a Session.
type SessionConfig struct {
	Engine       Engine
	Host         Host
	Manifest     Manifest
	Rig          Rig
	Mode         Mode
	Clock        Clock
	Logger       *log.Logger
	StartDelay   time.Duration
	RestartDelay time.Duration
}

// Session owns one mounted viewer: the host listener, the assembled scene,
// the playback loop and the pending start timer.
type Session struct {
	engine       Engine
	host         Host
	manifest     Manifest
	rig          Rig
	mode         Mode
	clock        Clock
	logger       *log.Logger
	startDelay   time.Duration
	restartDelay time.Duration

	mu          sync.Mutex
	state       State
	scene       Scene
	playback    *Playback
	resize      Handle
	hasResize   bool
	startTimer  Timer
	renderStops bool
	closed      chan struct{}
	closeOnce   sync.Once
	engineOnce  sync.Once

	optimized atomic.Bool
	frames    atomic.Int64
}

// NewSession validates cfg and returns an uninitialized session.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if cfg.Host == nil {
		return nil, fmt.Errorf("host is required")
	}
	if err := cfg.Manifest.Validate(); err != nil {
		return nil, err
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock{}
	}
	if cfg.StartDelay <= 0 {
		cfg.StartDelay = timeouts.ViewerStartDelay
	}
	if cfg.RestartDelay <= 0 {
		cfg.RestartDelay = timeouts.ViewerRestartDelay
	}
	return &Session{
		engine:       cfg.Engine,
		host:         cfg.Host,
		manifest:     cfg.Manifest,
		rig:          cfg.Rig,
		mode:         cfg.Mode,
		clock:        cfg.Clock,
		logger:       cfg.Logger,
		startDelay:   cfg.StartDelay,
		restartDelay: cfg.RestartDelay,
		closed:       make(chan struct{}),
	}, nil
}

// Start loads the assets, assembles the scene and begins rendering.
// It may be called once. On failure the session is disposed and left in
// StateFailed. If the session is disposed or ctx is cancelled while
// loading, any assembled scene is released and ErrSessionClosed returned.
func (s *Session) Start(ctx context.Context, onProgress ProgressFunc) error {
	s.mu.Lock()
	if s.state != StateUninitialized {
		state := s.state
		s.mu.Unlock()
		if state == StateDisposed {
			return ErrSessionClosed
		}
		return fmt.Errorf("session already started: %s", state)
	}
	s.state = StateLoading
	s.mu.Unlock()

	loadCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.closed:
			cancel()
		case <-loadCtx.Done():
		}
	}()

	bundle, err := LoadAssets(loadCtx, s.engine, s.manifest, LoadOptions{
		Mode:       s.mode,
		OnProgress: onProgress,
		Logger:     s.logger,
	})
	var sc Scene
	if err == nil {
		sc, err = s.engine.Assemble(loadCtx, s.rig, bundle)
	}
	if err != nil {
		if s.isClosed() || ctx.Err() != nil {
			if sc != nil {
				releaseScene(sc)
			}
			s.markClosedDuringLoad()
			return ErrSessionClosed
		}
		logf(s.logger, "scene bootstrap failed err=%v", err)
		s.fail()
		return fmt.Errorf("bootstrap scene: %w", err)
	}

	s.mu.Lock()
	if s.state != StateLoading || ctx.Err() != nil {
		s.mu.Unlock()
		releaseScene(sc)
		s.markClosedDuringLoad()
		return ErrSessionClosed
	}
	s.scene = sc
	s.resize = s.host.AddResizeListener(s.engine.Resize)
	s.hasResize = true
	if audio := sc.Audio(); audio != nil && s.rig.Audio.StartMuted {
		audio.Mute()
	}
	s.playback = NewPlayback(sc.Player(), s.clock, s.restartDelay, s.logger)
	s.engine.RunRenderLoop(func() { s.frame(sc) })
	s.renderStops = true
	s.startTimer = s.clock.AfterFunc(s.startDelay, s.playback.Start)
	s.state = StateRunning
	s.mu.Unlock()

	logf(s.logger, "scene running assets=%d stage=%t", s.manifest.TotalAssets(), bundle.Stage != nil)
	return nil
}

func (s *Session) frame(sc Scene) {
	sc.Render()
	if s.frames.Add(1) == 1 && s.optimized.CompareAndSwap(false, true) {
		sc.Optimize()
	}
}

// markClosedDuringLoad settles a session whose load lost the race with
// Dispose or cancellation.
func (s *Session) markClosedDuringLoad() {
	s.mu.Lock()
	s.state = StateDisposed
	s.mu.Unlock()
	s.signalClosed()
	s.disposeEngine()
}

func (s *Session) fail() {
	s.mu.Lock()
	s.state = StateFailed
	s.mu.Unlock()
	s.signalClosed()
	s.disposeEngine()
}

func (s *Session) disposeEngine() {
	s.engineOnce.Do(s.engine.Dispose)
}

// Dispose tears the session down. It is idempotent and safe to call while
// Start is still loading.
func (s *Session) Dispose() {
	s.mu.Lock()
	if s.state == StateDisposed || s.state == StateFailed {
		s.mu.Unlock()
		return
	}
	wasLoading := s.state == StateLoading
	s.state = StateDisposed

	hasResize, resize := s.hasResize, s.resize
	s.hasResize = false
	renderStops := s.renderStops
	s.renderStops = false
	startTimer := s.startTimer
	s.startTimer = nil
	playback := s.playback
	sc := s.scene
	s.scene = nil
	s.mu.Unlock()

	s.signalClosed()
	if wasLoading {
		// Start releases what it assembled once loading returns.
		return
	}

	if hasResize {
		s.host.RemoveResizeListener(resize)
	}
	if renderStops {
		s.engine.StopRenderLoop()
	}
	if startTimer != nil {
		startTimer.Stop()
	}
	if playback != nil {
		playback.Stop()
	}
	if sc != nil {
		releaseScene(sc)
	}
	s.disposeEngine()
	logf(s.logger, "scene disposed")
}

func releaseScene(sc Scene) {
	sc.DisposeAudio()
	sc.DisposeMeshes()
	sc.DisposeMaterials()
	sc.DisposeTextures()
	sc.Dispose()
}

func (s *Session) signalClosed() {
	s.closeOnce.Do(func() { close(s.closed) })
}

func (s *Session) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

// State returns the lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Playback returns the playback loop, or nil before the session runs.
func (s *Session) Playback() *Playback {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playback
}

// Optimized reports whether the post-first-frame optimization ran.
func (s *Session) Optimized() bool {
	return s.optimized.Load()
}

// Frames is the number of rendered frames.
func (s *Session) Frames() int64 {
	return s.frames.Load()
}

// IsClosed reports whether ErrSessionClosed matches err.
func IsClosed(err error) bool {
	return errors.Is(err, ErrSessionClosed)
}
