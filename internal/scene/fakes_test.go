package scene

import (
	"context"
	"fmt"
	"sync"
	"time"
)

type fakeAnimation struct {
	name     string
	duration time.Duration
}

func (a fakeAnimation) Name() string            { return a.name }
func (a fakeAnimation) Duration() time.Duration { return a.duration }

type fakeModel struct{ path string }

func (m fakeModel) Name() string   { return m.path }
func (m fakeModel) MeshCount() int { return 1 }

type fakeRuntime struct{}

func (fakeRuntime) Name() string { return "fake" }

// fakeEngine records every call. Loads report 0, 50 and 100 percent unless
// a path is listed in failures or gates.
type fakeEngine struct {
	mu         sync.Mutex
	failures   map[string]error
	gates      map[string]chan struct{}
	initErr    error
	assembleFn func() (*fakeScene, error)

	calls      []string
	onFrame    func()
	running    bool
	disposed   int
	resizes    int
	lastScene  *fakeScene
	lastBundle *AssetBundle
}

func newFakeEngine() *fakeEngine {
	return &fakeEngine{failures: map[string]error{}, gates: map[string]chan struct{}{}}
}

func (e *fakeEngine) record(call string) {
	e.mu.Lock()
	e.calls = append(e.calls, call)
	e.mu.Unlock()
}

func (e *fakeEngine) load(ctx context.Context, path string, progress LoadProgressFunc) error {
	e.mu.Lock()
	gate := e.gates[path]
	err := e.failures[path]
	e.mu.Unlock()
	if gate != nil {
		<-gate
	}
	if err != nil {
		return err
	}
	progress(0, 100)
	progress(50, 100)
	progress(100, 100)
	return nil
}

func (e *fakeEngine) Initialize(context.Context) (Runtime, error) {
	e.record("initialize")
	if e.initErr != nil {
		return nil, e.initErr
	}
	return fakeRuntime{}, nil
}

func (e *fakeEngine) LoadAnimation(ctx context.Context, name, path string, progress LoadProgressFunc) (Animation, error) {
	e.record("animation " + name)
	if err := e.load(ctx, path, progress); err != nil {
		return nil, err
	}
	return fakeAnimation{name: name, duration: 10 * time.Second}, nil
}

func (e *fakeEngine) LoadModel(ctx context.Context, path string, progress LoadProgressFunc) (Model, error) {
	e.record("model " + path)
	if err := e.load(ctx, path, progress); err != nil {
		return nil, err
	}
	return fakeModel{path: path}, nil
}

func (e *fakeEngine) Assemble(_ context.Context, _ Rig, bundle *AssetBundle) (Scene, error) {
	e.record("assemble")
	var sc *fakeScene
	var err error
	if e.assembleFn != nil {
		sc, err = e.assembleFn()
	} else {
		sc = newFakeScene()
	}
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	e.lastScene = sc
	e.lastBundle = bundle
	e.mu.Unlock()
	return sc, nil
}

func (e *fakeEngine) RunRenderLoop(onFrame func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.onFrame = onFrame
	e.running = true
}

func (e *fakeEngine) StopRenderLoop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.running = false
	e.calls = append(e.calls, "stop render loop")
}

func (e *fakeEngine) Resize() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.resizes++
}

func (e *fakeEngine) Dispose() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disposed++
	e.calls = append(e.calls, "engine dispose")
}

// frame runs one render loop iteration if the loop is running.
func (e *fakeEngine) frame() {
	e.mu.Lock()
	fn, running := e.onFrame, e.running
	e.mu.Unlock()
	if running && fn != nil {
		fn()
	}
}

func (e *fakeEngine) scene() *fakeScene {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastScene
}

type fakeScene struct {
	mu        sync.Mutex
	renders   int
	optimizes int
	releases  []string
	player    *fakePlayer
	audio     *fakeAudio
}

func newFakeScene() *fakeScene {
	return &fakeScene{player: newFakePlayer(10 * time.Second), audio: &fakeAudio{}}
}

func (s *fakeScene) Render() {
	s.mu.Lock()
	s.renders++
	s.mu.Unlock()
}

func (s *fakeScene) Optimize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.optimizes++
}

func (s *fakeScene) Optimized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.optimizes > 0
}

func (s *fakeScene) Player() Player { return s.player }
func (s *fakeScene) Audio() Audio   { return s.audio }

func (s *fakeScene) release(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releases = append(s.releases, name)
}

func (s *fakeScene) DisposeAudio()     { s.release("audio") }
func (s *fakeScene) DisposeMeshes()    { s.release("meshes") }
func (s *fakeScene) DisposeMaterials() { s.release("materials") }
func (s *fakeScene) DisposeTextures()  { s.release("textures") }
func (s *fakeScene) Dispose()          { s.release("scene") }

func (s *fakeScene) released() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.releases...)
}

type fakePlayer struct {
	mu       sync.Mutex
	duration time.Duration
	position time.Duration
	plays    int
	seeks    []time.Duration
	next     Handle
	ticks    map[Handle]func()
}

func newFakePlayer(d time.Duration) *fakePlayer {
	return &fakePlayer{duration: d, ticks: map[Handle]func(){}}
}

func (p *fakePlayer) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plays++
}

func (p *fakePlayer) Seek(_ context.Context, position time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.position = position
	p.seeks = append(p.seeks, position)
	return nil
}

func (p *fakePlayer) Duration() time.Duration { return p.duration }

func (p *fakePlayer) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.position
}

func (p *fakePlayer) OnTick(fn func()) Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next++
	p.ticks[p.next] = fn
	return p.next
}

func (p *fakePlayer) RemoveTick(h Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.ticks, h)
}

// advance moves the position and notifies tick observers.
func (p *fakePlayer) advance(to time.Duration) {
	p.mu.Lock()
	p.position = to
	fns := make([]func(), 0, len(p.ticks))
	for _, fn := range p.ticks {
		fns = append(fns, fn)
	}
	p.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

func (p *fakePlayer) observers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.ticks)
}

func (p *fakePlayer) playCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plays
}

type fakeAudio struct {
	mu    sync.Mutex
	muted bool
}

func (a *fakeAudio) Mute()   { a.mu.Lock(); a.muted = true; a.mu.Unlock() }
func (a *fakeAudio) Unmute() { a.mu.Lock(); a.muted = false; a.mu.Unlock() }

func (a *fakeAudio) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}

type fakeHost struct {
	mu        sync.Mutex
	next      Handle
	listeners map[Handle]func()
}

func newFakeHost() *fakeHost {
	return &fakeHost{listeners: map[Handle]func(){}}
}

func (h *fakeHost) AddResizeListener(fn func()) Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.listeners[h.next] = fn
	return h.next
}

func (h *fakeHost) RemoveResizeListener(handle Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, handle)
}

func (h *fakeHost) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

func (h *fakeHost) resize() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.listeners))
	for _, fn := range h.listeners {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// fakeClock only fires timers when the test calls advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Time
	fn      func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, fn func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now.Add(d), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// advance moves time forward and runs every timer that became due.
func (c *fakeClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []func()
	for _, t := range c.timers {
		if !t.stopped && !t.fired && !t.at.After(c.now) {
			t.fired = true
			due = append(due, t.fn)
		}
	}
	c.mu.Unlock()
	for _, fn := range due {
		fn()
	}
}

func (c *fakeClock) pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func testManifest(stage bool) Manifest {
	return DefaultManifest("/mmd", stage)
}

var errBoom = fmt.Errorf("boom")
