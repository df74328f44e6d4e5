package headless

import (
	"context"
	"sync"
	"time"

	"cogentcore.org/core/math32"

	"github.com/mashirovoc/blog/internal/scene"
)

// NodeKind classifies graph nodes.
type NodeKind string

const (
	NodeTransform NodeKind = "transform"
	NodeCamera    NodeKind = "camera"
	NodeLight     NodeKind = "light"
	NodeMesh      NodeKind = "mesh"
)

// Node is one entry of the scene graph.
type Node struct {
	Name           string
	Kind           NodeKind
	Parent         string
	Position       math32.Vector3
	CastsShadow    bool
	ReceivesShadow bool
	Pickable       bool
	Frozen         bool
}

// Graph is a snapshot of the assembled scene.
type Graph struct {
	ClearColor math32.Vector4
	Nodes      []Node
	Materials  []string
	Textures   []string
	AudioPath  string
	Released   []string
}

// Node returns the node named name.
func (g Graph) Node(name string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.Name == name {
			return n, true
		}
	}
	return Node{}, false
}

// Scene implements scene.Scene over an in-memory graph.
type Scene struct {
	mu        sync.Mutex
	graph     Graph
	frames    int
	optimized bool
	player    *Player
	audio     *Audio
}

func newScene(clock scene.Clock, rig scene.Rig, bundle *scene.AssetBundle) *Scene {
	g := Graph{ClearColor: rig.ClearColor, AudioPath: bundle.Manifest.AudioPath}
	add := func(n Node) {
		n.Pickable = true
		g.Nodes = append(g.Nodes, n)
	}
	add(Node{Name: rig.Root.Name, Kind: NodeTransform, Position: rig.Root.Position})
	add(Node{Name: rig.Camera.Name, Kind: NodeCamera, Parent: rig.Camera.Parent, Position: rig.Camera.Position})
	add(Node{Name: rig.Hemispheric.Name, Kind: NodeLight})
	add(Node{Name: rig.Directional.Name, Kind: NodeLight})
	for _, spot := range rig.Spots {
		add(Node{Name: spot.Name, Kind: NodeLight, Parent: spot.Parent, Position: spot.Position})
	}
	add(Node{Name: rig.Ground.Name, Kind: NodeMesh, Parent: rig.Ground.Parent, ReceivesShadow: rig.Ground.ReceiveShadows})
	g.Materials = append(g.Materials, rig.Ground.Name+".shadowOnly")

	add(Node{Name: bundle.Model.Name(), Kind: NodeMesh, Parent: rig.Root.Name, CastsShadow: rig.Shadow.CharacterCastsShadows})
	g.Materials = append(g.Materials, bundle.Model.Name()+".material")
	g.Textures = append(g.Textures, bundle.Model.Name()+".texture")
	if bundle.Stage != nil {
		add(Node{Name: bundle.Stage.Name(), Kind: NodeMesh, Parent: rig.Root.Name, ReceivesShadow: rig.Shadow.StageReceivesShadows})
		g.Materials = append(g.Materials, bundle.Stage.Name()+".material")
		g.Textures = append(g.Textures, bundle.Stage.Name()+".texture")
	}

	duration := bundle.Motion.Duration()
	if d := bundle.CameraMotion.Duration(); d > duration {
		duration = d
	}
	return &Scene{
		graph:  g,
		player: newPlayer(clock, duration),
		audio:  &Audio{},
	}
}

// Render advances the timeline by one frame.
func (s *Scene) Render() {
	s.mu.Lock()
	s.frames++
	s.mu.Unlock()
	s.player.step()
}

// Optimize freezes every node and disables picking.
func (s *Scene) Optimize() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.optimized {
		return
	}
	s.optimized = true
	for i := range s.graph.Nodes {
		s.graph.Nodes[i].Frozen = true
		s.graph.Nodes[i].Pickable = false
	}
}

func (s *Scene) Optimized() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.optimized
}

func (s *Scene) Player() scene.Player { return s.player }
func (s *Scene) Audio() scene.Audio   { return s.audio }

func (s *Scene) DisposeAudio() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph.AudioPath = ""
	s.graph.Released = append(s.graph.Released, "audio")
}

func (s *Scene) DisposeMeshes() {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.graph.Nodes[:0]
	for _, n := range s.graph.Nodes {
		if n.Kind != NodeMesh {
			kept = append(kept, n)
		}
	}
	s.graph.Nodes = kept
	s.graph.Released = append(s.graph.Released, "meshes")
}

func (s *Scene) DisposeMaterials() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph.Materials = nil
	s.graph.Released = append(s.graph.Released, "materials")
}

func (s *Scene) DisposeTextures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph.Textures = nil
	s.graph.Released = append(s.graph.Released, "textures")
}

func (s *Scene) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.graph.Nodes = nil
	s.graph.Released = append(s.graph.Released, "scene")
}

// Graph returns a copy of the scene graph.
func (s *Scene) Graph() Graph {
	s.mu.Lock()
	defer s.mu.Unlock()
	g := s.graph
	g.Nodes = append([]Node(nil), s.graph.Nodes...)
	g.Materials = append([]string(nil), s.graph.Materials...)
	g.Textures = append([]string(nil), s.graph.Textures...)
	g.Released = append([]string(nil), s.graph.Released...)
	return g
}

// Frames is the number of rendered frames.
func (s *Scene) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Player derives the timeline position from the clock.
type Player struct {
	clock    scene.Clock
	duration time.Duration

	mu        sync.Mutex
	playing   bool
	offset    time.Duration
	startedAt time.Time
	next      scene.Handle
	ticks     map[scene.Handle]func()
}

func newPlayer(clock scene.Clock, duration time.Duration) *Player {
	return &Player{clock: clock, duration: duration, ticks: map[scene.Handle]func(){}}
}

func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		return
	}
	p.playing = true
	p.startedAt = p.clock.Now()
}

func (p *Player) Seek(ctx context.Context, position time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.offset = min(max(position, 0), p.duration)
	p.startedAt = p.clock.Now()
	return nil
}

func (p *Player) Duration() time.Duration { return p.duration }

func (p *Player) Position() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionLocked()
}

func (p *Player) positionLocked() time.Duration {
	pos := p.offset
	if p.playing {
		pos += p.clock.Now().Sub(p.startedAt)
	}
	return min(pos, p.duration)
}

func (p *Player) OnTick(fn func()) scene.Handle {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.next++
	p.ticks[p.next] = fn
	return p.next
}

func (p *Player) RemoveTick(h scene.Handle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.ticks, h)
}

// step notifies tick observers while playing. Reaching the end pauses the
// timeline at its last frame.
func (p *Player) step() {
	p.mu.Lock()
	if !p.playing {
		p.mu.Unlock()
		return
	}
	if pos := p.positionLocked(); pos >= p.duration {
		p.offset = pos
		p.playing = false
	}
	fns := make([]func(), 0, len(p.ticks))
	for _, fn := range p.ticks {
		fns = append(fns, fn)
	}
	p.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Audio tracks the mute state of the soundtrack.
type Audio struct {
	mu    sync.Mutex
	muted bool
}

func (a *Audio) Mute() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = true
}

func (a *Audio) Unmute() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.muted = false
}

func (a *Audio) Muted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.muted
}
