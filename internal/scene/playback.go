package scene

import (
	"context"
	"log"
	"sync"
	"time"
)

// PlaybackState is the state of the looping timeline.
type PlaybackState int

const (
	PlaybackIdle PlaybackState = iota
	PlaybackPlaying
	PlaybackEnded
	PlaybackSeeking
	PlaybackStopped
)

func (s PlaybackState) String() string {
	switch s {
	case PlaybackIdle:
		return "idle"
	case PlaybackPlaying:
		return "playing"
	case PlaybackEnded:
		return "ended"
	case PlaybackSeeking:
		return "seeking"
	case PlaybackStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Playback loops a Player: when the track reaches its end it waits
// restartDelay, seeks to zero and plays again. A single tick observer is
// registered for the lifetime of the Playback.
type Playback struct {
	player       Player
	clock        Clock
	restartDelay time.Duration
	logger       *log.Logger

	mu       sync.Mutex
	state    PlaybackState
	tick     Handle
	attached bool
	restart  Timer
	loops    int
}

// NewPlayback wraps player. It does not start playing.
func NewPlayback(player Player, clock Clock, restartDelay time.Duration, logger *log.Logger) *Playback {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Playback{player: player, clock: clock, restartDelay: restartDelay, logger: logger}
}

// Start plays from the current position. Calls after the first are no-ops.
func (p *Playback) Start() {
	p.mu.Lock()
	if p.state != PlaybackIdle {
		p.mu.Unlock()
		return
	}
	p.state = PlaybackPlaying
	p.tick = p.player.OnTick(p.onTick)
	p.attached = true
	p.mu.Unlock()

	p.player.Play()
}

func (p *Playback) onTick() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != PlaybackPlaying {
		return
	}
	if p.player.Position() < p.player.Duration() {
		return
	}
	p.state = PlaybackEnded
	p.restart = p.clock.AfterFunc(p.restartDelay, p.rewind)
}

func (p *Playback) rewind() {
	p.mu.Lock()
	if p.state != PlaybackEnded {
		p.mu.Unlock()
		return
	}
	p.state = PlaybackSeeking
	p.restart = nil
	p.mu.Unlock()

	if err := p.player.Seek(context.Background(), 0); err != nil {
		logf(p.logger, "playback seek failed err=%v", err)
	}

	p.mu.Lock()
	if p.state != PlaybackSeeking {
		p.mu.Unlock()
		return
	}
	p.state = PlaybackPlaying
	p.loops++
	p.mu.Unlock()

	p.player.Play()
}

// Stop cancels a pending restart and detaches the tick observer.
// It is safe to call more than once.
func (p *Playback) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = PlaybackStopped
	if p.restart != nil {
		p.restart.Stop()
		p.restart = nil
	}
	if p.attached {
		p.player.RemoveTick(p.tick)
		p.attached = false
	}
}

// State returns the current state.
func (p *Playback) State() PlaybackState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Loops is the number of completed restarts.
func (p *Playback) Loops() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loops
}
