package headless

import (
	"sync"

	"github.com/mashirovoc/blog/internal/scene"
)

// Host is an in-process listener registry standing in for a window.
type Host struct {
	mu        sync.Mutex
	next      scene.Handle
	listeners map[scene.Handle]func()
}

func NewHost() *Host {
	return &Host{listeners: map[scene.Handle]func(){}}
}

func (h *Host) AddResizeListener(fn func()) scene.Handle {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.next++
	h.listeners[h.next] = fn
	return h.next
}

func (h *Host) RemoveResizeListener(handle scene.Handle) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.listeners, handle)
}

// Listeners is the number of registered listeners.
func (h *Host) Listeners() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.listeners)
}

// Resize notifies every listener.
func (h *Host) Resize() {
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
