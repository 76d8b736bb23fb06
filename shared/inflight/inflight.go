// Package inflight provides a keyed guard that admits at most one in-progress
// operation per key. It is used to reject duplicate submissions for the same
// booking while an earlier request is still waiting on the backend.
package inflight

import "sync"

type Guard struct {
	mu     sync.Mutex
	active map[string]struct{}
}

func New() *Guard {
	return &Guard{
		active: make(map[string]struct{}),
	}
}

// TryAcquire marks the key as in flight. It returns false when an operation
// for the key is already running.
func (g *Guard) TryAcquire(key string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.active[key]; busy {
		return false
	}

	g.active[key] = struct{}{}

	return true
}

// Release clears the key. Callers must release in a defer so the key is freed
// on every exit path.
func (g *Guard) Release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.active, key)
}
