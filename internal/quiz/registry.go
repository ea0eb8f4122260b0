package quiz

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry tracks live engines by session ID for the HTTP surface.
// Safe for concurrent use. Every lookup refreshes the session's last-access
// time; sessions a client abandoned without deleting are reclaimed through
// PurgeIdle.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*registryEntry
	now     func() time.Time
}

type registryEntry struct {
	engine     *Engine
	lastAccess time.Time
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[string]*registryEntry),
		now:     time.Now,
	}
}

// WithClock replaces the registry's time source, used by tests.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	r.now = now
	return r
}

// Add registers an engine and returns its generated session ID.
func (r *Registry) Add(e *Engine) string {
	id := uuid.NewString()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[id] = &registryEntry{engine: e, lastAccess: r.now()}
	return id
}

// Get returns the engine for a session ID and marks the session as active.
func (r *Registry) Get(id string) (*Engine, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	entry.lastAccess = r.now()
	return entry.engine, true
}

// Remove forgets a session. Removing an unknown ID is a no-op.
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// PurgeIdle resets and forgets every session untouched for longer than
// maxIdle, returning how many were removed.
func (r *Registry) PurgeIdle(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-maxIdle)
	purged := 0
	for id, entry := range r.entries {
		if entry.lastAccess.Before(cutoff) {
			entry.engine.Reset()
			delete(r.entries, id)
			purged++
		}
	}
	return purged
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
