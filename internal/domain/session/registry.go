package session

import (
	"sync"

	"github.com/tcacomm/tca-server/internal/domain/model"
)

// Registry maps authenticated session IDs to their terminal contexts. It is
// process-local: contexts die with the process, while the authenticated
// session record itself lives in the session store.
type Registry struct {
	mu       sync.RWMutex
	contexts map[string]*Context
	limits   Limits
}

// NewRegistry creates a registry applying the given limits to new contexts.
func NewRegistry(limits Limits) *Registry {
	return &Registry{
		contexts: make(map[string]*Context),
		limits:   limits.withDefaults(),
	}
}

// Create registers a fresh lobby context for the session ID, replacing any
// prior context under the same ID (a re-login resets terminal state).
func (r *Registry) Create(sessionID, username string, role model.Role) *Context {
	ctx := NewContext(username, role, r.limits)
	r.mu.Lock()
	r.contexts[sessionID] = ctx
	r.mu.Unlock()
	return ctx
}

// Get returns the context for a session ID, or false when none is registered
// (unknown ID, or a context lost to a process restart).
func (r *Registry) Get(sessionID string) (*Context, bool) {
	r.mu.RLock()
	ctx, ok := r.contexts[sessionID]
	r.mu.RUnlock()
	return ctx, ok
}

// Remove drops the context for a session ID. Removing an absent ID is a no-op.
func (r *Registry) Remove(sessionID string) {
	r.mu.Lock()
	delete(r.contexts, sessionID)
	r.mu.Unlock()
}

// Len returns the number of live contexts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contexts)
}
