package cart

import "sync"

// Registry hands out one Store per browser session. A session's cart is
// created empty on first touch and lives for the registry's (process)
// lifetime; there is no persistence here, only the sign-in snapshot side
// effect handled elsewhere.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Get returns the session's store, creating it if absent.
func (r *Registry) Get(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	store, ok := r.stores[sessionID]
	if !ok {
		store = NewStore()
		r.stores[sessionID] = store
	}
	return store
}

// Lookup returns the session's store or nil without creating one.
func (r *Registry) Lookup(sessionID string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stores[sessionID]
}

// Drop discards a session's store.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.stores, sessionID)
}
