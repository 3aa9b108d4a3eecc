package ability

import (
	"sort"
	"sync"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
)

// HandlerRegistry manages ability handlers
type HandlerRegistry struct {
	mu       sync.RWMutex
	handlers map[entities.AbilityID]Handler
}

// NewHandlerRegistry creates a new handler registry
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{
		handlers: make(map[entities.AbilityID]Handler),
	}
}

// Register adds a handler to the registry, replacing any previous one
func (r *HandlerRegistry) Register(handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[handler.Key()] = handler
}

// Get retrieves a handler by key
func (r *HandlerRegistry) Get(key entities.AbilityID) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, exists := r.handlers[key]
	return handler, exists
}

// List returns all registered handler keys, sorted
func (r *HandlerRegistry) List() []entities.AbilityID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]entities.AbilityID, 0, len(r.handlers))
	for key := range r.handlers {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
