package bindings

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
)

// inMemoryRepository implements Repository using in-memory storage
type inMemoryRepository struct {
	mu           sync.RWMutex
	sets         map[string]*entities.BindingSet
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory binding set repository
func NewInMemoryRepository() Repository {
	return NewInMemoryRepositoryWithClock(NewTimeProvider())
}

// NewInMemoryRepositoryWithClock creates an in-memory repository with a custom clock
func NewInMemoryRepositoryWithClock(tp TimeProvider) Repository {
	return &inMemoryRepository{
		sets:         make(map[string]*entities.BindingSet),
		timeProvider: tp,
	}
}

// Create stores a new binding set
func (r *inMemoryRepository) Create(ctx context.Context, set *entities.BindingSet) error {
	if err := set.Validate(); err != nil {
		return dispatcherr.WrapWithCode(err, dispatcherr.CodeInvalidArgument, "invalid binding set")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sets[set.ID]; exists {
		return dispatcherr.AlreadyExistsf("binding set %s already exists", set.ID)
	}

	now := r.timeProvider.Now()
	set.CreatedAt = now
	set.UpdatedAt = now

	// Copy to avoid external modifications
	r.sets[set.ID] = set.Clone()
	return nil
}

// Get retrieves a binding set by ID
func (r *inMemoryRepository) Get(ctx context.Context, id string) (*entities.BindingSet, error) {
	if id == "" {
		return nil, dispatcherr.InvalidArgument("binding set ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	set, exists := r.sets[id]
	if !exists {
		return nil, dispatcherr.NotFoundf("binding set %s not found", id)
	}

	return set.Clone(), nil
}

// Update replaces an existing binding set
func (r *inMemoryRepository) Update(ctx context.Context, set *entities.BindingSet) error {
	if err := set.Validate(); err != nil {
		return dispatcherr.WrapWithCode(err, dispatcherr.CodeInvalidArgument, "invalid binding set")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.sets[set.ID]
	if !exists {
		return dispatcherr.NotFoundf("binding set %s not found", set.ID)
	}

	set.CreatedAt = existing.CreatedAt
	set.UpdatedAt = r.timeProvider.Now()

	r.sets[set.ID] = set.Clone()
	return nil
}

// Delete removes a binding set
func (r *inMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sets[id]; !exists {
		return dispatcherr.NotFoundf("binding set %s not found", id)
	}

	delete(r.sets, id)
	return nil
}

// List returns every binding set sorted by ID
func (r *inMemoryRepository) List(ctx context.Context) ([]*entities.BindingSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sets := make([]*entities.BindingSet, 0, len(r.sets))
	for _, set := range r.sets {
		sets = append(sets, set.Clone())
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].ID < sets[j].ID })

	return sets, nil
}
