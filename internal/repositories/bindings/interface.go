package bindings

//go:generate mockgen -destination=mock/mock.go -package=mockbindings -source=interface.go

import (
	"context"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
)

// Repository defines the interface for binding set storage
type Repository interface {
	// Create stores a new binding set
	Create(ctx context.Context, set *entities.BindingSet) error

	// Get retrieves a binding set by ID
	Get(ctx context.Context, id string) (*entities.BindingSet, error)

	// Update replaces an existing binding set
	Update(ctx context.Context, set *entities.BindingSet) error

	// Delete removes a binding set
	Delete(ctx context.Context, id string) error

	// List returns every binding set sorted by ID
	List(ctx context.Context) ([]*entities.BindingSet, error)
}
