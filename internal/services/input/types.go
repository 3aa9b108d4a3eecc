package input

//go:generate mockgen -destination=mock/mock_component.go -package=mockinput -source=types.go

import (
	"context"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
)

// Callback receives one triggered input
type Callback func(ctx context.Context, in entities.InputID)

// SubscriptionHandle identifies one Subscribe call
type SubscriptionHandle string

// Component maps device keys to named inputs and distributes trigger events
type Component interface {
	// Subscribe registers cb for every trigger of in
	Subscribe(in entities.InputID, cb Callback) SubscriptionHandle

	// Unsubscribe cancels a subscription. Unknown handles return false.
	Unsubscribe(h SubscriptionHandle) bool

	// Trigger delivers in to its subscribers and returns how many ran
	Trigger(ctx context.Context, in entities.InputID) int

	// AddMappingContext activates a key mapping context, replacing one with the same name
	AddMappingContext(mc *entities.MappingContext) error

	// RemoveMappingContext deactivates a context by name
	RemoveMappingContext(name string) bool

	// PressKey resolves key through the active contexts and triggers the input
	PressKey(ctx context.Context, key string) (entities.InputID, error)
}
