package ability

//go:generate mockgen -destination=mock/mock_component.go -package=mockability -source=types.go

import (
	"context"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
)

// Component is the per-pawn ability system. It owns granted abilities and
// decides whether an activation request may start.
type Component interface {
	// RegisterAbility grants an ability. Granting a known ability is a no-op.
	RegisterAbility(id entities.AbilityID)

	// TryActivate requests activation and reports whether it began.
	// A false result is not an error.
	TryActivate(ctx context.Context, id entities.AbilityID) bool

	// Activate is TryActivate with the rejection reason
	Activate(ctx context.Context, id entities.AbilityID) error

	// EndAbility ends a blocking ability so it can be activated again
	EndAbility(id entities.AbilityID) bool

	// HasAbility reports whether id has been granted
	HasAbility(id entities.AbilityID) bool

	// Abilities returns granted abilities in registration order
	Abilities() []entities.AbilityID
}
