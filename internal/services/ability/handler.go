package ability

import (
	"context"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
)

// Handler supplies the activation policy for one ability.
// Costs, cooldowns and effects live behind this interface.
type Handler interface {
	// Key returns the ability this handler serves (e.g. "ability.jump")
	Key() entities.AbilityID

	// CanActivate returns a non-nil reason when the ability cannot start now
	CanActivate(ctx context.Context, input *ActivationInput) error

	// Activate starts the ability
	Activate(ctx context.Context, input *ActivationInput) error
}

// Blocker is implemented by handlers whose ability stays active until
// EndAbility is called. Re-activation is rejected while active.
type Blocker interface {
	Blocking() bool
}

// ActivationInput describes one activation request
type ActivationInput struct {
	OwnerID string
	Ability entities.AbilityID
}

// HandlerFunc adapts plain functions to a Handler with no precondition
type HandlerFunc struct {
	ID entities.AbilityID
	Fn func(ctx context.Context, input *ActivationInput) error
}

func (h *HandlerFunc) Key() entities.AbilityID { return h.ID }

func (h *HandlerFunc) CanActivate(context.Context, *ActivationInput) error { return nil }

func (h *HandlerFunc) Activate(ctx context.Context, input *ActivationInput) error {
	if h.Fn == nil {
		return nil
	}
	return h.Fn(ctx, input)
}
