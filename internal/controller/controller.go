// Package controller binds a player's input to the abilities of the pawn it
// currently possesses.
package controller

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/ability-dispatch/internal/dispatch"
	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
	"github.com/KirkDiggler/ability-dispatch/internal/logger"
	"github.com/KirkDiggler/ability-dispatch/internal/repositories/bindings"
	"github.com/KirkDiggler/ability-dispatch/internal/services/ability"
	"github.com/KirkDiggler/ability-dispatch/internal/services/input"
)

// Pawn is an actor the controller can possess
type Pawn interface {
	ID() string

	// AbilitySystem returns nil when the pawn has no ability component
	AbilitySystem() ability.Component

	// BindingSetID returns "" when the pawn carries no binding data
	BindingSetID() string
}

// Config holds the controller's collaborators
type Config struct {
	// Inputs is the local player's input component
	Inputs   input.Component
	Bindings bindings.Repository
	Logger   *zap.Logger
}

// Controller owns one dispatch table and the pawn it is bound to
type Controller struct {
	inputs   input.Component
	bindings bindings.Repository
	log      *zap.Logger
	table    *dispatch.Table

	mu   sync.RWMutex
	pawn Pawn
}

// New creates a controller with nothing possessed
func New(cfg *Config) *Controller {
	if cfg == nil || cfg.Bindings == nil {
		panic("controller config with a bindings repository is required")
	}

	log := logger.OrNop(cfg.Logger)
	return &Controller{
		inputs:   cfg.Inputs,
		bindings: cfg.Bindings,
		log:      log,
		table:    dispatch.NewTable(&dispatch.Config{Logger: log.Named("dispatch")}),
	}
}

// SetupInput activates a key mapping context on the player's input component
func (c *Controller) SetupInput(ctx context.Context, mc *entities.MappingContext) error {
	if c.inputs == nil {
		return dispatcherr.MissingSubsystem("input component is required")
	}
	return c.inputs.AddMappingContext(mc)
}

// OnPossess takes control of p and rebuilds the dispatch table from the
// pawn's binding set. Collaborators are resolved again on every call. When
// one is missing, binding is skipped for this possession and the error is
// returned; the pawn is still possessed.
func (c *Controller) OnPossess(ctx context.Context, p Pawn) error {
	c.table.Unbind()

	c.mu.Lock()
	c.pawn = p
	c.mu.Unlock()

	if p == nil {
		return dispatcherr.MissingSubsystem("no pawn to possess")
	}

	log := c.log.With(zap.String("pawn", p.ID()))

	abilities := p.AbilitySystem()
	if abilities == nil {
		log.Warn("pawn has no ability system, skipping binding")
		return dispatcherr.MissingSubsystemf("pawn %s has no ability system", p.ID()).
			WithMeta("pawn", p.ID())
	}
	if c.inputs == nil {
		log.Warn("no input component, skipping binding")
		return dispatcherr.MissingSubsystem("input component is required")
	}

	setID := p.BindingSetID()
	if setID == "" {
		log.Warn("pawn has no binding data, skipping binding")
		return dispatcherr.MissingSubsystemf("pawn %s has no binding data", p.ID()).
			WithMeta("pawn", p.ID())
	}

	set, err := c.bindings.Get(ctx, setID)
	if err != nil {
		log.Warn("failed to load binding set", zap.String("binding_set", setID), zap.Error(err))
		return dispatcherr.Wrapf(err, "failed to load binding set %s", setID).
			WithMeta("binding_set", setID)
	}

	if err := c.table.Build(ctx, set.Bindings, abilities, c.inputs); err != nil {
		return dispatcherr.Wrapf(err, "failed to bind pawn %s", p.ID())
	}

	log.Info("pawn possessed",
		zap.String("binding_set", set.ID),
		zap.Int("bindings", c.table.Len()))
	return nil
}

// OnUnpossess releases the pawn and cancels its input subscriptions
func (c *Controller) OnUnpossess(ctx context.Context) {
	c.table.Unbind()

	c.mu.Lock()
	p := c.pawn
	c.pawn = nil
	c.mu.Unlock()

	if p != nil {
		c.log.Info("pawn released", zap.String("pawn", p.ID()))
	}
}

// PressKey forwards a device key to the input component
func (c *Controller) PressKey(ctx context.Context, key string) (entities.InputID, error) {
	if c.inputs == nil {
		return "", dispatcherr.MissingSubsystem("input component is required")
	}
	return c.inputs.PressKey(ctx, key)
}

// Pawn returns the possessed pawn, or nil
func (c *Controller) Pawn() Pawn {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pawn
}

// Table exposes the dispatch table for inspection
func (c *Controller) Table() *dispatch.Table {
	return c.table
}
