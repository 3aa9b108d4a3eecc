// Package dispatch resolves triggered inputs to ability activation requests.
//
// A Table is built once per possession from an ordered list of bindings.
// Building registers every bound ability with the pawn's ability system and
// subscribes each bound input on the player's input component. Each trigger
// is then looked up and forwarded to the ability system's TryActivate.
package dispatch

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
	"github.com/KirkDiggler/ability-dispatch/internal/logger"
	"github.com/KirkDiggler/ability-dispatch/internal/services/ability"
	"github.com/KirkDiggler/ability-dispatch/internal/services/input"
)

// State is the binding state of a table
type State int

const (
	// StateUnbound means there is no table and no live subscription
	StateUnbound State = iota
	// StateBound means the table is populated and subscriptions are live
	StateBound
)

func (s State) String() string {
	switch s {
	case StateBound:
		return "bound"
	default:
		return "unbound"
	}
}

// Config holds configuration for a dispatch table
type Config struct {
	Logger *zap.Logger
}

// Table maps inputs to abilities for a single controller
type Table struct {
	log *zap.Logger

	mu        sync.RWMutex
	state     State
	bindings  map[entities.InputID]entities.AbilityID
	abilities ability.Component
	inputs    input.Component
	handles   []input.SubscriptionHandle
}

// NewTable creates an unbound table
func NewTable(cfg *Config) *Table {
	if cfg == nil {
		cfg = &Config{}
	}

	return &Table{
		log:      logger.OrNop(cfg.Logger),
		bindings: make(map[entities.InputID]entities.AbilityID),
	}
}

// Build replaces the table with bindings. Any previous subscriptions are
// cancelled first. When an entry repeats an input, the last one wins.
// On error the table is left empty and unbound.
func (t *Table) Build(ctx context.Context, bindings []entities.BindingEntry, abilities ability.Component, inputs input.Component) error {
	t.Unbind()

	if abilities == nil {
		t.log.Warn("skipping binding, no ability system")
		return dispatcherr.MissingSubsystem("ability system is required")
	}
	if inputs == nil {
		t.log.Warn("skipping binding, no input component")
		return dispatcherr.MissingSubsystem("input component is required")
	}

	for i, entry := range bindings {
		if err := entry.Validate(); err != nil {
			return dispatcherr.WrapWithCode(err, dispatcherr.CodeValidation, "invalid binding").
				WithMeta("index", i)
		}
	}

	table := make(map[entities.InputID]entities.AbilityID, len(bindings))
	registered := make(map[entities.AbilityID]struct{}, len(bindings))
	var order []entities.InputID

	for _, entry := range bindings {
		if _, ok := registered[entry.Ability]; !ok {
			abilities.RegisterAbility(entry.Ability)
			registered[entry.Ability] = struct{}{}
		}

		if prev, ok := table[entry.Input]; ok && prev != entry.Ability {
			t.log.Warn("duplicate input binding, last entry wins",
				zap.String("input", string(entry.Input)),
				zap.String("previous", string(prev)),
				zap.String("ability", string(entry.Ability)))
		} else if !ok {
			order = append(order, entry.Input)
		}
		table[entry.Input] = entry.Ability
	}

	handles := make([]input.SubscriptionHandle, 0, len(order))
	for _, in := range order {
		handles = append(handles, inputs.Subscribe(in, t.onTriggered))
	}

	t.mu.Lock()
	t.bindings = table
	t.abilities = abilities
	t.inputs = inputs
	t.handles = handles
	t.state = StateBound
	t.mu.Unlock()

	t.log.Info("dispatch table built",
		zap.Int("bindings", len(table)),
		zap.Int("abilities", len(registered)))

	return nil
}

// Dispatch requests activation of the ability bound to in. An input with no
// binding returns an unbound_input error and has no side effects.
func (t *Table) Dispatch(ctx context.Context, in entities.InputID) error {
	t.mu.RLock()
	id, ok := t.bindings[in]
	abilities := t.abilities
	t.mu.RUnlock()

	if !ok || abilities == nil {
		return dispatcherr.UnboundInputf("input %s is not bound", in).
			WithMeta("input", string(in))
	}

	if !abilities.TryActivate(ctx, id) {
		t.log.Debug("activation not started",
			zap.String("input", string(in)),
			zap.String("ability", string(id)))
		return nil
	}

	t.log.Debug("ability dispatched",
		zap.String("input", string(in)),
		zap.String("ability", string(id)))
	return nil
}

// onTriggered is the input callback. Unbound inputs are expected here.
func (t *Table) onTriggered(ctx context.Context, in entities.InputID) {
	if err := t.Dispatch(ctx, in); err != nil && !dispatcherr.IsUnboundInput(err) {
		t.log.Error("dispatch failed", zap.String("input", string(in)), zap.Error(err))
	}
}

// Unbind cancels all subscriptions and empties the table
func (t *Table) Unbind() {
	t.mu.Lock()
	inputs := t.inputs
	handles := t.handles
	wasBound := t.state == StateBound

	t.bindings = make(map[entities.InputID]entities.AbilityID)
	t.abilities = nil
	t.inputs = nil
	t.handles = nil
	t.state = StateUnbound
	t.mu.Unlock()

	if inputs != nil {
		for _, h := range handles {
			inputs.Unsubscribe(h)
		}
	}

	if wasBound {
		t.log.Info("dispatch table unbound", zap.Int("subscriptions", len(handles)))
	}
}

// State returns the current binding state
func (t *Table) State() State {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.state
}

// Lookup returns the ability bound to in
func (t *Table) Lookup(in entities.InputID) (entities.AbilityID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := t.bindings[in]
	return id, ok
}

// Len returns the number of bound inputs
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.bindings)
}
