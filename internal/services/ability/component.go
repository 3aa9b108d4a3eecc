package ability

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
	"github.com/KirkDiggler/ability-dispatch/internal/logger"
)

// component is the in-process ability system attached to one pawn
type component struct {
	ownerID  string
	registry *HandlerRegistry
	log      *zap.Logger

	mu      sync.RWMutex
	granted map[entities.AbilityID]struct{}
	order   []entities.AbilityID
	active  map[entities.AbilityID]struct{}
}

// ComponentConfig holds configuration for the ability component
type ComponentConfig struct {
	OwnerID  string
	Registry *HandlerRegistry
	Logger   *zap.Logger
}

// NewComponent creates an ability component for one owner
func NewComponent(cfg *ComponentConfig) Component {
	if cfg == nil {
		panic("ability component config is required")
	}

	registry := cfg.Registry
	if registry == nil {
		registry = NewHandlerRegistry()
	}

	return &component{
		ownerID:  cfg.OwnerID,
		registry: registry,
		log:      logger.OrNop(cfg.Logger).With(zap.String("owner", cfg.OwnerID)),
		granted:  make(map[entities.AbilityID]struct{}),
		active:   make(map[entities.AbilityID]struct{}),
	}
}

func (c *component) RegisterAbility(id entities.AbilityID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.granted[id]; ok {
		return
	}
	c.granted[id] = struct{}{}
	c.order = append(c.order, id)

	c.log.Debug("ability granted", zap.String("ability", string(id)))
}

func (c *component) TryActivate(ctx context.Context, id entities.AbilityID) bool {
	if err := c.Activate(ctx, id); err != nil {
		c.log.Debug("activation declined",
			zap.String("ability", string(id)),
			zap.Error(err))
		return false
	}
	return true
}

func (c *component) Activate(ctx context.Context, id entities.AbilityID) error {
	c.mu.Lock()
	if _, ok := c.granted[id]; !ok {
		c.mu.Unlock()
		return dispatcherr.NotFoundf("ability %s not granted", id).
			WithMeta("ability", string(id))
	}
	if _, ok := c.active[id]; ok {
		c.mu.Unlock()
		return dispatcherr.ActivationRejectedf("ability %s already active", id).
			WithMeta("ability", string(id))
	}
	c.mu.Unlock()

	input := &ActivationInput{
		OwnerID: c.ownerID,
		Ability: id,
	}

	handler, hasHandler := c.registry.Get(id)
	if !hasHandler {
		// No specific handler, the ability is a fire-and-forget action
		c.log.Info("ability activated", zap.String("ability", string(id)))
		return nil
	}

	if err := handler.CanActivate(ctx, input); err != nil {
		return dispatcherr.WrapWithCode(err, dispatcherr.CodeActivationRejected, "ability cannot activate").
			WithMeta("ability", string(id))
	}

	blocking := false
	if b, ok := handler.(Blocker); ok {
		blocking = b.Blocking()
	}

	if blocking {
		c.mu.Lock()
		if _, ok := c.active[id]; ok {
			c.mu.Unlock()
			return dispatcherr.ActivationRejectedf("ability %s already active", id).
				WithMeta("ability", string(id))
		}
		c.active[id] = struct{}{}
		c.mu.Unlock()
	}

	if err := handler.Activate(ctx, input); err != nil {
		if blocking {
			c.mu.Lock()
			delete(c.active, id)
			c.mu.Unlock()
		}
		return dispatcherr.WrapWithCode(err, dispatcherr.CodeActivationRejected, "ability activation failed").
			WithMeta("ability", string(id))
	}

	c.log.Info("ability activated",
		zap.String("ability", string(id)),
		zap.Bool("blocking", blocking))
	return nil
}

func (c *component) EndAbility(id entities.AbilityID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.active[id]; !ok {
		return false
	}
	delete(c.active, id)
	return true
}

func (c *component) HasAbility(id entities.AbilityID) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.granted[id]
	return ok
}

func (c *component) Abilities() []entities.AbilityID {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]entities.AbilityID, len(c.order))
	copy(out, c.order)
	return out
}
