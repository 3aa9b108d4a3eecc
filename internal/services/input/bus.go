package input

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
	"github.com/KirkDiggler/ability-dispatch/internal/logger"
	"github.com/KirkDiggler/ability-dispatch/internal/uuid"
)

type subscription struct {
	handle SubscriptionHandle
	input  entities.InputID
	cb     Callback
}

// Bus is the local player's input component
type Bus struct {
	ids uuid.Generator
	log *zap.Logger

	mu       sync.RWMutex
	subs     map[entities.InputID][]*subscription
	byHandle map[SubscriptionHandle]*subscription
	contexts []*entities.MappingContext
}

// BusConfig holds configuration for the input bus
type BusConfig struct {
	IDGenerator uuid.Generator
	Logger      *zap.Logger
}

// NewBus creates a new input bus
func NewBus(cfg *BusConfig) *Bus {
	if cfg == nil {
		cfg = &BusConfig{}
	}

	ids := cfg.IDGenerator
	if ids == nil {
		ids = uuid.NewGoogleUUIDGenerator()
	}

	return &Bus{
		ids:      ids,
		log:      logger.OrNop(cfg.Logger),
		subs:     make(map[entities.InputID][]*subscription),
		byHandle: make(map[SubscriptionHandle]*subscription),
	}
}

// Subscribe adds a callback for in
func (b *Bus) Subscribe(in entities.InputID, cb Callback) SubscriptionHandle {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscription{
		handle: SubscriptionHandle(b.ids.New()),
		input:  in,
		cb:     cb,
	}
	b.subs[in] = append(b.subs[in], sub)
	b.byHandle[sub.handle] = sub

	b.log.Debug("input subscribed",
		zap.String("input", string(in)),
		zap.String("handle", string(sub.handle)))

	return sub.handle
}

// Unsubscribe removes a subscription, keeping the order of the rest
func (b *Bus) Unsubscribe(h SubscriptionHandle) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.byHandle[h]
	if !ok {
		return false
	}
	delete(b.byHandle, h)

	subs := b.subs[sub.input]
	for i, s := range subs {
		if s.handle != h {
			continue
		}
		b.subs[sub.input] = append(subs[:i:i], subs[i+1:]...)
		break
	}
	if len(b.subs[sub.input]) == 0 {
		delete(b.subs, sub.input)
	}

	b.log.Debug("input unsubscribed",
		zap.String("input", string(sub.input)),
		zap.String("handle", string(h)))

	return true
}

// Trigger sends in to all subscribers in subscription order
func (b *Bus) Trigger(ctx context.Context, in entities.InputID) int {
	b.mu.RLock()
	subs := make([]*subscription, len(b.subs[in]))
	copy(subs, b.subs[in])
	b.mu.RUnlock()

	b.log.Debug("input triggered",
		zap.String("input", string(in)),
		zap.Int("subscribers", len(subs)))

	for _, sub := range subs {
		sub.cb(ctx, in)
	}
	return len(subs)
}

// SubscriberCount returns the live subscriptions for in
func (b *Bus) SubscriberCount(in entities.InputID) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs[in])
}

// AddMappingContext activates mc. Contexts are kept sorted by descending
// priority; equal priorities keep insertion order.
func (b *Bus) AddMappingContext(mc *entities.MappingContext) error {
	if err := mc.Validate(); err != nil {
		return dispatcherr.WrapWithCode(err, dispatcherr.CodeValidation, "invalid mapping context")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.removeContextLocked(mc.Name)
	b.contexts = append(b.contexts, mc)
	sort.SliceStable(b.contexts, func(i, j int) bool {
		return b.contexts[i].Priority > b.contexts[j].Priority
	})

	b.log.Info("mapping context added",
		zap.String("context", mc.Name),
		zap.Int("priority", mc.Priority),
		zap.Int("keys", len(mc.Mappings)))

	return nil
}

// RemoveMappingContext deactivates the named context
func (b *Bus) RemoveMappingContext(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.removeContextLocked(name)
}

func (b *Bus) removeContextLocked(name string) bool {
	for i, mc := range b.contexts {
		if mc.Name == name {
			b.contexts = append(b.contexts[:i:i], b.contexts[i+1:]...)
			return true
		}
	}
	return false
}

// PressKey resolves key and triggers the mapped input
func (b *Bus) PressKey(ctx context.Context, key string) (entities.InputID, error) {
	in, ok := b.resolve(key)
	if !ok {
		return "", dispatcherr.NotFoundf("key %q is not mapped", key).WithMeta("key", key)
	}

	b.Trigger(ctx, in)
	return in, nil
}

func (b *Bus) resolve(key string) (entities.InputID, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, mc := range b.contexts {
		if in, ok := mc.Resolve(key); ok {
			return in, true
		}
	}
	return "", false
}
