package ability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/ability-dispatch/internal/entities"
	dispatcherr "github.com/KirkDiggler/ability-dispatch/internal/errors"
)

type testHandler struct {
	key       entities.AbilityID
	refuse    error
	fail      error
	blocking  bool
	activated []*ActivationInput
}

func (h *testHandler) Key() entities.AbilityID { return h.key }

func (h *testHandler) CanActivate(context.Context, *ActivationInput) error { return h.refuse }

func (h *testHandler) Activate(_ context.Context, input *ActivationInput) error {
	if h.fail != nil {
		return h.fail
	}
	h.activated = append(h.activated, input)
	return nil
}

func (h *testHandler) Blocking() bool { return h.blocking }

func newTestComponent(handlers ...Handler) Component {
	registry := NewHandlerRegistry()
	for _, h := range handlers {
		registry.Register(h)
	}
	return NewComponent(&ComponentConfig{
		OwnerID:  "pawn-1",
		Registry: registry,
	})
}

func TestComponent_RegisterAbilityIsIdempotent(t *testing.T) {
	c := newTestComponent()

	c.RegisterAbility("ability.jump")
	c.RegisterAbility("ability.dash")
	c.RegisterAbility("ability.jump")

	assert.Equal(t, []entities.AbilityID{"ability.jump", "ability.dash"}, c.Abilities())
	assert.True(t, c.HasAbility("ability.jump"))
	assert.False(t, c.HasAbility("ability.crouch"))
}

func TestComponent_Activate(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		handler  *testHandler
		grant    bool
		wantCode dispatcherr.Code
		wantRuns int
	}{
		{
			name:  "granted without handler",
			grant: true,
		},
		{
			name:     "granted with handler",
			handler:  &testHandler{key: "ability.jump"},
			grant:    true,
			wantRuns: 1,
		},
		{
			name:     "not granted",
			handler:  &testHandler{key: "ability.jump"},
			wantCode: dispatcherr.CodeNotFound,
		},
		{
			name:     "handler refuses",
			handler:  &testHandler{key: "ability.jump", refuse: errors.New("on cooldown")},
			grant:    true,
			wantCode: dispatcherr.CodeActivationRejected,
		},
		{
			name:     "handler fails",
			handler:  &testHandler{key: "ability.jump", fail: errors.New("no target")},
			grant:    true,
			wantCode: dispatcherr.CodeActivationRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Component
			if tt.handler != nil {
				c = newTestComponent(tt.handler)
			} else {
				c = newTestComponent()
			}
			if tt.grant {
				c.RegisterAbility("ability.jump")
			}

			err := c.Activate(ctx, "ability.jump")
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, dispatcherr.GetCode(err))
				assert.Equal(t, "ability.jump", dispatcherr.GetMeta(err)["ability"])
			} else {
				require.NoError(t, err)
			}

			if tt.handler != nil {
				require.Len(t, tt.handler.activated, tt.wantRuns)
				if tt.wantRuns > 0 {
					assert.Equal(t, "pawn-1", tt.handler.activated[0].OwnerID)
					assert.Equal(t, entities.AbilityID("ability.jump"), tt.handler.activated[0].Ability)
				}
			}
		})
	}
}

func TestComponent_TryActivateReportsOutcome(t *testing.T) {
	ctx := context.Background()
	refusing := &testHandler{key: "ability.dash", refuse: errors.New("not enough stamina")}
	c := newTestComponent(refusing)

	c.RegisterAbility("ability.jump")
	c.RegisterAbility("ability.dash")

	assert.True(t, c.TryActivate(ctx, "ability.jump"))
	assert.False(t, c.TryActivate(ctx, "ability.dash"))
	assert.False(t, c.TryActivate(ctx, "ability.unknown"))
}

func TestComponent_BlockingAbilityRejectsReentry(t *testing.T) {
	ctx := context.Background()
	channel := &testHandler{key: "ability.channel", blocking: true}
	c := newTestComponent(channel)
	c.RegisterAbility("ability.channel")

	require.True(t, c.TryActivate(ctx, "ability.channel"))

	err := c.Activate(ctx, "ability.channel")
	require.Error(t, err)
	assert.True(t, dispatcherr.IsActivationRejected(err))

	assert.True(t, c.EndAbility("ability.channel"))
	assert.False(t, c.EndAbility("ability.channel"))

	assert.True(t, c.TryActivate(ctx, "ability.channel"))
	assert.Len(t, channel.activated, 2)
}

func TestComponent_BlockingAbilityReleasedOnFailure(t *testing.T) {
	ctx := context.Background()
	channel := &testHandler{key: "ability.channel", blocking: true, fail: errors.New("interrupted")}
	c := newTestComponent(channel)
	c.RegisterAbility("ability.channel")

	assert.False(t, c.TryActivate(ctx, "ability.channel"))

	channel.fail = nil
	assert.True(t, c.TryActivate(ctx, "ability.channel"))
}

func TestComponent_LogsActivation(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	c := NewComponent(&ComponentConfig{
		OwnerID: "pawn-7",
		Logger:  zap.New(core),
	})
	c.RegisterAbility("ability.jump")

	require.True(t, c.TryActivate(context.Background(), "ability.jump"))

	activated := recorded.FilterMessage("ability activated").All()
	require.Len(t, activated, 1)
	assert.Equal(t, "pawn-7", activated[0].ContextMap()["owner"])
	assert.Equal(t, "ability.jump", activated[0].ContextMap()["ability"])
}

func TestNewComponent_PanicsWithoutConfig(t *testing.T) {
	assert.Panics(t, func() { NewComponent(nil) })
}

func TestHandlerFunc(t *testing.T) {
	called := 0
	h := &HandlerFunc{
		ID: "ability.wave",
		Fn: func(context.Context, *ActivationInput) error {
			called++
			return nil
		},
	}
	c := newTestComponent(h)
	c.RegisterAbility("ability.wave")

	assert.True(t, c.TryActivate(context.Background(), "ability.wave"))
	assert.Equal(t, 1, called)
}
