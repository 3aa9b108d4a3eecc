package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantLevel zapcore.Level
	}{
		{name: "production defaults", cfg: DefaultConfig(), wantLevel: zapcore.InfoLevel},
		{name: "development", cfg: DevelopmentConfig(), wantLevel: zapcore.DebugLevel},
		{name: "unknown level falls back to info", cfg: Config{Level: "loud"}, wantLevel: zapcore.InfoLevel},
		{name: "warn", cfg: Config{Level: "warn", Format: "console"}, wantLevel: zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, l)

			assert.True(t, l.Core().Enabled(tt.wantLevel))
			if tt.wantLevel > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.wantLevel-1))
			}
		})
	}
}

func TestOrNop(t *testing.T) {
	assert.NotNil(t, OrNop(nil))

	core, _ := observer.New(zapcore.InfoLevel)
	l := zap.New(core)
	assert.Same(t, l, OrNop(l))
}

func TestContext(t *testing.T) {
	core, recorded := observer.New(zapcore.InfoLevel)
	l := zap.New(core)

	ctx := WithLogger(context.Background(), l)
	FromContext(ctx).Info("hello", zap.String("who", "world"))

	entries := recorded.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Message)
	assert.Equal(t, "world", entries[0].ContextMap()["who"])

	// Missing logger never panics
	FromContext(context.Background()).Info("dropped")
}
