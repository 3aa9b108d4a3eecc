package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"REDIS_URL", "BINDINGS_ASSET", "BINDING_SET_ID", "PAWN_ID", "LOG_LEVEL", "LOG_FORMAT", "LOG_DEVELOPMENT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "assets/bindings.yaml", cfg.Bindings.AssetPath)
	assert.Equal(t, "hero", cfg.Bindings.SetID)
	assert.Equal(t, "player-1", cfg.Player.PawnID)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Log.Development)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("REDIS_URL", "redis://localhost:6379/2")
	t.Setenv("BINDINGS_ASSET", "/etc/dispatch/bindings.yaml")
	t.Setenv("BINDING_SET_ID", "mage")
	t.Setenv("PAWN_ID", "mage-1")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_DEVELOPMENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis://localhost:6379/2", cfg.Redis.URL)
	assert.Equal(t, "/etc/dispatch/bindings.yaml", cfg.Bindings.AssetPath)
	assert.Equal(t, "mage", cfg.Bindings.SetID)
	assert.Equal(t, "mage-1", cfg.Player.PawnID)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.Development)
}

func TestLoad_InvalidFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadBoolFallsBack(t *testing.T) {
	t.Setenv("LOG_FORMAT", "")
	t.Setenv("LOG_DEVELOPMENT", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Log.Development)
}
