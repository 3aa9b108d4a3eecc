package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/KirkDiggler/ability-dispatch/internal/logger"
)

// Config holds all configuration for the application
type Config struct {
	Redis    RedisConfig
	Bindings BindingsConfig
	Player   PlayerConfig
	Log      logger.Config
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	URL string // Optional: in-memory storage when empty
}

// BindingsConfig says where binding data comes from
type BindingsConfig struct {
	AssetPath string
	SetID     string
}

// PlayerConfig describes the pawn possessed at startup
type PlayerConfig struct {
	PawnID string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Bindings: BindingsConfig{
			AssetPath: getEnvOrDefault("BINDINGS_ASSET", "assets/bindings.yaml"),
			SetID:     getEnvOrDefault("BINDING_SET_ID", "hero"),
		},
		Player: PlayerConfig{
			PawnID: getEnvOrDefault("PAWN_ID", "player-1"),
		},
		Log: logger.Config{
			Level:       getEnvOrDefault("LOG_LEVEL", "info"),
			Format:      getEnvOrDefault("LOG_FORMAT", "console"),
			Development: getEnvAsBoolOrDefault("LOG_DEVELOPMENT", false),
		},
	}

	switch cfg.Log.Format {
	case "json", "console":
	default:
		return nil, fmt.Errorf("LOG_FORMAT must be json or console, got %q", cfg.Log.Format)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
