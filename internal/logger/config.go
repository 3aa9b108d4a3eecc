package logger

// Config defines logging configuration
type Config struct {
	Level       string // debug, info, warn, error
	Format      string // json or console
	Development bool
}

// DefaultConfig returns production defaults
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "json",
	}
}

// DevelopmentConfig returns a human friendly configuration for local runs
func DevelopmentConfig() Config {
	return Config{
		Level:       "debug",
		Format:      "console",
		Development: true,
	}
}
