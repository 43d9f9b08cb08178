package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is the application configuration, loaded from the environment.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `envconfig:"ADDR" default:":8080"`

	// RedisURL selects the character store. Empty runs on the in-memory
	// repository, which is fine for local development.
	RedisURL string `envconfig:"REDIS_URL"`

	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// PrettyLog switches from JSON to console output.
	PrettyLog bool `envconfig:"PRETTY_LOG"`
}

// Load reads configuration from the environment, picking up a local .env
// file first if one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("sheetforge", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
