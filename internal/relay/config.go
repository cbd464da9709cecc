package relay

import (
	"fmt"
	"os"
)

// Config holds the environment-provided settings of the relay.
type Config struct {
	SecretKey string
	Port      string
}

// FromEnv reads the relay configuration from the environment. The caller is
// expected to have loaded a .env file already if one exists.
func FromEnv() (*Config, error) {
	cfg := &Config{
		SecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		Port:      os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	return cfg, nil
}
