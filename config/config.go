package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// XboxConfig holds the Xbox Live application credentials.
type XboxConfig struct {
	ClientID     string `env:"CLIENT_ID"`
	ClientSecret string `env:"CLIENT_SECRET"`
}

// Config holds all service configuration, loaded from the environment.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"gamelink.db"`

	// PublicURL is the externally reachable base URL of this service. It is
	// the source of the OAuth redirect URI, so it must exactly match what is
	// registered with the provider. The default only works for local
	// development.
	PublicURL string `env:"PUBLIC_URL" envDefault:"http://localhost:8080"`

	// StateSecret signs the OAuth state tokens. Required.
	StateSecret string `env:"STATE_SECRET"`

	// DevAuth enables the /login and /logout stand-in handlers that fake a
	// host platform session. Never enable in production.
	DevAuth bool `env:"DEV_AUTH" envDefault:"false"`

	UseHTTPS bool `env:"USE_HTTPS" envDefault:"false"`

	Xbox XboxConfig `envPrefix:"XBOX_"`
}

// Load reads configuration from .env (if present) and the environment.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment
	// directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if cfg.StateSecret == "" {
		return nil, fmt.Errorf("STATE_SECRET is required")
	}

	return cfg, nil
}
