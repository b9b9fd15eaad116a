package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DevSecret is the signing secret used when none is configured outside
// production. It is deliberately public and insecure; the server logs a
// loud warning whenever it is in effect.
const DevSecret = "corretora-dev-secret-do-not-use-in-production"

// ErrMissingSecret means JWT_SECRET is unset in production, which is a
// fatal startup error rather than something to fall back from.
var ErrMissingSecret = errors.New("JWT_SECRET is required in production")

// Config holds all server configuration, loaded from the environment
type Config struct {
	Env  string `env:"APP_ENV" envDefault:"development"`
	Host string `env:"HOST" envDefault:""`
	Port int    `env:"PORT" envDefault:"5000"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"168h"`

	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string `env:"REDIS_URL"`

	CORSOrigin string `env:"CORS_ORIGIN" envDefault:"http://localhost:3000"`

	NominatimURL string `env:"NOMINATIM_URL" envDefault:"https://nominatim.openstreetmap.org"`
}

// Load reads configuration from a .env file (if present) and the
// environment
func Load() (*Config, error) {
	// The .env file is optional
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, ErrMissingSecret
		}
		cfg.JWTSecret = DevSecret
	}

	return cfg, nil
}

// IsProduction reports whether the server runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// UsingDevSecret reports whether the insecure development secret is in effect
func (c *Config) UsingDevSecret() bool {
	return c.JWTSecret == DevSecret
}
