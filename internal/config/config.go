// Package config loads server configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// Store backends
const (
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Config is the server configuration. Command line flags override it.
type Config struct {
	Port        int           `env:"DECKBUILDER_PORT" envDefault:"50051"`
	Store       string        `env:"DECKBUILDER_STORE" envDefault:"redis"`
	RedisAddr   string        `env:"DECKBUILDER_REDIS_ADDR" envDefault:"localhost:6379"`
	SQLitePath  string        `env:"DECKBUILDER_SQLITE_PATH" envDefault:"data/deckbuilder.db"`
	CatalogPath string        `env:"DECKBUILDER_CATALOG_PATH"`
	DeckTTL     time.Duration `env:"DECKBUILDER_DECK_TTL" envDefault:"0s"`

	// Empty disables tracing
	OTelEndpoint string `env:"DECKBUILDER_OTEL_ENDPOINT"`
}

// Load parses the environment into a Config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the configuration for the selected store
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("Port", c.Port, 1, 65535, vb)
	errors.ValidateEnum("Store", c.Store, []string{StoreRedis, StoreSQLite}, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	case StoreSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}
	if c.DeckTTL < 0 {
		vb.Field("DeckTTL", "must not be negative")
	}

	return vb.Build()
}
