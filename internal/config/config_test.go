package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/deckbuilder-api/internal/config"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(50051, cfg.Port)
	s.Equal(config.StoreRedis, cfg.Store)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal("data/deckbuilder.db", cfg.SQLitePath)
	s.Empty(cfg.CatalogPath)
	s.Empty(cfg.OTelEndpoint)
	s.Zero(cfg.DeckTTL)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoadFromEnvironment() {
	s.T().Setenv("DECKBUILDER_PORT", "6000")
	s.T().Setenv("DECKBUILDER_STORE", "sqlite")
	s.T().Setenv("DECKBUILDER_SQLITE_PATH", "/tmp/decks.db")
	s.T().Setenv("DECKBUILDER_DECK_TTL", "72h")

	cfg, err := config.Load()
	s.Require().NoError(err)
	s.Equal(6000, cfg.Port)
	s.Equal(config.StoreSQLite, cfg.Store)
	s.Equal("/tmp/decks.db", cfg.SQLitePath)
	s.Equal(72*time.Hour, cfg.DeckTTL)
}

func (s *ConfigTestSuite) TestLoadRejectsMalformedValues() {
	s.T().Setenv("DECKBUILDER_PORT", "not-a-port")

	_, err := config.Load()
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	valid := func() *config.Config {
		return &config.Config{
			Port:       50051,
			Store:      config.StoreRedis,
			RedisAddr:  "localhost:6379",
			SQLitePath: "data/deckbuilder.db",
		}
	}

	testCases := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*config.Config) {}},
		{name: "port out of range", mutate: func(c *config.Config) { c.Port = 0 }, wantErr: "Port"},
		{name: "unknown store", mutate: func(c *config.Config) { c.Store = "postgres" }, wantErr: "Store"},
		{name: "redis without address", mutate: func(c *config.Config) { c.RedisAddr = "" }, wantErr: "RedisAddr"},
		{name: "sqlite without path", mutate: func(c *config.Config) {
			c.Store = config.StoreSQLite
			c.SQLitePath = " "
		}, wantErr: "SQLitePath"},
		{name: "negative ttl", mutate: func(c *config.Config) { c.DeckTTL = -time.Second }, wantErr: "DeckTTL"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := valid()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr == "" {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			s.Contains(err.Error(), tc.wantErr)
		})
	}
}
