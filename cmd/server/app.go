package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/deckbuilder-api/internal/catalog"
	"github.com/KirkDiggler/deckbuilder-api/internal/config"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/deckbuilder"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/clock"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	"github.com/KirkDiggler/deckbuilder-api/internal/redis"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/decks"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/sqlite"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/teams"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/conversion"
)

// app holds the wired service and whatever must be closed on shutdown
type app struct {
	Service deckbuilder.Service
	Catalog catalog.Catalog
	Events  events.EventBus

	closers []func() error
}

// Close releases storage connections
func (a *app) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			log.Printf("close: %v", err)
		}
	}
}

type repositories struct {
	decks   decks.Repository
	teams   teams.Repository
	closeFn func() error
}

func buildApp(cfg *config.Config) (*app, error) {
	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}

	clk := clock.New()
	repos, err := openRepositories(cfg, clk)
	if err != nil {
		return nil, err
	}

	converter, err := conversion.NewDeckConverter(&conversion.DeckConverterConfig{Catalog: cat})
	if err != nil {
		_ = repos.closeFn()
		return nil, fmt.Errorf("failed to create deck converter: %w", err)
	}

	bus := events.NewBus()
	for _, eventType := range []string{deckbuilder.EventDeckUpdated, deckbuilder.EventTeamUpdated} {
		bus.SubscribeFunc(eventType, 100, logEvent)
	}

	service, err := deckbuilder.NewOrchestrator(&deckbuilder.Config{
		DeckRepo:        repos.decks,
		TeamRepo:        repos.teams,
		Catalog:         cat,
		Converter:       converter,
		DeckIDGenerator: idgen.NewUUID("deck"),
		TeamIDGenerator: idgen.NewUUID("team"),
		EventBus:        bus,
	})
	if err != nil {
		_ = repos.closeFn()
		return nil, fmt.Errorf("failed to create deck builder service: %w", err)
	}

	return &app{
		Service: service,
		Catalog: cat,
		Events:  bus,
		closers: []func() error{repos.closeFn},
	}, nil
}

func logEvent(_ context.Context, event events.Event) error {
	owner, _ := event.Context().Get(deckbuilder.EventKeyOwnerID)
	slog.Debug("snapshot saved",
		"event", event.Type(),
		"id", event.Source().GetID(),
		"owner_id", owner)
	return nil
}

func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		cat, err := catalog.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load embedded catalog: %w", err)
		}
		return cat, nil
	}

	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	log.Printf("Loaded catalog from %s", path)
	return cat, nil
}

func openRepositories(cfg *config.Config, clk clock.Clock) (*repositories, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		store, err := sqlite.Open(cfg.SQLitePath, clk)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return &repositories{
			decks:   store.Decks(),
			teams:   store.Teams(),
			closeFn: store.Close,
		}, nil

	case config.StoreRedis:
		client, err := redis.NewClient(cfg.RedisAddr, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis client: %w", err)
		}

		deckRepo, err := decks.NewRedisRepository(&decks.Config{Client: client, Clock: clk, TTL: cfg.DeckTTL})
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create deck repository: %w", err)
		}
		teamRepo, err := teams.NewRedisRepository(&teams.Config{Client: client, Clock: clk, TTL: cfg.DeckTTL})
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create team repository: %w", err)
		}

		return &repositories{
			decks:   deckRepo,
			teams:   teamRepo,
			closeFn: client.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
