// Package deckbuilder implements the deck builder orchestrator. It loads stored
// decks and teams, resolves catalog IDs, runs the rules engine and saves the
// resulting snapshot. Rule failures come back with their reason untouched and
// nothing is saved.
package deckbuilder

//go:generate mockgen -destination=mock/mock_service.go -package=deckbuildermock github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/deckbuilder Service

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/deckbuilder-api/internal/catalog"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/decks"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/teams"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/conversion"
)

// Service defines the deck builder operations
type Service interface {
	// Deck lifecycle
	CreateDeck(ctx context.Context, input *CreateDeckInput) (*DeckOutput, error)
	GetDeck(ctx context.Context, input *GetDeckInput) (*DeckOutput, error)
	ListDecks(ctx context.Context, input *ListDecksInput) (*ListDecksOutput, error)
	DeleteDeck(ctx context.Context, input *DeleteDeckInput) (*DeleteDeckOutput, error)
	RenameDeck(ctx context.Context, input *RenameDeckInput) (*DeckOutput, error)

	// Single deck editing
	SetSpellcaster(ctx context.Context, input *SetSpellcasterInput) (*DeckOutput, error)
	RemoveSpellcaster(ctx context.Context, input *RemoveSpellcasterInput) (*DeckOutput, error)
	SetSlot(ctx context.Context, input *SetSlotInput) (*DeckOutput, error)
	ClearSlot(ctx context.Context, input *ClearSlotInput) (*DeckOutput, error)
	SwapSlots(ctx context.Context, input *SwapSlotsInput) (*DeckOutput, error)
	QuickAdd(ctx context.Context, input *QuickAddInput) (*DeckOutput, error)
	ValidateDeck(ctx context.Context, input *ValidateDeckInput) (*DeckOutput, error)
	AutoFillDeck(ctx context.Context, input *AutoFillDeckInput) (*AutoFillDeckOutput, error)

	// Team lifecycle
	CreateTeam(ctx context.Context, input *CreateTeamInput) (*TeamOutput, error)
	GetTeam(ctx context.Context, input *GetTeamInput) (*TeamOutput, error)
	DeleteTeam(ctx context.Context, input *DeleteTeamInput) (*DeleteTeamOutput, error)

	// Team editing
	TeamSetSlot(ctx context.Context, input *TeamSetSlotInput) (*TeamOutput, error)
	TeamClearSlot(ctx context.Context, input *TeamClearSlotInput) (*TeamOutput, error)
	TeamSwapSlots(ctx context.Context, input *TeamSwapSlotsInput) (*TeamOutput, error)
	TeamQuickAdd(ctx context.Context, input *TeamQuickAddInput) (*TeamOutput, error)
	TeamSetSpellcaster(ctx context.Context, input *TeamSetSpellcasterInput) (*TeamOutput, error)
	TeamRemoveSpellcaster(ctx context.Context, input *TeamRemoveSpellcasterInput) (*TeamOutput, error)
	MoveCardBetweenDecks(ctx context.Context, input *MoveCardBetweenDecksInput) (*TeamOutput, error)
	MoveSpellcasterBetweenDecks(ctx context.Context, input *MoveSpellcasterBetweenDecksInput) (*TeamOutput, error)
	ValidateTeam(ctx context.Context, input *ValidateTeamInput) (*TeamOutput, error)

	// Drag and drop
	HandleDrop(ctx context.Context, input *HandleDropInput) (*HandleDropOutput, error)
}

// Config holds the dependencies for the deck builder orchestrator
type Config struct {
	DeckRepo        decks.Repository
	TeamRepo        teams.Repository
	Catalog         catalog.Catalog
	Converter       conversion.DeckConverter
	DeckIDGenerator idgen.Generator
	TeamIDGenerator idgen.Generator

	// Roller drives AutoFillDeck picks; defaults to rpg-toolkit dice
	Roller Roller

	// EventBus receives deck.updated and team.updated; defaults to a private bus
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()

	if c.DeckRepo == nil {
		vb.RequiredField("DeckRepo")
	}
	if c.TeamRepo == nil {
		vb.RequiredField("TeamRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Converter == nil {
		vb.RequiredField("Converter")
	}
	if c.DeckIDGenerator == nil {
		vb.RequiredField("DeckIDGenerator")
	}
	if c.TeamIDGenerator == nil {
		vb.RequiredField("TeamIDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	deckRepo  decks.Repository
	teamRepo  teams.Repository
	catalog   catalog.Catalog
	converter conversion.DeckConverter
	deckIDGen idgen.Generator
	teamIDGen idgen.Generator
	roller    Roller
	eventBus  events.EventBus
}

// NewOrchestrator creates a new deck builder orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = DiceRoller{}
	}

	bus := cfg.EventBus
	if bus == nil {
		bus = events.NewBus()
	}

	return &orchestrator{
		deckRepo:  cfg.DeckRepo,
		teamRepo:  cfg.TeamRepo,
		catalog:   cfg.Catalog,
		converter: cfg.Converter,
		deckIDGen: cfg.DeckIDGenerator,
		teamIDGen: cfg.TeamIDGenerator,
		roller:    roller,
		eventBus:  bus,
	}, nil
}
