// Package conversion provides centralized conversion logic between the stored
// ID-only decks and teams and the hydrated forms the rules engine uses.
package conversion

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/deckbuilder-api/internal/catalog"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/deck"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// deckConverter is the concrete implementation of DeckConverter
type deckConverter struct {
	catalog catalog.Catalog
}

// DeckConverterConfig holds the configuration for creating a deck converter
type DeckConverterConfig struct {
	Catalog catalog.Catalog
}

// Validate ensures the configuration is valid
func (c *DeckConverterConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Catalog == nil {
		return errors.InvalidArgument("catalog is required")
	}
	return nil
}

// NewDeckConverter creates a new deck converter instance
func NewDeckConverter(cfg *DeckConverterConfig) (DeckConverter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &deckConverter{
		catalog: cfg.Catalog,
	}, nil
}

// CompactDeck converts a Deck to its StoredDeck form
func (c *deckConverter) CompactDeck(d *entities.Deck) *entities.StoredDeck {
	if d == nil {
		return nil
	}

	stored := &entities.StoredDeck{
		ID:        d.ID,
		Name:      d.Name,
		AutoNamed: d.AutoNamed,
	}
	if d.Spellcaster != nil {
		stored.SpellcasterID = d.Spellcaster.GetID()
	}
	for i, slot := range d.Slots {
		if slot.Unit != nil {
			stored.SlotIDs[i] = slot.Unit.EntityID
		}
	}
	return stored
}

// CompactTeam converts a Team to its StoredTeam form
func (c *deckConverter) CompactTeam(t *entities.Team) *entities.StoredTeam {
	if t == nil {
		return nil
	}

	stored := &entities.StoredTeam{
		ID:   t.ID,
		Name: t.Name,
	}
	for i, d := range t.Decks {
		if compact := c.CompactDeck(d); compact != nil {
			stored.Decks[i] = *compact
		}
	}
	return stored
}

// HydrateDeck rebuilds a deck from catalog IDs
func (c *deckConverter) HydrateDeck(ctx context.Context, stored *entities.StoredDeck) (*HydrateDeckOutput, error) {
	if stored == nil {
		return nil, errors.InvalidArgument("stored deck is required")
	}

	d := entities.NewDeck(stored.ID, stored.Name)
	d.AutoNamed = stored.AutoNamed
	var dropped []string

	if stored.SpellcasterID != "" {
		sc, err := c.catalog.GetSpellcaster(ctx, stored.SpellcasterID)
		switch {
		case errors.IsNotFound(err):
			dropped = append(dropped, stored.SpellcasterID)
		case err != nil:
			return nil, errors.Wrapf(err, "failed to resolve spellcaster %s", stored.SpellcasterID)
		default:
			d.Spellcaster = sc
		}
	}

	for i, id := range stored.SlotIDs {
		if id == "" {
			continue
		}

		card, err := c.catalog.GetCard(ctx, id)
		if errors.IsNotFound(err) {
			dropped = append(dropped, id)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve card %s", id)
		}

		// A catalog edit can turn a unit into a titan, or a stored deck can
		// repeat a unit; neither may come back into the deck.
		if deck.CanAcceptUnit(d.Slots[i], card) != nil ||
			(i < entities.UnitSlotCount && d.UnitSlotIndexOf(id) >= 0) {
			dropped = append(dropped, id)
			continue
		}

		d.Slots[i].Unit = card
	}

	if len(dropped) > 0 {
		slog.Warn("dropped stale ids while hydrating deck",
			"deck_id", stored.ID,
			"dropped", dropped)
	}

	return &HydrateDeckOutput{
		Deck:    d,
		Dropped: dropped,
	}, nil
}

// HydrateTeam rebuilds all three decks of a team
func (c *deckConverter) HydrateTeam(ctx context.Context, stored *entities.StoredTeam) (*HydrateTeamOutput, error) {
	if stored == nil {
		return nil, errors.InvalidArgument("stored team is required")
	}

	team := &entities.Team{ID: stored.ID, Name: stored.Name}
	var dropped []string

	for i := range stored.Decks {
		out, err := c.HydrateDeck(ctx, &stored.Decks[i])
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hydrate deck %d", i)
		}
		team.Decks[i] = out.Deck
		dropped = append(dropped, out.Dropped...)
	}

	return &HydrateTeamOutput{
		Team:    team,
		Dropped: dropped,
	}, nil
}
