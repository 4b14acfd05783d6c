package testutils

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// NewCreature builds a creature card
func NewCreature(id string, rank entities.Rank) *entities.Card {
	return &entities.Card{
		EntityID:    id,
		Name:        "Creature " + id,
		Category:    entities.CategoryCreature,
		Rank:        rank,
		MagicSchool: "Elemental",
	}
}

// NewBuilding builds a building card
func NewBuilding(id string, rank entities.Rank) *entities.Card {
	return &entities.Card{
		EntityID:    id,
		Name:        "Building " + id,
		Category:    entities.CategoryBuilding,
		Rank:        rank,
		MagicSchool: "Wild",
	}
}

// NewSpell builds a spell card
func NewSpell(id string, rank entities.Rank) *entities.Card {
	return &entities.Card{
		EntityID:    id,
		Name:        "Spell " + id,
		Category:    entities.CategorySpell,
		Rank:        rank,
		MagicSchool: "Arcane",
	}
}

// NewTitan builds a titan card
func NewTitan(id string) *entities.Card {
	return &entities.Card{
		EntityID: id,
		Name:     "Titan " + id,
		Category: entities.CategoryTitan,
	}
}

// NewSpellcaster builds a spellcaster
func NewSpellcaster(id, name string) *entities.Spellcaster {
	return &entities.Spellcaster{
		EntityID:      id,
		SpellcasterID: id,
		Name:          name,
		Class:         entities.ClassDuelist,
	}
}

// DeckBuilder assembles deck snapshots for tests without going through the engine
type DeckBuilder struct {
	deck *entities.Deck
}

// NewDeckBuilder starts from an empty deck
func NewDeckBuilder(id string) *DeckBuilder {
	return &DeckBuilder{deck: entities.NewDeck(id, "")}
}

// WithName sets the deck name
func (b *DeckBuilder) WithName(name string) *DeckBuilder {
	b.deck.Name = name
	return b
}

// WithSpellcaster sets the spellcaster
func (b *DeckBuilder) WithSpellcaster(sc *entities.Spellcaster) *DeckBuilder {
	b.deck.Spellcaster = sc
	return b
}

// WithSlot places card at index with no rule checks
func (b *DeckBuilder) WithSlot(index int, card *entities.Card) *DeckBuilder {
	b.deck.Slots[index].Unit = card
	return b
}

// Build returns the deck
func (b *DeckBuilder) Build() *entities.Deck {
	return b.deck
}

// CompleteDeck returns a deck that passes validation
func CompleteDeck(id string) *entities.Deck {
	return NewDeckBuilder(id).
		WithSpellcaster(NewSpellcaster("sc_1", "Astral Monk")).
		WithSlot(0, NewCreature("unit_a", entities.RankI)).
		WithSlot(1, NewCreature("unit_b", entities.RankIII)).
		WithSlot(2, NewBuilding("unit_c", entities.RankII)).
		WithSlot(3, NewSpell("spell_d", entities.RankIV)).
		WithSlot(entities.TitanSlotIndex, NewTitan("titan_e")).
		Build()
}
