// Package entities holds the deck builder data model: cards, spellcasters,
// decks and teams. Entities carry data only; every rule lives in the engine.
package entities

import (
	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Category is the closed set of card categories
type Category string

// Card categories
const (
	CategoryCreature    Category = "Creature"
	CategoryBuilding    Category = "Building"
	CategorySpell       Category = "Spell"
	CategoryTitan       Category = "Titan"
	CategorySpellcaster Category = "Spellcaster"
)

// Valid reports whether c is one of the known categories
func (c Category) Valid() bool {
	switch c {
	case CategoryCreature, CategoryBuilding, CategorySpell, CategoryTitan, CategorySpellcaster:
		return true
	}
	return false
}

// Rank is a card's power tier. Titans have no rank.
type Rank string

// Ranks
const (
	RankI   Rank = "I"
	RankII  Rank = "II"
	RankIII Rank = "III"
	RankIV  Rank = "IV"
	RankV   Rank = "V"
)

// Valid reports whether r is one of I through V
func (r Rank) Valid() bool {
	switch r {
	case RankI, RankII, RankIII, RankIV, RankV:
		return true
	}
	return false
}

// IsLow reports whether r is rank I or II
func (r Rank) IsLow() bool {
	return r == RankI || r == RankII
}

// SpellcasterClass is the archetype of a spellcaster
type SpellcasterClass string

// Spellcaster classes
const (
	ClassConqueror SpellcasterClass = "Conqueror"
	ClassEnchanter SpellcasterClass = "Enchanter"
	ClassDuelist   SpellcasterClass = "Duelist"
)

// Valid reports whether c is a known class
func (c SpellcasterClass) Valid() bool {
	return c == ClassConqueror || c == ClassEnchanter || c == ClassDuelist
}

// Entity is anything a user can pick from the catalog and drag into a deck
type Entity interface {
	core.Entity
	GetName() string
}

// Card is a unit, spell or titan
type Card struct {
	EntityID    string   `json:"entity_id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Rank        Rank     `json:"rank,omitempty"`
	MagicSchool string   `json:"magic_school,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
}

// GetID returns the card's entity ID
func (c *Card) GetID() string {
	return c.EntityID
}

// GetType returns the card category
func (c *Card) GetType() string {
	return string(c.Category)
}

// GetName returns the display name
func (c *Card) GetName() string {
	return c.Name
}

// Ability is one of a spellcaster's abilities
type Ability struct {
	Name        string `json:"name"`
	Slot        string `json:"slot,omitempty"` // passive, primary, defense, ultimate
	Description string `json:"description,omitempty"`
}

// Spellcaster leads a deck. It never occupies a numbered slot.
type Spellcaster struct {
	EntityID      string           `json:"entity_id"`
	SpellcasterID string           `json:"spellcaster_id"`
	Name          string           `json:"name"`
	Class         SpellcasterClass `json:"class"`
	Abilities     []Ability        `json:"abilities,omitempty"`
}

// GetID returns the spellcaster ID, falling back to the entity ID
func (s *Spellcaster) GetID() string {
	if s.SpellcasterID != "" {
		return s.SpellcasterID
	}
	return s.EntityID
}

// GetType always reports the Spellcaster category
func (s *Spellcaster) GetType() string {
	return string(CategorySpellcaster)
}

// GetName returns the display name
func (s *Spellcaster) GetName() string {
	return s.Name
}

var (
	_ Entity = (*Card)(nil)
	_ Entity = (*Spellcaster)(nil)
)
