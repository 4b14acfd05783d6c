package entities

import "strings"

// SlotType is what a slot accepts. The sets are disjoint.
type SlotType string

// Slot types
const (
	SlotTypeUnit  SlotType = "Unit"
	SlotTypeTitan SlotType = "Titan"
)

// Deck layout
const (
	SlotCount      = 5
	UnitSlotCount  = 4
	TitanSlotIndex = 4

	DefaultDeckName = "New Deck"
)

// DeckSlot is a fixed position in a deck. Index and AllowedTypes never change
// after the deck is created; only Unit does.
type DeckSlot struct {
	Index        int        `json:"index"`
	Unit         *Card      `json:"unit"`
	AllowedTypes []SlotType `json:"allowed_types"`
}

// Accepts reports whether the slot declares t
func (s DeckSlot) Accepts(t SlotType) bool {
	for _, allowed := range s.AllowedTypes {
		if allowed == t {
			return true
		}
	}
	return false
}

// IsEmpty reports whether nothing occupies the slot
func (s DeckSlot) IsEmpty() bool {
	return s.Unit == nil
}

// Deck is one spellcaster plus four unit slots and one titan slot.
// Decks are snapshots: engine operations return a new Deck and never
// modify the one they were given.
type Deck struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Spellcaster *Spellcaster        `json:"spellcaster"`
	Slots       [SlotCount]DeckSlot `json:"slots"`

	// AutoNamed is set while Name is the one SetSpellcaster generated
	AutoNamed bool `json:"auto_named,omitempty"`
}

var (
	unitSlotTypes  = []SlotType{SlotTypeUnit}
	titanSlotTypes = []SlotType{SlotTypeTitan}
)

// NewDeck creates an empty deck with the standard slot schema
func NewDeck(id, name string) *Deck {
	if strings.TrimSpace(name) == "" {
		name = DefaultDeckName
	}

	d := &Deck{ID: id, Name: name}
	for i := range d.Slots {
		allowed := unitSlotTypes
		if i == TitanSlotIndex {
			allowed = titanSlotTypes
		}
		d.Slots[i] = DeckSlot{Index: i, AllowedTypes: allowed}
	}
	return d
}

// Clone returns a shallow copy. Slots are copied by value, cards and the
// spellcaster are shared since they are never modified.
func (d *Deck) Clone() *Deck {
	if d == nil {
		return nil
	}
	clone := *d
	return &clone
}

// GetID returns the deck ID
func (d *Deck) GetID() string {
	return d.ID
}

// GetType returns the entity type
func (d *Deck) GetType() string {
	return "deck"
}

// UnitSlotIndexOf returns the unit slot (0-3) holding entityID, or -1
func (d *Deck) UnitSlotIndexOf(entityID string) int {
	if d == nil || entityID == "" {
		return -1
	}
	for i := 0; i < UnitSlotCount; i++ {
		if unit := d.Slots[i].Unit; unit != nil && unit.EntityID == entityID {
			return i
		}
	}
	return -1
}
