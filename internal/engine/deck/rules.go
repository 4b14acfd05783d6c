// Package deck implements the single-deck rules: spellcaster assignment,
// slot placement, swaps and quick-add. Every function returns a new deck
// snapshot on success and leaves its input untouched; failures come back as
// *errors.Error values with an engine reason, never as panics.
package deck

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/deckbuilder-api/internal/engine"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

func errMissingDeck() error {
	return errors.InvalidArgument("deck is required")
}

// SetSpellcaster assigns sc to the deck. A placeholder name is replaced by
// "<spellcaster> Deck"; a custom name is kept. A nil sc clears the spellcaster.
func SetSpellcaster(d *entities.Deck, sc *entities.Spellcaster) *entities.Deck {
	if d == nil {
		return nil
	}
	if sc == nil {
		return RemoveSpellcaster(d)
	}

	next := d.Clone()
	if isPlaceholderName(d) {
		next.Name = sc.Name + " Deck"
		next.AutoNamed = true
	}
	next.Spellcaster = sc
	return next
}

// RemoveSpellcaster clears the spellcaster; the name is left alone
func RemoveSpellcaster(d *entities.Deck) *entities.Deck {
	if d == nil {
		return nil
	}
	next := d.Clone()
	next.Spellcaster = nil
	return next
}

// isPlaceholderName is true for blank names, the default name, and any name
// SetSpellcaster generated. The generated name stays a placeholder after its
// spellcaster leaves the deck.
func isPlaceholderName(d *entities.Deck) bool {
	trimmed := strings.TrimSpace(d.Name)
	if trimmed == "" || trimmed == entities.DefaultDeckName || d.AutoNamed {
		return true
	}
	return d.Spellcaster != nil && trimmed == d.Spellcaster.Name+" Deck"
}

// SetSlot places item at index.
//
// If the card already sits in another unit slot, that slot receives whatever
// currently occupies index, so the call exchanges the two slots rather than
// leaving a hole behind.
func SetSlot(d *entities.Deck, index int, item entities.Entity) (*entities.Deck, error) {
	if d == nil {
		return nil, errMissingDeck()
	}
	if !validSlotIndex(index) {
		return nil, engine.InvalidSlotIndex(index)
	}

	card, err := slottableCard(item)
	if err != nil {
		return nil, err
	}

	if err := CanAcceptUnit(d.Slots[index], card); err != nil {
		return nil, err
	}

	next := d.Clone()
	if existing := d.UnitSlotIndexOf(card.EntityID); existing >= 0 && existing != index {
		next.Slots[existing].Unit = d.Slots[index].Unit
	}
	next.Slots[index].Unit = card
	return next, nil
}

// ClearSlot empties the slot at index. An index outside the deck leaves it as is.
func ClearSlot(d *entities.Deck, index int) *entities.Deck {
	if d == nil || !validSlotIndex(index) {
		return d
	}
	next := d.Clone()
	next.Slots[index].Unit = nil
	return next
}

// SwapSlots exchanges the contents of slots a and b. Both slots must accept
// what they would receive; otherwise nothing changes.
func SwapSlots(d *entities.Deck, a, b int) (*entities.Deck, error) {
	if d == nil {
		return nil, errMissingDeck()
	}
	if !validSlotIndex(a) || !validSlotIndex(b) {
		return nil, engine.InvalidIndex(a, b)
	}

	slotA, slotB := d.Slots[a], d.Slots[b]
	if err := CanAcceptUnit(slotA, slotB.Unit); err != nil {
		return nil, engine.SwapInvalid(fmt.Sprintf("cannot move %s into slot %d", slotB.Unit.Name, a))
	}
	if err := CanAcceptUnit(slotB, slotA.Unit); err != nil {
		return nil, engine.SwapInvalid(fmt.Sprintf("cannot move %s into slot %d", slotA.Unit.Name, b))
	}

	next := d.Clone()
	next.Slots[a].Unit, next.Slots[b].Unit = slotB.Unit, slotA.Unit
	return next, nil
}

// QuickAdd places item in the best slot: spellcasters take the spellcaster
// seat, titans take the titan slot (replacing any titan there), and units or
// spells take the lowest empty unit slot.
func QuickAdd(d *entities.Deck, item entities.Entity) (*entities.Deck, error) {
	if d == nil {
		return nil, errMissingDeck()
	}
	if sc, ok := entities.AsSpellcaster(item); ok {
		return SetSpellcaster(d, sc), nil
	}

	index, err := QuickAddSlot(d, item)
	if err != nil {
		return nil, err
	}
	return SetSlot(d, index, item)
}

// QuickAddSlot returns the slot QuickAdd would use for a card
func QuickAddSlot(d *entities.Deck, item entities.Entity) (int, error) {
	if d == nil {
		return -1, errMissingDeck()
	}
	card, err := slottableCard(item)
	if err != nil {
		return -1, err
	}

	if card.Category == entities.CategoryTitan {
		index := TitanSlotIndex(d)
		if index < 0 {
			return -1, engine.NoTitanSlot()
		}
		return index, nil
	}

	if d.UnitSlotIndexOf(card.EntityID) >= 0 {
		return -1, engine.DuplicateUnit(card.Name)
	}

	for i := 0; i < entities.UnitSlotCount; i++ {
		if d.Slots[i].IsEmpty() {
			return i, nil
		}
	}
	return -1, engine.DeckFull()
}

// slottableCard accepts units, spells and titans
func slottableCard(item entities.Entity) (*entities.Card, error) {
	switch entities.Classify(item) {
	case entities.KindUnit, entities.KindSpell, entities.KindTitan:
		card, _ := entities.AsCard(item)
		return card, nil
	case entities.KindSpellcaster:
		return nil, engine.InvalidType("spellcasters cannot be placed in deck slots")
	default:
		return nil, engine.InvalidType("unrecognized card type")
	}
}
