// Package team applies deck rules to one deck of a three-deck team and moves
// cards or spellcasters between decks. Results are new arrays in which every
// deck that was not touched keeps its original pointer, so callers can
// compare decks by identity to find what changed.
package team

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/engine"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/deck"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// Decks is the fixed deck tuple of a team
type Decks = [entities.TeamSize]*entities.Deck

// DeckOp is any single-deck rule
type DeckOp func(d *entities.Deck) (*entities.Deck, error)

// Modify runs op against decks[deckIndex] and returns the tuple with only that
// deck replaced. Errors from op come back unchanged alongside the input tuple.
func Modify(decks Decks, deckIndex int, op DeckOp) (Decks, error) {
	if !validDeckIndex(deckIndex) {
		return decks, engine.InvalidDeckIndex(deckIndex)
	}

	updated, err := op(decks[deckIndex])
	if err != nil {
		return decks, err
	}

	next := decks
	next[deckIndex] = updated
	return next, nil
}

// SetSpellcaster assigns a spellcaster to one deck
func SetSpellcaster(decks Decks, deckIndex int, sc *entities.Spellcaster) (Decks, error) {
	return Modify(decks, deckIndex, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.SetSpellcaster(d, sc), nil
	})
}

// RemoveSpellcaster clears one deck's spellcaster
func RemoveSpellcaster(decks Decks, deckIndex int) (Decks, error) {
	return Modify(decks, deckIndex, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.RemoveSpellcaster(d), nil
	})
}

// SetSlot places item in one deck's slot
func SetSlot(decks Decks, deckIndex, slotIndex int, item entities.Entity) (Decks, error) {
	return Modify(decks, deckIndex, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.SetSlot(d, slotIndex, item)
	})
}

// ClearSlot empties one deck's slot
func ClearSlot(decks Decks, deckIndex, slotIndex int) (Decks, error) {
	return Modify(decks, deckIndex, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.ClearSlot(d, slotIndex), nil
	})
}

// SwapSlots exchanges two slots inside one deck
func SwapSlots(decks Decks, deckIndex, a, b int) (Decks, error) {
	return Modify(decks, deckIndex, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.SwapSlots(d, a, b)
	})
}

// QuickAdd auto-places item in one deck
func QuickAdd(decks Decks, deckIndex int, item entities.Entity) (Decks, error) {
	return Modify(decks, deckIndex, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.QuickAdd(d, item)
	})
}

func validDeckIndex(index int) bool {
	return index >= 0 && index < entities.TeamSize
}
