package team

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/engine"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/deck"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// MoveCardBetweenDecks moves the card in decks[srcDeck].Slots[srcSlot] to
// decks[dstDeck].Slots[dstSlot]. The destination's own rules apply, including
// the singleton rule: a card already in another destination slot aborts the
// move. A card already at the destination goes back to the source slot;
// otherwise the source slot is emptied. Either write failing aborts the whole
// move.
func MoveCardBetweenDecks(decks Decks, srcDeck, srcSlot, dstDeck, dstSlot int) (Decks, error) {
	if !validDeckIndex(srcDeck) {
		return decks, engine.InvalidDeckIndex(srcDeck)
	}
	if !validDeckIndex(dstDeck) {
		return decks, engine.InvalidDeckIndex(dstDeck)
	}
	if srcDeck == dstDeck {
		return decks, engine.UseSwap()
	}
	if !validSlot(srcSlot) {
		return decks, engine.InvalidSlotIndex(srcSlot)
	}
	if !validSlot(dstSlot) {
		return decks, engine.InvalidSlotIndex(dstSlot)
	}

	source, destination := decks[srcDeck], decks[dstDeck]
	if source == nil {
		return decks, engine.InvalidDeckIndex(srcDeck)
	}
	if destination == nil {
		return decks, engine.InvalidDeckIndex(dstDeck)
	}

	card := source.Slots[srcSlot].Unit
	if card == nil {
		return decks, engine.EmptySource(srcDeck, srcSlot)
	}
	if existing := destination.UnitSlotIndexOf(card.EntityID); existing >= 0 && existing != dstSlot {
		return decks, engine.DuplicateUnit(card.Name)
	}
	displaced := destination.Slots[dstSlot].Unit

	nextDestination, err := deck.SetSlot(destination, dstSlot, card)
	if err != nil {
		return decks, err
	}

	nextSource := deck.ClearSlot(source, srcSlot)
	if displaced != nil {
		nextSource, err = deck.SetSlot(source, srcSlot, displaced)
		if err != nil {
			return decks, err
		}
	}

	next := decks
	next[srcDeck] = nextSource
	next[dstDeck] = nextDestination
	return next, nil
}

// MoveSpellcasterBetweenDecks moves the source deck's spellcaster to the
// destination deck, swapping when the destination already has one. A source
// without a spellcaster, or the same deck on both sides, changes nothing.
func MoveSpellcasterBetweenDecks(decks Decks, srcDeck, dstDeck int) (Decks, error) {
	if !validDeckIndex(srcDeck) {
		return decks, engine.InvalidDeckIndex(srcDeck)
	}
	if !validDeckIndex(dstDeck) {
		return decks, engine.InvalidDeckIndex(dstDeck)
	}

	source, destination := decks[srcDeck], decks[dstDeck]
	if srcDeck == dstDeck || source == nil || destination == nil || source.Spellcaster == nil {
		return decks, nil
	}

	next := decks
	next[dstDeck] = deck.SetSpellcaster(destination, source.Spellcaster)
	if destination.Spellcaster != nil {
		next[srcDeck] = deck.SetSpellcaster(source, destination.Spellcaster)
	} else {
		next[srcDeck] = deck.RemoveSpellcaster(source)
	}
	return next, nil
}

func validSlot(index int) bool {
	return index >= 0 && index < entities.SlotCount
}
