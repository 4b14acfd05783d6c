package deck

import (
	"fmt"

	"github.com/KirkDiggler/deckbuilder-api/internal/engine"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// CanAcceptUnit returns nil when slot may hold card, or a SLOT_MISMATCH error.
// A titan-only slot refuses non-titans and a unit-only slot refuses titans;
// an empty candidate always fits.
func CanAcceptUnit(slot entities.DeckSlot, card *entities.Card) error {
	if card == nil {
		return nil
	}

	acceptsTitan := slot.Accepts(entities.SlotTypeTitan)
	acceptsUnit := slot.Accepts(entities.SlotTypeUnit)
	isTitan := card.Category == entities.CategoryTitan

	if acceptsTitan && !acceptsUnit && !isTitan {
		return engine.SlotMismatch(fmt.Sprintf("slot %d only accepts Titans", slot.Index))
	}
	if acceptsUnit && !acceptsTitan && isTitan {
		return engine.SlotMismatch(fmt.Sprintf("slot %d does not accept Titans", slot.Index))
	}
	return nil
}

// TitanSlotIndex returns the first slot accepting titans, or -1
func TitanSlotIndex(d *entities.Deck) int {
	for i, slot := range d.Slots {
		if slot.Accepts(entities.SlotTypeTitan) {
			return i
		}
	}
	return -1
}

func validSlotIndex(index int) bool {
	return index >= 0 && index < entities.SlotCount
}
