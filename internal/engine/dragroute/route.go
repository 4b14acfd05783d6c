// Package dragroute turns drag-and-drop gesture state into an Action. It
// performs no mutation; callers dispatch the Action to the deck and team rules.
package dragroute

import "github.com/KirkDiggler/deckbuilder-api/internal/entities"

// AutoPlaceIndex is the target index of a deck header: place automatically
const AutoPlaceIndex = -1

// DragKind is where the dragged item came from
type DragKind string

// Drag kinds
const (
	DragKindBrowserItem     DragKind = "BROWSER_ITEM"
	DragKindDeckSlot        DragKind = "DECK_SLOT"
	DragKindDeckSpellcaster DragKind = "DECK_SPELLCASTER"
)

// ActiveDrag describes the item being dragged
type ActiveDrag struct {
	Kind DragKind
	Item entities.Entity

	// Set for DECK_SLOT and DECK_SPELLCASTER drags
	SourceSlotIndex int
	SourceDeckID    string
}

// DropKind is what the pointer is over
type DropKind string

// Drop kinds
const (
	DropKindDeckSlot        DropKind = "DECK_SLOT"
	DropKindDeckHeader      DropKind = "DECK_HEADER"
	DropKindDeckBackground  DropKind = "DECK_BACKGROUND"
	DropKindSpellcasterZone DropKind = "SPELLCASTER_ZONE"
)

// DropTarget describes the drop target. A nil *DropTarget is a drop on nothing.
type DropTarget struct {
	Kind    DropKind
	Index   int
	DeckID  string
	Accepts []entities.SlotType
}

// DetermineAction maps a gesture to exactly one Action
func DetermineAction(active ActiveDrag, over *DropTarget) Action {
	if over == nil {
		return voidDrop(active)
	}

	// The seated spellcaster may only land on a spellcaster zone
	if active.Kind == DragKindDeckSpellcaster && over.Kind != DropKindSpellcasterZone {
		return NoOp{}
	}

	switch over.Kind {
	case DropKindSpellcasterZone:
		return spellcasterDrop(active, over)
	case DropKindDeckSlot, DropKindDeckHeader:
		return slotDrop(active, over)
	default:
		return NoOp{}
	}
}

func voidDrop(active ActiveDrag) Action {
	switch active.Kind {
	case DragKindDeckSlot:
		return ClearSlot{Index: active.SourceSlotIndex, DeckID: active.SourceDeckID}
	case DragKindDeckSpellcaster:
		return RemoveSpellcaster{DeckID: active.SourceDeckID}
	default:
		return NoOp{}
	}
}

func spellcasterDrop(active ActiveDrag, over *DropTarget) Action {
	sc, ok := entities.AsSpellcaster(active.Item)
	if !ok {
		return NoOp{}
	}

	action := SetSpellcaster{Spellcaster: sc, DeckID: over.DeckID}
	if active.Kind == DragKindDeckSpellcaster {
		action.SourceDeckID = active.SourceDeckID
	}
	return action
}

func slotDrop(active ActiveDrag, over *DropTarget) Action {
	target := over.Index
	if over.Kind == DropKindDeckHeader {
		target = AutoPlaceIndex
	}

	switch active.Kind {
	case DragKindDeckSlot:
		if active.SourceDeckID == over.DeckID && active.SourceSlotIndex == target {
			return NoOp{}
		}
		return MoveSlot{
			SourceIndex:  active.SourceSlotIndex,
			SourceDeckID: active.SourceDeckID,
			TargetIndex:  target,
			TargetDeckID: over.DeckID,
		}
	case DragKindBrowserItem:
		if !fitsTarget(active.Item, over.Accepts) {
			return NoOp{}
		}
		return SetSlot{Index: target, DeckID: over.DeckID, Item: active.Item}
	default:
		return NoOp{}
	}
}

// fitsTarget rejects spellcasters and unknown entities, and cards the target
// declares it does not accept. A target without declared types takes any card.
func fitsTarget(item entities.Entity, accepts []entities.SlotType) bool {
	var want entities.SlotType
	switch entities.Classify(item) {
	case entities.KindTitan:
		want = entities.SlotTypeTitan
	case entities.KindUnit, entities.KindSpell:
		want = entities.SlotTypeUnit
	default:
		return false
	}

	if len(accepts) == 0 {
		return true
	}
	for _, t := range accepts {
		if t == want {
			return true
		}
	}
	return false
}
