package dragroute

import "github.com/KirkDiggler/deckbuilder-api/internal/entities"

// ActionType names an Action variant
type ActionType string

// Action types
const (
	ActionNoOp              ActionType = "NO_OP"
	ActionMoveSlot          ActionType = "MOVE_SLOT"
	ActionSetSlot           ActionType = "SET_SLOT"
	ActionClearSlot         ActionType = "CLEAR_SLOT"
	ActionSetSpellcaster    ActionType = "SET_SPELLCASTER"
	ActionRemoveSpellcaster ActionType = "REMOVE_SPELLCASTER"
)

// Action is the closed set of things a drop can mean. Only the types in this
// file implement it; switch on the concrete type to handle every variant.
type Action interface {
	Type() ActionType
	action()
}

// NoOp snaps the dragged item back
type NoOp struct{}

// MoveSlot moves a card from one slot to another, within a deck (a swap) or
// across decks. TargetIndex is AutoPlaceIndex for a header drop.
type MoveSlot struct {
	SourceIndex  int
	SourceDeckID string
	TargetIndex  int
	TargetDeckID string
}

// SetSlot places a catalog item. Index is AutoPlaceIndex for quick-add.
type SetSlot struct {
	Index  int
	DeckID string
	Item   entities.Entity
}

// ClearSlot empties a slot
type ClearSlot struct {
	Index  int
	DeckID string
}

// SetSpellcaster seats a spellcaster. SourceDeckID is set when the spellcaster
// was dragged out of another deck.
type SetSpellcaster struct {
	Spellcaster  *entities.Spellcaster
	DeckID       string
	SourceDeckID string
}

// RemoveSpellcaster clears a deck's spellcaster
type RemoveSpellcaster struct {
	DeckID string
}

// Type implements Action
func (NoOp) Type() ActionType { return ActionNoOp }

// Type implements Action
func (MoveSlot) Type() ActionType { return ActionMoveSlot }

// Type implements Action
func (SetSlot) Type() ActionType { return ActionSetSlot }

// Type implements Action
func (ClearSlot) Type() ActionType { return ActionClearSlot }

// Type implements Action
func (SetSpellcaster) Type() ActionType { return ActionSetSpellcaster }

// Type implements Action
func (RemoveSpellcaster) Type() ActionType { return ActionRemoveSpellcaster }

func (NoOp) action()              {}
func (MoveSlot) action()          {}
func (SetSlot) action()           {}
func (ClearSlot) action()         {}
func (SetSpellcaster) action()    {}
func (RemoveSpellcaster) action() {}
