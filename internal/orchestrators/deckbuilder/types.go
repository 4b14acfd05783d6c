package deckbuilder

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/dragroute"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/validation"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// DeckOutput is a deck snapshot with its validation report
type DeckOutput struct {
	Deck       *entities.Deck
	Validation *validation.Result

	// Catalog IDs the stored deck referenced that no longer resolve
	Dropped []string
}

// TeamOutput is a team snapshot with one validation report per deck
type TeamOutput struct {
	Team       *entities.Team
	Validation [entities.TeamSize]*validation.Result
	IsValid    bool
	Dropped    []string
}

// CreateDeckInput contains parameters for creating an empty deck
type CreateDeckInput struct {
	OwnerID string
	Name    string
}

// GetDeckInput contains parameters for loading a deck
type GetDeckInput struct {
	DeckID string
}

// ListDecksInput contains parameters for listing an owner's decks
type ListDecksInput struct {
	OwnerID string
}

// ListDecksOutput contains an owner's decks, oldest first
type ListDecksOutput struct {
	Decks []*DeckOutput
}

// DeleteDeckInput contains parameters for deleting a deck
type DeleteDeckInput struct {
	DeckID string
}

// DeleteDeckOutput is empty
type DeleteDeckOutput struct{}

// RenameDeckInput contains parameters for renaming a deck
type RenameDeckInput struct {
	DeckID string
	Name   string
}

// SetSpellcasterInput seats a catalog spellcaster in a deck
type SetSpellcasterInput struct {
	DeckID        string
	SpellcasterID string
}

// RemoveSpellcasterInput clears a deck's spellcaster
type RemoveSpellcasterInput struct {
	DeckID string
}

// SetSlotInput places a catalog card into a specific slot
type SetSlotInput struct {
	DeckID    string
	SlotIndex int
	EntityID  string
}

// ClearSlotInput empties a slot
type ClearSlotInput struct {
	DeckID    string
	SlotIndex int
}

// SwapSlotsInput exchanges the contents of two slots
type SwapSlotsInput struct {
	DeckID string
	IndexA int
	IndexB int
}

// QuickAddInput places a catalog entity wherever it fits best
type QuickAddInput struct {
	DeckID   string
	EntityID string
}

// ValidateDeckInput contains parameters for validating a stored deck
type ValidateDeckInput struct {
	DeckID string
}

// AutoFillDeckInput contains parameters for filling a deck's empty slots
type AutoFillDeckInput struct {
	DeckID string
}

// AutoFillDeckOutput is the filled deck plus the IDs that were added
type AutoFillDeckOutput struct {
	DeckOutput
	Added []string
}

// CreateTeamInput contains parameters for creating a team of three empty decks
type CreateTeamInput struct {
	OwnerID string
	Name    string
}

// GetTeamInput contains parameters for loading a team
type GetTeamInput struct {
	TeamID string
}

// DeleteTeamInput contains parameters for deleting a team
type DeleteTeamInput struct {
	TeamID string
}

// DeleteTeamOutput is empty
type DeleteTeamOutput struct{}

// TeamSetSlotInput places a card into one deck of a team
type TeamSetSlotInput struct {
	TeamID    string
	DeckIndex int
	SlotIndex int
	EntityID  string
}

// TeamClearSlotInput empties a slot in one deck of a team
type TeamClearSlotInput struct {
	TeamID    string
	DeckIndex int
	SlotIndex int
}

// TeamSwapSlotsInput swaps two slots within one deck of a team
type TeamSwapSlotsInput struct {
	TeamID    string
	DeckIndex int
	IndexA    int
	IndexB    int
}

// TeamQuickAddInput quick-adds an entity to one deck of a team
type TeamQuickAddInput struct {
	TeamID    string
	DeckIndex int
	EntityID  string
}

// TeamSetSpellcasterInput seats a spellcaster in one deck of a team
type TeamSetSpellcasterInput struct {
	TeamID        string
	DeckIndex     int
	SpellcasterID string
}

// TeamRemoveSpellcasterInput clears the spellcaster of one deck of a team
type TeamRemoveSpellcasterInput struct {
	TeamID    string
	DeckIndex int
}

// MoveCardBetweenDecksInput moves a card from one deck of a team to another
type MoveCardBetweenDecksInput struct {
	TeamID  string
	SrcDeck int
	SrcSlot int
	DstDeck int
	DstSlot int
}

// MoveSpellcasterBetweenDecksInput moves or swaps spellcasters between decks
type MoveSpellcasterBetweenDecksInput struct {
	TeamID  string
	SrcDeck int
	DstDeck int
}

// ValidateTeamInput contains parameters for validating a stored team
type ValidateTeamInput struct {
	TeamID string
}

// DragItem describes what is being dragged. EntityID may be left empty for
// slot and spellcaster drags; the item is then read from the source deck.
type DragItem struct {
	Kind            dragroute.DragKind
	EntityID        string
	SourceSlotIndex int
	SourceDeckID    string
}

// HandleDropInput is a completed drag gesture. Set TeamID to edit a team, or
// DeckID to edit a single stored deck. A nil Over is a drop on nothing.
type HandleDropInput struct {
	TeamID string
	DeckID string
	Active DragItem
	Over   *dragroute.DropTarget
}

// HandleDropOutput reports what the gesture meant and the resulting snapshot.
// Applied is false when the gesture mapped to nothing and the item snaps back.
type HandleDropOutput struct {
	Action  dragroute.Action
	Applied bool

	// Exactly one of Deck and Team is set, matching the input scope
	Deck *DeckOutput
	Team *TeamOutput
}
