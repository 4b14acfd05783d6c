// Package engine holds the rule-failure vocabulary shared by the deck, team,
// drag routing and validation packages. Everything under engine is pure:
// no I/O, no shared state, inputs are never modified.
package engine

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// Rule failure reasons. These travel in errors.Error.Reason.
const (
	ReasonInvalidDeckIndex = "INVALID_DECK_INDEX"
	ReasonInvalidSlotIndex = "INVALID_SLOT_INDEX"
	ReasonInvalidIndex     = "INVALID_INDEX"
	ReasonInvalidType      = "INVALID_TYPE"
	ReasonSlotMismatch     = "SLOT_MISMATCH"
	ReasonSwapInvalid      = "SWAP_INVALID"
	ReasonDuplicateUnit    = "DUPLICATE_UNIT"
	ReasonDeckFull         = "DECK_FULL"
	ReasonNoTitanSlot      = "NO_TITAN_SLOT"
	ReasonEmptySource      = "EMPTY_SOURCE"
	ReasonUseSwap          = "USE_SWAP"
)

// InvalidDeckIndex reports a team deck index outside the team
func InvalidDeckIndex(index int) *errors.Error {
	return errors.OutOfRangef("deck index %d is out of range", index).
		WithReason(ReasonInvalidDeckIndex).
		WithMeta("deck_index", index)
}

// InvalidSlotIndex reports a slot index outside the deck
func InvalidSlotIndex(index int) *errors.Error {
	return errors.OutOfRangef("slot index %d is out of range", index).
		WithReason(ReasonInvalidSlotIndex).
		WithMeta("slot_index", index)
}

// InvalidIndex reports a swap with an index outside the deck
func InvalidIndex(a, b int) *errors.Error {
	return errors.OutOfRangef("cannot swap slots %d and %d: index out of range", a, b).
		WithReason(ReasonInvalidIndex)
}

// InvalidType reports an entity of the wrong kind for the target
func InvalidType(message string) *errors.Error {
	return errors.InvalidArgument(message).WithReason(ReasonInvalidType)
}

// SlotMismatch reports a slot refusing a card's kind
func SlotMismatch(message string) *errors.Error {
	return errors.FailedPrecondition(message).WithReason(ReasonSlotMismatch)
}

// SwapInvalid reports a swap one of the slots would refuse
func SwapInvalid(message string) *errors.Error {
	return errors.FailedPrecondition(message).WithReason(ReasonSwapInvalid)
}

// DuplicateUnit reports a singleton violation
func DuplicateUnit(name string) *errors.Error {
	return errors.AlreadyExistsf("%s is already in this deck", name).
		WithReason(ReasonDuplicateUnit)
}

// DeckFull reports no empty unit slot
func DeckFull() *errors.Error {
	return errors.ResourceExhaustedf("deck has no empty unit slot").
		WithReason(ReasonDeckFull)
}

// NoTitanSlot reports a deck without a titan slot
func NoTitanSlot() *errors.Error {
	return errors.ResourceExhaustedf("deck has no titan slot").
		WithReason(ReasonNoTitanSlot)
}

// EmptySource reports a move from an empty slot
func EmptySource(deckIndex, slotIndex int) *errors.Error {
	return errors.FailedPreconditionf("slot %d of deck %d is empty", slotIndex, deckIndex).
		WithReason(ReasonEmptySource)
}

// UseSwap reports a cross-deck move within a single deck
func UseSwap() *errors.Error {
	return errors.InvalidArgument("source and destination are the same deck; swap slots instead").
		WithReason(ReasonUseSwap)
}
