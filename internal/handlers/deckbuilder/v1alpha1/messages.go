package v1alpha1

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/dragroute"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/validation"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// Requests

type CreateDeckRequest struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name,omitempty"`
}

type DeckRequest struct {
	DeckID string `json:"deck_id"`
}

type ListDecksRequest struct {
	OwnerID string `json:"owner_id"`
}

type RenameDeckRequest struct {
	DeckID string `json:"deck_id"`
	Name   string `json:"name"`
}

type SetSpellcasterRequest struct {
	DeckID        string `json:"deck_id"`
	SpellcasterID string `json:"spellcaster_id"`
}

type SetSlotRequest struct {
	DeckID    string `json:"deck_id"`
	SlotIndex int    `json:"slot_index"`
	EntityID  string `json:"entity_id"`
}

type ClearSlotRequest struct {
	DeckID    string `json:"deck_id"`
	SlotIndex int    `json:"slot_index"`
}

type SwapSlotsRequest struct {
	DeckID string `json:"deck_id"`
	IndexA int    `json:"index_a"`
	IndexB int    `json:"index_b"`
}

type QuickAddRequest struct {
	DeckID   string `json:"deck_id"`
	EntityID string `json:"entity_id"`
}

type CreateTeamRequest struct {
	OwnerID string `json:"owner_id"`
	Name    string `json:"name,omitempty"`
}

type TeamRequest struct {
	TeamID string `json:"team_id"`
}

// TeamSlotRequest addresses one slot of one team deck. EntityID is only read
// by set and quick-add; IndexB only by swap, where SlotIndex is the first slot.
type TeamSlotRequest struct {
	TeamID    string `json:"team_id"`
	DeckIndex int    `json:"deck_index"`
	SlotIndex int    `json:"slot_index"`
	IndexB    int    `json:"index_b,omitempty"`
	EntityID  string `json:"entity_id,omitempty"`
}

type TeamSpellcasterRequest struct {
	TeamID        string `json:"team_id"`
	DeckIndex     int    `json:"deck_index"`
	SpellcasterID string `json:"spellcaster_id,omitempty"`
}

type MoveCardRequest struct {
	TeamID  string `json:"team_id"`
	SrcDeck int    `json:"src_deck"`
	SrcSlot int    `json:"src_slot"`
	DstDeck int    `json:"dst_deck"`
	DstSlot int    `json:"dst_slot"`
}

type MoveSpellcasterRequest struct {
	TeamID  string `json:"team_id"`
	SrcDeck int    `json:"src_deck"`
	DstDeck int    `json:"dst_deck"`
}

// DragItem is the client's view of what is being dragged
type DragItem struct {
	Kind            dragroute.DragKind `json:"kind"`
	EntityID        string             `json:"entity_id,omitempty"`
	SourceSlotIndex int                `json:"source_slot_index,omitempty"`
	SourceDeckID    string             `json:"source_deck_id,omitempty"`
}

// DropTarget is what the pointer was over. Omitted means the item was
// dropped on nothing.
type DropTarget struct {
	Kind    dragroute.DropKind  `json:"kind"`
	Index   int                 `json:"index,omitempty"`
	DeckID  string              `json:"deck_id,omitempty"`
	Accepts []entities.SlotType `json:"accepts,omitempty"`
}

type HandleDropRequest struct {
	TeamID string      `json:"team_id,omitempty"`
	DeckID string      `json:"deck_id,omitempty"`
	Active DragItem    `json:"active"`
	Over   *DropTarget `json:"over,omitempty"`
}

type ListCardsRequest struct {
	Category     entities.Category `json:"category,omitempty"`
	NameContains string            `json:"name_contains,omitempty"`
}

type ListSpellcastersRequest struct{}

// Responses

type DeckResponse struct {
	Deck       *entities.Deck     `json:"deck"`
	Validation *validation.Result `json:"validation"`
	Dropped    []string           `json:"dropped,omitempty"`
}

type ListDecksResponse struct {
	Decks []*DeckResponse `json:"decks"`
}

type AutoFillDeckResponse struct {
	DeckResponse
	Added []string `json:"added"`
}

type TeamResponse struct {
	Team       *entities.Team                        `json:"team"`
	Validation [entities.TeamSize]*validation.Result `json:"validation"`
	IsValid    bool                                  `json:"is_valid"`
	Dropped    []string                              `json:"dropped,omitempty"`
}

type DeleteResponse struct{}

// ActionView flattens a routed drag action. Only the fields the action
// carries are set.
type ActionView struct {
	Type          dragroute.ActionType `json:"type"`
	DeckID        string               `json:"deck_id,omitempty"`
	Index         *int                 `json:"index,omitempty"`
	EntityID      string               `json:"entity_id,omitempty"`
	SourceDeckID  string               `json:"source_deck_id,omitempty"`
	SourceIndex   *int                 `json:"source_index,omitempty"`
	TargetDeckID  string               `json:"target_deck_id,omitempty"`
	TargetIndex   *int                 `json:"target_index,omitempty"`
	SpellcasterID string               `json:"spellcaster_id,omitempty"`
}

type HandleDropResponse struct {
	Action  ActionView    `json:"action"`
	Applied bool          `json:"applied"`
	Deck    *DeckResponse `json:"deck,omitempty"`
	Team    *TeamResponse `json:"team,omitempty"`
}

type ListCardsResponse struct {
	Cards []*entities.Card `json:"cards"`
}

type ListSpellcastersResponse struct {
	Spellcasters []*entities.Spellcaster `json:"spellcasters"`
}
