package v1alpha1

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/dragroute"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/deckbuilder"
)

func deckResponse(out *deckbuilder.DeckOutput, err error) (*DeckResponse, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toDeckResponse(out), nil
}

func teamResponse(out *deckbuilder.TeamOutput, err error) (*TeamResponse, error) {
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return toTeamResponse(out), nil
}

func toDeckResponse(out *deckbuilder.DeckOutput) *DeckResponse {
	return &DeckResponse{
		Deck:       out.Deck,
		Validation: out.Validation,
		Dropped:    out.Dropped,
	}
}

func toTeamResponse(out *deckbuilder.TeamOutput) *TeamResponse {
	return &TeamResponse{
		Team:       out.Team,
		Validation: out.Validation,
		IsValid:    out.IsValid,
		Dropped:    out.Dropped,
	}
}

func toActionView(action dragroute.Action) ActionView {
	view := ActionView{Type: dragroute.ActionNoOp}
	if action == nil {
		return view
	}
	view.Type = action.Type()

	switch a := action.(type) {
	case dragroute.MoveSlot:
		view.SourceDeckID = a.SourceDeckID
		view.SourceIndex = intPtr(a.SourceIndex)
		view.TargetDeckID = a.TargetDeckID
		view.TargetIndex = intPtr(a.TargetIndex)
	case dragroute.SetSlot:
		view.DeckID = a.DeckID
		view.Index = intPtr(a.Index)
		if a.Item != nil {
			view.EntityID = a.Item.GetID()
		}
	case dragroute.ClearSlot:
		view.DeckID = a.DeckID
		view.Index = intPtr(a.Index)
	case dragroute.SetSpellcaster:
		view.DeckID = a.DeckID
		view.SourceDeckID = a.SourceDeckID
		if a.Spellcaster != nil {
			view.SpellcasterID = a.Spellcaster.GetID()
		}
	case dragroute.RemoveSpellcaster:
		view.DeckID = a.DeckID
	}
	return view
}

func intPtr(v int) *int {
	return &v
}
