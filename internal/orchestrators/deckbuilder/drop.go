package deckbuilder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/deckbuilder-api/internal/engine"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/deck"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/dragroute"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/team"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// HandleDrop routes a finished drag gesture to exactly one engine operation
func (o *orchestrator) HandleDrop(ctx context.Context, input *HandleDropInput) (*HandleDropOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	switch {
	case input.TeamID != "":
		return o.dropOnTeam(ctx, input)
	case input.DeckID != "":
		return o.dropOnDeck(ctx, input)
	default:
		return nil, errors.InvalidArgument("team ID or deck ID is required")
	}
}

func (o *orchestrator) dropOnTeam(ctx context.Context, input *HandleDropInput) (*HandleDropOutput, error) {
	loaded, err := o.loadTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	item, err := o.dragItem(ctx, input.Active, func(deckID string) *entities.Deck {
		if i := loaded.team.DeckIndex(deckID); i >= 0 {
			return loaded.team.Decks[i]
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := dragroute.DetermineAction(activeDrag(input.Active, item), input.Over)
	logAction(action, "team_id", input.TeamID)

	decks := loaded.team.Decks
	var next team.Decks

	switch a := action.(type) {
	case dragroute.NoOp:
		next = decks

	case dragroute.SetSlot:
		idx, err := teamDeckIndex(loaded.team, a.DeckID)
		if err != nil {
			return nil, err
		}
		if a.Index == dragroute.AutoPlaceIndex {
			next, err = team.QuickAdd(decks, idx, a.Item)
		} else {
			next, err = team.SetSlot(decks, idx, a.Index, a.Item)
		}
		if err != nil {
			return nil, err
		}

	case dragroute.MoveSlot:
		src, err := teamDeckIndex(loaded.team, a.SourceDeckID)
		if err != nil {
			return nil, err
		}
		dst, err := teamDeckIndex(loaded.team, a.TargetDeckID)
		if err != nil {
			return nil, err
		}
		next, err = moveWithinTeam(decks, src, a.SourceIndex, dst, a.TargetIndex)
		if err != nil {
			return nil, err
		}

	case dragroute.ClearSlot:
		idx, err := teamDeckIndex(loaded.team, a.DeckID)
		if err != nil {
			return nil, err
		}
		if next, err = team.ClearSlot(decks, idx, a.Index); err != nil {
			return nil, err
		}

	case dragroute.SetSpellcaster:
		dst, err := teamDeckIndex(loaded.team, a.DeckID)
		if err != nil {
			return nil, err
		}
		switch {
		case a.SourceDeckID == "":
			next, err = team.SetSpellcaster(decks, dst, a.Spellcaster)
		case a.SourceDeckID == a.DeckID:
			next = decks
		default:
			src, srcErr := teamDeckIndex(loaded.team, a.SourceDeckID)
			if srcErr != nil {
				return nil, srcErr
			}
			next, err = team.MoveSpellcasterBetweenDecks(decks, src, dst)
		}
		if err != nil {
			return nil, err
		}

	case dragroute.RemoveSpellcaster:
		idx, err := teamDeckIndex(loaded.team, a.DeckID)
		if err != nil {
			return nil, err
		}
		if next, err = team.RemoveSpellcaster(decks, idx); err != nil {
			return nil, err
		}

	default:
		return nil, errors.Internalf("unhandled drag action %T", action)
	}

	out := &HandleDropOutput{Action: action}
	if next == decks {
		out.Team = newTeamOutput(loaded.team, loaded.dropped)
		return out, nil
	}

	updated := loaded.team.WithDecks(next)
	if err := o.saveTeam(ctx, loaded.stored, updated); err != nil {
		return nil, err
	}

	out.Applied = true
	out.Team = newTeamOutput(updated, loaded.dropped)
	return out, nil
}

func (o *orchestrator) dropOnDeck(ctx context.Context, input *HandleDropInput) (*HandleDropOutput, error) {
	loaded, err := o.loadDeck(ctx, input.DeckID)
	if err != nil {
		return nil, err
	}

	active := input.Active
	if active.Kind != dragroute.DragKindBrowserItem && active.SourceDeckID == "" {
		active.SourceDeckID = loaded.deck.ID
	}
	over := input.Over
	if over != nil && over.DeckID == "" {
		scoped := *over
		scoped.DeckID = loaded.deck.ID
		over = &scoped
	}

	item, err := o.dragItem(ctx, active, func(deckID string) *entities.Deck {
		if deckID == loaded.deck.ID {
			return loaded.deck
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := dragroute.DetermineAction(activeDrag(active, item), over)
	logAction(action, "deck_id", input.DeckID)

	d := loaded.deck
	var next *entities.Deck

	switch a := action.(type) {
	case dragroute.NoOp:
		next = d

	case dragroute.SetSlot:
		if err := sameDeck(d, a.DeckID); err != nil {
			return nil, err
		}
		if a.Index == dragroute.AutoPlaceIndex {
			next, err = deck.QuickAdd(d, a.Item)
		} else {
			next, err = deck.SetSlot(d, a.Index, a.Item)
		}
		if err != nil {
			return nil, err
		}

	case dragroute.MoveSlot:
		if err := sameDeck(d, a.SourceDeckID); err != nil {
			return nil, err
		}
		if err := sameDeck(d, a.TargetDeckID); err != nil {
			return nil, err
		}
		if a.TargetIndex == dragroute.AutoPlaceIndex {
			next = d
		} else if next, err = deck.SwapSlots(d, a.SourceIndex, a.TargetIndex); err != nil {
			return nil, err
		}

	case dragroute.ClearSlot:
		if err := sameDeck(d, a.DeckID); err != nil {
			return nil, err
		}
		next = deck.ClearSlot(d, a.Index)

	case dragroute.SetSpellcaster:
		if err := sameDeck(d, a.DeckID); err != nil {
			return nil, err
		}
		switch a.SourceDeckID {
		case "":
			next = deck.SetSpellcaster(d, a.Spellcaster)
		case d.ID:
			next = d
		default:
			return nil, errors.FailedPrecondition("moving a spellcaster between decks requires a team")
		}

	case dragroute.RemoveSpellcaster:
		if err := sameDeck(d, a.DeckID); err != nil {
			return nil, err
		}
		next = deck.RemoveSpellcaster(d)

	default:
		return nil, errors.Internalf("unhandled drag action %T", action)
	}

	out := &HandleDropOutput{Action: action}
	if next == d {
		out.Deck = newDeckOutput(d, loaded.dropped)
		return out, nil
	}

	if err := o.saveDeck(ctx, loaded.stored, next); err != nil {
		return nil, err
	}

	out.Applied = true
	out.Deck = newDeckOutput(next, loaded.dropped)
	return out, nil
}

// moveWithinTeam turns a MOVE_SLOT into a swap for a single deck or a
// cross-deck move. An automatic target picks the first empty slot that fits.
func moveWithinTeam(decks team.Decks, srcDeck, srcSlot, dstDeck, dstSlot int) (team.Decks, error) {
	if srcDeck == dstDeck {
		if dstSlot == dragroute.AutoPlaceIndex {
			return decks, nil
		}
		return team.SwapSlots(decks, srcDeck, srcSlot, dstSlot)
	}

	if dstSlot == dragroute.AutoPlaceIndex {
		source := decks[srcDeck]
		if srcSlot < 0 || srcSlot >= entities.SlotCount {
			return decks, engine.InvalidSlotIndex(srcSlot)
		}
		card := source.Slots[srcSlot].Unit
		if card == nil {
			return decks, engine.EmptySource(srcDeck, srcSlot)
		}

		slot, err := autoTarget(decks[dstDeck], card)
		if err != nil {
			return decks, err
		}
		dstSlot = slot
	}

	return team.MoveCardBetweenDecks(decks, srcDeck, srcSlot, dstDeck, dstSlot)
}

// autoTarget picks where a card dragged onto a deck header lands: the titan
// slot for titans, otherwise the lowest empty unit slot. The destination's own
// singleton rule is left to setSlot.
func autoTarget(d *entities.Deck, card *entities.Card) (int, error) {
	if card.Category == entities.CategoryTitan {
		idx := deck.TitanSlotIndex(d)
		if idx < 0 {
			return 0, engine.NoTitanSlot()
		}
		return idx, nil
	}

	for i := 0; i < entities.UnitSlotCount; i++ {
		if d.Slots[i].IsEmpty() {
			return i, nil
		}
	}
	return 0, engine.DeckFull()
}

// dragItem resolves the dragged entity, reading it from the source deck when
// the client did not name it
func (o *orchestrator) dragItem(ctx context.Context, active DragItem, deckByID func(string) *entities.Deck) (entities.Entity, error) {
	if active.EntityID != "" {
		return o.resolveEntity(ctx, active.EntityID)
	}

	source := deckByID(active.SourceDeckID)
	switch active.Kind {
	case dragroute.DragKindDeckSlot:
		if source == nil {
			return nil, errors.NotFoundf("source deck %s not found", active.SourceDeckID)
		}
		if active.SourceSlotIndex < 0 || active.SourceSlotIndex >= entities.SlotCount {
			return nil, engine.InvalidSlotIndex(active.SourceSlotIndex)
		}
		if card := source.Slots[active.SourceSlotIndex].Unit; card != nil {
			return card, nil
		}
		return nil, nil
	case dragroute.DragKindDeckSpellcaster:
		if source == nil {
			return nil, errors.NotFoundf("source deck %s not found", active.SourceDeckID)
		}
		if source.Spellcaster != nil {
			return source.Spellcaster, nil
		}
		return nil, nil
	default:
		return nil, errors.InvalidArgument(errEntityIDRequired)
	}
}

func activeDrag(item DragItem, entity entities.Entity) dragroute.ActiveDrag {
	return dragroute.ActiveDrag{
		Kind:            item.Kind,
		Item:            entity,
		SourceSlotIndex: item.SourceSlotIndex,
		SourceDeckID:    item.SourceDeckID,
	}
}

func teamDeckIndex(t *entities.Team, deckID string) (int, error) {
	idx := t.DeckIndex(deckID)
	if idx < 0 {
		return idx, errors.NotFoundf("deck %s is not part of team %s", deckID, t.ID)
	}
	return idx, nil
}

func sameDeck(d *entities.Deck, deckID string) error {
	if deckID != d.ID {
		return errors.FailedPrecondition(fmt.Sprintf("deck %s cannot change deck %s outside a team", d.ID, deckID))
	}
	return nil
}

func logAction(action dragroute.Action, scopeKey, scopeID string) {
	slog.Debug("drop routed",
		scopeKey, scopeID,
		"action", string(action.Type()))
}
