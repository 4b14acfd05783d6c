package deckbuilder_test

import (
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/dragroute"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/deckbuilder"
)

const (
	deckOne   = "team_1_deck_1"
	deckTwo   = "team_1_deck_2"
	deckThree = "team_1_deck_3"
)

func header(deckID string) *dragroute.DropTarget {
	return &dragroute.DropTarget{Kind: dragroute.DropKindDeckHeader, DeckID: deckID}
}

func slotTarget(deckID string, index int) *dragroute.DropTarget {
	accepts := []entities.SlotType{entities.SlotTypeUnit}
	if index == entities.TitanSlotIndex {
		accepts = []entities.SlotType{entities.SlotTypeTitan}
	}
	return &dragroute.DropTarget{Kind: dragroute.DropKindDeckSlot, Index: index, DeckID: deckID, Accepts: accepts}
}

func (s *OrchestratorTestSuite) TestHandleDropRequiresScope() {
	_, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestHandleDropOnTeam() {
	s.Run("browser titan onto header fills the titan slot", func() {
		s.expectTeam(s.storedTeam())
		saved := s.expectTeamSave()

		out, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			TeamID: "team_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindBrowserItem, EntityID: worldbreaker},
			Over:   header(deckTwo),
		})
		s.Require().NoError(err)
		s.True(out.Applied)
		s.Equal(dragroute.ActionSetSlot, out.Action.Type())
		s.Equal(worldbreaker, saved.Decks[1].SlotIDs[entities.TitanSlotIndex])
	})

	s.Run("slot dropped on nothing clears it", func() {
		stored := s.storedTeam()
		stored.Decks[0].SlotIDs[2] = fireball
		s.expectTeam(stored)
		saved := s.expectTeamSave()

		out, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			TeamID: "team_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindDeckSlot, SourceSlotIndex: 2, SourceDeckID: deckOne},
		})
		s.Require().NoError(err)
		s.Equal(dragroute.ClearSlot{Index: 2, DeckID: deckOne}, out.Action)
		s.Empty(saved.Decks[0].SlotIDs[2])
	})

	s.Run("slot onto another deck header lands in first empty slot", func() {
		stored := s.storedTeam()
		stored.Decks[0].SlotIDs[3] = emberImp
		stored.Decks[2].SlotIDs[0] = fireball
		s.expectTeam(stored)
		saved := s.expectTeamSave()

		out, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			TeamID: "team_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindDeckSlot, SourceSlotIndex: 3, SourceDeckID: deckOne},
			Over:   header(deckThree),
		})
		s.Require().NoError(err)
		s.True(out.Applied)
		s.Empty(saved.Decks[0].SlotIDs[3])
		s.Equal(emberImp, saved.Decks[2].SlotIDs[1])
	})

	s.Run("spellcaster dragged to another deck swaps", func() {
		stored := s.storedTeam()
		stored.Decks[0].SpellcasterID = astralMonk
		stored.Decks[2].SpellcasterID = fireElementist
		s.expectTeam(stored)
		saved := s.expectTeamSave()

		out, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			TeamID: "team_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindDeckSpellcaster, SourceDeckID: deckOne},
			Over:   &dragroute.DropTarget{Kind: dragroute.DropKindSpellcasterZone, DeckID: deckThree},
		})
		s.Require().NoError(err)
		s.True(out.Applied)
		s.Equal(fireElementist, saved.Decks[0].SpellcasterID)
		s.Equal(astralMonk, saved.Decks[2].SpellcasterID)
	})

	s.Run("unit over the titan slot does nothing", func() {
		s.expectTeam(s.storedTeam())

		out, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			TeamID: "team_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindBrowserItem, EntityID: emberImp},
			Over:   slotTarget(deckOne, entities.TitanSlotIndex),
		})
		s.Require().NoError(err)
		s.False(out.Applied)
		s.Equal(dragroute.NoOp{}, out.Action)
		s.NotNil(out.Team)
	})

	s.Run("deck outside the team", func() {
		s.expectTeam(s.storedTeam())

		_, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			TeamID: "team_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindBrowserItem, EntityID: emberImp},
			Over:   slotTarget("deck_9", 0),
		})
		s.True(errors.IsNotFound(err))
	})

	s.Run("rule failures come back unchanged", func() {
		stored := s.storedTeam()
		stored.Decks[0].SlotIDs[0] = emberImp
		s.expectTeam(stored)

		_, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			TeamID: "team_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindBrowserItem, EntityID: emberImp},
			Over:   header(deckOne),
		})
		s.True(errors.IsAlreadyExists(err))
	})
}

func (s *OrchestratorTestSuite) TestHandleDropOnDeck() {
	s.Run("swap inside the deck", func() {
		s.expectDeck(storedDeck("deck_1", "", emberImp, "", fireball))
		saved := s.expectDeckSave()

		out, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			DeckID: "deck_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindDeckSlot, SourceSlotIndex: 0},
			Over:   slotTarget("", 1),
		})
		s.Require().NoError(err)
		s.True(out.Applied)
		s.Equal(emberImp, saved.SlotIDs[1])
		s.Equal(emberImp, out.Deck.Deck.Slots[1].Unit.EntityID)
		s.True(out.Deck.Deck.Slots[0].IsEmpty())
	})

	s.Run("browser spellcaster onto zone", func() {
		s.expectDeck(storedDeck("deck_1", ""))
		saved := s.expectDeckSave()

		out, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			DeckID: "deck_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindBrowserItem, EntityID: astralMonk},
			Over:   &dragroute.DropTarget{Kind: dragroute.DropKindSpellcasterZone},
		})
		s.Require().NoError(err)
		s.Equal(dragroute.ActionSetSpellcaster, out.Action.Type())
		s.Equal(astralMonk, saved.SpellcasterID)
	})

	s.Run("target in another deck", func() {
		s.expectDeck(storedDeck("deck_1", ""))

		_, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			DeckID: "deck_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindBrowserItem, EntityID: emberImp},
			Over:   slotTarget("deck_2", 0),
		})
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("header move inside the deck", func() {
		s.expectDeck(storedDeck("deck_1", "", emberImp))

		out, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			DeckID: "deck_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindDeckSlot, SourceSlotIndex: 0},
			Over:   &dragroute.DropTarget{Kind: dragroute.DropKindDeckHeader},
		})
		s.Require().NoError(err)
		s.False(out.Applied)
	})
}
