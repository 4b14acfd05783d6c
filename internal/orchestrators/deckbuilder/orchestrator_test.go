package deckbuilder_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/deckbuilder-api/internal/catalog"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/dragroute"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/validation"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/deckbuilder"
	"github.com/KirkDiggler/deckbuilder-api/internal/pkg/idgen"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/decks"
	decksmock "github.com/KirkDiggler/deckbuilder-api/internal/repositories/decks/mock"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/teams"
	teamsmock "github.com/KirkDiggler/deckbuilder-api/internal/repositories/teams/mock"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/conversion"
)

const (
	ownerID = "player_1"

	emberImp       = "creature_ember_imp"
	forestWisp     = "creature_forest_wisp"
	shadeStalker   = "creature_shade_stalker"
	fireball       = "spell_fireball"
	worldbreaker   = "titan_worldbreaker"
	astralMonk     = "spellcaster_astral_monk"
	fireElementist = "spellcaster_fire_elementalist"
)

// fixedRoller always rolls the same value
type fixedRoller int

func (r fixedRoller) Roll(int) (int, error) { return int(r), nil }

type OrchestratorTestSuite struct {
	suite.Suite
	ctx       context.Context
	ctrl      *gomock.Controller
	mockDecks *decksmock.MockRepository
	mockTeams *teamsmock.MockRepository
	converter conversion.DeckConverter
	bus       *events.Bus
	service   deckbuilder.Service
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.mockDecks = decksmock.NewMockRepository(s.ctrl)
	s.mockTeams = teamsmock.NewMockRepository(s.ctrl)

	cat, err := catalog.Default()
	s.Require().NoError(err)

	s.converter, err = conversion.NewDeckConverter(&conversion.DeckConverterConfig{Catalog: cat})
	s.Require().NoError(err)

	s.bus = events.NewBus()
	s.service, err = deckbuilder.NewOrchestrator(&deckbuilder.Config{
		DeckRepo:        s.mockDecks,
		TeamRepo:        s.mockTeams,
		Catalog:         cat,
		Converter:       s.converter,
		DeckIDGenerator: idgen.NewSequential("deck"),
		TeamIDGenerator: idgen.NewSequential("team"),
		Roller:          fixedRoller(1),
		EventBus:        s.bus,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

// recordEvents collects the source IDs published for eventType
func (s *OrchestratorTestSuite) recordEvents(eventType string) *[]string {
	ids := &[]string{}
	s.bus.SubscribeFunc(eventType, 0, func(_ context.Context, event events.Event) error {
		*ids = append(*ids, event.Source().GetID())
		owner, ok := event.Context().Get(deckbuilder.EventKeyOwnerID)
		s.True(ok)
		s.Equal(ownerID, owner)
		return nil
	})
	return ids
}

func storedDeck(id, spellcasterID string, slotIDs ...string) *entities.StoredDeck {
	stored := &entities.StoredDeck{
		ID:            id,
		OwnerID:       ownerID,
		Name:          entities.DefaultDeckName,
		SpellcasterID: spellcasterID,
	}
	copy(stored.SlotIDs[:], slotIDs)
	return stored
}

func (s *OrchestratorTestSuite) expectDeck(stored *entities.StoredDeck) {
	s.mockDecks.EXPECT().
		Get(s.ctx, decks.GetInput{ID: stored.ID}).
		Return(&decks.GetOutput{Deck: stored}, nil)
}

// expectDeckSave captures the next deck write
func (s *OrchestratorTestSuite) expectDeckSave() *entities.StoredDeck {
	saved := &entities.StoredDeck{}
	s.mockDecks.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input decks.UpdateInput) (*decks.UpdateOutput, error) {
			*saved = *input.Deck
			return &decks.UpdateOutput{Deck: input.Deck}, nil
		})
	return saved
}

func (s *OrchestratorTestSuite) TestNewOrchestrator() {
	s.Run("nil config", func() {
		_, err := deckbuilder.NewOrchestrator(nil)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("missing dependencies", func() {
		_, err := deckbuilder.NewOrchestrator(&deckbuilder.Config{DeckRepo: s.mockDecks})
		s.Require().Error(err)
		s.Contains(err.Error(), "TeamRepo")
		s.Contains(err.Error(), "Catalog")
	})
}

func (s *OrchestratorTestSuite) TestCreateDeck() {
	s.mockDecks.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input decks.CreateInput) (*decks.CreateOutput, error) {
			s.Equal("deck_1", input.Deck.ID)
			s.Equal(ownerID, input.Deck.OwnerID)
			s.Equal("Aggro", input.Deck.Name)
			return &decks.CreateOutput{Deck: input.Deck}, nil
		})

	out, err := s.service.CreateDeck(s.ctx, &deckbuilder.CreateDeckInput{OwnerID: ownerID, Name: " Aggro "})
	s.Require().NoError(err)
	s.Equal("deck_1", out.Deck.ID)
	s.False(out.Validation.IsValid)

	_, err = s.service.CreateDeck(s.ctx, &deckbuilder.CreateDeckInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGetDeckReportsDroppedIDs() {
	s.expectDeck(storedDeck("deck_1", "spellcaster_retired", emberImp, "creature_retired"))

	out, err := s.service.GetDeck(s.ctx, &deckbuilder.GetDeckInput{DeckID: "deck_1"})
	s.Require().NoError(err)
	s.Equal([]string{"spellcaster_retired", "creature_retired"}, out.Dropped)
	s.Equal(emberImp, out.Deck.Slots[0].Unit.EntityID)
	s.Nil(out.Deck.Spellcaster)
}

func (s *OrchestratorTestSuite) TestGetDeckNotFound() {
	s.mockDecks.EXPECT().
		Get(s.ctx, decks.GetInput{ID: "deck_x"}).
		Return(nil, errors.NotFound("deck deck_x not found"))

	_, err := s.service.GetDeck(s.ctx, &deckbuilder.GetDeckInput{DeckID: "deck_x"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListDecks() {
	s.mockDecks.EXPECT().
		ListByOwner(s.ctx, decks.ListByOwnerInput{OwnerID: ownerID}).
		Return(&decks.ListByOwnerOutput{Decks: []*entities.StoredDeck{
			storedDeck("deck_1", astralMonk),
			storedDeck("deck_2", "", fireball),
		}}, nil)

	out, err := s.service.ListDecks(s.ctx, &deckbuilder.ListDecksInput{OwnerID: ownerID})
	s.Require().NoError(err)
	s.Require().Len(out.Decks, 2)
	s.Equal(astralMonk, out.Decks[0].Deck.Spellcaster.GetID())
	s.Equal(fireball, out.Decks[1].Deck.Slots[0].Unit.EntityID)
}

func (s *OrchestratorTestSuite) TestDeleteDeck() {
	s.mockDecks.EXPECT().
		Delete(s.ctx, decks.DeleteInput{ID: "deck_1"}).
		Return(&decks.DeleteOutput{}, nil)

	_, err := s.service.DeleteDeck(s.ctx, &deckbuilder.DeleteDeckInput{DeckID: "deck_1"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestRenameDeck() {
	stored := storedDeck("deck_1", "")
	stored.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.expectDeck(stored)
	saved := s.expectDeckSave()

	out, err := s.service.RenameDeck(s.ctx, &deckbuilder.RenameDeckInput{DeckID: "deck_1", Name: "Control"})
	s.Require().NoError(err)
	s.Equal("Control", out.Deck.Name)
	s.Equal("Control", saved.Name)
	s.Equal(ownerID, saved.OwnerID)
	s.Equal(stored.CreatedAt, saved.CreatedAt)

	_, err = s.service.RenameDeck(s.ctx, &deckbuilder.RenameDeckInput{DeckID: "deck_1", Name: "  "})
	s.True(errors.IsInvalidArgument(err))

	auto := storedDeck("deck_1", astralMonk)
	auto.Name = "Astral Monk Deck"
	auto.AutoNamed = true
	s.expectDeck(auto)
	kept := s.expectDeckSave()

	_, err = s.service.RenameDeck(s.ctx, &deckbuilder.RenameDeckInput{DeckID: "deck_1", Name: "Astral Monk Deck"})
	s.Require().NoError(err)
	s.Equal("Astral Monk Deck", kept.Name)
	s.False(kept.AutoNamed)
}

func (s *OrchestratorTestSuite) TestSetSpellcaster() {
	s.Run("seats and renames", func() {
		s.expectDeck(storedDeck("deck_1", ""))
		saved := s.expectDeckSave()

		out, err := s.service.SetSpellcaster(s.ctx, &deckbuilder.SetSpellcasterInput{DeckID: "deck_1", SpellcasterID: astralMonk})
		s.Require().NoError(err)
		s.Equal("Astral Monk Deck", out.Deck.Name)
		s.Equal(astralMonk, saved.SpellcasterID)
		s.Equal("Astral Monk Deck", saved.Name)
	})

	s.Run("card is not a spellcaster", func() {
		_, err := s.service.SetSpellcaster(s.ctx, &deckbuilder.SetSpellcasterInput{DeckID: "deck_1", SpellcasterID: emberImp})
		s.True(errors.HasReason(err, engine.ReasonInvalidType))
	})

	s.Run("unknown id", func() {
		_, err := s.service.SetSpellcaster(s.ctx, &deckbuilder.SetSpellcasterInput{DeckID: "deck_1", SpellcasterID: "nope"})
		s.True(errors.IsNotFound(err))
	})
}

func (s *OrchestratorTestSuite) TestRemoveSpellcaster() {
	s.expectDeck(storedDeck("deck_1", astralMonk))
	saved := s.expectDeckSave()

	out, err := s.service.RemoveSpellcaster(s.ctx, &deckbuilder.RemoveSpellcasterInput{DeckID: "deck_1"})
	s.Require().NoError(err)
	s.Nil(out.Deck.Spellcaster)
	s.Empty(saved.SpellcasterID)
}

func (s *OrchestratorTestSuite) TestSetSlot() {
	s.Run("places card", func() {
		s.expectDeck(storedDeck("deck_1", ""))
		saved := s.expectDeckSave()

		_, err := s.service.SetSlot(s.ctx, &deckbuilder.SetSlotInput{DeckID: "deck_1", SlotIndex: 2, EntityID: fireball})
		s.Require().NoError(err)
		s.Equal(fireball, saved.SlotIDs[2])
	})

	s.Run("titan into unit slot is rejected without saving", func() {
		s.expectDeck(storedDeck("deck_1", ""))

		out, err := s.service.SetSlot(s.ctx, &deckbuilder.SetSlotInput{DeckID: "deck_1", SlotIndex: 0, EntityID: worldbreaker})
		s.Nil(out)
		s.True(errors.HasReason(err, engine.ReasonSlotMismatch))
		s.True(errors.IsFailedPrecondition(err))
	})

	s.Run("spellcaster into slot", func() {
		s.expectDeck(storedDeck("deck_1", ""))

		_, err := s.service.SetSlot(s.ctx, &deckbuilder.SetSlotInput{DeckID: "deck_1", SlotIndex: 0, EntityID: astralMonk})
		s.True(errors.HasReason(err, engine.ReasonInvalidType))
	})
}

func (s *OrchestratorTestSuite) TestClearSlot() {
	s.Run("clears", func() {
		s.expectDeck(storedDeck("deck_1", "", emberImp))
		saved := s.expectDeckSave()

		out, err := s.service.ClearSlot(s.ctx, &deckbuilder.ClearSlotInput{DeckID: "deck_1", SlotIndex: 0})
		s.Require().NoError(err)
		s.True(out.Deck.Slots[0].IsEmpty())
		s.Empty(saved.SlotIDs[0])
	})

	s.Run("bad index", func() {
		_, err := s.service.ClearSlot(s.ctx, &deckbuilder.ClearSlotInput{DeckID: "deck_1", SlotIndex: 9})
		s.True(errors.HasReason(err, engine.ReasonInvalidSlotIndex))
	})
}

func (s *OrchestratorTestSuite) TestSwapSlots() {
	s.Run("swaps", func() {
		s.expectDeck(storedDeck("deck_1", "", emberImp, "", fireball))
		saved := s.expectDeckSave()

		_, err := s.service.SwapSlots(s.ctx, &deckbuilder.SwapSlotsInput{DeckID: "deck_1", IndexA: 0, IndexB: 2})
		s.Require().NoError(err)
		s.Equal(fireball, saved.SlotIDs[0])
		s.Equal(emberImp, saved.SlotIDs[2])
	})

	s.Run("unit into titan slot", func() {
		s.expectDeck(storedDeck("deck_1", "", emberImp))

		_, err := s.service.SwapSlots(s.ctx, &deckbuilder.SwapSlotsInput{DeckID: "deck_1", IndexA: 0, IndexB: 4})
		s.True(errors.HasReason(err, engine.ReasonSwapInvalid))
	})
}

func (s *OrchestratorTestSuite) TestQuickAdd() {
	s.Run("lowest empty slot", func() {
		s.expectDeck(storedDeck("deck_1", "", emberImp))
		saved := s.expectDeckSave()

		_, err := s.service.QuickAdd(s.ctx, &deckbuilder.QuickAddInput{DeckID: "deck_1", EntityID: fireball})
		s.Require().NoError(err)
		s.Equal(fireball, saved.SlotIDs[1])
	})

	s.Run("duplicate", func() {
		s.expectDeck(storedDeck("deck_1", "", emberImp))

		_, err := s.service.QuickAdd(s.ctx, &deckbuilder.QuickAddInput{DeckID: "deck_1", EntityID: emberImp})
		s.True(errors.HasReason(err, engine.ReasonDuplicateUnit))
		s.True(errors.IsAlreadyExists(err))
	})

	s.Run("spellcaster", func() {
		s.expectDeck(storedDeck("deck_1", ""))
		saved := s.expectDeckSave()

		_, err := s.service.QuickAdd(s.ctx, &deckbuilder.QuickAddInput{DeckID: "deck_1", EntityID: fireElementist})
		s.Require().NoError(err)
		s.Equal(fireElementist, saved.SpellcasterID)
	})

	s.Run("missing entity id", func() {
		_, err := s.service.QuickAdd(s.ctx, &deckbuilder.QuickAddInput{DeckID: "deck_1"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestValidateDeck() {
	s.expectDeck(storedDeck("deck_1", astralMonk,
		"building_arcane_spire", "building_spawning_pit", "building_mana_well", fireball, worldbreaker))

	out, err := s.service.ValidateDeck(s.ctx, &deckbuilder.ValidateDeckInput{DeckID: "deck_1"})
	s.Require().NoError(err)
	s.False(out.Validation.IsValid)
	s.True(out.Validation.HasIssue(validation.IssueNoCreatures))
	s.True(out.Validation.HasIssue(validation.IssueMissingRank1Or2))
	s.False(out.Validation.HasIssue(validation.IssueMissingUnits))
}

func (s *OrchestratorTestSuite) TestAutoFillDeck() {
	s.Run("fills units then titan", func() {
		s.expectDeck(storedDeck("deck_1", astralMonk))
		saved := s.expectDeckSave()

		out, err := s.service.AutoFillDeck(s.ctx, &deckbuilder.AutoFillDeckInput{DeckID: "deck_1"})
		s.Require().NoError(err)
		s.Equal([]string{
			"building_arcane_spire",
			"creature_bone_colossus",
			emberImp,
			fireball,
			"titan_lich_king",
		}, out.Added)
		s.Equal("titan_lich_king", saved.SlotIDs[entities.TitanSlotIndex])
		s.Equal(4, out.Validation.Stats.UnitCount)
		s.True(out.Validation.IsValid)
	})

	s.Run("skips cards already in the deck", func() {
		s.expectDeck(storedDeck("deck_1", "", "building_arcane_spire", "", "", "", worldbreaker))
		saved := s.expectDeckSave()

		out, err := s.service.AutoFillDeck(s.ctx, &deckbuilder.AutoFillDeckInput{DeckID: "deck_1"})
		s.Require().NoError(err)
		s.Equal([]string{"creature_bone_colossus", emberImp, fireball}, out.Added)
		s.Equal(worldbreaker, saved.SlotIDs[entities.TitanSlotIndex])
	})

	s.Run("full deck is left alone", func() {
		s.expectDeck(storedDeck("deck_1", "", emberImp, forestWisp, shadeStalker, fireball, worldbreaker))

		out, err := s.service.AutoFillDeck(s.ctx, &deckbuilder.AutoFillDeckInput{DeckID: "deck_1"})
		s.Require().NoError(err)
		s.Empty(out.Added)
	})
}

func (s *OrchestratorTestSuite) TestDiceRoller() {
	for i := 0; i < 20; i++ {
		v, err := deckbuilder.DiceRoller{}.Roll(3)
		s.Require().NoError(err)
		s.GreaterOrEqual(v, 1)
		s.LessOrEqual(v, 3)
	}
}

// Team operations

func (s *OrchestratorTestSuite) storedTeam() *entities.StoredTeam {
	stored := s.converter.CompactTeam(entities.NewTeam("team_1", ""))
	stored.OwnerID = ownerID
	return stored
}

func (s *OrchestratorTestSuite) expectTeam(stored *entities.StoredTeam) {
	s.mockTeams.EXPECT().
		Get(s.ctx, teams.GetInput{ID: stored.ID}).
		Return(&teams.GetOutput{Team: stored}, nil)
}

func (s *OrchestratorTestSuite) expectTeamSave() *entities.StoredTeam {
	saved := &entities.StoredTeam{}
	s.mockTeams.EXPECT().
		Update(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input teams.UpdateInput) (*teams.UpdateOutput, error) {
			*saved = *input.Team
			return &teams.UpdateOutput{Team: input.Team}, nil
		})
	return saved
}

func (s *OrchestratorTestSuite) TestCreateTeam() {
	s.mockTeams.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input teams.CreateInput) (*teams.CreateOutput, error) {
			s.Equal("team_1", input.Team.ID)
			s.Equal(ownerID, input.Team.OwnerID)
			s.Equal("team_1_deck_3", input.Team.Decks[2].ID)
			return &teams.CreateOutput{Team: input.Team}, nil
		})

	out, err := s.service.CreateTeam(s.ctx, &deckbuilder.CreateTeamInput{OwnerID: ownerID})
	s.Require().NoError(err)
	s.Equal(entities.DefaultTeamName, out.Team.Name)
	s.False(out.IsValid)
	for _, result := range out.Validation {
		s.True(result.HasIssue(validation.IssueMissingUnits))
	}
}

func (s *OrchestratorTestSuite) TestDeleteTeam() {
	s.mockTeams.EXPECT().
		Delete(s.ctx, teams.DeleteInput{ID: "team_1"}).
		Return(&teams.DeleteOutput{}, nil)

	_, err := s.service.DeleteTeam(s.ctx, &deckbuilder.DeleteTeamInput{TeamID: "team_1"})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestTeamEditing() {
	s.Run("set slot then quick add same card", func() {
		s.expectTeam(s.storedTeam())
		saved := s.expectTeamSave()

		out, err := s.service.TeamSetSlot(s.ctx, &deckbuilder.TeamSetSlotInput{
			TeamID: "team_1", DeckIndex: 0, SlotIndex: 0, EntityID: emberImp,
		})
		s.Require().NoError(err)
		s.Equal(emberImp, saved.Decks[0].SlotIDs[0])
		s.Equal(ownerID, saved.OwnerID)

		s.expectTeam(saved)
		_, err = s.service.TeamQuickAdd(s.ctx, &deckbuilder.TeamQuickAddInput{
			TeamID: "team_1", DeckIndex: 0, EntityID: emberImp,
		})
		s.True(errors.HasReason(err, engine.ReasonDuplicateUnit))
		s.Equal(emberImp, out.Team.Decks[0].Slots[0].Unit.EntityID)
		s.True(out.Team.Decks[0].Slots[1].IsEmpty())
	})

	s.Run("bad deck index", func() {
		s.expectTeam(s.storedTeam())

		_, err := s.service.TeamClearSlot(s.ctx, &deckbuilder.TeamClearSlotInput{TeamID: "team_1", DeckIndex: 3})
		s.True(errors.HasReason(err, engine.ReasonInvalidDeckIndex))
	})

	s.Run("bad slot index is rejected before loading", func() {
		for _, index := range []int{-1, entities.SlotCount, 9} {
			_, err := s.service.TeamClearSlot(s.ctx, &deckbuilder.TeamClearSlotInput{
				TeamID: "team_1", DeckIndex: 0, SlotIndex: index,
			})
			s.True(errors.HasReason(err, engine.ReasonInvalidSlotIndex))
			s.Equal(errors.CodeOutOfRange, errors.GetCode(err))
		}
	})

	s.Run("swap within a deck", func() {
		stored := s.storedTeam()
		stored.Decks[1].SlotIDs[0] = emberImp
		s.expectTeam(stored)
		saved := s.expectTeamSave()

		_, err := s.service.TeamSwapSlots(s.ctx, &deckbuilder.TeamSwapSlotsInput{
			TeamID: "team_1", DeckIndex: 1, IndexA: 0, IndexB: 3,
		})
		s.Require().NoError(err)
		s.Equal(emberImp, saved.Decks[1].SlotIDs[3])
	})

	s.Run("spellcaster set and remove", func() {
		s.expectTeam(s.storedTeam())
		saved := s.expectTeamSave()

		_, err := s.service.TeamSetSpellcaster(s.ctx, &deckbuilder.TeamSetSpellcasterInput{
			TeamID: "team_1", DeckIndex: 2, SpellcasterID: astralMonk,
		})
		s.Require().NoError(err)
		s.Equal(astralMonk, saved.Decks[2].SpellcasterID)
		s.Equal("Astral Monk Deck", saved.Decks[2].Name)

		s.expectTeam(saved)
		removed := s.expectTeamSave()
		_, err = s.service.TeamRemoveSpellcaster(s.ctx, &deckbuilder.TeamRemoveSpellcasterInput{TeamID: "team_1", DeckIndex: 2})
		s.Require().NoError(err)
		s.Empty(removed.Decks[2].SpellcasterID)
	})
}

func (s *OrchestratorTestSuite) TestMoveCardBetweenDecks() {
	s.Run("moves into empty slot", func() {
		stored := s.storedTeam()
		stored.Decks[0].SlotIDs[1] = emberImp
		s.expectTeam(stored)
		saved := s.expectTeamSave()

		_, err := s.service.MoveCardBetweenDecks(s.ctx, &deckbuilder.MoveCardBetweenDecksInput{
			TeamID: "team_1", SrcDeck: 0, SrcSlot: 1, DstDeck: 2, DstSlot: 0,
		})
		s.Require().NoError(err)
		s.Empty(saved.Decks[0].SlotIDs[1])
		s.Equal(emberImp, saved.Decks[2].SlotIDs[0])
	})

	s.Run("same deck", func() {
		s.expectTeam(s.storedTeam())

		_, err := s.service.MoveCardBetweenDecks(s.ctx, &deckbuilder.MoveCardBetweenDecksInput{
			TeamID: "team_1", SrcDeck: 1, SrcSlot: 0, DstDeck: 1, DstSlot: 2,
		})
		s.True(errors.HasReason(err, engine.ReasonUseSwap))
	})

	s.Run("empty source", func() {
		s.expectTeam(s.storedTeam())

		_, err := s.service.MoveCardBetweenDecks(s.ctx, &deckbuilder.MoveCardBetweenDecksInput{
			TeamID: "team_1", SrcDeck: 0, SrcSlot: 0, DstDeck: 1, DstSlot: 0,
		})
		s.True(errors.HasReason(err, engine.ReasonEmptySource))
	})
}

func (s *OrchestratorTestSuite) TestMoveSpellcasterBetweenDecks() {
	stored := s.storedTeam()
	stored.Decks[0].SpellcasterID = astralMonk
	stored.Decks[1].SpellcasterID = fireElementist
	s.expectTeam(stored)
	saved := s.expectTeamSave()

	_, err := s.service.MoveSpellcasterBetweenDecks(s.ctx, &deckbuilder.MoveSpellcasterBetweenDecksInput{
		TeamID: "team_1", SrcDeck: 0, DstDeck: 1,
	})
	s.Require().NoError(err)
	s.Equal(fireElementist, saved.Decks[0].SpellcasterID)
	s.Equal(astralMonk, saved.Decks[1].SpellcasterID)
}

func (s *OrchestratorTestSuite) TestValidateTeam() {
	stored := s.storedTeam()
	stored.Decks[0] = *storedDeck("team_1_deck_1", astralMonk, emberImp, forestWisp, shadeStalker, fireball, worldbreaker)
	s.expectTeam(stored)

	out, err := s.service.ValidateTeam(s.ctx, &deckbuilder.ValidateTeamInput{TeamID: "team_1"})
	s.Require().NoError(err)
	s.True(out.Validation[0].IsValid)
	s.False(out.Validation[1].IsValid)
	s.False(out.IsValid)
}

func (s *OrchestratorTestSuite) TestPublishesSavedSnapshots() {
	s.Run("deck edit", func() {
		published := s.recordEvents(deckbuilder.EventDeckUpdated)
		s.expectDeck(storedDeck("deck_1", "", emberImp))
		s.expectDeckSave()

		_, err := s.service.ClearSlot(s.ctx, &deckbuilder.ClearSlotInput{DeckID: "deck_1", SlotIndex: 0})
		s.Require().NoError(err)
		s.Equal([]string{"deck_1"}, *published)
	})

	s.Run("rejected edit publishes nothing", func() {
		s.bus.ClearAll()
		published := s.recordEvents(deckbuilder.EventDeckUpdated)
		s.expectDeck(storedDeck("deck_1", "", emberImp))

		_, err := s.service.QuickAdd(s.ctx, &deckbuilder.QuickAddInput{DeckID: "deck_1", EntityID: emberImp})
		s.True(errors.HasReason(err, engine.ReasonDuplicateUnit))
		s.Empty(*published)
	})

	s.Run("team edit", func() {
		s.bus.ClearAll()
		published := s.recordEvents(deckbuilder.EventTeamUpdated)
		s.expectTeam(s.storedTeam())
		s.expectTeamSave()

		_, err := s.service.TeamQuickAdd(s.ctx, &deckbuilder.TeamQuickAddInput{
			TeamID: "team_1", DeckIndex: 1, EntityID: emberImp,
		})
		s.Require().NoError(err)
		s.Equal([]string{"team_1"}, *published)
	})

	s.Run("applied drop", func() {
		s.bus.ClearAll()
		published := s.recordEvents(deckbuilder.EventDeckUpdated)
		s.expectDeck(storedDeck("deck_1", "", emberImp, "", fireball))
		s.expectDeckSave()

		out, err := s.service.HandleDrop(s.ctx, &deckbuilder.HandleDropInput{
			DeckID: "deck_1",
			Active: deckbuilder.DragItem{Kind: dragroute.DragKindDeckSlot, SourceSlotIndex: 0},
			Over:   slotTarget("", 1),
		})
		s.Require().NoError(err)
		s.True(out.Applied)
		s.Equal([]string{"deck_1"}, *published)
	})
}
