package conversion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	catalogmock "github.com/KirkDiggler/deckbuilder-api/internal/catalog/mock"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/services/conversion"
	"github.com/KirkDiggler/deckbuilder-api/internal/testutils"
)

type DeckConverterTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockCatalog *catalogmock.MockCatalog
	converter   conversion.DeckConverter
	ctx         context.Context
}

func TestDeckConverterSuite(t *testing.T) {
	suite.Run(t, new(DeckConverterTestSuite))
}

func (s *DeckConverterTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCatalog = catalogmock.NewMockCatalog(s.ctrl)
	s.ctx = context.Background()

	converter, err := conversion.NewDeckConverter(&conversion.DeckConverterConfig{
		Catalog: s.mockCatalog,
	})
	s.Require().NoError(err)
	s.converter = converter
}

func (s *DeckConverterTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DeckConverterTestSuite) TestNewDeckConverter() {
	s.Run("nil config returns error", func() {
		_, err := conversion.NewDeckConverter(nil)
		s.Error(err)
		s.Contains(err.Error(), "config is required")
	})

	s.Run("missing catalog returns error", func() {
		_, err := conversion.NewDeckConverter(&conversion.DeckConverterConfig{})
		s.Error(err)
		s.Contains(err.Error(), "catalog is required")
	})
}

func (s *DeckConverterTestSuite) TestCompactDeck() {
	s.Run("nil input returns nil", func() {
		s.Nil(s.converter.CompactDeck(nil))
	})

	s.Run("keeps only ids", func() {
		stored := s.converter.CompactDeck(testutils.CompleteDeck("d1"))
		s.Equal("d1", stored.ID)
		s.Equal(entities.DefaultDeckName, stored.Name)
		s.Equal("sc_1", stored.SpellcasterID)
		s.Equal([entities.SlotCount]string{"unit_a", "unit_b", "unit_c", "spell_d", "titan_e"}, stored.SlotIDs)
	})

	s.Run("empty deck", func() {
		stored := s.converter.CompactDeck(entities.NewDeck("d2", "Mine"))
		s.Empty(stored.SpellcasterID)
		s.Equal([entities.SlotCount]string{}, stored.SlotIDs)
		s.False(stored.AutoNamed)
	})

	s.Run("keeps auto name marker", func() {
		d := entities.NewDeck("d3", "Astral Monk Deck")
		d.AutoNamed = true
		s.True(s.converter.CompactDeck(d).AutoNamed)
	})
}

func (s *DeckConverterTestSuite) TestCompactTeam() {
	team := entities.NewTeam("t1", "")
	team.Decks[1] = testutils.CompleteDeck("t1_deck_2")

	stored := s.converter.CompactTeam(team)
	s.Equal("t1", stored.ID)
	s.Equal(entities.DefaultTeamName, stored.Name)
	s.Equal("t1_deck_1", stored.Decks[0].ID)
	s.Equal("sc_1", stored.Decks[1].SpellcasterID)
	s.Equal("titan_e", stored.Decks[1].SlotIDs[entities.TitanSlotIndex])
}

func (s *DeckConverterTestSuite) TestHydrateDeck() {
	unit := testutils.NewCreature("unit_a", entities.RankI)
	titan := testutils.NewTitan("titan_e")
	caster := testutils.NewSpellcaster("sc_1", "Astral Monk")

	s.Run("resolves every id", func() {
		s.mockCatalog.EXPECT().GetSpellcaster(s.ctx, "sc_1").Return(caster, nil)
		s.mockCatalog.EXPECT().GetCard(s.ctx, "unit_a").Return(unit, nil)
		s.mockCatalog.EXPECT().GetCard(s.ctx, "titan_e").Return(titan, nil)

		out, err := s.converter.HydrateDeck(s.ctx, &entities.StoredDeck{
			ID:            "d1",
			Name:          "Astral Monk Deck",
			SpellcasterID: "sc_1",
			SlotIDs:       [entities.SlotCount]string{"unit_a", "", "", "", "titan_e"},
			AutoNamed:     true,
		})
		s.Require().NoError(err)
		s.Empty(out.Dropped)
		s.Equal("Astral Monk Deck", out.Deck.Name)
		s.True(out.Deck.AutoNamed)
		s.Same(caster, out.Deck.Spellcaster)
		s.Same(unit, out.Deck.Slots[0].Unit)
		s.Same(titan, out.Deck.Slots[entities.TitanSlotIndex].Unit)
		s.Equal([]entities.SlotType{entities.SlotTypeTitan}, out.Deck.Slots[entities.TitanSlotIndex].AllowedTypes)
	})

	s.Run("drops unknown ids", func() {
		s.mockCatalog.EXPECT().GetSpellcaster(s.ctx, "sc_gone").Return(nil, errors.NotFound("gone"))
		s.mockCatalog.EXPECT().GetCard(s.ctx, "unit_gone").Return(nil, errors.NotFound("gone"))

		out, err := s.converter.HydrateDeck(s.ctx, &entities.StoredDeck{
			ID:            "d1",
			SpellcasterID: "sc_gone",
			SlotIDs:       [entities.SlotCount]string{"", "unit_gone"},
		})
		s.Require().NoError(err)
		s.Equal([]string{"sc_gone", "unit_gone"}, out.Dropped)
		s.Nil(out.Deck.Spellcaster)
		s.True(out.Deck.Slots[1].IsEmpty())
	})

	s.Run("drops cards that no longer fit", func() {
		s.mockCatalog.EXPECT().GetCard(s.ctx, "titan_e").Return(titan, nil)
		s.mockCatalog.EXPECT().GetCard(s.ctx, "unit_a").Return(unit, nil).Times(2)

		out, err := s.converter.HydrateDeck(s.ctx, &entities.StoredDeck{
			ID:      "d1",
			SlotIDs: [entities.SlotCount]string{"titan_e", "unit_a", "unit_a"},
		})
		s.Require().NoError(err)
		s.Equal([]string{"titan_e", "unit_a"}, out.Dropped)
		s.True(out.Deck.Slots[0].IsEmpty())
		s.Same(unit, out.Deck.Slots[1].Unit)
		s.True(out.Deck.Slots[2].IsEmpty())
	})

	s.Run("catalog failure aborts", func() {
		s.mockCatalog.EXPECT().GetCard(s.ctx, "unit_a").Return(nil, errors.Internal("boom"))

		out, err := s.converter.HydrateDeck(s.ctx, &entities.StoredDeck{
			ID:      "d1",
			SlotIDs: [entities.SlotCount]string{"unit_a"},
		})
		s.Error(err)
		s.True(errors.IsInternal(err))
		s.Nil(out)
	})

	s.Run("nil input", func() {
		_, err := s.converter.HydrateDeck(s.ctx, nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *DeckConverterTestSuite) TestHydrateTeam() {
	unit := testutils.NewCreature("unit_a", entities.RankI)
	s.mockCatalog.EXPECT().GetCard(s.ctx, "unit_a").Return(unit, nil)
	s.mockCatalog.EXPECT().GetCard(s.ctx, "unit_gone").Return(nil, errors.NotFound("gone"))

	stored := &entities.StoredTeam{ID: "t1", Name: "Squad"}
	for i := range stored.Decks {
		stored.Decks[i] = entities.StoredDeck{ID: "deck"}
	}
	stored.Decks[0].SlotIDs[0] = "unit_a"
	stored.Decks[2].SlotIDs[1] = "unit_gone"

	out, err := s.converter.HydrateTeam(s.ctx, stored)
	s.Require().NoError(err)
	s.Equal("Squad", out.Team.Name)
	s.Same(unit, out.Team.Decks[0].Slots[0].Unit)
	s.Equal([]string{"unit_gone"}, out.Dropped)
	for _, d := range out.Team.Decks {
		s.NotNil(d)
	}
}
