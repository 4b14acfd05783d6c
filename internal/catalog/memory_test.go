package catalog_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/deckbuilder-api/internal/catalog"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

type MemoryCatalogTestSuite struct {
	suite.Suite
	ctx     context.Context
	catalog catalog.Catalog
}

func TestMemoryCatalogSuite(t *testing.T) {
	suite.Run(t, new(MemoryCatalogTestSuite))
}

func (s *MemoryCatalogTestSuite) SetupTest() {
	s.ctx = context.Background()

	c, err := catalog.Default()
	s.Require().NoError(err)
	s.catalog = c
}

func (s *MemoryCatalogTestSuite) TestGetEntity() {
	s.Run("card", func() {
		e, err := s.catalog.GetEntity(s.ctx, "creature_ember_imp")
		s.Require().NoError(err)
		s.Equal(entities.KindUnit, entities.Classify(e))
		s.Equal("Ember Imp", e.GetName())
	})

	s.Run("spellcaster keyed by spellcaster id", func() {
		e, err := s.catalog.GetEntity(s.ctx, "spellcaster_astral_monk")
		s.Require().NoError(err)
		sc, ok := entities.AsSpellcaster(e)
		s.Require().True(ok)
		s.Equal(entities.ClassDuelist, sc.Class)
		s.Equal("spellcaster_astral_monk", sc.EntityID)
		s.Len(sc.Abilities, 4)
	})

	s.Run("titan", func() {
		e, err := s.catalog.GetEntity(s.ctx, "titan_worldbreaker")
		s.Require().NoError(err)
		s.True(entities.IsTitan(e))
	})

	s.Run("unknown", func() {
		_, err := s.catalog.GetEntity(s.ctx, "nope")
		s.True(errors.IsNotFound(err))
	})

	s.Run("empty id", func() {
		_, err := s.catalog.GetEntity(s.ctx, "")
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *MemoryCatalogTestSuite) TestTypedLookups() {
	s.Run("card lookup does not return spellcasters", func() {
		_, err := s.catalog.GetCard(s.ctx, "spellcaster_astral_monk")
		s.True(errors.IsNotFound(err))
	})

	s.Run("spellcaster lookup does not return cards", func() {
		_, err := s.catalog.GetSpellcaster(s.ctx, "spell_fireball")
		s.True(errors.IsNotFound(err))
	})

	s.Run("spell card", func() {
		card, err := s.catalog.GetCard(s.ctx, "spell_fireball")
		s.Require().NoError(err)
		s.Equal(entities.CategorySpell, card.Category)
		s.Equal(entities.RankII, card.Rank)
	})
}

func (s *MemoryCatalogTestSuite) TestListCards() {
	s.Run("all cards sorted by name", func() {
		cards, err := s.catalog.ListCards(s.ctx, catalog.ListCardsFilter{})
		s.Require().NoError(err)
		s.Len(cards, 16)
		for i := 1; i < len(cards); i++ {
			s.LessOrEqual(cards[i-1].Name, cards[i].Name)
		}
	})

	s.Run("by category", func() {
		cards, err := s.catalog.ListCards(s.ctx, catalog.ListCardsFilter{Category: entities.CategoryTitan})
		s.Require().NoError(err)
		s.Len(cards, 3)
		for _, c := range cards {
			s.Equal(entities.CategoryTitan, c.Category)
		}
	})

	s.Run("by name substring ignoring case", func() {
		cards, err := s.catalog.ListCards(s.ctx, catalog.ListCardsFilter{NameContains: "FROST"})
		s.Require().NoError(err)
		s.Require().Len(cards, 1)
		s.Equal("spell_frost_nova", cards[0].EntityID)
	})

	s.Run("unknown category", func() {
		_, err := s.catalog.ListCards(s.ctx, catalog.ListCardsFilter{Category: "Vehicle"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *MemoryCatalogTestSuite) TestListSpellcasters() {
	scs, err := s.catalog.ListSpellcasters(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(scs, 3)
	s.Equal("Astral Monk", scs[0].Name)
	s.Equal("Grove Keeper", scs[2].Name)
}

func (s *MemoryCatalogTestSuite) TestParseRejectsBadDocuments() {
	testCases := []struct {
		name string
		doc  string
		want func(error) bool
	}{
		{
			name: "malformed json",
			doc:  `{"cards": [`,
			want: errors.IsInvalidArgument,
		},
		{
			name: "duplicate card id",
			doc:  `{"cards": [{"entity_id": "a", "category": "Spell", "rank": "I"}, {"entity_id": "a", "category": "Creature", "rank": "II"}]}`,
			want: errors.IsAlreadyExists,
		},
		{
			name: "spellcaster reuses card id",
			doc:  `{"cards": [{"entity_id": "a", "category": "Spell", "rank": "I"}], "spellcasters": [{"spellcaster_id": "a", "class": "Duelist"}]}`,
			want: errors.IsAlreadyExists,
		},
		{
			name: "unknown category",
			doc:  `{"cards": [{"entity_id": "a", "category": "Vehicle", "rank": "I"}]}`,
			want: errors.IsInvalidArgument,
		},
		{
			name: "spellcaster category as card",
			doc:  `{"cards": [{"entity_id": "a", "category": "Spellcaster", "rank": "I"}]}`,
			want: errors.IsInvalidArgument,
		},
		{
			name: "titan with rank",
			doc:  `{"cards": [{"entity_id": "t", "category": "Titan", "rank": "V"}]}`,
			want: errors.IsInvalidArgument,
		},
		{
			name: "unit without rank",
			doc:  `{"cards": [{"entity_id": "u", "category": "Building"}]}`,
			want: errors.IsInvalidArgument,
		},
		{
			name: "unit with bad rank",
			doc:  `{"cards": [{"entity_id": "u", "category": "Creature", "rank": "VI"}]}`,
			want: errors.IsInvalidArgument,
		},
		{
			name: "missing card id",
			doc:  `{"cards": [{"category": "Creature", "rank": "I"}]}`,
			want: errors.IsInvalidArgument,
		},
		{
			name: "unknown class",
			doc:  `{"spellcasters": [{"spellcaster_id": "sc", "class": "Bard"}]}`,
			want: errors.IsInvalidArgument,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			c, err := catalog.Parse([]byte(tc.doc))
			s.Require().Error(err)
			s.Nil(c)
			s.True(tc.want(err), "unexpected error: %v", err)
		})
	}
}

func (s *MemoryCatalogTestSuite) TestLoad() {
	s.Run("reader", func() {
		c, err := catalog.Load(strings.NewReader(`{"spellcasters": [{"entity_id": "sc", "name": "Solo", "class": "Enchanter"}]}`))
		s.Require().NoError(err)

		sc, err := c.GetSpellcaster(s.ctx, "sc")
		s.Require().NoError(err)
		s.Equal("sc", sc.SpellcasterID)
	})

	s.Run("file", func() {
		path := filepath.Join(s.T().TempDir(), "catalog.json")
		s.Require().NoError(os.WriteFile(path, []byte(`{"cards": [{"entity_id": "t", "name": "Tiny Titan", "category": "Titan"}]}`), 0o600))

		c, err := catalog.LoadFile(path)
		s.Require().NoError(err)
		card, err := c.GetCard(s.ctx, "t")
		s.Require().NoError(err)
		s.Equal("Tiny Titan", card.Name)
	})

	s.Run("missing file", func() {
		_, err := catalog.LoadFile(filepath.Join(s.T().TempDir(), "missing.json"))
		s.Error(err)
	})
}
