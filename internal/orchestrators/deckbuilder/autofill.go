package deckbuilder

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/deckbuilder-api/internal/catalog"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/deck"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

// Roller returns a value in [1, size]
type Roller interface {
	Roll(size int) (int, error)
}

// DiceRoller rolls a single rpg-toolkit die
type DiceRoller struct{}

// Roll rolls 1d<size>
func (DiceRoller) Roll(size int) (int, error) {
	roll, err := dice.NewRoll(1, size)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to create 1d%d roll", size)
	}
	return roll.GetValue(), nil
}

// AutoFillDeck fills every empty unit slot, and the titan slot when empty,
// with random catalog cards placed through QuickAdd. Cards already in the deck
// are never picked twice.
func (o *orchestrator) AutoFillDeck(ctx context.Context, input *AutoFillDeckInput) (*AutoFillDeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}

	cards, err := o.catalog.ListCards(ctx, catalog.ListCardsFilter{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list catalog cards")
	}

	var added []string
	out, err := o.mutateDeck(ctx, input.DeckID, func(d *entities.Deck) (*entities.Deck, error) {
		next := d
		for {
			want := nextEmptyKind(next)
			if want == entities.KindUnknown {
				return next, nil
			}

			candidates := fillCandidates(next, cards, want)
			if len(candidates) == 0 {
				if want == entities.KindTitan || !hasEmptyTitanSlot(next) {
					return next, nil
				}
				want = entities.KindTitan
				candidates = fillCandidates(next, cards, want)
				if len(candidates) == 0 {
					return next, nil
				}
			}

			pick, err := o.roller.Roll(len(candidates))
			if err != nil {
				return nil, err
			}
			if pick < 1 || pick > len(candidates) {
				return nil, errors.Internalf("roll %d outside 1..%d", pick, len(candidates))
			}

			card := candidates[pick-1]
			filled, err := deck.QuickAdd(next, card)
			if err != nil {
				return nil, err
			}
			next = filled
			added = append(added, card.EntityID)
		}
	})
	if err != nil {
		return nil, err
	}

	slog.Info("deck auto-filled",
		"deck_id", input.DeckID,
		"added", len(added))

	return &AutoFillDeckOutput{
		DeckOutput: *out,
		Added:      added,
	}, nil
}

// nextEmptyKind reports which kind of card the next fill should be: a unit
// while any unit slot is empty, then a titan, otherwise KindUnknown
func nextEmptyKind(d *entities.Deck) entities.Kind {
	for i := 0; i < entities.UnitSlotCount; i++ {
		if d.Slots[i].IsEmpty() {
			return entities.KindUnit
		}
	}
	if hasEmptyTitanSlot(d) {
		return entities.KindTitan
	}
	return entities.KindUnknown
}

func hasEmptyTitanSlot(d *entities.Deck) bool {
	idx := deck.TitanSlotIndex(d)
	return idx >= 0 && d.Slots[idx].IsEmpty()
}

// fillCandidates lists cards of the wanted kind not already in the deck. Units
// and spells share the unit slots.
func fillCandidates(d *entities.Deck, cards []*entities.Card, want entities.Kind) []*entities.Card {
	var out []*entities.Card
	for _, card := range cards {
		kind := entities.Classify(card)
		if want == entities.KindTitan && kind != entities.KindTitan {
			continue
		}
		if want == entities.KindUnit && kind != entities.KindUnit && kind != entities.KindSpell {
			continue
		}
		if d.UnitSlotIndexOf(card.EntityID) >= 0 {
			continue
		}
		out = append(out, card)
	}
	return out
}
