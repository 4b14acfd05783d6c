package deckbuilder

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/deckbuilder-api/internal/engine"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/deck"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/validation"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/decks"
)

const (
	errDeckIDRequired   = "deck ID is required"
	errOwnerIDRequired  = "owner ID is required"
	errEntityIDRequired = "entity ID is required"
)

// loadedDeck is a hydrated deck together with the record it came from
type loadedDeck struct {
	stored  *entities.StoredDeck
	deck    *entities.Deck
	dropped []string
}

func (o *orchestrator) CreateDeck(ctx context.Context, input *CreateDeckInput) (*DeckOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDRequired)
	}

	d := entities.NewDeck(o.deckIDGen.Generate(), strings.TrimSpace(input.Name))
	stored := o.converter.CompactDeck(d)
	stored.OwnerID = input.OwnerID

	if _, err := o.deckRepo.Create(ctx, decks.CreateInput{Deck: stored}); err != nil {
		return nil, errors.Wrap(err, "failed to create deck")
	}

	slog.Info("deck created",
		"deck_id", d.ID,
		"owner_id", input.OwnerID)

	return newDeckOutput(d, nil), nil
}

func (o *orchestrator) GetDeck(ctx context.Context, input *GetDeckInput) (*DeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}

	loaded, err := o.loadDeck(ctx, input.DeckID)
	if err != nil {
		return nil, err
	}

	return newDeckOutput(loaded.deck, loaded.dropped), nil
}

func (o *orchestrator) ListDecks(ctx context.Context, input *ListDecksInput) (*ListDecksOutput, error) {
	if input == nil || input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDRequired)
	}

	listed, err := o.deckRepo.ListByOwner(ctx, decks.ListByOwnerInput{OwnerID: input.OwnerID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list decks for %s", input.OwnerID)
	}

	out := make([]*DeckOutput, 0, len(listed.Decks))
	for _, stored := range listed.Decks {
		hydrated, err := o.converter.HydrateDeck(ctx, stored)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to hydrate deck %s", stored.ID)
		}
		out = append(out, newDeckOutput(hydrated.Deck, hydrated.Dropped))
	}

	return &ListDecksOutput{Decks: out}, nil
}

func (o *orchestrator) DeleteDeck(ctx context.Context, input *DeleteDeckInput) (*DeleteDeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}

	if _, err := o.deckRepo.Delete(ctx, decks.DeleteInput{ID: input.DeckID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete deck %s", input.DeckID)
	}

	slog.Info("deck deleted", "deck_id", input.DeckID)

	return &DeleteDeckOutput{}, nil
}

func (o *orchestrator) RenameDeck(ctx context.Context, input *RenameDeckInput) (*DeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.InvalidArgument("name is required")
	}

	return o.mutateDeck(ctx, input.DeckID, func(d *entities.Deck) (*entities.Deck, error) {
		if d.Name == name && !d.AutoNamed {
			return d, nil
		}
		next := d.Clone()
		next.Name = name
		next.AutoNamed = false
		return next, nil
	})
}

func (o *orchestrator) SetSpellcaster(ctx context.Context, input *SetSpellcasterInput) (*DeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}

	sc, err := o.resolveSpellcaster(ctx, input.SpellcasterID)
	if err != nil {
		return nil, err
	}

	return o.mutateDeck(ctx, input.DeckID, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.SetSpellcaster(d, sc), nil
	})
}

func (o *orchestrator) RemoveSpellcaster(ctx context.Context, input *RemoveSpellcasterInput) (*DeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}

	return o.mutateDeck(ctx, input.DeckID, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.RemoveSpellcaster(d), nil
	})
}

func (o *orchestrator) SetSlot(ctx context.Context, input *SetSlotInput) (*DeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}

	item, err := o.resolveEntity(ctx, input.EntityID)
	if err != nil {
		return nil, err
	}

	return o.mutateDeck(ctx, input.DeckID, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.SetSlot(d, input.SlotIndex, item)
	})
}

func (o *orchestrator) ClearSlot(ctx context.Context, input *ClearSlotInput) (*DeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}
	if input.SlotIndex < 0 || input.SlotIndex >= entities.SlotCount {
		return nil, engine.InvalidSlotIndex(input.SlotIndex)
	}

	return o.mutateDeck(ctx, input.DeckID, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.ClearSlot(d, input.SlotIndex), nil
	})
}

func (o *orchestrator) SwapSlots(ctx context.Context, input *SwapSlotsInput) (*DeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}

	return o.mutateDeck(ctx, input.DeckID, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.SwapSlots(d, input.IndexA, input.IndexB)
	})
}

func (o *orchestrator) QuickAdd(ctx context.Context, input *QuickAddInput) (*DeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}

	item, err := o.resolveEntity(ctx, input.EntityID)
	if err != nil {
		return nil, err
	}

	return o.mutateDeck(ctx, input.DeckID, func(d *entities.Deck) (*entities.Deck, error) {
		return deck.QuickAdd(d, item)
	})
}

func (o *orchestrator) ValidateDeck(ctx context.Context, input *ValidateDeckInput) (*DeckOutput, error) {
	if input == nil || input.DeckID == "" {
		return nil, errors.InvalidArgument(errDeckIDRequired)
	}

	return o.GetDeck(ctx, &GetDeckInput{DeckID: input.DeckID})
}

// mutateDeck loads a deck, applies op and saves the result. A failing op
// returns its error as is and leaves storage untouched; an op that returns the
// same snapshot skips the write.
func (o *orchestrator) mutateDeck(ctx context.Context, deckID string, op func(*entities.Deck) (*entities.Deck, error)) (*DeckOutput, error) {
	loaded, err := o.loadDeck(ctx, deckID)
	if err != nil {
		return nil, err
	}

	next, err := op(loaded.deck)
	if err != nil {
		slog.Debug("deck rule rejected",
			"deck_id", deckID,
			"reason", errors.GetReason(err),
			"error", err)
		return nil, err
	}

	if next != loaded.deck {
		if err := o.saveDeck(ctx, loaded.stored, next); err != nil {
			return nil, err
		}
	}

	return newDeckOutput(next, loaded.dropped), nil
}

func (o *orchestrator) loadDeck(ctx context.Context, deckID string) (*loadedDeck, error) {
	got, err := o.deckRepo.Get(ctx, decks.GetInput{ID: deckID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get deck %s", deckID)
	}

	hydrated, err := o.converter.HydrateDeck(ctx, got.Deck)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to hydrate deck %s", deckID)
	}

	return &loadedDeck{
		stored:  got.Deck,
		deck:    hydrated.Deck,
		dropped: hydrated.Dropped,
	}, nil
}

func (o *orchestrator) saveDeck(ctx context.Context, previous *entities.StoredDeck, d *entities.Deck) error {
	stored := o.converter.CompactDeck(d)
	stored.OwnerID = previous.OwnerID
	stored.CreatedAt = previous.CreatedAt

	if _, err := o.deckRepo.Update(ctx, decks.UpdateInput{Deck: stored}); err != nil {
		return errors.Wrapf(err, "failed to save deck %s", d.ID)
	}

	o.publish(ctx, EventDeckUpdated, d, stored.OwnerID)
	return nil
}

func (o *orchestrator) resolveEntity(ctx context.Context, entityID string) (entities.Entity, error) {
	if entityID == "" {
		return nil, errors.InvalidArgument(errEntityIDRequired)
	}

	item, err := o.catalog.GetEntity(ctx, entityID)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", entityID)
	}
	return item, nil
}

func (o *orchestrator) resolveSpellcaster(ctx context.Context, entityID string) (*entities.Spellcaster, error) {
	item, err := o.resolveEntity(ctx, entityID)
	if err != nil {
		return nil, err
	}

	sc, ok := entities.AsSpellcaster(item)
	if !ok {
		return nil, engine.InvalidType(item.GetName() + " is not a spellcaster")
	}
	return sc, nil
}

func newDeckOutput(d *entities.Deck, dropped []string) *DeckOutput {
	return &DeckOutput{
		Deck:       d,
		Validation: validation.ValidateDeck(d),
		Dropped:    dropped,
	}
}
