package sqlite

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/decks"
)

type deckRepository struct {
	store *Store
}

// Ensure deckRepository implements decks.Repository
var _ decks.Repository = (*deckRepository)(nil)

func (r *deckRepository) Create(ctx context.Context, input decks.CreateInput) (*decks.CreateOutput, error) {
	if input.Deck == nil {
		return nil, errors.InvalidArgument("deck cannot be nil")
	}
	if input.Deck.ID == "" {
		return nil, errors.InvalidArgument("deck ID cannot be empty")
	}

	deck := *input.Deck
	now := r.store.clock.Now()
	deck.CreatedAt = now
	deck.UpdatedAt = now

	if err := r.save(ctx, &deck, r.store.insert); err != nil {
		return nil, err
	}
	return &decks.CreateOutput{Deck: &deck}, nil
}

func (r *deckRepository) Get(ctx context.Context, input decks.GetInput) (*decks.GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("deck ID cannot be empty")
	}

	deck, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &decks.GetOutput{Deck: deck}, nil
}

func (r *deckRepository) Update(ctx context.Context, input decks.UpdateInput) (*decks.UpdateOutput, error) {
	if input.Deck == nil {
		return nil, errors.InvalidArgument("deck cannot be nil")
	}
	if input.Deck.ID == "" {
		return nil, errors.InvalidArgument("deck ID cannot be empty")
	}

	existing, err := r.get(ctx, input.Deck.ID)
	if err != nil {
		return nil, err
	}

	deck := *input.Deck
	deck.CreatedAt = existing.CreatedAt
	deck.UpdatedAt = r.store.clock.Now()

	if err := r.save(ctx, &deck, r.store.update); err != nil {
		return nil, err
	}
	return &decks.UpdateOutput{Deck: &deck}, nil
}

func (r *deckRepository) Delete(ctx context.Context, input decks.DeleteInput) (*decks.DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("deck ID cannot be empty")
	}
	if err := r.store.delete(ctx, tableDecks, input.ID); err != nil {
		return nil, err
	}
	return &decks.DeleteOutput{}, nil
}

func (r *deckRepository) ListByOwner(ctx context.Context, input decks.ListByOwnerInput) (*decks.ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	payloads, err := r.store.listByOwner(ctx, tableDecks, input.OwnerID)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.StoredDeck, 0, len(payloads))
	for _, payload := range payloads {
		var deck entities.StoredDeck
		if err := json.Unmarshal(payload, &deck); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal deck")
		}
		out = append(out, &deck)
	}
	return &decks.ListByOwnerOutput{Decks: out}, nil
}

func (r *deckRepository) get(ctx context.Context, id string) (*entities.StoredDeck, error) {
	payload, err := r.store.payload(ctx, tableDecks, id)
	if err != nil {
		return nil, err
	}

	var deck entities.StoredDeck
	if err := json.Unmarshal(payload, &deck); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal deck %s", id)
	}
	return &deck, nil
}

func (r *deckRepository) save(ctx context.Context, deck *entities.StoredDeck, write func(context.Context, string, record) error) error {
	payload, err := json.Marshal(deck)
	if err != nil {
		return errors.Wrap(err, "failed to marshal deck")
	}
	return write(ctx, tableDecks, record{
		ID:        deck.ID,
		OwnerID:   deck.OwnerID,
		Payload:   payload,
		CreatedAt: deck.CreatedAt,
		UpdatedAt: deck.UpdatedAt,
	})
}
