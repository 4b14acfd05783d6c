// Package decks provides the repository interface and Redis storage for
// single decks in their ID-only form
package decks

import (
	"context"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=decksmock github.com/KirkDiggler/deckbuilder-api/internal/repositories/decks Repository

// CreateInput contains parameters for storing a new deck
type CreateInput struct {
	Deck *entities.StoredDeck
}

// CreateOutput contains the stored deck with timestamps set
type CreateOutput struct {
	Deck *entities.StoredDeck
}

// GetInput contains parameters for retrieving a deck
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved deck
type GetOutput struct {
	Deck *entities.StoredDeck
}

// UpdateInput contains parameters for replacing a deck
type UpdateInput struct {
	Deck *entities.StoredDeck
}

// UpdateOutput contains the replaced deck
type UpdateOutput struct {
	Deck *entities.StoredDeck
}

// DeleteInput contains parameters for deleting a deck
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; success means the deck is gone
type DeleteOutput struct{}

// ListByOwnerInput contains parameters for listing an owner's decks
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput contains an owner's decks, oldest first
type ListByOwnerOutput struct {
	Decks []*entities.StoredDeck
}

// Repository defines the interface for deck storage operations
type Repository interface {
	// Create stores a new deck. Fails AlreadyExists if the ID is taken.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a deck by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing deck, keeping its creation time
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a deck
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner returns every deck belonging to an owner
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}
