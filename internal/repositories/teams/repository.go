// Package teams provides the repository interface and Redis storage for
// three-deck teams in their ID-only form
package teams

import (
	"context"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=teamsmock github.com/KirkDiggler/deckbuilder-api/internal/repositories/teams Repository

// CreateInput contains parameters for storing a new team
type CreateInput struct {
	Team *entities.StoredTeam
}

// CreateOutput contains the stored team with timestamps set
type CreateOutput struct {
	Team *entities.StoredTeam
}

// GetInput contains parameters for retrieving a team
type GetInput struct {
	ID string
}

// GetOutput contains the retrieved team
type GetOutput struct {
	Team *entities.StoredTeam
}

// UpdateInput contains parameters for replacing a team
type UpdateInput struct {
	Team *entities.StoredTeam
}

// UpdateOutput contains the replaced team
type UpdateOutput struct {
	Team *entities.StoredTeam
}

// DeleteInput contains parameters for deleting a team
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty; success means the team is gone
type DeleteOutput struct{}

// ListByOwnerInput contains parameters for listing an owner's teams
type ListByOwnerInput struct {
	OwnerID string
}

// ListByOwnerOutput contains an owner's teams, oldest first
type ListByOwnerOutput struct {
	Teams []*entities.StoredTeam
}

// Repository defines the interface for team storage operations
type Repository interface {
	// Create stores a new team. Fails AlreadyExists if the ID is taken.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a team by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing team, keeping its creation time
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a team
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByOwner returns every team belonging to an owner
	ListByOwner(ctx context.Context, input ListByOwnerInput) (*ListByOwnerOutput, error)
}
