package sqlite

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/teams"
)

type teamRepository struct {
	store *Store
}

// Ensure teamRepository implements teams.Repository
var _ teams.Repository = (*teamRepository)(nil)

func (r *teamRepository) Create(ctx context.Context, input teams.CreateInput) (*teams.CreateOutput, error) {
	if input.Team == nil {
		return nil, errors.InvalidArgument("team cannot be nil")
	}
	if input.Team.ID == "" {
		return nil, errors.InvalidArgument("team ID cannot be empty")
	}

	team := *input.Team
	now := r.store.clock.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	if err := r.save(ctx, &team, r.store.insert); err != nil {
		return nil, err
	}
	return &teams.CreateOutput{Team: &team}, nil
}

func (r *teamRepository) Get(ctx context.Context, input teams.GetInput) (*teams.GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("team ID cannot be empty")
	}

	team, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &teams.GetOutput{Team: team}, nil
}

func (r *teamRepository) Update(ctx context.Context, input teams.UpdateInput) (*teams.UpdateOutput, error) {
	if input.Team == nil {
		return nil, errors.InvalidArgument("team cannot be nil")
	}
	if input.Team.ID == "" {
		return nil, errors.InvalidArgument("team ID cannot be empty")
	}

	existing, err := r.get(ctx, input.Team.ID)
	if err != nil {
		return nil, err
	}

	team := *input.Team
	team.CreatedAt = existing.CreatedAt
	team.UpdatedAt = r.store.clock.Now()

	if err := r.save(ctx, &team, r.store.update); err != nil {
		return nil, err
	}
	return &teams.UpdateOutput{Team: &team}, nil
}

func (r *teamRepository) Delete(ctx context.Context, input teams.DeleteInput) (*teams.DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument("team ID cannot be empty")
	}
	if err := r.store.delete(ctx, tableTeams, input.ID); err != nil {
		return nil, err
	}
	return &teams.DeleteOutput{}, nil
}

func (r *teamRepository) ListByOwner(ctx context.Context, input teams.ListByOwnerInput) (*teams.ListByOwnerOutput, error) {
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}

	payloads, err := r.store.listByOwner(ctx, tableTeams, input.OwnerID)
	if err != nil {
		return nil, err
	}

	out := make([]*entities.StoredTeam, 0, len(payloads))
	for _, payload := range payloads {
		var team entities.StoredTeam
		if err := json.Unmarshal(payload, &team); err != nil {
			return nil, errors.Wrap(err, "failed to unmarshal team")
		}
		out = append(out, &team)
	}
	return &teams.ListByOwnerOutput{Teams: out}, nil
}

func (r *teamRepository) get(ctx context.Context, id string) (*entities.StoredTeam, error) {
	payload, err := r.store.payload(ctx, tableTeams, id)
	if err != nil {
		return nil, err
	}

	var team entities.StoredTeam
	if err := json.Unmarshal(payload, &team); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal team %s", id)
	}
	return &team, nil
}

func (r *teamRepository) save(ctx context.Context, team *entities.StoredTeam, write func(context.Context, string, record) error) error {
	payload, err := json.Marshal(team)
	if err != nil {
		return errors.Wrap(err, "failed to marshal team")
	}
	return write(ctx, tableTeams, record{
		ID:        team.ID,
		OwnerID:   team.OwnerID,
		Payload:   payload,
		CreatedAt: team.CreatedAt,
		UpdatedAt: team.UpdatedAt,
	})
}
