package deckbuilder

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/deckbuilder-api/internal/engine"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/team"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/validation"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
	"github.com/KirkDiggler/deckbuilder-api/internal/repositories/teams"
)

const errTeamIDRequired = "team ID is required"

type loadedTeam struct {
	stored  *entities.StoredTeam
	team    *entities.Team
	dropped []string
}

func (o *orchestrator) CreateTeam(ctx context.Context, input *CreateTeamInput) (*TeamOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OwnerID == "" {
		return nil, errors.InvalidArgument(errOwnerIDRequired)
	}

	t := entities.NewTeam(o.teamIDGen.Generate(), strings.TrimSpace(input.Name))
	stored := o.converter.CompactTeam(t)
	stored.OwnerID = input.OwnerID

	if _, err := o.teamRepo.Create(ctx, teams.CreateInput{Team: stored}); err != nil {
		return nil, errors.Wrap(err, "failed to create team")
	}

	slog.Info("team created",
		"team_id", t.ID,
		"owner_id", input.OwnerID)

	return newTeamOutput(t, nil), nil
}

func (o *orchestrator) GetTeam(ctx context.Context, input *GetTeamInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	loaded, err := o.loadTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	return newTeamOutput(loaded.team, loaded.dropped), nil
}

func (o *orchestrator) DeleteTeam(ctx context.Context, input *DeleteTeamInput) (*DeleteTeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	if _, err := o.teamRepo.Delete(ctx, teams.DeleteInput{ID: input.TeamID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete team %s", input.TeamID)
	}

	slog.Info("team deleted", "team_id", input.TeamID)

	return &DeleteTeamOutput{}, nil
}

func (o *orchestrator) TeamSetSlot(ctx context.Context, input *TeamSetSlotInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	item, err := o.resolveEntity(ctx, input.EntityID)
	if err != nil {
		return nil, err
	}

	return o.mutateTeam(ctx, input.TeamID, func(decks team.Decks) (team.Decks, error) {
		return team.SetSlot(decks, input.DeckIndex, input.SlotIndex, item)
	})
}

func (o *orchestrator) TeamClearSlot(ctx context.Context, input *TeamClearSlotInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}
	if input.SlotIndex < 0 || input.SlotIndex >= entities.SlotCount {
		return nil, engine.InvalidSlotIndex(input.SlotIndex)
	}

	return o.mutateTeam(ctx, input.TeamID, func(decks team.Decks) (team.Decks, error) {
		return team.ClearSlot(decks, input.DeckIndex, input.SlotIndex)
	})
}

func (o *orchestrator) TeamSwapSlots(ctx context.Context, input *TeamSwapSlotsInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	return o.mutateTeam(ctx, input.TeamID, func(decks team.Decks) (team.Decks, error) {
		return team.SwapSlots(decks, input.DeckIndex, input.IndexA, input.IndexB)
	})
}

func (o *orchestrator) TeamQuickAdd(ctx context.Context, input *TeamQuickAddInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	item, err := o.resolveEntity(ctx, input.EntityID)
	if err != nil {
		return nil, err
	}

	return o.mutateTeam(ctx, input.TeamID, func(decks team.Decks) (team.Decks, error) {
		return team.QuickAdd(decks, input.DeckIndex, item)
	})
}

func (o *orchestrator) TeamSetSpellcaster(ctx context.Context, input *TeamSetSpellcasterInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	sc, err := o.resolveSpellcaster(ctx, input.SpellcasterID)
	if err != nil {
		return nil, err
	}

	return o.mutateTeam(ctx, input.TeamID, func(decks team.Decks) (team.Decks, error) {
		return team.SetSpellcaster(decks, input.DeckIndex, sc)
	})
}

func (o *orchestrator) TeamRemoveSpellcaster(ctx context.Context, input *TeamRemoveSpellcasterInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	return o.mutateTeam(ctx, input.TeamID, func(decks team.Decks) (team.Decks, error) {
		return team.RemoveSpellcaster(decks, input.DeckIndex)
	})
}

func (o *orchestrator) MoveCardBetweenDecks(ctx context.Context, input *MoveCardBetweenDecksInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	return o.mutateTeam(ctx, input.TeamID, func(decks team.Decks) (team.Decks, error) {
		return team.MoveCardBetweenDecks(decks, input.SrcDeck, input.SrcSlot, input.DstDeck, input.DstSlot)
	})
}

func (o *orchestrator) MoveSpellcasterBetweenDecks(ctx context.Context, input *MoveSpellcasterBetweenDecksInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	return o.mutateTeam(ctx, input.TeamID, func(decks team.Decks) (team.Decks, error) {
		return team.MoveSpellcasterBetweenDecks(decks, input.SrcDeck, input.DstDeck)
	})
}

func (o *orchestrator) ValidateTeam(ctx context.Context, input *ValidateTeamInput) (*TeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.InvalidArgument(errTeamIDRequired)
	}

	return o.GetTeam(ctx, &GetTeamInput{TeamID: input.TeamID})
}

// mutateTeam loads a team, applies op to its decks and saves the result when
// any deck changed
func (o *orchestrator) mutateTeam(ctx context.Context, teamID string, op func(team.Decks) (team.Decks, error)) (*TeamOutput, error) {
	loaded, err := o.loadTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	next, err := op(loaded.team.Decks)
	if err != nil {
		slog.Debug("team rule rejected",
			"team_id", teamID,
			"reason", errors.GetReason(err),
			"error", err)
		return nil, err
	}

	if next == loaded.team.Decks {
		return newTeamOutput(loaded.team, loaded.dropped), nil
	}

	updated := loaded.team.WithDecks(next)
	if err := o.saveTeam(ctx, loaded.stored, updated); err != nil {
		return nil, err
	}

	return newTeamOutput(updated, loaded.dropped), nil
}

func (o *orchestrator) loadTeam(ctx context.Context, teamID string) (*loadedTeam, error) {
	got, err := o.teamRepo.Get(ctx, teams.GetInput{ID: teamID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get team %s", teamID)
	}

	hydrated, err := o.converter.HydrateTeam(ctx, got.Team)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to hydrate team %s", teamID)
	}

	return &loadedTeam{
		stored:  got.Team,
		team:    hydrated.Team,
		dropped: hydrated.Dropped,
	}, nil
}

func (o *orchestrator) saveTeam(ctx context.Context, previous *entities.StoredTeam, t *entities.Team) error {
	stored := o.converter.CompactTeam(t)
	stored.OwnerID = previous.OwnerID
	stored.CreatedAt = previous.CreatedAt

	if _, err := o.teamRepo.Update(ctx, teams.UpdateInput{Team: stored}); err != nil {
		return errors.Wrapf(err, "failed to save team %s", t.ID)
	}

	o.publish(ctx, EventTeamUpdated, t, stored.OwnerID)
	return nil
}

func newTeamOutput(t *entities.Team, dropped []string) *TeamOutput {
	out := &TeamOutput{
		Team:    t,
		IsValid: true,
		Dropped: dropped,
	}
	for i, d := range t.Decks {
		out.Validation[i] = validation.ValidateDeck(d)
		out.IsValid = out.IsValid && out.Validation[i].IsValid
	}
	return out
}
