package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/deckbuilder-api/internal/config"
	"github.com/KirkDiggler/deckbuilder-api/internal/engine/dragroute"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/orchestrators/deckbuilder"
)

func TestBuildAppWithSQLite(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{
		Port:       50051,
		Store:      config.StoreSQLite,
		SQLitePath: filepath.Join(t.TempDir(), "deckbuilder.db"),
	}
	require.NoError(t, cfg.Validate())

	a, err := buildApp(cfg)
	require.NoError(t, err)
	defer a.Close()

	created, err := a.Service.CreateTeam(ctx, &deckbuilder.CreateTeamInput{OwnerID: "player_1"})
	require.NoError(t, err)
	teamID := created.Team.ID
	firstDeck := created.Team.Decks[0].ID

	var published []string
	a.Events.SubscribeFunc(deckbuilder.EventTeamUpdated, 0, func(_ context.Context, event events.Event) error {
		published = append(published, event.Source().GetID())
		return nil
	})

	out, err := a.Service.HandleDrop(ctx, &deckbuilder.HandleDropInput{
		TeamID: teamID,
		Active: deckbuilder.DragItem{Kind: dragroute.DragKindBrowserItem, EntityID: "titan_worldbreaker"},
		Over:   &dragroute.DropTarget{Kind: dragroute.DropKindDeckHeader, DeckID: firstDeck},
	})
	require.NoError(t, err)
	require.True(t, out.Applied)
	require.Equal(t, []string{teamID}, published)

	got, err := a.Service.GetTeam(ctx, &deckbuilder.GetTeamInput{TeamID: teamID})
	require.NoError(t, err)
	titan := got.Team.Decks[0].Slots[entities.TitanSlotIndex].Unit
	require.NotNil(t, titan)
	require.Equal(t, "titan_worldbreaker", titan.EntityID)
}

func TestBuildAppRejectsMissingCatalog(t *testing.T) {
	cfg := &config.Config{
		Port:        50051,
		Store:       config.StoreSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "deckbuilder.db"),
		CatalogPath: filepath.Join(t.TempDir(), "missing.json"),
	}

	_, err := buildApp(cfg)
	require.Error(t, err)
}
