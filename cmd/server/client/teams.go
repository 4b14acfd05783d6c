package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/deckbuilder-api/internal/engine/dragroute"
	"github.com/KirkDiggler/deckbuilder-api/internal/handlers/deckbuilder/v1alpha1"
)

var (
	teamName string

	dropTeamID     string
	dropDeckID     string
	dragKind       string
	dragEntityID   string
	dragSourceDeck string
	dragSourceSlot int
	overKind       string
	overDeckID     string
	overIndex      int
)

var createTeamCmd = &cobra.Command{
	Use:   "create-team",
	Short: "Create a team of three empty decks",
	RunE:  runCreateTeam,
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Apply a drag-and-drop gesture to a team or deck",
	Long: `Apply a drag-and-drop gesture. Leave --over empty to drop on nothing.

Examples:
  deckbuilder client drop --team-id team_x --drag BROWSER_ITEM --entity-id titan_worldbreaker \
    --over DECK_HEADER --over-deck team_x_deck_1
  deckbuilder client drop --team-id team_x --drag DECK_SLOT --source-deck team_x_deck_1 --source-slot 2`,
	RunE: runDrop,
}

func init() {
	createTeamCmd.Flags().StringVar(&ownerID, "owner-id", "", "Owner ID (required)")
	createTeamCmd.Flags().StringVar(&teamName, "name", "", "Team name")
	_ = createTeamCmd.MarkFlagRequired("owner-id") // nolint:errcheck // safe to ignore in init

	dropCmd.Flags().StringVar(&dropTeamID, "team-id", "", "Team to edit")
	dropCmd.Flags().StringVar(&dropDeckID, "deck-id", "", "Deck to edit when not editing a team")
	dropCmd.Flags().StringVar(&dragKind, "drag", string(dragroute.DragKindBrowserItem), "BROWSER_ITEM, DECK_SLOT or DECK_SPELLCASTER")
	dropCmd.Flags().StringVar(&dragEntityID, "entity-id", "", "Dragged catalog entity")
	dropCmd.Flags().StringVar(&dragSourceDeck, "source-deck", "", "Deck the item was dragged from")
	dropCmd.Flags().IntVar(&dragSourceSlot, "source-slot", 0, "Slot the item was dragged from")
	dropCmd.Flags().StringVar(&overKind, "over", "", "DECK_SLOT, DECK_HEADER, DECK_BACKGROUND or SPELLCASTER_ZONE")
	dropCmd.Flags().StringVar(&overDeckID, "over-deck", "", "Deck under the pointer")
	dropCmd.Flags().IntVar(&overIndex, "over-slot", 0, "Slot under the pointer")
}

func runCreateTeam(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateTeam(ctx, &v1alpha1.CreateTeamRequest{
		OwnerID: ownerID,
		Name:    teamName,
	})
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}

	fmt.Printf("✅ Team created\n\n")
	printTeam(resp)
	return nil
}

func runDrop(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.HandleDropRequest{
		TeamID: dropTeamID,
		DeckID: dropDeckID,
		Active: v1alpha1.DragItem{
			Kind:            dragroute.DragKind(dragKind),
			EntityID:        dragEntityID,
			SourceSlotIndex: dragSourceSlot,
			SourceDeckID:    dragSourceDeck,
		},
	}
	if overKind != "" {
		req.Over = &v1alpha1.DropTarget{
			Kind:   dragroute.DropKind(overKind),
			Index:  overIndex,
			DeckID: overDeckID,
		}
	}

	resp, err := client.HandleDrop(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to apply drop: %w", err)
	}

	fmt.Printf("Action: %s (applied: %v)\n\n", resp.Action.Type, resp.Applied)
	switch {
	case resp.Team != nil:
		printTeam(resp.Team)
	case resp.Deck != nil:
		printDeck(os.Stdout, resp.Deck.Deck, resp.Deck.Validation)
	}
	return nil
}

func printTeam(resp *v1alpha1.TeamResponse) {
	fmt.Printf("Team ID: %s\n", resp.Team.ID)
	fmt.Printf("Name: %s\n", resp.Team.Name)
	fmt.Printf("Valid: %v\n", resp.IsValid)
	for i, d := range resp.Team.Decks {
		fmt.Printf("\n[%d] ", i)
		printDeck(os.Stdout, d, resp.Validation[i])
	}
	printDropped(os.Stdout, resp.Dropped)
}
