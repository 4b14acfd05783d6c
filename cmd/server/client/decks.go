package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/deckbuilder-api/internal/handlers/deckbuilder/v1alpha1"
)

var (
	ownerID  string
	deckName string
	deckID   string
	entityID string
)

var createDeckCmd = &cobra.Command{
	Use:   "create-deck",
	Short: "Create an empty deck",
	RunE:  runCreateDeck,
}

var getDeckCmd = &cobra.Command{
	Use:   "get-deck",
	Short: "Show a deck",
	RunE:  runGetDeck,
}

var quickAddCmd = &cobra.Command{
	Use:   "quick-add",
	Short: "Add a catalog card or spellcaster to the best slot of a deck",
	RunE:  runQuickAdd,
}

var validateDeckCmd = &cobra.Command{
	Use:   "validate-deck",
	Short: "Check a deck against the construction rules",
	RunE:  runValidateDeck,
}

func init() {
	createDeckCmd.Flags().StringVar(&ownerID, "owner-id", "", "Owner ID (required)")
	createDeckCmd.Flags().StringVar(&deckName, "name", "", "Deck name")
	_ = createDeckCmd.MarkFlagRequired("owner-id") // nolint:errcheck // safe to ignore in init

	for _, cmd := range []*cobra.Command{getDeckCmd, quickAddCmd, validateDeckCmd} {
		cmd.Flags().StringVar(&deckID, "deck-id", "", "Deck ID (required)")
		_ = cmd.MarkFlagRequired("deck-id") // nolint:errcheck // safe to ignore in init
	}

	quickAddCmd.Flags().StringVar(&entityID, "entity-id", "", "Catalog entity ID (required)")
	_ = quickAddCmd.MarkFlagRequired("entity-id") // nolint:errcheck // safe to ignore in init
}

func runCreateDeck(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateDeck(ctx, &v1alpha1.CreateDeckRequest{
		OwnerID: ownerID,
		Name:    deckName,
	})
	if err != nil {
		return fmt.Errorf("failed to create deck: %w", err)
	}

	fmt.Printf("✅ Deck created\n\n")
	printDeck(os.Stdout, resp.Deck, resp.Validation)

	fmt.Printf("\n💡 Next: deckbuilder client quick-add --deck-id %s --entity-id creature_ember_imp\n", resp.Deck.ID)
	return nil
}

func runGetDeck(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetDeck(ctx, &v1alpha1.DeckRequest{DeckID: deckID})
	if err != nil {
		return fmt.Errorf("failed to get deck: %w", err)
	}

	printDeck(os.Stdout, resp.Deck, resp.Validation)
	printDropped(os.Stdout, resp.Dropped)
	return nil
}

func runQuickAdd(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.QuickAdd(ctx, &v1alpha1.QuickAddRequest{
		DeckID:   deckID,
		EntityID: entityID,
	})
	if err != nil {
		return fmt.Errorf("failed to add %s: %w", entityID, err)
	}

	fmt.Printf("✅ Added %s\n\n", entityID)
	printDeck(os.Stdout, resp.Deck, resp.Validation)
	return nil
}

func runValidateDeck(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ValidateDeck(ctx, &v1alpha1.DeckRequest{DeckID: deckID})
	if err != nil {
		return fmt.Errorf("failed to validate deck: %w", err)
	}

	stats := resp.Validation.Stats
	fmt.Printf("Units: %d/4  Titan: %d  Spellcaster: %v\n", stats.UnitCount, stats.TitanCount, stats.HasSpellcaster)
	fmt.Printf("Creatures: %d  Rank I/II creatures: %d\n", stats.CreatureCount, stats.Rank1Or2CreatureCount)
	printValidation(os.Stdout, resp.Validation)
	return nil
}
