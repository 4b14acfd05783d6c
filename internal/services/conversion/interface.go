package conversion

import (
	"context"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// HydrateDeckOutput is a deck rebuilt from its stored form
type HydrateDeckOutput struct {
	Deck *entities.Deck

	// IDs that no longer resolve, or no longer fit their slot, and were
	// left out of Deck
	Dropped []string
}

// HydrateTeamOutput is a team rebuilt from its stored form
type HydrateTeamOutput struct {
	Team    *entities.Team
	Dropped []string
}

// DeckConverter handles conversions between the ID-only storage form and the
// hydrated decks the rules engine works on.
//
//go:generate mockgen -destination=mock/mock_converter.go -package=conversionmock github.com/KirkDiggler/deckbuilder-api/internal/services/conversion DeckConverter
type DeckConverter interface {
	// CompactDeck strips a deck down to catalog IDs. Owner and timestamps
	// are left for the caller to fill.
	CompactDeck(deck *entities.Deck) *entities.StoredDeck

	// CompactTeam strips every deck of a team down to catalog IDs
	CompactTeam(team *entities.Team) *entities.StoredTeam

	// HydrateDeck resolves stored IDs through the catalog. IDs the catalog
	// no longer knows are dropped rather than failing the load.
	HydrateDeck(ctx context.Context, stored *entities.StoredDeck) (*HydrateDeckOutput, error)

	// HydrateTeam hydrates each of the team's decks
	HydrateTeam(ctx context.Context, stored *entities.StoredTeam) (*HydrateTeamOutput, error)
}
