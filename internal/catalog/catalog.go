// Package catalog resolves entity IDs to the cards and spellcasters a deck can
// hold. The rules engine never looks anything up itself; callers hydrate IDs
// through a Catalog first.
package catalog

import (
	"context"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

//go:generate mockgen -destination=mock/mock_catalog.go -package=catalogmock github.com/KirkDiggler/deckbuilder-api/internal/catalog Catalog

// ListCardsFilter narrows ListCards. Zero values match everything.
type ListCardsFilter struct {
	Category entities.Category
	// Case-insensitive substring of the card name
	NameContains string
}

// Catalog is the read-only source of game content
type Catalog interface {
	// GetEntity returns the card or spellcaster with the given ID
	GetEntity(ctx context.Context, id string) (entities.Entity, error)

	GetCard(ctx context.Context, id string) (*entities.Card, error)

	GetSpellcaster(ctx context.Context, id string) (*entities.Spellcaster, error)

	// ListCards returns matching cards ordered by name
	ListCards(ctx context.Context, filter ListCardsFilter) ([]*entities.Card, error)

	// ListSpellcasters returns all spellcasters ordered by name
	ListSpellcasters(ctx context.Context) ([]*entities.Spellcaster, error)
}
