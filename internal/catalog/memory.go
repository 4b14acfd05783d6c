package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
	"github.com/KirkDiggler/deckbuilder-api/internal/errors"
)

//go:embed default_catalog.json
var defaultCatalog []byte

// Document is the on-disk catalog format
type Document struct {
	Cards        []*entities.Card        `json:"cards"`
	Spellcasters []*entities.Spellcaster `json:"spellcasters"`
}

type memoryCatalog struct {
	cards        map[string]*entities.Card
	spellcasters map[string]*entities.Spellcaster

	// sorted by name for listing
	cardList        []*entities.Card
	spellcasterList []*entities.Spellcaster
}

// Ensure memoryCatalog implements Catalog
var _ Catalog = (*memoryCatalog)(nil)

// Default returns the catalog embedded in the binary
func Default() (Catalog, error) {
	return Parse(defaultCatalog)
}

// LoadFile reads a catalog document from path
func LoadFile(path string) (Catalog, error) {
	f, err := os.Open(path) // nolint:gosec // path comes from operator config
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	return Load(f)
}

// Load reads a catalog document from r
func Load(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog")
	}
	return Parse(data)
}

// Parse decodes and checks a catalog document
func Parse(data []byte) (Catalog, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.InvalidArgumentf("malformed catalog: %v", err)
	}
	return New(doc)
}

// New builds an in-memory catalog. IDs are unique across cards and
// spellcasters.
func New(doc Document) (Catalog, error) {
	c := &memoryCatalog{
		cards:        make(map[string]*entities.Card, len(doc.Cards)),
		spellcasters: make(map[string]*entities.Spellcaster, len(doc.Spellcasters)),
	}

	for i, card := range doc.Cards {
		if err := checkCard(card); err != nil {
			return nil, errors.Wrapf(err, "card %d", i)
		}
		if c.has(card.EntityID) {
			return nil, errors.AlreadyExistsf("duplicate catalog id %q", card.EntityID)
		}
		c.cards[card.EntityID] = card
		c.cardList = append(c.cardList, card)
	}

	for i, sc := range doc.Spellcasters {
		if err := checkSpellcaster(sc); err != nil {
			return nil, errors.Wrapf(err, "spellcaster %d", i)
		}
		if sc.SpellcasterID == "" {
			sc.SpellcasterID = sc.EntityID
		}
		if sc.EntityID == "" {
			sc.EntityID = sc.SpellcasterID
		}
		if c.has(sc.GetID()) {
			return nil, errors.AlreadyExistsf("duplicate catalog id %q", sc.GetID())
		}
		c.spellcasters[sc.GetID()] = sc
		c.spellcasterList = append(c.spellcasterList, sc)
	}

	sort.SliceStable(c.cardList, func(i, j int) bool {
		return c.cardList[i].Name < c.cardList[j].Name
	})
	sort.SliceStable(c.spellcasterList, func(i, j int) bool {
		return c.spellcasterList[i].Name < c.spellcasterList[j].Name
	})

	return c, nil
}

func checkCard(card *entities.Card) error {
	if card == nil {
		return errors.InvalidArgument("card is null")
	}
	if card.EntityID == "" {
		return errors.InvalidArgument("card entity_id is required")
	}

	switch card.Category {
	case entities.CategoryCreature, entities.CategoryBuilding, entities.CategorySpell:
		if !card.Rank.Valid() {
			return errors.InvalidArgumentf("card %q has invalid rank %q", card.EntityID, card.Rank)
		}
	case entities.CategoryTitan:
		if card.Rank != "" {
			return errors.InvalidArgumentf("titan %q cannot have a rank", card.EntityID)
		}
	default:
		return errors.InvalidArgumentf("card %q has unknown category %q", card.EntityID, card.Category)
	}
	return nil
}

func checkSpellcaster(sc *entities.Spellcaster) error {
	if sc == nil {
		return errors.InvalidArgument("spellcaster is null")
	}
	if sc.GetID() == "" {
		return errors.InvalidArgument("spellcaster id is required")
	}
	if !sc.Class.Valid() {
		return errors.InvalidArgumentf("spellcaster %q has unknown class %q", sc.GetID(), sc.Class)
	}
	return nil
}

func (c *memoryCatalog) has(id string) bool {
	_, card := c.cards[id]
	_, sc := c.spellcasters[id]
	return card || sc
}

func (c *memoryCatalog) GetEntity(ctx context.Context, id string) (entities.Entity, error) {
	if id == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if card, ok := c.cards[id]; ok {
		return card, nil
	}
	if sc, ok := c.spellcasters[id]; ok {
		return sc, nil
	}
	return nil, errors.NotFoundf("entity %s not found", id)
}

func (c *memoryCatalog) GetCard(ctx context.Context, id string) (*entities.Card, error) {
	if id == "" {
		return nil, errors.InvalidArgument("card ID is required")
	}
	card, ok := c.cards[id]
	if !ok {
		return nil, errors.NotFoundf("card %s not found", id)
	}
	return card, nil
}

func (c *memoryCatalog) GetSpellcaster(ctx context.Context, id string) (*entities.Spellcaster, error) {
	if id == "" {
		return nil, errors.InvalidArgument("spellcaster ID is required")
	}
	sc, ok := c.spellcasters[id]
	if !ok {
		return nil, errors.NotFoundf("spellcaster %s not found", id)
	}
	return sc, nil
}

func (c *memoryCatalog) ListCards(ctx context.Context, filter ListCardsFilter) ([]*entities.Card, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, errors.InvalidArgumentf("unknown category %q", filter.Category)
	}

	needle := strings.ToLower(strings.TrimSpace(filter.NameContains))
	out := make([]*entities.Card, 0, len(c.cardList))
	for _, card := range c.cardList {
		if filter.Category != "" && card.Category != filter.Category {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(card.Name), needle) {
			continue
		}
		out = append(out, card)
	}
	return out, nil
}

func (c *memoryCatalog) ListSpellcasters(ctx context.Context) ([]*entities.Spellcaster, error) {
	out := make([]*entities.Spellcaster, len(c.spellcasterList))
	copy(out, c.spellcasterList)
	return out, nil
}
