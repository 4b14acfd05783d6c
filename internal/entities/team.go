package entities

import "fmt"

// Team layout
const (
	TeamSize        = 3
	DefaultTeamName = "New Team"
)

// Team is exactly three decks edited together
type Team struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Decks [TeamSize]*Deck `json:"decks"`
}

// NewTeam creates a team of three empty decks. Deck IDs derive from the team ID.
func NewTeam(id, name string) *Team {
	if name == "" {
		name = DefaultTeamName
	}

	t := &Team{ID: id, Name: name}
	for i := range t.Decks {
		t.Decks[i] = NewDeck(fmt.Sprintf("%s_deck_%d", id, i+1), "")
	}
	return t
}

// DeckIndex returns the position of the deck with the given ID, or -1
func (t *Team) DeckIndex(deckID string) int {
	if t == nil {
		return -1
	}
	for i, d := range t.Decks {
		if d != nil && d.ID == deckID {
			return i
		}
	}
	return -1
}

// WithDecks returns a copy of the team holding decks
func (t *Team) WithDecks(decks [TeamSize]*Deck) *Team {
	clone := *t
	clone.Decks = decks
	return &clone
}

// GetID returns the team ID
func (t *Team) GetID() string {
	return t.ID
}

// GetType returns the entity type
func (t *Team) GetType() string {
	return "team"
}
