package entities

import "time"

// StoredDeck is the ID-only form of a deck used for persistence. Cards and the
// spellcaster are referenced by catalog ID and resolved again on load.
type StoredDeck struct {
	ID            string            `json:"id"`
	OwnerID       string            `json:"owner_id,omitempty"`
	Name          string            `json:"name"`
	SpellcasterID string            `json:"spellcaster_id,omitempty"`
	SlotIDs       [SlotCount]string `json:"slot_ids"`
	AutoNamed     bool              `json:"auto_named,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// StoredTeam is the ID-only form of a team
type StoredTeam struct {
	ID        string               `json:"id"`
	OwnerID   string               `json:"owner_id,omitempty"`
	Name      string               `json:"name"`
	Decks     [TeamSize]StoredDeck `json:"decks"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}
