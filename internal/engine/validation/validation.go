// Package validation derives deck statistics and checks a deck against the
// construction rules. Both functions are read-only and tolerate nil or
// malformed decks.
package validation

import (
	"fmt"

	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

// IssueCode identifies a failed construction rule
type IssueCode string

// Issue codes
const (
	IssueMissingUnits       IssueCode = "MISSING_UNITS"
	IssueMissingTitan       IssueCode = "MISSING_TITAN"
	IssueMissingSpellcaster IssueCode = "MISSING_SPELLCASTER"
	IssueMissingRank1Or2    IssueCode = "MISSING_RANK_1_OR_2"
	IssueNoCreatures        IssueCode = "NO_CREATURES"
)

// Issue is one failed rule
type Issue struct {
	Code    IssueCode `json:"code"`
	Message string    `json:"message"`
}

// DeckStats is derived from a deck and never stored
type DeckStats struct {
	UnitCount             int                       `json:"unit_count"`
	CreatureCount         int                       `json:"creature_count"`
	TitanCount            int                       `json:"titan_count"`
	HasSpellcaster        bool                      `json:"has_spellcaster"`
	Rank1Or2Count         int                       `json:"rank_1_or_2_count"`
	Rank1Or2CreatureCount int                       `json:"rank_1_or_2_creature_count"`
	CategoryCounts        map[entities.Category]int `json:"category_counts"`
	IsValid               bool                      `json:"is_valid"`
	ValidationErrors      []string                  `json:"validation_errors"`
}

// Result is the outcome of ValidateDeck
type Result struct {
	IsValid bool       `json:"is_valid"`
	Errors  []Issue    `json:"errors"`
	Stats   *DeckStats `json:"stats"`
}

// HasIssue reports whether the result contains code
func (r *Result) HasIssue(code IssueCode) bool {
	if r == nil {
		return false
	}
	for _, issue := range r.Errors {
		if issue.Code == code {
			return true
		}
	}
	return false
}

// CalculateDeckStats counts what a deck holds in a single pass over its slots.
// IsValid and ValidationErrors are filled from the same rules ValidateDeck
// applies.
func CalculateDeckStats(d *entities.Deck) *DeckStats {
	stats := countSlots(d)
	issues := check(stats)
	stats.IsValid = len(issues) == 0
	stats.ValidationErrors = make([]string, 0, len(issues))
	for _, issue := range issues {
		stats.ValidationErrors = append(stats.ValidationErrors, issue.Message)
	}
	return stats
}

// ValidateDeck applies every construction rule and reports all failures
func ValidateDeck(d *entities.Deck) *Result {
	stats := CalculateDeckStats(d)
	issues := check(stats)
	return &Result{
		IsValid: len(issues) == 0,
		Errors:  issues,
		Stats:   stats,
	}
}

func countSlots(d *entities.Deck) *DeckStats {
	stats := &DeckStats{
		CategoryCounts: make(map[entities.Category]int),
	}
	if d == nil {
		return stats
	}

	stats.HasSpellcaster = d.Spellcaster != nil

	for _, slot := range d.Slots {
		card := slot.Unit
		if card == nil || !card.Category.Valid() {
			continue
		}

		stats.CategoryCounts[card.Category]++

		if card.Category == entities.CategoryTitan {
			if slot.Accepts(entities.SlotTypeTitan) {
				stats.TitanCount = 1
			}
			continue
		}
		if !slot.Accepts(entities.SlotTypeUnit) {
			continue
		}

		stats.UnitCount++
		if card.Category == entities.CategoryCreature {
			stats.CreatureCount++
		}
		if card.Rank.IsLow() {
			stats.Rank1Or2Count++
			if card.Category == entities.CategoryCreature {
				stats.Rank1Or2CreatureCount++
			}
		}
	}

	return stats
}

// check evaluates every rule without short-circuiting. The rank and creature
// rules only apply once all unit slots are filled.
func check(stats *DeckStats) []Issue {
	var issues []Issue

	full := stats.UnitCount == entities.UnitSlotCount
	if !full {
		issues = append(issues, Issue{
			Code:    IssueMissingUnits,
			Message: fmt.Sprintf("deck needs %d units, has %d", entities.UnitSlotCount, stats.UnitCount),
		})
	}
	if stats.TitanCount < 1 {
		issues = append(issues, Issue{Code: IssueMissingTitan, Message: "deck needs a titan"})
	}
	if !stats.HasSpellcaster {
		issues = append(issues, Issue{Code: IssueMissingSpellcaster, Message: "deck needs a spellcaster"})
	}
	if full && stats.Rank1Or2CreatureCount < 1 {
		issues = append(issues, Issue{
			Code:    IssueMissingRank1Or2,
			Message: "deck needs at least one rank I or II creature",
		})
	}
	if full && stats.CreatureCount < 1 {
		issues = append(issues, Issue{Code: IssueNoCreatures, Message: "deck needs at least one creature"})
	}

	return issues
}
