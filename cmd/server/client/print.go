package client

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/deckbuilder-api/internal/engine/validation"
	"github.com/KirkDiggler/deckbuilder-api/internal/entities"
)

func printDeck(w io.Writer, d *entities.Deck, result *validation.Result) {
	if d == nil {
		fmt.Fprintln(w, "(no deck)")
		return
	}

	fmt.Fprintf(w, "Deck ID: %s\n", d.ID)
	fmt.Fprintf(w, "Name: %s\n", d.Name)
	if d.Spellcaster != nil {
		fmt.Fprintf(w, "Spellcaster: %s (%s)\n", d.Spellcaster.Name, d.Spellcaster.Class)
	} else {
		fmt.Fprintln(w, "Spellcaster: -")
	}

	for _, slot := range d.Slots {
		label := "Unit "
		if slot.Accepts(entities.SlotTypeTitan) {
			label = "Titan"
		}
		content := "-"
		if slot.Unit != nil {
			content = fmt.Sprintf("%s [%s", slot.Unit.Name, slot.Unit.Category)
			if slot.Unit.Rank != "" {
				content += " " + string(slot.Unit.Rank)
			}
			content += "]"
		}
		fmt.Fprintf(w, "  %d %s  %s\n", slot.Index, label, content)
	}

	printValidation(w, result)
}

func printValidation(w io.Writer, result *validation.Result) {
	if result == nil {
		return
	}
	if result.IsValid {
		fmt.Fprintln(w, "✅ Deck is valid")
		return
	}

	fmt.Fprintln(w, "⚠️  Deck is not ready:")
	for _, issue := range result.Errors {
		fmt.Fprintf(w, "  - %s: %s\n", issue.Code, issue.Message)
	}
}

func printDropped(w io.Writer, dropped []string) {
	if len(dropped) == 0 {
		return
	}
	fmt.Fprintf(w, "Dropped stale IDs: %s\n", strings.Join(dropped, ", "))
}
