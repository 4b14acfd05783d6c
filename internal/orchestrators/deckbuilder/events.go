package deckbuilder

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Event types published on the event bus after a snapshot is saved. The
// event source is the saved *entities.Deck or *entities.Team.
const (
	EventDeckUpdated = "deck.updated"
	EventTeamUpdated = "team.updated"
)

// EventKeyOwnerID is the event context key holding the owner of the snapshot
const EventKeyOwnerID = "owner_id"

// publish notifies subscribers of a saved snapshot. The write already
// happened, so a failing handler is logged and not returned.
func (o *orchestrator) publish(ctx context.Context, eventType string, source core.Entity, ownerID string) {
	event := events.NewGameEvent(eventType, source, nil)
	event.Context().Set(EventKeyOwnerID, ownerID)

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Warn("event handler failed",
			"event", eventType,
			"id", source.GetID(),
			"error", err)
	}
}
