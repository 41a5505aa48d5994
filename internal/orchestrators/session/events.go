package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

// Event types published on the bus. The event source is the save game.
const (
	EventPlayerDied          = "player.died"
	EventPlayerLeveledUp     = "player.leveled_up"
	EventPlayerClassUnlocked = "player.class_unlocked"
	EventShopItemPurchased   = "shop.item_purchased"
	EventShopItemSold        = "shop.item_sold"
	EventStoryEndingReached  = "story.ending_reached"
)

// publish notifies subscribers. A failing subscriber never fails the operation.
func (o *Orchestrator) publish(ctx context.Context, eventType string, save *game.SaveGame) {
	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, save, nil)); err != nil {
		slog.Warn("Failed to publish event",
			"event", eventType,
			"save_id", save.ID,
			"error", err,
		)
	}
}
