package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/services/session"
)

// Inventory is managed outside pending progression choices
var inventoryPhases = []game.Phase{
	game.PhaseStorySelection,
	game.PhaseExploring,
	game.PhaseShopping,
}

func findInventoryItem(p *game.Player, itemID string) (game.Item, error) {
	for _, item := range p.Inventory {
		if item.ID == itemID {
			return item, nil
		}
	}
	return game.Item{}, errors.NotFoundf("item %s is not in the inventory", itemID)
}

func (o *Orchestrator) loadInventorySave(ctx context.Context, saveID, itemID string) (*game.SaveGame, game.Item, error) {
	if itemID == "" {
		return nil, game.Item{}, errors.InvalidArgument("item ID is required")
	}

	save, err := o.loadSave(ctx, saveID)
	if err != nil {
		return nil, game.Item{}, err
	}
	if err := requirePhase(save, inventoryPhases...); err != nil {
		return nil, game.Item{}, err
	}

	item, err := findInventoryItem(save.Player, itemID)
	if err != nil {
		return nil, game.Item{}, err
	}
	return save, item, nil
}

// GetInventory returns the inventory grouped by item type with the equipment view
func (o *Orchestrator) GetInventory(ctx context.Context, input *session.GetInventoryInput) (*session.GetInventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, err := o.loadSave(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}

	return &session.GetInventoryOutput{
		Groups:     engine.GroupInventory(save.Player),
		Equipment:  save.Player.Equipment,
		Equippable: engine.EquippableItems(save.Player),
		Totals:     engine.GetTotalPlayerStats(save.Player),
	}, nil
}

// UseItem consumes one unit of an inventory consumable
func (o *Orchestrator) UseItem(ctx context.Context, input *session.UseItemInput) (*session.UseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, item, err := o.loadInventorySave(ctx, input.SaveID, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Type != game.ItemTypeConsumable {
		return nil, errors.FailedPreconditionf("item %s is not consumable", item.ID)
	}

	save.Player = engine.UseItem(save.Player, item)

	slog.Debug("Item used",
		"save_id", save.ID,
		"item", item.ID,
		"hearts", save.Player.Hearts,
	)

	if save.Player.IsDead() {
		if err := o.kill(ctx, save); err != nil {
			return nil, err
		}
		return &session.UseItemOutput{Died: true}, nil
	}

	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	return &session.UseItemOutput{SaveGame: save}, nil
}

// EquipItem moves an inventory item into its equipment slot
func (o *Orchestrator) EquipItem(ctx context.Context, input *session.EquipItemInput) (*session.EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, item, err := o.loadInventorySave(ctx, input.SaveID, input.ItemID)
	if err != nil {
		return nil, err
	}
	if !engine.CanEquipItem(save.Player, item) {
		return nil, errors.FailedPreconditionf("item %s cannot be equipped", item.ID)
	}

	save.Player = engine.EquipItem(save.Player, item)

	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	slog.Debug("Item equipped",
		"save_id", save.ID,
		"item", item.ID,
	)

	return &session.EquipItemOutput{SaveGame: save}, nil
}

// UnequipItem returns a slot's item to the inventory
func (o *Orchestrator) UnequipItem(ctx context.Context, input *session.UnequipItemInput) (*session.UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	validSlot := false
	for _, slot := range game.AllSlots {
		if slot == input.Slot {
			validSlot = true
			break
		}
	}
	if !validSlot {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}

	save, err := o.loadSave(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(save, inventoryPhases...); err != nil {
		return nil, err
	}
	if _, ok := save.Player.Equipment.Get(input.Slot); !ok {
		return nil, errors.FailedPreconditionf("slot %s is empty", input.Slot)
	}

	save.Player = engine.UnequipItem(save.Player, input.Slot)

	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	return &session.UnequipItemOutput{SaveGame: save}, nil
}
