package engine

import "github.com/KirkDiggler/rpg-story/internal/entities/game"

// AddItemToInventory adds a copy of item. Stackable items merge into the first
// entry with the same id; everything else is appended as its own entry.
func AddItemToInventory(p *game.Player, item game.Item) *game.Player {
	next := p.Clone()

	if item.Stackable {
		for i := range next.Inventory {
			if next.Inventory[i].ID == item.ID {
				next.Inventory[i].Quantity = next.Inventory[i].Count() + item.Count()
				return next
			}
		}
	}

	next.Inventory = append(next.Inventory, item.Clone())
	return next
}

// RemoveItemFromInventory removes quantity units of the first entry with itemID.
// A stack larger than quantity is decremented; otherwise the entry is removed.
func RemoveItemFromInventory(p *game.Player, itemID string, quantity int) *game.Player {
	idx := -1
	for i, item := range p.Inventory {
		if item.ID == itemID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return p
	}

	next := p.Clone()
	entry := &next.Inventory[idx]
	if entry.Stackable && entry.Quantity > quantity {
		entry.Quantity -= quantity
		return next
	}

	next.Inventory = append(next.Inventory[:idx], next.Inventory[idx+1:]...)
	return next
}

// UseItem consumes one unit of a consumable and applies its effects. Non
// consumables are a no-op.
func UseItem(p *game.Player, item game.Item) *game.Player {
	if item.Type != game.ItemTypeConsumable {
		return p
	}

	next := p.Clone()
	vitalityChanged := false
	for _, stat := range game.AllStats {
		if delta, ok := item.Effects.Stat(stat); ok {
			next.Stats.Add(stat, delta)
			if stat == game.StatVitality && delta != 0 {
				vitalityChanged = true
			}
		}
	}
	if vitalityChanged {
		next.MaxHearts = maxHeartsFor(next.Stats.Vitality)
	}
	if delta, ok := item.Effects[game.EffectMaxHearts]; ok && delta != 0 {
		next.MaxHearts = max(1, next.MaxHearts+delta)
	}
	next.Hearts = clampHearts(next.Hearts+item.Effects[game.EffectHearts], next.MaxHearts)

	return RemoveItemFromInventory(next, item.ID, 1)
}

// ItemGroup is the inventory entries of a single item type
type ItemGroup struct {
	Type  game.ItemType
	Items []game.Item
}

// GroupInventory groups inventory entries by item type. Groups follow the
// canonical type order and keep acquisition order inside each group; empty
// groups are omitted.
func GroupInventory(p *game.Player) []ItemGroup {
	byType := make(map[game.ItemType][]game.Item)
	var unknown []game.Item
	for _, item := range p.Inventory {
		switch item.Type {
		case game.ItemTypeWeapon, game.ItemTypeArmor, game.ItemTypeAccessory,
			game.ItemTypeConsumable, game.ItemTypeQuest:
			byType[item.Type] = append(byType[item.Type], item)
		default:
			unknown = append(unknown, item)
		}
	}

	var groups []ItemGroup
	for _, t := range game.AllItemTypes {
		if items := byType[t]; len(items) > 0 {
			groups = append(groups, ItemGroup{Type: t, Items: items})
		}
	}
	if len(unknown) > 0 {
		groups = append(groups, ItemGroup{Type: "", Items: unknown})
	}
	return groups
}
