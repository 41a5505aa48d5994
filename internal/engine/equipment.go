package engine

import "github.com/KirkDiggler/rpg-story/internal/entities/game"

// CanEquipItem reports whether the item has a slot affinity and the player meets
// every stat requirement. There is no level or class gating.
func CanEquipItem(p *game.Player, item game.Item) bool {
	if item.SubType == "" {
		return false
	}
	if item.SubType != game.SubTypeRing {
		if _, ok := game.SlotFor(item.SubType); !ok {
			return false
		}
	}
	return p.Stats.Meets(item.Requirements)
}

// EquipItem moves item from the inventory into its slot. The whole inventory
// entry moves, so an equipped stack keeps its quantity. Rings fill ring1 then
// ring2; with both taken the ring1 occupant rotates back to the inventory. Any
// other displaced item is returned to the inventory as a new entry.
func EquipItem(p *game.Player, item game.Item) *game.Player {
	if !CanEquipItem(p, item) {
		return p
	}

	next := p.Clone()
	equipped := item.Clone()
	for i, entry := range next.Inventory {
		if entry.ID == item.ID {
			equipped = entry
			next.Inventory = append(next.Inventory[:i], next.Inventory[i+1:]...)
			break
		}
	}

	slot := slotForEquip(next.Equipment, item.SubType)
	if displaced, ok := next.Equipment[slot]; ok {
		next.Inventory = append(next.Inventory, displaced)
	}
	next.Equipment[slot] = equipped

	return next
}

func slotForEquip(equipment game.Equipment, subType game.SubType) game.Slot {
	if subType == game.SubTypeRing {
		if _, taken := equipment[game.SlotRing1]; !taken {
			return game.SlotRing1
		}
		if _, taken := equipment[game.SlotRing2]; !taken {
			return game.SlotRing2
		}
		return game.SlotRing1
	}
	slot, _ := game.SlotFor(subType)
	return slot
}

// UnequipItem returns the slot's item to the inventory as a new entry and clears
// the slot. Empty slots are a no-op.
func UnequipItem(p *game.Player, slot game.Slot) *game.Player {
	item, ok := p.Equipment[slot]
	if !ok {
		return p
	}

	next := p.Clone()
	delete(next.Equipment, slot)
	next.Inventory = append(next.Inventory, item)
	return next
}

// GetEquippedStats sums the effects of every equipped item, including the hearts
// and maxHearts pseudo stats. The result is derived and never stored.
func GetEquippedStats(equipment game.Equipment) game.Effects {
	bonus := game.Effects{}
	for _, slot := range game.AllSlots {
		item, ok := equipment[slot]
		if !ok {
			continue
		}
		for key, value := range item.Effects {
			bonus[key] += value
		}
	}
	return bonus
}

// TotalStats is the player's stats and hearts with equipment bonuses applied
type TotalStats struct {
	game.Stats
	Hearts    int `json:"hearts"`
	MaxHearts int `json:"maxHearts"`
}

// GetTotalPlayerStats adds equipment bonuses to the base stats. Bonus keys that
// name neither a stat nor a hearts field are ignored.
func GetTotalPlayerStats(p *game.Player) TotalStats {
	total := TotalStats{
		Stats:     p.Stats,
		Hearts:    p.Hearts,
		MaxHearts: p.MaxHearts,
	}

	for key, value := range GetEquippedStats(p.Equipment) {
		switch key {
		case game.EffectHearts:
			total.Hearts += value
		case game.EffectMaxHearts:
			total.MaxHearts += value
		default:
			total.Stats.Add(game.Stat(key), value)
		}
	}
	return total
}

// EquippableItems returns the inventory entries the player could equip now
func EquippableItems(p *game.Player) []game.Item {
	var items []game.Item
	for _, item := range p.Inventory {
		if CanEquipItem(p, item) {
			items = append(items, item)
		}
	}
	return items
}
