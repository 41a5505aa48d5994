package engine_test

import (
	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

func newTestPlayer() *game.Player {
	return engine.CreatePlayer("Aria", game.GenderFemale, "Human", "Warrior",
		game.StatMap{game.StatStrength: 1},
		game.StatMap{game.StatStrength: 3, game.StatVitality: 2, game.StatMoney: 50},
	)
}

func intPtr(v int) *int {
	return &v
}

var (
	testSword = game.Item{
		ID:      "iron_sword",
		Name:    "Iron Sword",
		Type:    game.ItemTypeWeapon,
		SubType: game.SubTypeMainWeapon,
		Effects: game.Effects{"strength": 2},
		Value:   50,
	}
	testPotion = game.Item{
		ID:        "health_potion",
		Name:      "Health Potion",
		Type:      game.ItemTypeConsumable,
		SubType:   game.SubTypePotion,
		Effects:   game.Effects{game.EffectHearts: 2},
		Value:     25,
		Stackable: true,
		Quantity:  1,
	}
	testRingA = game.Item{
		ID:      "power_ring",
		Name:    "Power Ring",
		Type:    game.ItemTypeAccessory,
		SubType: game.SubTypeRing,
		Effects: game.Effects{"strength": 1, "magic": 1},
		Value:   150,
	}
	testRingB = game.Item{
		ID:      "luck_ring",
		Name:    "Luck Ring",
		Type:    game.ItemTypeAccessory,
		SubType: game.SubTypeRing,
		Effects: game.Effects{"luck": 1},
		Value:   120,
	}
	testRingC = game.Item{
		ID:      "guard_ring",
		Name:    "Guard Ring",
		Type:    game.ItemTypeAccessory,
		SubType: game.SubTypeRing,
		Effects: game.Effects{game.EffectMaxHearts: 1},
		Value:   90,
	}
	testArmor = game.Item{
		ID:           "leather_armor",
		Name:         "Leather Armor",
		Type:         game.ItemTypeArmor,
		SubType:      game.SubTypeBody,
		Effects:      game.Effects{"vitality": 1, game.EffectMaxHearts: 1},
		Requirements: game.StatMap{game.StatStrength: 2},
		Value:        40,
	}
	testCoin = game.Item{
		ID:    "silver_coin",
		Name:  "Silver Coin",
		Type:  game.ItemTypeQuest,
		Value: 10,
	}
)
