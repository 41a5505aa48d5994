package testutils

import (
	"time"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

// Fixture names
const (
	TestStory      = "Test Trail"
	TestPlayerName = "Thorin"
)

// TestTime is the creation time used by fixtures
var TestTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func intPtr(v int) *int {
	return &v
}

// CreateTestItems returns a small item catalog
func CreateTestItems() map[string]game.Item {
	return map[string]game.Item{
		"health_potion": {
			ID:          "health_potion",
			Name:        "Health Potion",
			Type:        game.ItemTypeConsumable,
			SubType:     game.SubTypePotion,
			Description: "Restores 2 hearts when consumed",
			Effects:     game.Effects{game.EffectHearts: 2},
			Value:       50,
			SellValue:   intPtr(25),
			Stackable:   true,
			Quantity:    1,
			Rarity:      game.RarityCommon,
		},
		"iron_sword": {
			ID:          "iron_sword",
			Name:        "Iron Sword",
			Type:        game.ItemTypeWeapon,
			SubType:     game.SubTypeMainWeapon,
			Description: "A sturdy iron blade",
			Effects:     game.Effects{"strength": 2},
			Value:       100,
			SellValue:   intPtr(50),
			Rarity:      game.RarityCommon,
		},
		"silver_coin": {
			ID:          "silver_coin",
			Name:        "Silver Coin",
			Type:        game.ItemTypeQuest,
			Description: "An ancient coin",
			Value:       25,
			SellValue:   intPtr(12),
		},
	}
}

// CreateTestGameData returns a compact bundle with one story exercising every
// kind of choice
func CreateTestGameData() *game.GameData {
	items := CreateTestItems()

	return &game.GameData{
		Classes: map[string]game.StatMap{
			"Warrior": {game.StatStrength: 3, game.StatVitality: 2, game.StatReputation: 1, game.StatMoney: 50},
			"Mage":    {game.StatMagic: 3, game.StatVitality: 1, game.StatLuck: 1, game.StatMoney: 100},
			"Knight":  {game.StatStrength: 4, game.StatVitality: 3, game.StatReputation: 2, game.StatMoney: 40},
		},
		Races: map[string]game.StatMap{
			"Human": {game.StatStrength: 1, game.StatMagic: 1, game.StatVitality: 1, game.StatLuck: 1, game.StatReputation: 1, game.StatMoney: 25},
			"Elf":   {game.StatMagic: 2, game.StatLuck: 2, game.StatReputation: 1, game.StatMoney: 50},
		},
		ClassRequirements: map[string]game.ClassRequirement{
			"Knight": {
				RequiredStats: game.StatMap{game.StatStrength: 3, game.StatVitality: 2, game.StatReputation: 1},
				RequiredLevel: 5,
				Description:   "A noble warrior",
			},
		},
		Items: items,
		Shops: map[string]game.Shop{
			game.DefaultShopID: {
				ID:             game.DefaultShopID,
				Name:           "General Store",
				BuyMultiplier:  1.0,
				SellMultiplier: 0.5,
				Items: []game.ShopItem{
					{Item: items["health_potion"], Stock: intPtr(2)},
					{Item: items["iron_sword"], Stock: intPtr(1)},
				},
			},
		},
		Stories: map[string]game.Story{
			TestStory: {
				game.EntryNode: {
					Text: "{player_name} the {player_race} stands at a fork.",
					Choices: []game.Choice{
						{Text: "Face the wolf", NextNode: "wolf", Effects: game.Effects{game.EffectXP: 50}},
						{Text: "Visit the store", NextNode: game.ShopInterface},
						{Text: "Jump into the pit", NextNode: "pit", Effects: game.Effects{game.EffectHearts: -100}},
						{
							Text:        "Open the chest",
							NextNode:    "vault",
							Effects:     game.Effects{game.EffectXP: 100},
							ItemRewards: []string{"health_potion", "silver_coin"},
						},
						{Text: "Follow the lucky path", NextNode: "vault", HiddenUnlessLuck: 9},
					},
				},
				"wolf": {
					Text:            "A wolf blocks the road.",
					Battle:          true,
					DiceRequirement: 3,
					Choices: []game.Choice{
						{Text: "Strike", NextNode: "clearing", DiceRequirement: 4, Effects: game.Effects{game.EffectXP: 20}},
						{Text: "Flee", NextNode: game.EntryNode},
					},
				},
				"vault": {
					Text: "Dusty shelves.",
					Choices: []game.Choice{
						{Text: "Into the unknown", NextNode: "nowhere"},
						{Text: "Back", NextNode: game.EntryNode},
					},
				},
				"pit": {
					Text:    "Darkness.",
					Choices: []game.Choice{{Text: "Climb", NextNode: game.EntryNode}},
				},
				"clearing": {
					Text:     "The wolf is gone.",
					IsEnding: true,
					Choices:  []game.Choice{{Text: "Begin again", NextNode: game.EntryNode}},
				},
			},
		},
	}
}

// CreateTestPlayer returns a level 1 Human Warrior at the entry node
func CreateTestPlayer() *game.Player {
	return &game.Player{
		Name:        TestPlayerName,
		Gender:      game.GenderMale,
		Race:        "Human",
		Classes:     []game.PlayerClass{{Name: "Warrior", Level: 1, UnlockedAt: 1}},
		ActiveClass: "Warrior",
		Stats: game.Stats{
			Strength:   5,
			Magic:      2,
			Vitality:   4,
			Luck:       2,
			Reputation: 3,
			Money:      95,
		},
		Level:       1,
		Hearts:      8,
		MaxHearts:   8,
		Inventory:   []game.Item{},
		Equipment:   game.Equipment{},
		CurrentNode: game.EntryNode,
	}
}

// CreateTestSaveGame returns a save exploring the test story
func CreateTestSaveGame(id string) *game.SaveGame {
	return &game.SaveGame{
		ID:        id,
		Player:    CreateTestPlayer(),
		Story:     TestStory,
		Phase:     game.PhaseExploring,
		CreatedAt: TestTime,
		UpdatedAt: TestTime,
	}
}
