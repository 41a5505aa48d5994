// Package session defines the interface for playing a story run
package session

//go:generate mockgen -destination=mock/mock_service.go -package=sessionmock github.com/KirkDiggler/rpg-story/internal/services/session Service

import (
	"context"

	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

// Service defines the interface for session operations
type Service interface {
	// Catalog and run lifecycle
	GetCatalog(ctx context.Context, input *GetCatalogInput) (*GetCatalogOutput, error)
	NewGame(ctx context.Context, input *NewGameInput) (*NewGameOutput, error)
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)
	ListGames(ctx context.Context, input *ListGamesInput) (*ListGamesOutput, error)
	DeleteGame(ctx context.Context, input *DeleteGameInput) (*DeleteGameOutput, error)
	SelectStory(ctx context.Context, input *SelectStoryInput) (*SelectStoryOutput, error)

	// Story flow
	GetScene(ctx context.Context, input *GetSceneInput) (*GetSceneOutput, error)
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	SkipDice(ctx context.Context, input *SkipDiceInput) (*SkipDiceOutput, error)
	MakeChoice(ctx context.Context, input *MakeChoiceInput) (*MakeChoiceOutput, error)

	// Progression
	ApplyLevelUp(ctx context.Context, input *ApplyLevelUpInput) (*ApplyLevelUpOutput, error)
	SelectClass(ctx context.Context, input *SelectClassInput) (*SelectClassOutput, error)

	// Inventory and equipment
	GetInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)

	// Shop
	GetShop(ctx context.Context, input *GetShopInput) (*GetShopOutput, error)
	Buy(ctx context.Context, input *BuyInput) (*BuyOutput, error)
	Sell(ctx context.Context, input *SellInput) (*SellOutput, error)
	CloseShop(ctx context.Context, input *CloseShopInput) (*CloseShopOutput, error)
}

// Catalog and run lifecycle types

// GetCatalogInput defines the request for the creation options
type GetCatalogInput struct{}

// GetCatalogOutput lists what a new player can pick, sorted by name
type GetCatalogOutput struct {
	Races   []string
	Classes []string
	Stories []string
}

// NewGameInput defines the request for starting a run
type NewGameInput struct {
	Name   string
	Gender game.Gender
	Race   string
	Class  string

	// PreviousSaveID is discarded when set
	PreviousSaveID string
}

// NewGameOutput defines the response for starting a run
type NewGameOutput struct {
	SaveGame *game.SaveGame
}

// GetGameInput defines the request for loading a run
type GetGameInput struct {
	SaveID string
}

// GetGameOutput defines the response for loading a run
type GetGameOutput struct {
	SaveGame *game.SaveGame
}

// ListGamesInput defines the request for listing runs
type ListGamesInput struct{}

// ListGamesOutput defines the response for listing runs
type ListGamesOutput struct {
	SaveGames []*game.SaveGame
}

// DeleteGameInput defines the request for discarding a run
type DeleteGameInput struct {
	SaveID string
}

// DeleteGameOutput defines the response for discarding a run
type DeleteGameOutput struct{}

// SelectStoryInput defines the request for entering a story
type SelectStoryInput struct {
	SaveID string
	Story  string
}

// SelectStoryOutput defines the response for entering a story
type SelectStoryOutput struct {
	SaveGame *game.SaveGame
}

// Story flow types

// GetSceneInput defines the request for rendering the current node
type GetSceneInput struct {
	SaveID string
}

// GetSceneOutput is the current node as the player sees it
type GetSceneOutput struct {
	SaveGame *game.SaveGame
	Node     string

	// Text with player variables substituted
	Text     string
	Battle   bool
	IsEnding bool

	// DeadEnd is set when the current node does not exist in the story
	DeadEnd bool

	// Dice phase of the visit
	DiceOffered bool
	Advantage   bool
	Outcome     game.DiceOutcome

	Choices []engine.VisibleChoice
}

// RollDiceInput defines the request for rolling on the current node
type RollDiceInput struct {
	SaveID string
}

// RollDiceOutput defines the response for rolling on the current node
type RollDiceOutput struct {
	Outcome   game.DiceOutcome
	Advantage bool
}

// SkipDiceInput defines the request for declining to roll on the current node
type SkipDiceInput struct {
	SaveID string
}

// SkipDiceOutput defines the response for declining to roll
type SkipDiceOutput struct {
	Outcome game.DiceOutcome
}

// MakeChoiceInput defines the request for taking a choice
type MakeChoiceInput struct {
	SaveID string

	// Index into the node's choices, as reported by engine.VisibleChoice
	ChoiceIndex int
}

// MakeChoiceOutput defines the response for taking a choice
type MakeChoiceOutput struct {
	// SaveGame is nil when the player died; the save no longer exists
	SaveGame   *game.SaveGame
	Transition game.Transition

	Died          bool
	LeveledUp     bool
	EndingReached bool
}

// Progression types

// ApplyLevelUpInput defines the request for spending pending stat points
type ApplyLevelUpInput struct {
	SaveID     string
	Allocation game.StatMap
}

// ApplyLevelUpOutput defines the response for spending stat points
type ApplyLevelUpOutput struct {
	SaveGame *game.SaveGame

	// OfferedClasses is set when the new level unlocks a class choice
	OfferedClasses []string

	// LeveledUp is set when remaining XP granted another level
	LeveledUp bool
}

// SelectClassInput defines the request for answering a class offer
type SelectClassInput struct {
	SaveID string

	// Class to add; empty declines the offer
	Class string
}

// SelectClassOutput defines the response for answering a class offer
type SelectClassOutput struct {
	SaveGame  *game.SaveGame
	LeveledUp bool
}

// Inventory and equipment types

// GetInventoryInput defines the request for the inventory view
type GetInventoryInput struct {
	SaveID string
}

// GetInventoryOutput is the inventory and equipment of the player
type GetInventoryOutput struct {
	Groups     []engine.ItemGroup
	Equipment  game.Equipment
	Equippable []game.Item
	Totals     engine.TotalStats
}

// UseItemInput defines the request for consuming an item
type UseItemInput struct {
	SaveID string
	ItemID string
}

// UseItemOutput defines the response for consuming an item
type UseItemOutput struct {
	// SaveGame is nil when the item killed the player
	SaveGame *game.SaveGame
	Died     bool
}

// EquipItemInput defines the request for equipping an inventory item
type EquipItemInput struct {
	SaveID string
	ItemID string
}

// EquipItemOutput defines the response for equipping an item
type EquipItemOutput struct {
	SaveGame *game.SaveGame
}

// UnequipItemInput defines the request for emptying an equipment slot
type UnequipItemInput struct {
	SaveID string
	Slot   game.Slot
}

// UnequipItemOutput defines the response for emptying a slot
type UnequipItemOutput struct {
	SaveGame *game.SaveGame
}

// Shop types

// GetShopInput defines the request for the open shop
type GetShopInput struct {
	SaveID string
}

// GetShopOutput is the open shop as the player sees it
type GetShopOutput struct {
	Shop       game.Shop
	Money      int
	BuyOffers  []engine.BuyOffer
	SellOffers []engine.SellOffer
}

// BuyInput defines the request for buying from the open shop
type BuyInput struct {
	SaveID string
	ItemID string
}

// BuyOutput defines the response for a purchase
type BuyOutput struct {
	SaveGame *game.SaveGame
	Price    int
}

// SellInput defines the request for selling to the open shop
type SellInput struct {
	SaveID string
	ItemID string
}

// SellOutput defines the response for a sale
type SellOutput struct {
	SaveGame *game.SaveGame
	Price    int
}

// CloseShopInput defines the request for leaving the shop
type CloseShopInput struct {
	SaveID string
}

// CloseShopOutput defines the response for leaving the shop
type CloseShopOutput struct {
	SaveGame *game.SaveGame
}
