package engine

import (
	"math"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

// DefaultSellRatio prices an item without a sellValue at half its value
const DefaultSellRatio = 0.5

// BuyPrice is floor(value * buyMultiplier)
func BuyPrice(item game.Item, shop game.Shop) int {
	return int(math.Floor(float64(item.Value) * shop.BuyMultiplier))
}

// SellPrice is floor(base * sellMultiplier) where base is the item's sellValue,
// or half its value when unset
func SellPrice(item game.Item, shop game.Shop) int {
	base := float64(item.Value) * DefaultSellRatio
	if item.SellValue != nil {
		base = float64(*item.SellValue)
	}
	return int(math.Floor(base * shop.SellMultiplier))
}

// CanBuy reports whether the player can afford the entry and it is in stock
func CanBuy(p *game.Player, entry game.ShopItem, shop game.Shop) bool {
	return entry.InStock() && p.Stats.Money >= BuyPrice(entry.Item, shop)
}

// Buy purchases one unit of itemID. On success it returns the new player, the
// shop with stock decremented when tracked, and true. Otherwise the inputs are
// returned unchanged with false.
func Buy(p *game.Player, shop game.Shop, itemID string) (*game.Player, game.Shop, bool) {
	idx := shop.Find(itemID)
	if idx == -1 {
		return p, shop, false
	}

	entry := shop.Items[idx]
	if !CanBuy(p, entry, shop) {
		return p, shop, false
	}

	next := p.Clone()
	next.Stats.Money -= BuyPrice(entry.Item, shop)
	next = AddItemToInventory(next, entry.Item)

	nextShop := shop.Clone()
	if stock := nextShop.Items[idx].Stock; stock != nil {
		*stock--
	}

	return next, nextShop, true
}

// Sell sells one unit of the first inventory entry with itemID. Quest items are
// not refused here; hiding them is the job of SellOffers.
func Sell(p *game.Player, shop game.Shop, itemID string) (*game.Player, bool) {
	for _, item := range p.Inventory {
		if item.ID != itemID {
			continue
		}
		next := p.Clone()
		next.Stats.Money += SellPrice(item, shop)
		return RemoveItemFromInventory(next, itemID, 1), true
	}
	return p, false
}

// BuyOffer is a shop entry priced for a player
type BuyOffer struct {
	Entry      game.ShopItem
	Price      int
	InStock    bool
	Affordable bool
}

// BuyOffers prices every entry in the shop in listing order
func BuyOffers(p *game.Player, shop game.Shop) []BuyOffer {
	offers := make([]BuyOffer, 0, len(shop.Items))
	for _, entry := range shop.Items {
		price := BuyPrice(entry.Item, shop)
		offers = append(offers, BuyOffer{
			Entry:      entry,
			Price:      price,
			InStock:    entry.InStock(),
			Affordable: p.Stats.Money >= price,
		})
	}
	return offers
}

// SellOffer is an inventory entry priced for sale
type SellOffer struct {
	Item  game.Item
	Price int
}

// SellOffers prices every non quest inventory entry in inventory order
func SellOffers(p *game.Player, shop game.Shop) []SellOffer {
	var offers []SellOffer
	for _, item := range p.Inventory {
		if item.Type == game.ItemTypeQuest {
			continue
		}
		offers = append(offers, SellOffer{Item: item, Price: SellPrice(item, shop)})
	}
	return offers
}
