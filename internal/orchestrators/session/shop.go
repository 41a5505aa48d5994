package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	contentrepo "github.com/KirkDiggler/rpg-story/internal/repositories/content"
	"github.com/KirkDiggler/rpg-story/internal/services/session"
)

// openShop loads a save that is shopping together with the bundle and its shop
func (o *Orchestrator) openShop(ctx context.Context, saveID string) (*game.SaveGame, *game.GameData, game.Shop, error) {
	save, err := o.loadSave(ctx, saveID)
	if err != nil {
		return nil, nil, game.Shop{}, err
	}
	if save.Phase != game.PhaseShopping {
		return nil, nil, game.Shop{}, errors.FailedPrecondition("no shop is open")
	}

	data, err := o.loadContent(ctx)
	if err != nil {
		return nil, nil, game.Shop{}, err
	}

	shop, ok := data.Shops[save.ShopID]
	if !ok {
		return nil, nil, game.Shop{}, errors.NotFoundf("shop %s not found", save.ShopID)
	}
	return save, data, shop, nil
}

// GetShop prices the open shop for the player
func (o *Orchestrator) GetShop(ctx context.Context, input *session.GetShopInput) (*session.GetShopOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, _, shop, err := o.openShop(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}

	return &session.GetShopOutput{
		Shop:       shop,
		Money:      save.Player.Stats.Money,
		BuyOffers:  engine.BuyOffers(save.Player, shop),
		SellOffers: engine.SellOffers(save.Player, shop),
	}, nil
}

// Buy purchases one unit from the open shop. Tracked stock is written back to the
// content bundle.
func (o *Orchestrator) Buy(ctx context.Context, input *session.BuyInput) (*session.BuyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	save, data, shop, err := o.openShop(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}

	idx := shop.Find(input.ItemID)
	if idx == -1 {
		return nil, errors.NotFoundf("shop %s does not sell %s", shop.ID, input.ItemID)
	}
	entry := shop.Items[idx]
	price := engine.BuyPrice(entry.Item, shop)

	if !entry.InStock() {
		return nil, errors.FailedPreconditionf("%s is out of stock", entry.Name)
	}
	if save.Player.Stats.Money < price {
		return nil, errors.FailedPreconditionf("not enough money for %s: need %d, have %d",
			entry.Name, price, save.Player.Stats.Money)
	}

	player, nextShop, ok := engine.Buy(save.Player, shop, input.ItemID)
	if !ok {
		return nil, errors.FailedPreconditionf("cannot buy %s", entry.Name)
	}

	if entry.Stock != nil {
		data.Shops[shop.ID] = nextShop
		if _, err := o.contentRepo.Save(ctx, contentrepo.SaveInput{BundleID: o.bundleID, Data: data}); err != nil {
			return nil, errors.Wrap(err, "failed to store shop stock")
		}
	}

	save.Player = player
	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	slog.Info("Item purchased",
		"save_id", save.ID,
		"shop", shop.ID,
		"item", input.ItemID,
		"price", price,
		"money", save.Player.Stats.Money,
	)
	o.publish(ctx, EventShopItemPurchased, save)

	return &session.BuyOutput{SaveGame: save, Price: price}, nil
}

// Sell sells one unit of an inventory item to the open shop. Quest items are refused.
func (o *Orchestrator) Sell(ctx context.Context, input *session.SellInput) (*session.SellOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID == "" {
		return nil, errors.InvalidArgument("item ID is required")
	}

	save, _, shop, err := o.openShop(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}

	item, err := findInventoryItem(save.Player, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Type == game.ItemTypeQuest {
		return nil, errors.FailedPreconditionf("%s cannot be sold", item.Name)
	}

	price := engine.SellPrice(item, shop)
	player, ok := engine.Sell(save.Player, shop, input.ItemID)
	if !ok {
		return nil, errors.FailedPreconditionf("cannot sell %s", item.Name)
	}

	save.Player = player
	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	slog.Info("Item sold",
		"save_id", save.ID,
		"shop", shop.ID,
		"item", input.ItemID,
		"price", price,
	)
	o.publish(ctx, EventShopItemSold, save)

	return &session.SellOutput{SaveGame: save, Price: price}, nil
}

// CloseShop leaves the shop and returns to the story
func (o *Orchestrator) CloseShop(ctx context.Context, input *session.CloseShopInput) (*session.CloseShopOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, err := o.loadSave(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}
	if save.Phase != game.PhaseShopping {
		return nil, errors.FailedPrecondition("no shop is open")
	}

	save.Phase = game.PhaseExploring
	save.ShopID = ""
	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	return &session.CloseShopOutput{SaveGame: save}, nil
}
