package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-story/internal/config"
	"github.com/KirkDiggler/rpg-story/internal/content"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	diceorch "github.com/KirkDiggler/rpg-story/internal/orchestrators/dice"
	sessionorch "github.com/KirkDiggler/rpg-story/internal/orchestrators/session"
	"github.com/KirkDiggler/rpg-story/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-story/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-story/internal/redis"
	contentrepo "github.com/KirkDiggler/rpg-story/internal/repositories/content"
	dicesession "github.com/KirkDiggler/rpg-story/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-story/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-story/internal/services/session"
)

// app is the wired set of stores and services one command runs against
type app struct {
	cfg     *config.Config
	content contentrepo.Repository
	dice    diceorch.Service
	session session.Service
	bus     events.EventBus

	close func()
}

// newApp builds the stores selected by cfg, seeds the content bundle when none is
// stored and wires the orchestrators on top
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	a := &app{cfg: cfg, close: func() {}}

	var (
		saveRepo savegame.Repository
		diceRepo dicesession.Repository
	)
	if cfg.UseRedis() {
		client, err := redis.Connect(ctx, cfg.RedisAddr, &redis.Options{
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to connect to redis")
		}
		a.close = func() { _ = client.Close() }

		if saveRepo, err = savegame.NewRedis(&savegame.RedisConfig{Client: client}); err != nil {
			a.close()
			return nil, err
		}
		if a.content, err = contentrepo.NewRedis(&contentrepo.RedisConfig{Client: client}); err != nil {
			a.close()
			return nil, err
		}
		if diceRepo, err = dicesession.NewRedisRepository(&dicesession.Config{Client: client, Clock: clock.New()}); err != nil {
			a.close()
			return nil, err
		}
		slog.Debug("Using redis stores", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
	} else {
		saveRepo = savegame.NewInMemory()
		a.content = contentrepo.NewInMemory()
		diceRepo = dicesession.NewInMemory(clock.New())
		slog.Debug("Using in-memory stores")
	}

	if err := seedContent(ctx, a.content, cfg); err != nil {
		a.close()
		return nil, err
	}

	diceService, err := diceorch.NewOrchestrator(&diceorch.Config{
		DiceSessionRepo: diceRepo,
		Roller:          dice.DefaultRoller,
	})
	if err != nil {
		a.close()
		return nil, err
	}
	a.dice = diceService

	a.bus = events.NewBus()
	sessionService, err := sessionorch.New(&sessionorch.Config{
		SaveRepo:    saveRepo,
		ContentRepo: a.content,
		DiceService: diceService,
		EventBus:    a.bus,
		IDGenerator: idgen.NewUUID("save"),
		BundleID:    cfg.BundleID,
		DefaultShop: cfg.DefaultShop,
	})
	if err != nil {
		a.close()
		return nil, err
	}
	a.session = sessionService

	return a, nil
}

// seedContent stores the configured bundle, or the embedded one, when the bundle
// id is empty in the store
func seedContent(ctx context.Context, repo contentrepo.Repository, cfg *config.Config) error {
	_, err := repo.Get(ctx, contentrepo.GetInput{BundleID: cfg.BundleID})
	if err == nil {
		return nil
	}
	if !errors.IsNotFound(err) {
		return errors.Wrapf(err, "failed to check content bundle %s", cfg.BundleID)
	}

	var data *game.GameData
	source := "embedded"
	if cfg.ContentFile != "" {
		source = cfg.ContentFile
		data, err = content.Load(cfg.ContentFile)
	} else {
		data, err = content.Default()
	}
	if err != nil {
		return err
	}

	if _, err := repo.Save(ctx, contentrepo.SaveInput{BundleID: cfg.BundleID, Data: data}); err != nil {
		return errors.Wrapf(err, "failed to seed content bundle %s", cfg.BundleID)
	}

	slog.Info("Seeded content bundle",
		"bundle_id", cfg.BundleID,
		"source", source,
		"stories", len(data.Stories),
	)
	return nil
}

var banners = map[string]string{
	sessionorch.EventPlayerLeveledUp:     "*** LEVEL UP ***",
	sessionorch.EventPlayerClassUnlocked: "*** NEW CLASS UNLOCKED ***",
	sessionorch.EventPlayerDied:          "*** YOU HAVE DIED ***",
	sessionorch.EventShopItemPurchased:   "* purchased *",
	sessionorch.EventShopItemSold:        "* sold *",
	sessionorch.EventStoryEndingReached:  "*** THE END ***",
}

// subscribeBanners prints a banner to w for every game event
func subscribeBanners(bus events.EventBus, w io.Writer) {
	for eventType, banner := range banners {
		bus.SubscribeFunc(eventType, 0, func(_ context.Context, _ events.Event) error {
			_, err := fmt.Fprintln(w, banner)
			return err
		})
	}
}
