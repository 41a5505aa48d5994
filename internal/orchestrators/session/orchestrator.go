// Package session implements the session orchestrator: the rules of a run that sit
// between the pure engine and the stores
package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-story/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-story/internal/pkg/idgen"
	contentrepo "github.com/KirkDiggler/rpg-story/internal/repositories/content"
	"github.com/KirkDiggler/rpg-story/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-story/internal/services/session"
)

// Config holds the dependencies for the session orchestrator
type Config struct {
	SaveRepo    savegame.Repository
	ContentRepo contentrepo.Repository
	DiceService dice.Service
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock // Defaults to the real clock

	// Bundle the run reads content and shop stock from
	BundleID string

	// Shop opened when neither a choice nor its node names one
	DefaultShop string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.SaveRepo == nil {
		vb.RequiredField("SaveRepo")
	}
	if c.ContentRepo == nil {
		vb.RequiredField("ContentRepo")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	errors.ValidateRequired("BundleID", c.BundleID, vb)

	return vb.Build()
}

// Orchestrator implements the session.Service interface
type Orchestrator struct {
	saveRepo    savegame.Repository
	contentRepo contentrepo.Repository
	dice        dice.Service
	eventBus    events.EventBus
	idGen       idgen.Generator
	clock       clock.Clock
	bundleID    string
	defaultShop string
}

// New creates a new session orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	defaultShop := cfg.DefaultShop
	if defaultShop == "" {
		defaultShop = game.DefaultShopID
	}

	return &Orchestrator{
		saveRepo:    cfg.SaveRepo,
		contentRepo: cfg.ContentRepo,
		dice:        cfg.DiceService,
		eventBus:    cfg.EventBus,
		idGen:       cfg.IDGenerator,
		clock:       c,
		bundleID:    cfg.BundleID,
		defaultShop: defaultShop,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ session.Service = (*Orchestrator)(nil)

// loadSave fetches a save by id
func (o *Orchestrator) loadSave(ctx context.Context, saveID string) (*game.SaveGame, error) {
	if saveID == "" {
		return nil, errors.InvalidArgument("save ID is required")
	}

	out, err := o.saveRepo.Get(ctx, savegame.GetInput{ID: saveID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get save %s", saveID)
	}
	return out.SaveGame, nil
}

// loadContent fetches the bundle the orchestrator plays
func (o *Orchestrator) loadContent(ctx context.Context) (*game.GameData, error) {
	out, err := o.contentRepo.Get(ctx, contentrepo.GetInput{BundleID: o.bundleID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get content bundle %s", o.bundleID)
	}
	return out.Data, nil
}

// persist writes the save back
func (o *Orchestrator) persist(ctx context.Context, save *game.SaveGame) error {
	save.UpdatedAt = o.clock.Now()
	if _, err := o.saveRepo.Update(ctx, savegame.UpdateInput{SaveGame: save}); err != nil {
		return errors.Wrapf(err, "failed to update save %s", save.ID)
	}
	return nil
}

// requirePhase rejects operations that are not legal in the save's phase
func requirePhase(save *game.SaveGame, allowed ...game.Phase) error {
	for _, phase := range allowed {
		if save.Phase == phase {
			return nil
		}
	}

	switch save.Phase {
	case game.PhaseLevelUp:
		return errors.FailedPrecondition("a level-up allocation is pending")
	case game.PhaseClassSelection:
		return errors.FailedPrecondition("a class offer is pending")
	}
	return errors.FailedPreconditionf("not allowed while %s", save.Phase)
}

// kill removes a dead player's save and everything hanging off it
func (o *Orchestrator) kill(ctx context.Context, save *game.SaveGame) error {
	if _, err := o.saveRepo.Delete(ctx, savegame.DeleteInput{ID: save.ID}); err != nil {
		return errors.Wrapf(err, "failed to delete save %s", save.ID)
	}
	if _, err := o.dice.ClearSave(ctx, &dice.ClearSaveInput{SaveID: save.ID}); err != nil {
		slog.Warn("Failed to clear dice rolls of dead player",
			"save_id", save.ID,
			"error", err,
		)
	}

	slog.Info("Player died",
		"save_id", save.ID,
		"player", save.Player.Name,
		"story", save.Story,
		"node", save.Player.CurrentNode,
	)
	o.publish(ctx, EventPlayerDied, save)
	return nil
}
