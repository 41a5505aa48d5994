package session

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-story/internal/repositories/savegame"
	"github.com/KirkDiggler/rpg-story/internal/services/session"
)

func sortedKeys(m map[string]game.StatMap) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetCatalog lists the races, classes and stories of the bundle
func (o *Orchestrator) GetCatalog(ctx context.Context, _ *session.GetCatalogInput) (*session.GetCatalogOutput, error) {
	data, err := o.loadContent(ctx)
	if err != nil {
		return nil, err
	}

	return &session.GetCatalogOutput{
		Races:   sortedKeys(data.Races),
		Classes: sortedKeys(data.Classes),
		Stories: data.StoryNames(),
	}, nil
}

// NewGame creates a player and a save waiting for a story
func (o *Orchestrator) NewGame(ctx context.Context, input *session.NewGameInput) (*session.NewGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("race", input.Race, vb)
	errors.ValidateRequired("class", input.Class, vb)
	if !input.Gender.IsValid() {
		vb.InvalidField("gender", string(input.Gender))
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	data, err := o.loadContent(ctx)
	if err != nil {
		return nil, err
	}

	raceStats, ok := data.Races[input.Race]
	if !ok {
		return nil, errors.NotFoundf("race %s not found", input.Race)
	}
	classStats, ok := data.Classes[input.Class]
	if !ok {
		return nil, errors.NotFoundf("class %s not found", input.Class)
	}

	if input.PreviousSaveID != "" {
		if _, err := o.DeleteGame(ctx, &session.DeleteGameInput{SaveID: input.PreviousSaveID}); err != nil && !errors.IsNotFound(err) {
			return nil, err
		}
	}

	now := o.clock.Now()
	save := &game.SaveGame{
		ID:        o.idGen.Generate(),
		Player:    engine.CreatePlayer(input.Name, input.Gender, input.Race, input.Class, raceStats, classStats),
		Phase:     game.PhaseStorySelection,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := o.saveRepo.Create(ctx, savegame.CreateInput{SaveGame: save}); err != nil {
		return nil, errors.Wrap(err, "failed to create save")
	}

	slog.Info("Player created",
		"save_id", save.ID,
		"name", save.Player.Name,
		"race", save.Player.Race,
		"class", save.Player.ActiveClass,
		"max_hearts", save.Player.MaxHearts,
	)

	return &session.NewGameOutput{SaveGame: save}, nil
}

// GetGame loads a save
func (o *Orchestrator) GetGame(ctx context.Context, input *session.GetGameInput) (*session.GetGameOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, err := o.loadSave(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}
	return &session.GetGameOutput{SaveGame: save}, nil
}

// ListGames returns every stored save
func (o *Orchestrator) ListGames(ctx context.Context, _ *session.ListGamesInput) (*session.ListGamesOutput, error) {
	listOutput, err := o.saveRepo.List(ctx, savegame.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list saves")
	}

	saves := make([]*game.SaveGame, 0, len(listOutput.IDs))
	for _, id := range listOutput.IDs {
		save, err := o.loadSave(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		saves = append(saves, save)
	}

	return &session.ListGamesOutput{SaveGames: saves}, nil
}

// DeleteGame discards a save and its dice rolls
func (o *Orchestrator) DeleteGame(ctx context.Context, input *session.DeleteGameInput) (*session.DeleteGameOutput, error) {
	if input == nil || input.SaveID == "" {
		return nil, errors.InvalidArgument("save ID is required")
	}

	if _, err := o.saveRepo.Delete(ctx, savegame.DeleteInput{ID: input.SaveID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete save %s", input.SaveID)
	}
	if _, err := o.dice.ClearSave(ctx, &dice.ClearSaveInput{SaveID: input.SaveID}); err != nil {
		return nil, errors.Wrapf(err, "failed to clear dice rolls of save %s", input.SaveID)
	}

	slog.Info("Save discarded", "save_id", input.SaveID)

	return &session.DeleteGameOutput{}, nil
}

// SelectStory enters a story at its intro node
func (o *Orchestrator) SelectStory(ctx context.Context, input *session.SelectStoryInput) (*session.SelectStoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Story == "" {
		return nil, errors.InvalidArgument("story is required")
	}

	save, err := o.loadSave(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(save, game.PhaseStorySelection, game.PhaseExploring); err != nil {
		return nil, err
	}

	data, err := o.loadContent(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := data.Stories[input.Story]; !ok {
		return nil, errors.NotFoundf("story %s not found", input.Story)
	}

	if _, err := o.dice.ClearSave(ctx, &dice.ClearSaveInput{SaveID: save.ID}); err != nil {
		return nil, errors.Wrap(err, "failed to clear dice rolls")
	}

	save.Story = input.Story
	save.Player.CurrentNode = game.EntryNode
	save.Phase = game.PhaseExploring
	save.ShopID = ""

	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	slog.Info("Story selected",
		"save_id", save.ID,
		"story", save.Story,
	)

	return &session.SelectStoryOutput{SaveGame: save}, nil
}
