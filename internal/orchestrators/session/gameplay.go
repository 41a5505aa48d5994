package session

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/orchestrators/dice"
	"github.com/KirkDiggler/rpg-story/internal/services/session"
)

// diceOffered reports whether a node has a dice phase: battles always do, and so
// does any node whose choices are dice gated
func diceOffered(node game.StoryNode) bool {
	return node.Battle || engine.NeedsDice(node)
}

// currentNode resolves the node the player stands on. ok is false for a dead end.
func currentNode(save *game.SaveGame, data *game.GameData) (game.StoryNode, bool, error) {
	if save.Story == "" {
		return game.StoryNode{}, false, errors.FailedPrecondition("no story selected")
	}

	story, ok := data.Stories[save.Story]
	if !ok {
		return game.StoryNode{}, false, errors.NotFoundf("story %s not found", save.Story)
	}

	node, ok := story[save.Player.CurrentNode]
	return node, ok, nil
}

// GetScene renders the current node for the player
func (o *Orchestrator) GetScene(ctx context.Context, input *session.GetSceneInput) (*session.GetSceneOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, err := o.loadSave(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}

	data, err := o.loadContent(ctx)
	if err != nil {
		return nil, err
	}

	node, ok, err := currentNode(save, data)
	if err != nil {
		return nil, err
	}

	out := &session.GetSceneOutput{
		SaveGame: save,
		Node:     save.Player.CurrentNode,
		Outcome:  game.NotRolled(),
	}

	if !ok {
		slog.Warn("Player is on a missing node",
			"save_id", save.ID,
			"story", save.Story,
			"node", save.Player.CurrentNode,
		)
		out.DeadEnd = true
		return out, nil
	}

	out.Text = engine.ReplaceVariables(node.Text, save.Player)
	out.Battle = node.Battle
	out.IsEnding = node.IsEnding
	out.DiceOffered = diceOffered(node)
	out.Advantage = engine.HasLuckAdvantage(save.Player, node)

	if out.DiceOffered {
		outcomeOutput, err := o.dice.GetNodeOutcome(ctx, &dice.GetNodeOutcomeInput{
			SaveID: save.ID,
			Story:  save.Story,
			Node:   save.Player.CurrentNode,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to get dice outcome")
		}
		out.Outcome = outcomeOutput.Outcome
	}

	out.Choices = engine.VisibleChoices(node, save.Player, out.Outcome)

	return out, nil
}

// diceNode loads the save and checks the current node has a dice phase
func (o *Orchestrator) diceNode(ctx context.Context, saveID string) (*game.SaveGame, game.StoryNode, error) {
	save, err := o.loadSave(ctx, saveID)
	if err != nil {
		return nil, game.StoryNode{}, err
	}
	if err := requirePhase(save, game.PhaseExploring); err != nil {
		return nil, game.StoryNode{}, err
	}

	data, err := o.loadContent(ctx)
	if err != nil {
		return nil, game.StoryNode{}, err
	}

	node, ok, err := currentNode(save, data)
	if err != nil {
		return nil, game.StoryNode{}, err
	}
	if !ok {
		return nil, game.StoryNode{}, errors.FailedPreconditionf("node %s does not exist", save.Player.CurrentNode)
	}
	if !diceOffered(node) {
		return nil, game.StoryNode{}, errors.FailedPreconditionf("node %s has no dice phase", save.Player.CurrentNode)
	}

	return save, node, nil
}

// RollDice resolves the dice phase of the current node with a roll
func (o *Orchestrator) RollDice(ctx context.Context, input *session.RollDiceInput) (*session.RollDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, node, err := o.diceNode(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}

	rollOutput, err := o.dice.RollForNode(ctx, &dice.RollForNodeInput{
		SaveID:    save.ID,
		Story:     save.Story,
		Node:      save.Player.CurrentNode,
		Advantage: engine.HasLuckAdvantage(save.Player, node),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	return &session.RollDiceOutput{
		Outcome:   rollOutput.Outcome,
		Advantage: rollOutput.Advantage,
	}, nil
}

// SkipDice resolves the dice phase of the current node without rolling
func (o *Orchestrator) SkipDice(ctx context.Context, input *session.SkipDiceInput) (*session.SkipDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, _, err := o.diceNode(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}

	skipOutput, err := o.dice.SkipForNode(ctx, &dice.SkipForNodeInput{
		SaveID: save.ID,
		Story:  save.Story,
		Node:   save.Player.CurrentNode,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to skip dice")
	}

	return &session.SkipDiceOutput{Outcome: skipOutput.Outcome}, nil
}

// MakeChoice takes a choice on the current node. Effects are applied, then death
// is checked, then the player moves and a due level-up is granted. A choice into
// the shop interface opens the shop without applying effects or moving.
func (o *Orchestrator) MakeChoice(ctx context.Context, input *session.MakeChoiceInput) (*session.MakeChoiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	save, err := o.loadSave(ctx, input.SaveID)
	if err != nil {
		return nil, err
	}
	if err := requirePhase(save, game.PhaseExploring); err != nil {
		return nil, err
	}

	data, err := o.loadContent(ctx)
	if err != nil {
		return nil, err
	}

	node, ok, err := currentNode(save, data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.FailedPreconditionf("node %s does not exist", save.Player.CurrentNode)
	}
	if input.ChoiceIndex < 0 || input.ChoiceIndex >= len(node.Choices) {
		return nil, errors.InvalidArgumentf("choice index %d out of range", input.ChoiceIndex)
	}
	choice := node.Choices[input.ChoiceIndex]

	outcome := game.NotRolled()
	if diceOffered(node) {
		outcomeOutput, err := o.dice.GetNodeOutcome(ctx, &dice.GetNodeOutcomeInput{
			SaveID: save.ID,
			Story:  save.Story,
			Node:   save.Player.CurrentNode,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to get dice outcome")
		}
		outcome = outcomeOutput.Outcome
	}

	if !engine.CanMakeChoice(choice, save.Player, outcome) {
		return nil, errors.FailedPreconditionf("choice %d is not available", input.ChoiceIndex)
	}

	transition := engine.ResolveTransition(choice, node, o.defaultShop)
	out := &session.MakeChoiceOutput{Transition: transition}

	if transition.Kind == game.TransitionOpenShop {
		if _, ok := data.Shops[transition.ShopID]; !ok {
			return nil, errors.NotFoundf("shop %s not found", transition.ShopID)
		}

		save.Phase = game.PhaseShopping
		save.ShopID = transition.ShopID
		if err := o.persist(ctx, save); err != nil {
			return nil, err
		}

		slog.Debug("Shop opened",
			"save_id", save.ID,
			"shop", transition.ShopID,
		)
		out.SaveGame = save
		return out, nil
	}

	previousNode := save.Player.CurrentNode
	save.Player = engine.ApplyChoiceEffects(save.Player, choice, data.Items)

	if save.Player.IsDead() {
		if err := o.kill(ctx, save); err != nil {
			return nil, err
		}
		out.Died = true
		return out, nil
	}

	if _, err := o.dice.ClearNode(ctx, &dice.ClearNodeInput{
		SaveID: save.ID,
		Story:  save.Story,
		Node:   previousNode,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to end node visit")
	}

	save.Player.CurrentNode = transition.Node
	out.LeveledUp = o.grantLevelIfDue(ctx, save)

	story := data.Stories[save.Story]
	next, exists := story[transition.Node]
	if !exists {
		slog.Warn("Choice leads to a missing node",
			"save_id", save.ID,
			"story", save.Story,
			"from", previousNode,
			"to", transition.Node,
		)
	}

	if err := o.persist(ctx, save); err != nil {
		return nil, err
	}

	if exists && next.IsEnding {
		out.EndingReached = true
		slog.Info("Story ending reached",
			"save_id", save.ID,
			"story", save.Story,
			"node", transition.Node,
		)
		o.publish(ctx, EventStoryEndingReached, save)
	}

	out.SaveGame = save
	return out, nil
}
