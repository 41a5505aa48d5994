// Package dice implements the dice orchestrator: one roll or skip per node visit
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-story/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-story/internal/engine"
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	dicesession "github.com/KirkDiggler/rpg-story/internal/repositories/dice_session"
)

const maxNotationDice = 100

var (
	// Simple dice notation like "2d6", "1d20", "3d8+2"
	diceNotationRegex = regexp.MustCompile(`^(\d+)d(\d+)([+-]\d+)?$`)
)

// Service defines the interface for dice operations
type Service interface {
	// Node dice phase, resolved at most once per visit
	RollForNode(ctx context.Context, input *RollForNodeInput) (*RollForNodeOutput, error)
	SkipForNode(ctx context.Context, input *SkipForNodeInput) (*SkipForNodeOutput, error)
	GetNodeOutcome(ctx context.Context, input *GetNodeOutcomeInput) (*GetNodeOutcomeOutput, error)
	ClearNode(ctx context.Context, input *ClearNodeInput) (*ClearNodeOutput, error)
	ClearSave(ctx context.Context, input *ClearSaveInput) (*ClearSaveOutput, error)

	// Free-form rolling
	RollNotation(ctx context.Context, input *RollNotationInput) (*RollNotationOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	Roller          dice.Roller
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	roller          dice.Roller
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		roller:          cfg.Roller,
	}, nil
}

// NodeKey qualifies a node key with its story
func NodeKey(story, node string) string {
	return story + "/" + node
}

func validateVisit(saveID, story, node string) error {
	vb := errors.NewValidationBuilder()
	if saveID == "" {
		vb.RequiredField("SaveID")
	}
	if story == "" {
		vb.RequiredField("Story")
	}
	if node == "" {
		vb.RequiredField("Node")
	}
	return vb.Build()
}

// existing returns the stored roll of a visit, or nil when unresolved
func (o *orchestrator) existing(ctx context.Context, saveID, nodeKey string) (*dicesession.NodeRoll, error) {
	out, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		SaveID:  saveID,
		NodeKey: nodeKey,
	})
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "failed to check for existing roll")
	}
	return out.Roll, nil
}

// winner reads the roll that beat a concurrent Create
func (o *orchestrator) winner(ctx context.Context, saveID, nodeKey string) (*dicesession.NodeRoll, error) {
	roll, err := o.existing(ctx, saveID, nodeKey)
	if err != nil {
		return nil, err
	}
	if roll == nil {
		return nil, errors.Internalf("node %s was resolved and then cleared mid-roll", nodeKey)
	}
	return roll, nil
}

// RollForNode rolls the story die for a node visit. A visit that is already
// resolved returns its stored outcome instead of rolling again.
func (o *orchestrator) RollForNode(ctx context.Context, input *RollForNodeInput) (*RollForNodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateVisit(input.SaveID, input.Story, input.Node); err != nil {
		return nil, err
	}

	key := NodeKey(input.Story, input.Node)

	prev, err := o.existing(ctx, input.SaveID, key)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		return &RollForNodeOutput{Outcome: prev.Outcome, Advantage: prev.Advantage, Reused: true}, nil
	}

	value, err := engine.RollDice(o.roller, input.Advantage)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		SaveID:    input.SaveID,
		NodeKey:   key,
		Outcome:   game.Rolled(value),
		Advantage: input.Advantage,
	})
	if errors.IsAlreadyExists(err) {
		// another call resolved the visit first; its roll stands
		won, err := o.winner(ctx, input.SaveID, key)
		if err != nil {
			return nil, err
		}
		return &RollForNodeOutput{Outcome: won.Outcome, Advantage: won.Advantage, Reused: true}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to store node roll")
	}

	slog.Info("Dice rolled for node",
		"save_id", input.SaveID,
		"node", key,
		"value", value,
		"advantage", input.Advantage,
	)

	return &RollForNodeOutput{
		Outcome:   createOutput.Roll.Outcome,
		Advantage: createOutput.Roll.Advantage,
	}, nil
}

// SkipForNode records that the player declined to roll on a node visit
func (o *orchestrator) SkipForNode(ctx context.Context, input *SkipForNodeInput) (*SkipForNodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateVisit(input.SaveID, input.Story, input.Node); err != nil {
		return nil, err
	}

	key := NodeKey(input.Story, input.Node)

	prev, err := o.existing(ctx, input.SaveID, key)
	if err != nil {
		return nil, err
	}
	if prev != nil {
		return &SkipForNodeOutput{Outcome: prev.Outcome, Reused: true}, nil
	}

	createOutput, err := o.diceSessionRepo.Create(ctx, dicesession.CreateInput{
		SaveID:  input.SaveID,
		NodeKey: key,
		Outcome: game.Skipped(),
	})
	if errors.IsAlreadyExists(err) {
		won, err := o.winner(ctx, input.SaveID, key)
		if err != nil {
			return nil, err
		}
		return &SkipForNodeOutput{Outcome: won.Outcome, Reused: true}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to store skipped roll")
	}

	slog.Debug("Dice skipped for node",
		"save_id", input.SaveID,
		"node", key,
	)

	return &SkipForNodeOutput{Outcome: createOutput.Roll.Outcome}, nil
}

// GetNodeOutcome reads the dice phase of a node visit
func (o *orchestrator) GetNodeOutcome(ctx context.Context, input *GetNodeOutcomeInput) (*GetNodeOutcomeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateVisit(input.SaveID, input.Story, input.Node); err != nil {
		return nil, err
	}

	prev, err := o.existing(ctx, input.SaveID, NodeKey(input.Story, input.Node))
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return &GetNodeOutcomeOutput{Outcome: game.NotRolled()}, nil
	}

	return &GetNodeOutcomeOutput{Outcome: prev.Outcome, Advantage: prev.Advantage}, nil
}

// ClearNode ends a node visit so the next visit rolls afresh
func (o *orchestrator) ClearNode(ctx context.Context, input *ClearNodeInput) (*ClearNodeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateVisit(input.SaveID, input.Story, input.Node); err != nil {
		return nil, err
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		SaveID:  input.SaveID,
		NodeKey: NodeKey(input.Story, input.Node),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete node roll")
	}

	return &ClearNodeOutput{Cleared: deleteOutput.Deleted}, nil
}

// ClearSave removes every stored roll of a save
func (o *orchestrator) ClearSave(ctx context.Context, input *ClearSaveInput) (*ClearSaveOutput, error) {
	if input == nil || input.SaveID == "" {
		return nil, errors.InvalidArgument("save ID is required")
	}

	deleteOutput, err := o.diceSessionRepo.DeleteBySave(ctx, dicesession.DeleteBySaveInput{
		SaveID: input.SaveID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete node rolls")
	}

	slog.Info("Dice rolls cleared",
		"save_id", input.SaveID,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearSaveOutput{RollsDeleted: deleteOutput.RollsDeleted}, nil
}

// parseDiceNotation parses notation like "2d6-1" into count, size and modifier
func parseDiceNotation(notation string) (count, size, modifier int, err error) {
	matches := diceNotationRegex.FindStringSubmatch(strings.ToLower(strings.TrimSpace(notation)))
	if len(matches) != 4 {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice notation: %s (expected format: XdY or XdY+Z)", notation)
	}

	count, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid dice count in notation: %s", notation)
	}

	size, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, 0, errors.InvalidArgumentf("invalid die size in notation: %s", notation)
	}

	if matches[3] != "" {
		modifier, err = strconv.Atoi(matches[3])
		if err != nil {
			return 0, 0, 0, errors.InvalidArgumentf("invalid modifier in notation: %s", notation)
		}
	}

	if count <= 0 || size <= 0 {
		return 0, 0, 0, errors.InvalidArgumentf("dice count and size must be positive: %s", notation)
	}
	if count > maxNotationDice {
		return 0, 0, 0, errors.InvalidArgumentf("at most %d dice per roll: %s", maxNotationDice, notation)
	}

	return count, size, modifier, nil
}

// RollNotation rolls free-form dice notation
func (o *orchestrator) RollNotation(_ context.Context, input *RollNotationInput) (*RollNotationOutput, error) {
	if input == nil || input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	count, size, modifier, err := parseDiceNotation(input.Notation)
	if err != nil {
		return nil, err
	}

	rolls, err := o.roller.RollN(count, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}

	total := modifier
	faces := make([]string, len(rolls))
	for i, r := range rolls {
		total += r
		faces[i] = strconv.Itoa(r)
	}

	description := fmt.Sprintf("%dd%d[%s]", count, size, strings.Join(faces, ","))
	if modifier != 0 {
		description += fmt.Sprintf("%+d", modifier)
	}
	description += fmt.Sprintf("=%d", total)

	return &RollNotationOutput{
		Notation:    input.Notation,
		Dice:        rolls,
		Modifier:    modifier,
		Total:       total,
		Description: description,
	}, nil
}
