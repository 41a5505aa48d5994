package engine

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
)

const (
	// DieSize is the size of the story die
	DieSize = 6

	// AdvantageFloor is the lowest face rollable with luck advantage
	AdvantageFloor = 4
)

// RollDice rolls the story die. With advantage the result is uniform over 4-6,
// otherwise over 1-6. It never returns zero.
func RollDice(roller dice.Roller, advantage bool) (int, error) {
	if roller == nil {
		roller = dice.DefaultRoller
	}

	if advantage {
		// uniform over the top half
		r, err := roller.Roll(DieSize - AdvantageFloor + 1)
		if err != nil {
			return 0, errors.Wrap(err, "failed to roll with advantage")
		}
		return r + AdvantageFloor - 1, nil
	}

	r, err := roller.Roll(DieSize)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return r, nil
}

// HasLuckAdvantage reports whether the player's luck earns advantage on the node's
// roll. Nodes without a dice requirement never grant advantage.
func HasLuckAdvantage(p *game.Player, node game.StoryNode) bool {
	return node.DiceRequirement > 0 && p.Stats.Luck >= node.DiceRequirement
}
