package dice

import (
	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

// RollForNodeInput defines the request for resolving a node's dice phase with a roll
type RollForNodeInput struct {
	SaveID string
	Story  string
	Node   string

	// Advantage narrows the roll to 4-6
	Advantage bool
}

// RollForNodeOutput defines the response for rolling on a node
type RollForNodeOutput struct {
	Outcome   game.DiceOutcome
	Advantage bool

	// Reused is set when the visit was already resolved and the stored outcome is returned
	Reused bool
}

// SkipForNodeInput defines the request for skipping a node's dice phase
type SkipForNodeInput struct {
	SaveID string
	Story  string
	Node   string
}

// SkipForNodeOutput defines the response for skipping a node's dice phase
type SkipForNodeOutput struct {
	Outcome game.DiceOutcome
	Reused  bool
}

// GetNodeOutcomeInput defines the request for reading a node's dice phase
type GetNodeOutcomeInput struct {
	SaveID string
	Story  string
	Node   string
}

// GetNodeOutcomeOutput defines the response for reading a node's dice phase.
// An unresolved visit reports game.NotRolled.
type GetNodeOutcomeOutput struct {
	Outcome   game.DiceOutcome
	Advantage bool
}

// ClearNodeInput defines the request for ending a node visit
type ClearNodeInput struct {
	SaveID string
	Story  string
	Node   string
}

// ClearNodeOutput defines the response for ending a node visit
type ClearNodeOutput struct {
	Cleared bool
}

// ClearSaveInput defines the request for clearing every visit of a save
type ClearSaveInput struct {
	SaveID string
}

// ClearSaveOutput defines the response for clearing a save
type ClearSaveOutput struct {
	RollsDeleted int
}

// RollNotationInput defines the request for a free-form roll such as "2d6+1"
type RollNotationInput struct {
	Notation string
}

// RollNotationOutput defines the response for a free-form roll
type RollNotationOutput struct {
	Notation    string
	Dice        []int
	Modifier    int
	Total       int
	Description string
}
