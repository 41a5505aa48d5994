package game

// DiceKind tags the dice phase of a node visit
type DiceKind string

// DiceKind constants
const (
	DiceNotRolled DiceKind = "not_rolled"
	DiceSkipped   DiceKind = "skipped"
	DiceRolled    DiceKind = "rolled"
)

// DiceOutcome is the dice state of a node visit. Value is only meaningful when
// Kind is DiceRolled.
type DiceOutcome struct {
	Kind  DiceKind `json:"kind"`
	Value int      `json:"value,omitempty"`
}

// NotRolled is the outcome before the dice phase resolves
func NotRolled() DiceOutcome {
	return DiceOutcome{Kind: DiceNotRolled}
}

// Skipped is the outcome when the player proceeds without rolling
func Skipped() DiceOutcome {
	return DiceOutcome{Kind: DiceSkipped}
}

// Rolled is the outcome of an actual roll
func Rolled(value int) DiceOutcome {
	return DiceOutcome{Kind: DiceRolled, Value: value}
}

// Resolved reports whether the dice phase is over
func (d DiceOutcome) Resolved() bool {
	return d.Kind == DiceSkipped || d.Kind == DiceRolled
}
