// Package dicesession stores the dice outcome of a node visit
package dicesession

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-story/internal/repositories/dice_session Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
)

// NodeRoll is the resolved dice phase of one visit to a story node
type NodeRoll struct {
	// Save that owns the roll
	SaveID string

	// Story node the roll was made on, qualified by story ("story/node")
	NodeKey string

	// Rolled value or an explicit skip
	Outcome game.DiceOutcome

	// Whether luck granted advantage on this node
	Advantage bool

	CreatedAt time.Time
}

// CreateInput contains parameters for recording a node roll
type CreateInput struct {
	SaveID    string
	NodeKey   string
	Outcome   game.DiceOutcome
	Advantage bool
}

// CreateOutput contains the recorded roll
type CreateOutput struct {
	Roll *NodeRoll
}

// GetInput contains parameters for retrieving a node roll
type GetInput struct {
	SaveID  string
	NodeKey string
}

// GetOutput contains the retrieved roll
type GetOutput struct {
	Roll *NodeRoll
}

// DeleteInput contains parameters for deleting a node roll
type DeleteInput struct {
	SaveID  string
	NodeKey string
}

// DeleteOutput reports whether a roll was removed
type DeleteOutput struct {
	Deleted bool
}

// DeleteBySaveInput contains parameters for deleting every roll of a save
type DeleteBySaveInput struct {
	SaveID string
}

// DeleteBySaveOutput reports how many rolls were removed
type DeleteBySaveOutput struct {
	RollsDeleted int
}

// Repository defines the interface for node roll storage operations
type Repository interface {
	// Create records the outcome of a node visit. A visit is resolved at most
	// once: an existing roll yields errors.AlreadyExists.
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves the roll of a node visit; errors.NotFound when unresolved.
	// A roll lives until Delete or DeleteBySave ends the visit.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes the roll of a node visit, ending the visit
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// DeleteBySave removes every roll of a save
	DeleteBySave(ctx context.Context, input DeleteBySaveInput) (*DeleteBySaveOutput, error)
}

const (
	errSaveIDEmpty  = "save ID cannot be empty"
	errNodeKeyEmpty = "node key cannot be empty"
	errUnresolved   = "outcome must be rolled or skipped"
)

func validateKey(saveID, nodeKey string) error {
	if saveID == "" {
		return errors.InvalidArgument(errSaveIDEmpty)
	}
	if nodeKey == "" {
		return errors.InvalidArgument(errNodeKeyEmpty)
	}
	return nil
}
