// Package savegame provides the interface for save game persistence
package savegame

//go:generate mockgen -destination=mock/mock_repository.go -package=savegamemock github.com/KirkDiggler/rpg-story/internal/repositories/savegame Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
)

// Repository defines the interface for save game persistence
type Repository interface {
	// Create stores a new save
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a save with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a save by ID
	// Returns errors.NotFound if the save doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing save
	// Returns errors.NotFound if the save doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a save
	// Returns errors.NotFound if the save doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the IDs of every stored save, sorted
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a save
type CreateInput struct {
	SaveGame *game.SaveGame
}

// CreateOutput defines the output of creating a save
type CreateOutput struct {
	SaveGame *game.SaveGame
}

// GetInput defines the input for retrieving a save
type GetInput struct {
	ID string
}

// GetOutput defines the output of retrieving a save
type GetOutput struct {
	SaveGame *game.SaveGame
}

// UpdateInput defines the input for updating a save
type UpdateInput struct {
	SaveGame *game.SaveGame
}

// UpdateOutput defines the output of updating a save
type UpdateOutput struct {
	SaveGame *game.SaveGame
}

// DeleteInput defines the input for deleting a save
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output of deleting a save
type DeleteOutput struct{}

// ListInput defines the input for listing saves
type ListInput struct{}

// ListOutput defines the output of listing saves
type ListOutput struct {
	IDs []string
}

const (
	errSaveNil     = "save game cannot be nil"
	errSaveIDEmpty = "save game ID cannot be empty"
	errPlayerNil   = "save game player cannot be nil"
)

func validateSave(save *game.SaveGame) error {
	if save == nil {
		return errors.InvalidArgument(errSaveNil)
	}
	if save.ID == "" {
		return errors.InvalidArgument(errSaveIDEmpty)
	}
	if save.Player == nil {
		return errors.InvalidArgument(errPlayerNil)
	}
	return nil
}
