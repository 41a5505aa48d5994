// Package content persists content bundles. A stored bundle carries the live shop
// stock of the session, so purchases write the bundle back.
package content

//go:generate mockgen -destination=mock/mock_repository.go -package=contentmock github.com/KirkDiggler/rpg-story/internal/repositories/content Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
)

// Repository defines the storage interface for content bundles
type Repository interface {
	// Get retrieves a bundle
	// Returns errors.NotFound if no bundle is stored under the ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores a bundle, replacing any previous version
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a bundle
	// Returns errors.NotFound if no bundle is stored under the ID
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for retrieving a bundle
type GetInput struct {
	BundleID string
}

// GetOutput defines the output of retrieving a bundle
type GetOutput struct {
	Data *game.GameData
}

// SaveInput defines the input for storing a bundle
type SaveInput struct {
	BundleID string
	Data     *game.GameData
}

// SaveOutput defines the output of storing a bundle
type SaveOutput struct{}

// DeleteInput defines the input for removing a bundle
type DeleteInput struct {
	BundleID string
}

// DeleteOutput defines the output of removing a bundle
type DeleteOutput struct{}

const (
	errBundleIDEmpty = "bundle ID cannot be empty"
	errDataNil       = "content bundle cannot be nil"
)
