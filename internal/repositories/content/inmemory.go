package content

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]byte
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]byte),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a bundle
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.BundleID == "" {
		return nil, errors.InvalidArgument(errBundleIDEmpty)
	}

	r.mu.RLock()
	raw, exists := r.store[input.BundleID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("content bundle %s not found", input.BundleID)
	}

	var data game.GameData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal content bundle")
	}

	return &GetOutput{Data: &data}, nil
}

// Save stores a bundle
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.BundleID == "" {
		return nil, errors.InvalidArgument(errBundleIDEmpty)
	}
	if input.Data == nil {
		return nil, errors.InvalidArgument(errDataNil)
	}

	raw, err := json.Marshal(input.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal content bundle")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[input.BundleID] = raw

	return &SaveOutput{}, nil
}

// Delete removes a bundle
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.BundleID == "" {
		return nil, errors.InvalidArgument(errBundleIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.BundleID]; !exists {
		return nil, errors.NotFoundf("content bundle %s not found", input.BundleID)
	}
	delete(r.store, input.BundleID)

	return &DeleteOutput{}, nil
}
