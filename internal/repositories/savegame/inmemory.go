package savegame

import (
	"context"
	"encoding/json"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage. Saves are
// stored serialized so callers never share state with the store.
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

// Create stores a new save
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSave(input.SaveGame); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.SaveGame)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save game")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.SaveGame.ID]; exists {
		return nil, errors.AlreadyExistsf("save game with ID %s already exists", input.SaveGame.ID)
	}
	r.store[input.SaveGame.ID] = data

	return &CreateOutput{SaveGame: input.SaveGame}, nil
}

// Get retrieves a save by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	r.mu.RLock()
	data, exists := r.store[input.ID]
	r.mu.RUnlock()

	if !exists {
		return nil, errors.NotFoundf("save game with ID %s not found", input.ID)
	}

	var save game.SaveGame
	if err := json.Unmarshal(data, &save); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save game")
	}

	return &GetOutput{SaveGame: &save}, nil
}

// Update replaces an existing save
func (r *InMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSave(input.SaveGame); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.SaveGame)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save game")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.SaveGame.ID]; !exists {
		return nil, errors.NotFoundf("save game with ID %s not found", input.SaveGame.ID)
	}
	r.store[input.SaveGame.ID] = data

	return &UpdateOutput{SaveGame: input.SaveGame}, nil
}

// Delete removes a save
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.store[input.ID]; !exists {
		return nil, errors.NotFoundf("save game with ID %s not found", input.ID)
	}
	delete(r.store, input.ID)

	return &DeleteOutput{}, nil
}

// List returns the IDs of every stored save, sorted
func (r *InMemoryRepository) List(_ context.Context, _ ListInput) (*ListOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.store))
	for id := range r.store {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &ListOutput{IDs: ids}, nil
}
