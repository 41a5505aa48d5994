package dicesession

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/pkg/clock"
)

type rollKey struct {
	saveID  string
	nodeKey string
}

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.Mutex
	clock clock.Clock
	store map[rollKey]NodeRoll
}

// NewInMemory creates a new in-memory repository. A nil clock uses real time.
func NewInMemory(c clock.Clock) *InMemoryRepository {
	if c == nil {
		c = clock.New()
	}
	return &InMemoryRepository{
		clock: c,
		store: make(map[rollKey]NodeRoll),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Create records a node roll
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.SaveID, input.NodeKey); err != nil {
		return nil, err
	}
	if !input.Outcome.Resolved() {
		return nil, errors.InvalidArgument(errUnresolved)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := rollKey{saveID: input.SaveID, nodeKey: input.NodeKey}
	if _, ok := r.store[key]; ok {
		return nil, errors.AlreadyExistsf("node %s already resolved", input.NodeKey)
	}

	roll := NodeRoll{
		SaveID:    input.SaveID,
		NodeKey:   input.NodeKey,
		Outcome:   input.Outcome,
		Advantage: input.Advantage,
		CreatedAt: r.clock.Now(),
	}
	r.store[key] = roll

	return &CreateOutput{Roll: &roll}, nil
}

// Get retrieves a node roll
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.SaveID, input.NodeKey); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	roll, ok := r.store[rollKey{saveID: input.SaveID, nodeKey: input.NodeKey}]
	if !ok {
		return nil, errors.NotFound("node roll not found")
	}

	return &GetOutput{Roll: &roll}, nil
}

// Delete removes a node roll
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.SaveID, input.NodeKey); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := rollKey{saveID: input.SaveID, nodeKey: input.NodeKey}
	_, ok := r.store[key]
	delete(r.store, key)

	return &DeleteOutput{Deleted: ok}, nil
}

// DeleteBySave removes every roll of a save
func (r *InMemoryRepository) DeleteBySave(_ context.Context, input DeleteBySaveInput) (*DeleteBySaveOutput, error) {
	if input.SaveID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for key := range r.store {
		if key.saveID == input.SaveID {
			delete(r.store, key)
			deleted++
		}
	}

	return &DeleteBySaveOutput{RollsDeleted: deleted}, nil
}
