package dicesession

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-story/internal/errors"
	"github.com/KirkDiggler/rpg-story/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-story/internal/redis"
)

// Key pattern: dice_session:{save_id}:{node_key}
const sessionKeyPrefix = "dice_session:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for node rolls
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create records a node roll. The key carries no expiry.
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateKey(input.SaveID, input.NodeKey); err != nil {
		return nil, err
	}
	if !input.Outcome.Resolved() {
		return nil, errors.InvalidArgument(errUnresolved)
	}

	roll := &NodeRoll{
		SaveID:    input.SaveID,
		NodeKey:   input.NodeKey,
		Outcome:   input.Outcome,
		Advantage: input.Advantage,
		CreatedAt: r.clock.Now(),
	}

	rollJSON, err := json.Marshal(roll)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal node roll")
	}

	created, err := r.client.SetNX(ctx, r.buildKey(input.SaveID, input.NodeKey), rollJSON, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store node roll in Redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("node %s already resolved", input.NodeKey)
	}

	return &CreateOutput{Roll: roll}, nil
}

// Get retrieves a node roll
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.SaveID, input.NodeKey); err != nil {
		return nil, err
	}

	rollJSON, err := r.client.Get(ctx, r.buildKey(input.SaveID, input.NodeKey)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("node roll not found")
		}
		return nil, errors.Wrapf(err, "failed to get node roll from Redis")
	}

	var roll NodeRoll
	if err := json.Unmarshal([]byte(rollJSON), &roll); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal node roll")
	}

	return &GetOutput{Roll: &roll}, nil
}

// Delete removes a node roll
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.SaveID, input.NodeKey); err != nil {
		return nil, err
	}

	deleted, err := r.client.Del(ctx, r.buildKey(input.SaveID, input.NodeKey)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete node roll from Redis")
	}

	return &DeleteOutput{Deleted: deleted > 0}, nil
}

// DeleteBySave removes every roll of a save
func (r *redisRepository) DeleteBySave(ctx context.Context, input DeleteBySaveInput) (*DeleteBySaveOutput, error) {
	if input.SaveID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	var keys []string
	iter := r.client.Scan(ctx, 0, r.buildKey(input.SaveID, "*"), 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to scan node rolls")
	}

	if len(keys) == 0 {
		return &DeleteBySaveOutput{}, nil
	}

	deleted, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete node rolls from Redis")
	}

	return &DeleteBySaveOutput{RollsDeleted: int(deleted)}, nil
}

// buildKey creates the Redis key for a node roll
func (r *redisRepository) buildKey(saveID, nodeKey string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, saveID, nodeKey)
}
