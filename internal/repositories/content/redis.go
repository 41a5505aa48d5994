package content

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-story/internal/redis"
)

const bundleKeyPrefix = "content:"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis content repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed content repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.BundleID == "" {
		return nil, errors.InvalidArgument(errBundleIDEmpty)
	}

	result, err := r.client.Get(ctx, bundleKeyPrefix+input.BundleID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("content bundle %s not found", input.BundleID)
		}
		return nil, errors.Wrapf(err, "failed to get content bundle")
	}

	var data game.GameData
	if err := json.Unmarshal(result, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal content bundle")
	}

	return &GetOutput{Data: &data}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.BundleID == "" {
		return nil, errors.InvalidArgument(errBundleIDEmpty)
	}
	if input.Data == nil {
		return nil, errors.InvalidArgument(errDataNil)
	}

	data, err := json.Marshal(input.Data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal content bundle")
	}

	if err := r.client.Set(ctx, bundleKeyPrefix+input.BundleID, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store content bundle")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.BundleID == "" {
		return nil, errors.InvalidArgument(errBundleIDEmpty)
	}

	deleted, err := r.client.Del(ctx, bundleKeyPrefix+input.BundleID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete content bundle")
	}
	if deleted == 0 {
		return nil, errors.NotFoundf("content bundle %s not found", input.BundleID)
	}

	return &DeleteOutput{}, nil
}
