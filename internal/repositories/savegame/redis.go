package savegame

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-story/internal/entities/game"
	"github.com/KirkDiggler/rpg-story/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-story/internal/redis"
)

const (
	saveKeyPrefix = "save_game:"
	saveIndexKey  = "save_game:index"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis save game repository
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

// NewRedis creates a new Redis-backed save game repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSave(input.SaveGame); err != nil {
		return nil, err
	}

	key := saveKeyPrefix + input.SaveGame.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("save game with ID %s already exists", input.SaveGame.ID)
	}

	data, err := json.Marshal(input.SaveGame)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save game")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, saveIndexKey, input.SaveGame.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create save game")
	}

	return &CreateOutput{SaveGame: input.SaveGame}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	result, err := r.client.Get(ctx, saveKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("save game with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get save game")
	}

	var save game.SaveGame
	if err := json.Unmarshal([]byte(result), &save); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal save game")
	}

	return &GetOutput{SaveGame: &save}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSave(input.SaveGame); err != nil {
		return nil, err
	}

	key := saveKeyPrefix + input.SaveGame.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("save game with ID %s not found", input.SaveGame.ID)
	}

	data, err := json.Marshal(input.SaveGame)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal save game")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update save game")
	}

	return &UpdateOutput{SaveGame: input.SaveGame}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSaveIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, saveKeyPrefix+input.ID)
	pipe.SRem(ctx, saveIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete save game")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("save game with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, saveIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list save games")
	}

	sort.Strings(ids)
	return &ListOutput{IDs: ids}, nil
}
