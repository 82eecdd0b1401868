package battle

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/aetherium/battle-api/internal/entities"
	"github.com/aetherium/battle-api/internal/errors"
	redisclient "github.com/aetherium/battle-api/internal/redis"
)

const (
	battleKeyPrefix  = "battle:"
	ongoingKeyPrefix = "battle:ongoing:"

	// Error messages
	errBattleNil        = "battle cannot be nil"
	errBattleIDEmpty    = "battle ID cannot be empty"
	errCharacterIDEmpty = "character ID cannot be empty"
	errConcurrentUpdate = "battle was modified concurrently"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis battle repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed battle repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Battle == nil {
		return nil, errors.InvalidArgument(errBattleNil)
	}
	if input.Battle.ID == "" {
		return nil, errors.InvalidArgument(errBattleIDEmpty)
	}
	if input.Battle.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := battleKeyPrefix + input.Battle.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("battle with ID %s already exists", input.Battle.ID)
	}

	data, err := json.Marshal(input.Battle)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal battle")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // battles are never expired by the core

	// The ongoing index enforces at most one active battle per character.
	// A battle completed at creation (an enemy opener can be lethal) is
	// never indexed.
	if input.Battle.Result == entities.ResultOngoing {
		pipe.Set(ctx, ongoingKeyPrefix+input.Battle.CharacterID, input.Battle.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create battle")
	}

	slog.DebugContext(ctx, "battle created",
		"battle_id", input.Battle.ID,
		"character_id", input.Battle.CharacterID,
		"result", input.Battle.Result)

	return &CreateOutput{Battle: input.Battle}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errBattleIDEmpty)
	}

	result, err := r.client.Get(ctx, battleKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("battle with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get battle")
	}

	var battle entities.Battle
	if err := json.Unmarshal([]byte(result), &battle); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal battle")
	}

	return &GetOutput{Battle: &battle}, nil
}

// Update performs the optimistic read-check-write inside a WATCH transaction.
// If another writer touches the key between the read and the write, or the
// stored log length no longer matches ExpectedLogLength, the update fails
// with errors.Aborted and the caller may re-read and retry.
func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Battle == nil {
		return nil, errors.InvalidArgument(errBattleNil)
	}
	if input.Battle.ID == "" {
		return nil, errors.InvalidArgument(errBattleIDEmpty)
	}

	key := battleKeyPrefix + input.Battle.ID

	txn := func(tx *redis.Tx) error {
		stored, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFoundf("battle with ID %s not found", input.Battle.ID)
			}
			return errors.Wrapf(err, "failed to get battle")
		}

		var current entities.Battle
		if err := json.Unmarshal([]byte(stored), &current); err != nil {
			return errors.Wrapf(err, "failed to unmarshal stored battle")
		}

		if len(current.Log) != input.ExpectedLogLength {
			return errors.Aborted(errConcurrentUpdate).
				WithMeta("expected_log_length", input.ExpectedLogLength).
				WithMeta("stored_log_length", len(current.Log))
		}

		data, err := json.Marshal(input.Battle)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal battle")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			if input.Battle.Result != entities.ResultOngoing {
				pipe.Del(ctx, ongoingKeyPrefix+input.Battle.CharacterID)
			}
			return nil
		})
		return err
	}

	if err := r.client.Watch(ctx, txn, key); err != nil {
		if err == redis.TxFailedErr {
			return nil, errors.Aborted(errConcurrentUpdate)
		}
		var structured *errors.Error
		if errors.As(err, &structured) {
			return nil, structured
		}
		return nil, errors.Wrapf(err, "failed to update battle")
	}

	return &UpdateOutput{Battle: input.Battle}, nil
}

func (r *redisRepository) GetOngoingByCharacter(
	ctx context.Context,
	input GetOngoingByCharacterInput,
) (*GetOngoingByCharacterOutput, error) {
	if input.CharacterID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	battleID, err := r.client.Get(ctx, ongoingKeyPrefix+input.CharacterID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no ongoing battle for character %s", input.CharacterID)
		}
		return nil, errors.Wrapf(err, "failed to get ongoing battle index")
	}

	return &GetOngoingByCharacterOutput{BattleID: battleID}, nil
}
