package spin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	spinKeyPrefix = "spin:"
	spinsIndexKey = "spins_by_time"
)

// insertIfAbsentScript claims the user's key and indexes it in one step so
// readers never see a record without its index entry.
//
// KEYS[1] spin key, KEYS[2] index; ARGV[1] record, ARGV[2] score, ARGV[3] user id
var insertIfAbsentScript = redis.NewScript(`
	if redis.call("SETNX", KEYS[1], ARGV[1]) == 0 then
		return 0
	end
	redis.call("ZADD", KEYS[2], ARGV[2], ARGV[3])
	return 1
`)

// deleteAllScript drops every indexed record and the index itself.
//
// KEYS[1] index; ARGV[1] spin key prefix
var deleteAllScript = redis.NewScript(`
	local ids = redis.call("ZRANGE", KEYS[1], 0, -1)
	for _, id in ipairs(ids) do
		redis.call("DEL", ARGV[1] .. id)
	end
	redis.call("DEL", KEYS[1])
	return #ids
`)

// Config holds configuration for the Redis spin repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed spin repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func spinKey(userID int64) string {
	return spinKeyPrefix + strconv.FormatInt(userID, 10)
}

// InsertSpinIfAbsent runs the SETNX script
func (r *redisRepository) InsertSpinIfAbsent(ctx context.Context, input *InsertSpinInput) (InsertOutcome, error) {
	if err := validateSpin(input); err != nil {
		return InsertOutcomeUnknown, err
	}

	spin := input.Spin
	data, err := json.Marshal(spin)
	if err != nil {
		return InsertOutcomeUnknown, fmt.Errorf("failed to marshal spin: %w", err)
	}

	claimed, err := insertIfAbsentScript.Run(ctx, r.client,
		[]string{spinKey(spin.UserID), spinsIndexKey},
		data, spin.CreatedAt.UnixMilli(), strconv.FormatInt(spin.UserID, 10),
	).Int()
	if err != nil {
		return InsertOutcomeUnknown, fmt.Errorf("failed to insert spin: %w", err)
	}

	if claimed == 0 {
		return InsertOutcomeAlreadyExists, nil
	}
	return InsertOutcomeInserted, nil
}

// GetSpin retrieves a user's spin from Redis
func (r *redisRepository) GetSpin(ctx context.Context, input *GetSpinInput) (*models.Spin, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	data, err := r.client.Get(ctx, spinKey(input.UserID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSpinNotFound
		}
		return nil, fmt.Errorf("failed to get spin: %w", err)
	}

	var spin models.Spin
	if err := json.Unmarshal([]byte(data), &spin); err != nil {
		return nil, fmt.Errorf("failed to unmarshal spin: %w", err)
	}

	return &spin, nil
}

// ListSpins walks the time index newest first and fetches the records in a pipeline
func (r *redisRepository) ListSpins(ctx context.Context, input *ListSpinsInput) (*ListSpinsOutput, error) {
	userIDs, err := r.client.ZRevRange(ctx, spinsIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list spin ids: %w", err)
	}

	if len(userIDs) == 0 {
		return &ListSpinsOutput{Spins: []*models.Spin{}}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(userIDs))
	for i, id := range userIDs {
		cmds[i] = pipe.Get(ctx, spinKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get spins: %w", err)
	}

	spins := make([]*models.Spin, 0, len(userIDs))
	for i, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Reset between ZREVRANGE and GET
				continue
			}
			return nil, fmt.Errorf("failed to get spin %s: %w", userIDs[i], err)
		}

		var spin models.Spin
		if err := json.Unmarshal([]byte(data), &spin); err != nil {
			return nil, fmt.Errorf("failed to unmarshal spin %s: %w", userIDs[i], err)
		}
		spins = append(spins, &spin)
	}

	return &ListSpinsOutput{Spins: spins}, nil
}

// DeleteSpin removes one user's spin and its index entry in a MULTI block
func (r *redisRepository) DeleteSpin(ctx context.Context, input *DeleteSpinInput) error {
	if input == nil || input.UserID == 0 {
		return errors.New("input and user ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, spinKey(input.UserID))
	pipe.ZRem(ctx, spinsIndexKey, strconv.FormatInt(input.UserID, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete spin: %w", err)
	}

	if del.Val() == 0 {
		return ErrSpinNotFound
	}

	return nil
}

// DeleteAllSpins runs the reset script
func (r *redisRepository) DeleteAllSpins(ctx context.Context, input *DeleteAllSpinsInput) (*DeleteAllSpinsOutput, error) {
	n, err := deleteAllScript.Run(ctx, r.client, []string{spinsIndexKey}, spinKeyPrefix).Int64()
	if err != nil {
		return nil, fmt.Errorf("failed to delete spins: %w", err)
	}

	return &DeleteAllSpinsOutput{Deleted: n}, nil
}
