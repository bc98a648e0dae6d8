package prize

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
	prizeKeyPrefix = "prize:"
	prizesKey      = "prizes"
	prizeIDSeqKey  = "prize_id_seq"
)

// Config holds configuration for the Redis prize repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed prize repository
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

func prizeKey(id int64) string {
	return prizeKeyPrefix + strconv.FormatInt(id, 10)
}

// ListPrizes loads every prize in one pipeline and orders them in memory;
// the wheel never has more than a handful.
func (r *redisRepository) ListPrizes(ctx context.Context, input *ListPrizesInput) (*ListPrizesOutput, error) {
	if input == nil {
		input = &ListPrizesInput{}
	}

	ids, err := r.client.SMembers(ctx, prizesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list prize ids: %w", err)
	}

	if len(ids) == 0 {
		return &ListPrizesOutput{Prizes: []*models.Prize{}}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		cmds[i] = pipe.Get(ctx, prizeKeyPrefix+id)
	}

	// redis.Nil from a single GET surfaces here too; handled per command
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get prizes: %w", err)
	}

	prizes := make([]*models.Prize, 0, len(ids))
	for i, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Deleted between SMEMBERS and GET
				continue
			}
			return nil, fmt.Errorf("failed to get prize %s: %w", ids[i], err)
		}

		var p models.Prize
		if err := json.Unmarshal([]byte(data), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal prize %s: %w", ids[i], err)
		}

		if input.ActiveOnly && !p.Active {
			continue
		}
		prizes = append(prizes, &p)
	}

	sortByPosition(prizes)

	return &ListPrizesOutput{Prizes: prizes}, nil
}

// GetPrize retrieves a prize by ID from Redis
func (r *redisRepository) GetPrize(ctx context.Context, input *GetPrizeInput) (*models.Prize, error) {
	if input == nil || input.PrizeID <= 0 {
		return nil, errors.New("input and prize ID cannot be empty")
	}

	data, err := r.client.Get(ctx, prizeKey(input.PrizeID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPrizeNotFound
		}
		return nil, fmt.Errorf("failed to get prize: %w", err)
	}

	var p models.Prize
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal prize: %w", err)
	}

	return &p, nil
}

// CreatePrize allocates an ID from a counter and stores the prize
func (r *redisRepository) CreatePrize(ctx context.Context, input *CreatePrizeInput) (*models.Prize, error) {
	if input == nil || input.Prize == nil {
		return nil, errors.New("input and prize cannot be nil")
	}

	id, err := r.client.Incr(ctx, prizeIDSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate prize id: %w", err)
	}

	p := *input.Prize
	p.ID = id

	data, err := json.Marshal(&p)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal prize: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, prizeKey(id), data, 0)
	pipe.SAdd(ctx, prizesKey, strconv.FormatInt(id, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to save prize: %w", err)
	}

	return &p, nil
}

// SavePrize overwrites an existing prize. SET XX keeps a concurrent delete
// from being resurrected.
func (r *redisRepository) SavePrize(ctx context.Context, input *SavePrizeInput) error {
	if input == nil || input.Prize == nil {
		return errors.New("input and prize cannot be nil")
	}

	if input.Prize.ID <= 0 {
		return errors.New("prize ID cannot be empty")
	}

	data, err := json.Marshal(input.Prize)
	if err != nil {
		return fmt.Errorf("failed to marshal prize: %w", err)
	}

	ok, err := r.client.SetXX(ctx, prizeKey(input.Prize.ID), data, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to save prize: %w", err)
	}
	if !ok {
		return ErrPrizeNotFound
	}

	return nil
}

// DeletePrize removes a prize from Redis
func (r *redisRepository) DeletePrize(ctx context.Context, input *DeletePrizeInput) error {
	if input == nil || input.PrizeID <= 0 {
		return errors.New("input and prize ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, prizeKey(input.PrizeID))
	pipe.SRem(ctx, prizesKey, strconv.FormatInt(input.PrizeID, 10))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete prize: %w", err)
	}

	if del.Val() == 0 {
		return ErrPrizeNotFound
	}

	return nil
}
