package audit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/fortune/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key names for Redis
	auditLogKey     = "audit_log"
	auditIDSeqKey   = "audit_id_seq"
	maxRedisEntries = 10000
)

// Config holds configuration for the Redis audit repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository keeps the log as a capped list, newest at the head
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed audit repository
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

func (r *redisRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) (*models.AuditEntry, error) {
	if err := validateEntry(input); err != nil {
		return nil, err
	}

	id, err := r.client.Incr(ctx, auditIDSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate audit id: %w", err)
	}

	e := *input.Entry
	e.ID = id

	data, err := json.Marshal(&e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit entry: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, auditLogKey, data)
	pipe.LTrim(ctx, auditLogKey, 0, maxRedisEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", err)
	}

	return &e, nil
}

func (r *redisRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	raw, err := r.client.LRange(ctx, auditLogKey, 0, int64(listLimit(input)-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}

	entries := make([]*models.AuditEntry, 0, len(raw))
	for _, data := range raw {
		var e models.AuditEntry
		if err := json.Unmarshal([]byte(data), &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit entry: %w", err)
		}
		entries = append(entries, &e)
	}

	return &ListEntriesOutput{Entries: entries}, nil
}
