package staff

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
	memberKeyPrefix = "staff:"
	membersByUser   = "staff_by_user"
	memberIDSeqKey  = "staff_id_seq"
)

// createScript claims the user in the index and writes the record in one
// step. Returns 0 when the user already has a grant.
var createScript = redis.NewScript(`
if redis.call("HSETNX", KEYS[1], ARGV[1], ARGV[2]) == 0 then
	return 0
end
redis.call("SET", KEYS[2], ARGV[3])
return 1
`)

// deleteScript drops the record and its index entry
var deleteScript = redis.NewScript(`
if redis.call("DEL", KEYS[1]) == 0 then
	return 0
end
if redis.call("HGET", KEYS[2], ARGV[1]) == ARGV[2] then
	redis.call("HDEL", KEYS[2], ARGV[1])
end
return 1
`)

// Config holds configuration for the Redis staff repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed staff repository
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

func memberKey(id string) string {
	return memberKeyPrefix + id
}

func (r *redisRepository) CreateMember(ctx context.Context, input *CreateMemberInput) (*models.StaffMember, error) {
	if err := validateMember(input); err != nil {
		return nil, err
	}

	id, err := r.client.Incr(ctx, memberIDSeqKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate member id: %w", err)
	}

	m := *input.Member
	m.ID = id

	data, err := json.Marshal(&m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal member: %w", err)
	}

	idStr := strconv.FormatInt(id, 10)
	created, err := createScript.Run(ctx, r.client,
		[]string{membersByUser, memberKey(idStr)},
		strconv.FormatInt(m.UserID, 10), idStr, data,
	).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to create member: %w", err)
	}
	if created == 0 {
		return nil, ErrMemberExists
	}

	return &m, nil
}

func (r *redisRepository) GetMemberByUser(ctx context.Context, input *GetMemberByUserInput) (*models.StaffMember, error) {
	if input == nil || input.UserID == 0 {
		return nil, errors.New("input and user ID cannot be empty")
	}

	id, err := r.client.HGet(ctx, membersByUser, strconv.FormatInt(input.UserID, 10)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to look up member: %w", err)
	}

	return r.get(ctx, id)
}

func (r *redisRepository) get(ctx context.Context, id string) (*models.StaffMember, error) {
	data, err := r.client.Get(ctx, memberKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrMemberNotFound
		}
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	var m models.StaffMember
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal member: %w", err)
	}

	return &m, nil
}

func (r *redisRepository) ListMembers(ctx context.Context, input *ListMembersInput) (*ListMembersOutput, error) {
	index, err := r.client.HGetAll(ctx, membersByUser).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list member ids: %w", err)
	}

	members := make([]*models.StaffMember, 0, len(index))
	if len(index) == 0 {
		return &ListMembersOutput{Members: members}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, 0, len(index))
	for _, id := range index {
		cmds = append(cmds, pipe.Get(ctx, memberKey(id)))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get members: %w", err)
	}

	for _, cmd := range cmds {
		data, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Deleted between HGETALL and GET
				continue
			}
			return nil, fmt.Errorf("failed to get member: %w", err)
		}

		var m models.StaffMember
		if err := json.Unmarshal([]byte(data), &m); err != nil {
			return nil, fmt.Errorf("failed to unmarshal member: %w", err)
		}
		members = append(members, &m)
	}

	sortByCreated(members)

	return &ListMembersOutput{Members: members}, nil
}

func (r *redisRepository) DeleteMember(ctx context.Context, input *DeleteMemberInput) (*models.StaffMember, error) {
	if input == nil || input.MemberID <= 0 {
		return nil, errors.New("input and member ID cannot be empty")
	}

	idStr := strconv.FormatInt(input.MemberID, 10)
	m, err := r.get(ctx, idStr)
	if err != nil {
		return nil, err
	}

	deleted, err := deleteScript.Run(ctx, r.client,
		[]string{memberKey(idStr), membersByUser},
		strconv.FormatInt(m.UserID, 10), idStr,
	).Int()
	if err != nil {
		return nil, fmt.Errorf("failed to delete member: %w", err)
	}
	if deleted == 0 {
		return nil, ErrMemberNotFound
	}

	return m, nil
}
