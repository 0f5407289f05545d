package season

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	scoredKeyPrefix = "season_scored:"
)

// ErrPeriodAlreadyScored is returned when a gameweek was scored before
var ErrPeriodAlreadyScored = errors.New("period already scored")

// Config holds configuration for the Redis season repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed season repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// MarkPeriodScored records the gameweek with SETNX so only the first close
// for a period succeeds
func (r *redisRepository) MarkPeriodScored(ctx context.Context, input *MarkPeriodScoredInput) error {
	if input == nil || input.Period <= 0 {
		return errors.New("input and period must be set")
	}

	key := scoredKeyPrefix + strconv.Itoa(input.Period)
	set, err := r.client.SetNX(ctx, key, "1", 0).Result()
	if err != nil {
		return fmt.Errorf("failed to mark period scored: %w", err)
	}
	if !set {
		return fmt.Errorf("%w: %d", ErrPeriodAlreadyScored, input.Period)
	}

	return nil
}

// IsPeriodScored reports whether the gameweek's marker exists
func (r *redisRepository) IsPeriodScored(ctx context.Context, input *IsPeriodScoredInput) (bool, error) {
	if input == nil || input.Period <= 0 {
		return false, errors.New("input and period must be set")
	}

	key := scoredKeyPrefix + strconv.Itoa(input.Period)
	n, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check period: %w", err)
	}

	return n > 0, nil
}
