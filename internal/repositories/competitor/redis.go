package competitor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/gaffer/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	competitorKeyPrefix = "competitor:"
	competitorPoolKey   = "competitor_pool"
)

// Define errors
var (
	// ErrCompetitorNotFound is returned when a competitor is not found
	ErrCompetitorNotFound = errors.New("competitor not found")

	// ErrCompetitorClaimed is returned when a claim loses to another owner,
	// including a concurrent claim on the same competitor
	ErrCompetitorClaimed = errors.New("competitor already claimed")

	// ErrCompetitorNotOwned is returned when releasing a competitor the
	// team does not own
	ErrCompetitorNotOwned = errors.New("competitor not owned by team")
)

// Config holds configuration for the Redis competitor repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed competitor repository
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

// SaveCompetitor persists a competitor to Redis
func (r *redisRepository) SaveCompetitor(ctx context.Context, input *SaveCompetitorInput) error {
	if input == nil || input.Competitor == nil {
		return errors.New("input and competitor cannot be nil")
	}

	comp := input.Competitor
	if comp.ID == "" {
		return errors.New("competitor ID cannot be empty")
	}

	payload, err := json.Marshal(comp)
	if err != nil {
		return fmt.Errorf("failed to marshal competitor: %w", err)
	}

	// Save the record and index it in the pool set
	pipe := r.client.Pipeline()
	pipe.Set(ctx, competitorKeyPrefix+comp.ID, payload, 0)
	pipe.SAdd(ctx, competitorPoolKey, comp.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save competitor: %w", err)
	}

	return nil
}

// GetCompetitor retrieves a competitor by ID from Redis
func (r *redisRepository) GetCompetitor(ctx context.Context, input *GetCompetitorInput) (*models.Competitor, error) {
	if input == nil || input.CompetitorID == "" {
		return nil, errors.New("input and competitor ID cannot be empty")
	}

	payload, err := r.client.Get(ctx, competitorKeyPrefix+input.CompetitorID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("failed to get competitor: %w", err)
	}

	var comp models.Competitor
	if err := json.Unmarshal([]byte(payload), &comp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal competitor: %w", err)
	}

	return &comp, nil
}

// GetCompetitors retrieves a batch of competitors by ID using a pipeline
func (r *redisRepository) GetCompetitors(ctx context.Context, input *GetCompetitorsInput) (*GetCompetitorsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.CompetitorIDs) == 0 {
		return &GetCompetitorsOutput{
			Competitors: map[string]*models.Competitor{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(input.CompetitorIDs))
	for _, id := range input.CompetitorIDs {
		commands[id] = pipe.Get(ctx, competitorKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get competitors: %w", err)
	}

	competitors := make(map[string]*models.Competitor, len(input.CompetitorIDs))
	for id, cmd := range commands {
		payload, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				return nil, fmt.Errorf("%w: %s", ErrCompetitorNotFound, id)
			}
			return nil, fmt.Errorf("failed to get competitor %s: %w", id, err)
		}

		var comp models.Competitor
		if err := json.Unmarshal([]byte(payload), &comp); err != nil {
			return nil, fmt.Errorf("failed to unmarshal competitor %s: %w", id, err)
		}
		competitors[id] = &comp
	}

	return &GetCompetitorsOutput{
		Competitors: competitors,
	}, nil
}

// ListCompetitors retrieves every competitor indexed in the pool set
func (r *redisRepository) ListCompetitors(ctx context.Context, input *ListCompetitorsInput) (*ListCompetitorsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.SMembers(ctx, competitorPoolKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list competitor pool: %w", err)
	}

	if len(ids) == 0 {
		return &ListCompetitorsOutput{
			Competitors: []*models.Competitor{},
		}, nil
	}

	batch, err := r.GetCompetitors(ctx, &GetCompetitorsInput{
		CompetitorIDs: ids,
	})
	if err != nil {
		return nil, err
	}

	competitors := make([]*models.Competitor, 0, len(batch.Competitors))
	for _, comp := range batch.Competitors {
		competitors = append(competitors, comp)
	}

	return &ListCompetitorsOutput{
		Competitors: competitors,
	}, nil
}

// ClaimCompetitor assigns ownership using an optimistic WATCH transaction so
// two concurrent claims on the same competitor cannot both succeed
func (r *redisRepository) ClaimCompetitor(ctx context.Context, input *ClaimCompetitorInput) error {
	if input == nil || input.CompetitorID == "" || input.TeamID == "" {
		return errors.New("input, competitor ID and team ID cannot be empty")
	}

	return r.setOwner(ctx, input.CompetitorID, input.TeamID)
}

// ReleaseCompetitor returns a competitor to the market, verifying the
// releasing team actually owns it
func (r *redisRepository) ReleaseCompetitor(ctx context.Context, input *ReleaseCompetitorInput) error {
	if input == nil || input.CompetitorID == "" || input.TeamID == "" {
		return errors.New("input, competitor ID and team ID cannot be empty")
	}

	key := competitorKeyPrefix + input.CompetitorID
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		comp, err := getWatched(ctx, tx, key)
		if err != nil {
			return err
		}

		if comp.OwnerTeamID != input.TeamID {
			return fmt.Errorf("%w: %s", ErrCompetitorNotOwned, input.CompetitorID)
		}

		comp.OwnerTeamID = ""
		return writeWatched(ctx, tx, key, comp)
	}, key)

	if err == redis.TxFailedErr {
		return fmt.Errorf("%w: %s", ErrCompetitorClaimed, input.CompetitorID)
	}
	return err
}

// setOwner runs the watched read-check-write for a claim
func (r *redisRepository) setOwner(ctx context.Context, competitorID, teamID string) error {
	key := competitorKeyPrefix + competitorID
	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		comp, err := getWatched(ctx, tx, key)
		if err != nil {
			return err
		}

		// A competitor the team already owns is a no-op claim (self-swap)
		if comp.OwnerTeamID == teamID {
			return nil
		}
		if comp.OwnerTeamID != "" {
			return fmt.Errorf("%w: %s owned by team %s", ErrCompetitorClaimed, competitorID, comp.OwnerTeamID)
		}

		comp.OwnerTeamID = teamID
		return writeWatched(ctx, tx, key, comp)
	}, key)

	if err == redis.TxFailedErr {
		// Lost the optimistic race to a concurrent writer
		return fmt.Errorf("%w: %s", ErrCompetitorClaimed, competitorID)
	}
	return err
}

// getWatched reads and unmarshals a competitor inside a WATCH transaction
func getWatched(ctx context.Context, tx *redis.Tx, key string) (*models.Competitor, error) {
	payload, err := tx.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCompetitorNotFound
		}
		return nil, fmt.Errorf("failed to get competitor: %w", err)
	}

	var comp models.Competitor
	if err := json.Unmarshal([]byte(payload), &comp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal competitor: %w", err)
	}
	return &comp, nil
}

// writeWatched marshals and writes a competitor inside the MULTI/EXEC leg
// of a WATCH transaction
func writeWatched(ctx context.Context, tx *redis.Tx, key string, comp *models.Competitor) error {
	payload, err := json.Marshal(comp)
	if err != nil {
		return fmt.Errorf("failed to marshal competitor: %w", err)
	}

	_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, payload, 0)
		return nil
	})
	return err
}
