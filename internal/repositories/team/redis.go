package team

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
	teamKeyPrefix        = "team:"
	participantKeyPrefix = "participant_team:"
	teamIndexKey         = "teams"
)

// ErrTeamNotFound is returned when a team is not found
var ErrTeamNotFound = errors.New("team not found")

// Config holds configuration for the Redis team repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed team repository
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

// SaveTeam persists a team to Redis, maintaining the participant index and
// the team set
func (r *redisRepository) SaveTeam(ctx context.Context, input *SaveTeamInput) error {
	if input == nil || input.Team == nil {
		return errors.New("input and team cannot be nil")
	}

	t := input.Team
	if t.ID == "" {
		return errors.New("team ID cannot be empty")
	}
	if t.ParticipantID == "" {
		return errors.New("participant ID cannot be empty")
	}

	payload, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to marshal team: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, teamKeyPrefix+t.ID, payload, 0)
	pipe.Set(ctx, participantKeyPrefix+t.ParticipantID, t.ID, 0)
	pipe.SAdd(ctx, teamIndexKey, t.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save team: %w", err)
	}

	return nil
}

// GetTeam retrieves a team by ID from Redis
func (r *redisRepository) GetTeam(ctx context.Context, input *GetTeamInput) (*models.Team, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID cannot be empty")
	}

	payload, err := r.client.Get(ctx, teamKeyPrefix+input.TeamID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	var t models.Team
	if err := json.Unmarshal([]byte(payload), &t); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team: %w", err)
	}

	return &t, nil
}

// GetTeamByParticipant retrieves a participant's team via the participant
// index
func (r *redisRepository) GetTeamByParticipant(ctx context.Context, input *GetTeamByParticipantInput) (*models.Team, error) {
	if input == nil || input.ParticipantID == "" {
		return nil, errors.New("input and participant ID cannot be empty")
	}

	teamID, err := r.client.Get(ctx, participantKeyPrefix+input.ParticipantID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get participant team: %w", err)
	}

	return r.GetTeam(ctx, &GetTeamInput{TeamID: teamID})
}

// ListTeams retrieves every team indexed in the team set
func (r *redisRepository) ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.SMembers(ctx, teamIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	if len(ids) == 0 {
		return &ListTeamsOutput{
			Teams: []*models.Team{},
		}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(ids))
	for _, id := range ids {
		commands[id] = pipe.Get(ctx, teamKeyPrefix+id)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get teams: %w", err)
	}

	teams := make([]*models.Team, 0, len(ids))
	for id, cmd := range commands {
		payload, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Team removed between listing and fetching
				continue
			}
			return nil, fmt.Errorf("failed to get team %s: %w", id, err)
		}

		var t models.Team
		if err := json.Unmarshal([]byte(payload), &t); err != nil {
			return nil, fmt.Errorf("failed to unmarshal team %s: %w", id, err)
		}
		teams = append(teams, &t)
	}

	return &ListTeamsOutput{
		Teams: teams,
	}, nil
}
