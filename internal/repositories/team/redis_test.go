package team

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gaffer/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 8, 10, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) newTeam(id, participantID string) *models.Team {
	return &models.Team{
		ID:            id,
		ParticipantID: participantID,
		Name:          "Team " + id,
		Starting:      []string{"gk1", "d1", "d2", "lw1", "rw1"},
		Bench:         []string{"d3", "lw2", "rw2"},
		CaptainID:     "lw1",
		ViceCaptainID: "rw1",
		Budget:        150,
		Transfers:     models.Transfers{Free: 1},
		Chips:         models.NewChipRecord(),
		CreatedAt:     s.testNow,
		UpdatedAt:     s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetTeam() {
	team := s.newTeam("team-1", "participant-1")

	err := s.repo.SaveTeam(context.Background(), &SaveTeamInput{Team: team})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetTeam(context.Background(), &GetTeamInput{
		TeamID: "team-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("team-1", retrieved.ID)
	s.Equal("participant-1", retrieved.ParticipantID)
	s.Equal([]string{"gk1", "d1", "d2", "lw1", "rw1"}, retrieved.Starting)
	s.Equal([]string{"d3", "lw2", "rw2"}, retrieved.Bench)
	s.Equal("lw1", retrieved.CaptainID)
	s.Equal(int64(150), retrieved.Budget)
	s.Equal(1, retrieved.Transfers.Free)
	s.False(retrieved.Chips.Used[models.ChipWildcard])
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentTeam() {
	_, err := s.repo.GetTeam(context.Background(), &GetTeamInput{
		TeamID: "missing",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrTeamNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetTeamByParticipant() {
	team := s.newTeam("team-1", "participant-1")
	err := s.repo.SaveTeam(context.Background(), &SaveTeamInput{Team: team})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetTeamByParticipant(context.Background(), &GetTeamByParticipantInput{
		ParticipantID: "participant-1",
	})
	s.Require().NoError(err)
	s.Equal("team-1", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestGetTeamByUnknownParticipant() {
	_, err := s.repo.GetTeamByParticipant(context.Background(), &GetTeamByParticipantInput{
		ParticipantID: "stranger",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrTeamNotFound)
}

func (s *RedisRepositoryTestSuite) TestListTeams() {
	s.Require().NoError(s.repo.SaveTeam(context.Background(), &SaveTeamInput{
		Team: s.newTeam("team-1", "participant-1"),
	}))
	s.Require().NoError(s.repo.SaveTeam(context.Background(), &SaveTeamInput{
		Team: s.newTeam("team-2", "participant-2"),
	}))

	out, err := s.repo.ListTeams(context.Background(), &ListTeamsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Teams, 2)

	byID := make(map[string]*models.Team, len(out.Teams))
	for _, t := range out.Teams {
		byID[t.ID] = t
	}
	s.Contains(byID, "team-1")
	s.Contains(byID, "team-2")
}

func (s *RedisRepositoryTestSuite) TestListTeamsEmpty() {
	out, err := s.repo.ListTeams(context.Background(), &ListTeamsInput{})
	s.Require().NoError(err)
	s.Empty(out.Teams)
}
