package competitor

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gaffer/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) saveCompetitor(id string, pos models.Position, price int64, owner string) {
	err := s.repo.SaveCompetitor(context.Background(), &SaveCompetitorInput{
		Competitor: &models.Competitor{
			ID:          id,
			Name:        "Competitor " + id,
			Position:    pos,
			Price:       price,
			OwnerTeamID: owner,
		},
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetCompetitor() {
	s.saveCompetitor("comp-1", models.PositionGoalkeeper, 55, "team-1")

	retrieved, err := s.repo.GetCompetitor(context.Background(), &GetCompetitorInput{
		CompetitorID: "comp-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("comp-1", retrieved.ID)
	s.Equal(models.PositionGoalkeeper, retrieved.Position)
	s.Equal(int64(55), retrieved.Price)
	s.Equal("team-1", retrieved.OwnerTeamID)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentCompetitor() {
	_, err := s.repo.GetCompetitor(context.Background(), &GetCompetitorInput{
		CompetitorID: "missing",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrCompetitorNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetCompetitorsBatch() {
	s.saveCompetitor("comp-1", models.PositionDefender, 40, "")
	s.saveCompetitor("comp-2", models.PositionWingerLeft, 80, "")

	out, err := s.repo.GetCompetitors(context.Background(), &GetCompetitorsInput{
		CompetitorIDs: []string{"comp-1", "comp-2"},
	})
	s.Require().NoError(err)
	s.Require().Len(out.Competitors, 2)
	s.Equal(models.PositionDefender, out.Competitors["comp-1"].Position)
	s.Equal(models.PositionWingerLeft, out.Competitors["comp-2"].Position)
}

func (s *RedisRepositoryTestSuite) TestGetCompetitorsBatchMissingMember() {
	s.saveCompetitor("comp-1", models.PositionDefender, 40, "")

	_, err := s.repo.GetCompetitors(context.Background(), &GetCompetitorsInput{
		CompetitorIDs: []string{"comp-1", "missing"},
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrCompetitorNotFound)
}

func (s *RedisRepositoryTestSuite) TestListCompetitors() {
	s.saveCompetitor("comp-1", models.PositionDefender, 40, "")
	s.saveCompetitor("comp-2", models.PositionWingerLeft, 80, "team-1")

	out, err := s.repo.ListCompetitors(context.Background(), &ListCompetitorsInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Competitors, 2)
}

func (s *RedisRepositoryTestSuite) TestClaimCompetitor() {
	s.saveCompetitor("comp-1", models.PositionDefender, 40, "")

	err := s.repo.ClaimCompetitor(context.Background(), &ClaimCompetitorInput{
		CompetitorID: "comp-1",
		TeamID:       "team-1",
	})
	s.Require().NoError(err)

	claimed, err := s.repo.GetCompetitor(context.Background(), &GetCompetitorInput{
		CompetitorID: "comp-1",
	})
	s.Require().NoError(err)
	s.Equal("team-1", claimed.OwnerTeamID)
}

func (s *RedisRepositoryTestSuite) TestClaimOwnedCompetitorRejected() {
	s.saveCompetitor("comp-1", models.PositionDefender, 40, "team-1")

	err := s.repo.ClaimCompetitor(context.Background(), &ClaimCompetitorInput{
		CompetitorID: "comp-1",
		TeamID:       "team-2",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrCompetitorClaimed)

	// The losing claim leaves ownership untouched
	unchanged, err := s.repo.GetCompetitor(context.Background(), &GetCompetitorInput{
		CompetitorID: "comp-1",
	})
	s.Require().NoError(err)
	s.Equal("team-1", unchanged.OwnerTeamID)
}

func (s *RedisRepositoryTestSuite) TestClaimByCurrentOwnerIsNoOp() {
	s.saveCompetitor("comp-1", models.PositionDefender, 40, "team-1")

	err := s.repo.ClaimCompetitor(context.Background(), &ClaimCompetitorInput{
		CompetitorID: "comp-1",
		TeamID:       "team-1",
	})
	s.NoError(err)
}

func (s *RedisRepositoryTestSuite) TestClaimMissingCompetitor() {
	err := s.repo.ClaimCompetitor(context.Background(), &ClaimCompetitorInput{
		CompetitorID: "missing",
		TeamID:       "team-1",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrCompetitorNotFound)
}

func (s *RedisRepositoryTestSuite) TestReleaseCompetitor() {
	s.saveCompetitor("comp-1", models.PositionDefender, 40, "team-1")

	err := s.repo.ReleaseCompetitor(context.Background(), &ReleaseCompetitorInput{
		CompetitorID: "comp-1",
		TeamID:       "team-1",
	})
	s.Require().NoError(err)

	released, err := s.repo.GetCompetitor(context.Background(), &GetCompetitorInput{
		CompetitorID: "comp-1",
	})
	s.Require().NoError(err)
	s.Equal("", released.OwnerTeamID)
}

func (s *RedisRepositoryTestSuite) TestReleaseByNonOwnerRejected() {
	s.saveCompetitor("comp-1", models.PositionDefender, 40, "team-1")

	err := s.repo.ReleaseCompetitor(context.Background(), &ReleaseCompetitorInput{
		CompetitorID: "comp-1",
		TeamID:       "team-2",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrCompetitorNotOwned)
}

func (s *RedisRepositoryTestSuite) TestConcurrentClaimsOnlyOneWins() {
	s.saveCompetitor("comp-1", models.PositionDefender, 40, "")

	err1 := s.repo.ClaimCompetitor(context.Background(), &ClaimCompetitorInput{
		CompetitorID: "comp-1",
		TeamID:       "team-1",
	})
	err2 := s.repo.ClaimCompetitor(context.Background(), &ClaimCompetitorInput{
		CompetitorID: "comp-1",
		TeamID:       "team-2",
	})

	s.Require().NoError(err1)
	s.Require().Error(err2)
	s.ErrorIs(err2, ErrCompetitorClaimed)

	final, err := s.repo.GetCompetitor(context.Background(), &GetCompetitorInput{
		CompetitorID: "comp-1",
	})
	s.Require().NoError(err)
	s.Equal("team-1", final.OwnerTeamID)
}
