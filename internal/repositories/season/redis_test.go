package season

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
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

func (s *RedisRepositoryTestSuite) TestMarkPeriodScored() {
	err := s.repo.MarkPeriodScored(context.Background(), &MarkPeriodScoredInput{
		Period: 1,
	})
	s.Require().NoError(err)

	scored, err := s.repo.IsPeriodScored(context.Background(), &IsPeriodScoredInput{
		Period: 1,
	})
	s.Require().NoError(err)
	s.True(scored)
}

func (s *RedisRepositoryTestSuite) TestMarkPeriodScoredTwiceRejected() {
	err := s.repo.MarkPeriodScored(context.Background(), &MarkPeriodScoredInput{
		Period: 1,
	})
	s.Require().NoError(err)

	err = s.repo.MarkPeriodScored(context.Background(), &MarkPeriodScoredInput{
		Period: 1,
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrPeriodAlreadyScored)
}

func (s *RedisRepositoryTestSuite) TestIsPeriodScoredUnscored() {
	scored, err := s.repo.IsPeriodScored(context.Background(), &IsPeriodScoredInput{
		Period: 7,
	})
	s.Require().NoError(err)
	s.False(scored)
}

func (s *RedisRepositoryTestSuite) TestDistinctPeriodsIndependent() {
	s.Require().NoError(s.repo.MarkPeriodScored(context.Background(), &MarkPeriodScoredInput{
		Period: 1,
	}))

	s.Require().NoError(s.repo.MarkPeriodScored(context.Background(), &MarkPeriodScoredInput{
		Period: 2,
	}))
}
