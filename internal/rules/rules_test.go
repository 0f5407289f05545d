package rules

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gaffer/internal/models"
)

type RulesTestSuite struct {
	suite.Suite
	rules *Ruleset
}

func (s *RulesTestSuite) SetupTest() {
	s.rules = Default()
}

func TestRulesTestSuite(t *testing.T) {
	suite.Run(t, new(RulesTestSuite))
}

// newCompetitor builds a test competitor
func newCompetitor(id string, pos models.Position, price int64, owner string) *models.Competitor {
	return &models.Competitor{
		ID:          id,
		Name:        "Competitor " + id,
		Position:    pos,
		Price:       price,
		OwnerTeamID: owner,
	}
}

// validCandidate builds a squad that satisfies every rule: total price 850
// against the default budget of 1000
func (s *RulesTestSuite) validCandidate() *SquadCandidate {
	return &SquadCandidate{
		Starting: []*models.Competitor{
			newCompetitor("gk1", models.PositionGoalkeeper, 100, ""),
			newCompetitor("d1", models.PositionDefender, 100, ""),
			newCompetitor("d2", models.PositionDefender, 100, ""),
			newCompetitor("lw1", models.PositionWingerLeft, 150, ""),
			newCompetitor("rw1", models.PositionWingerRight, 150, ""),
		},
		Bench: []*models.Competitor{
			newCompetitor("d3", models.PositionDefender, 50, ""),
			newCompetitor("lw2", models.PositionWingerLeft, 100, ""),
			newCompetitor("rw2", models.PositionWingerRight, 100, ""),
		},
		CaptainID:     "lw1",
		ViceCaptainID: "rw1",
		BudgetLimit:   1000,
	}
}

func (s *RulesTestSuite) TestValidSquad() {
	s.NoError(s.rules.ValidateSquad(s.validCandidate()))
}

func (s *RulesTestSuite) TestDuplicateCompetitor() {
	candidate := s.validCandidate()
	candidate.Bench[0] = candidate.Starting[1]

	err := s.rules.ValidateSquad(candidate)
	s.Require().Error(err)
	s.ErrorIs(err, ErrDuplicateCompetitor)
	s.Contains(err.Error(), "d1")
}

func (s *RulesTestSuite) TestCompetitorOwnedByAnotherTeam() {
	candidate := s.validCandidate()
	candidate.Starting[0] = newCompetitor("gk1", models.PositionGoalkeeper, 100, "other-team")

	err := s.rules.ValidateSquad(candidate)
	s.Require().Error(err)
	s.ErrorIs(err, ErrCompetitorUnavailable)
}

func (s *RulesTestSuite) TestSelfOwnedCompetitorAllowed() {
	// A team mutating its own roster keeps its current competitors
	candidate := s.validCandidate()
	candidate.OwnerTeamID = "my-team"
	for _, comp := range candidate.Starting {
		comp.OwnerTeamID = "my-team"
	}

	s.NoError(s.rules.ValidateSquad(candidate))
}

func (s *RulesTestSuite) TestFormationWrongSize() {
	candidate := s.validCandidate()
	candidate.Starting = candidate.Starting[:4]

	err := s.rules.ValidateSquad(candidate)
	s.Require().Error(err)
	s.ErrorIs(err, ErrFormationInvalid)
}

func (s *RulesTestSuite) TestFormationWrongPositionCounts() {
	// Two goalkeepers and one defender: size is right, counts are not,
	// and uniqueness and budget both pass
	candidate := s.validCandidate()
	candidate.Starting[1] = newCompetitor("gk9", models.PositionGoalkeeper, 100, "")

	err := s.rules.ValidateSquad(candidate)
	s.Require().Error(err)
	s.ErrorIs(err, ErrFormationInvalid)
}

func (s *RulesTestSuite) TestBenchWrongBucketSplit() {
	// Three attacking substitutes instead of one defensive and two attacking
	candidate := s.validCandidate()
	candidate.Bench[0] = newCompetitor("lw9", models.PositionWingerLeft, 50, "")

	err := s.rules.ValidateSquad(candidate)
	s.Require().Error(err)
	s.ErrorIs(err, ErrBenchInvalid)
}

func (s *RulesTestSuite) TestCaptainNotInSquad() {
	candidate := s.validCandidate()
	candidate.CaptainID = "stranger"

	err := s.rules.ValidateSquad(candidate)
	s.Require().Error(err)
	s.ErrorIs(err, ErrCaptainInvalid)
}

func (s *RulesTestSuite) TestCaptainEqualsViceCaptain() {
	candidate := s.validCandidate()
	candidate.ViceCaptainID = candidate.CaptainID

	err := s.rules.ValidateSquad(candidate)
	s.Require().Error(err)
	s.ErrorIs(err, ErrCaptainInvalid)
}

func (s *RulesTestSuite) TestBudgetExceeded() {
	candidate := s.validCandidate()
	candidate.BudgetLimit = 849

	err := s.rules.ValidateSquad(candidate)
	s.Require().Error(err)
	s.ErrorIs(err, ErrBudgetExceeded)
	s.Contains(err.Error(), "cost=850")
}

func (s *RulesTestSuite) TestCompetitorScoreDidNotPlay() {
	score := s.rules.CompetitorScore(models.PositionGoalkeeper, models.RawStats{
		Goals:      2,
		CleanSheet: true,
		Played:     false,
	})
	s.Equal(0.0, score)
}

func (s *RulesTestSuite) TestCompetitorScoreGoalkeeperTier() {
	// Highest tier: a single goal is worth 10
	score := s.rules.CompetitorScore(models.PositionGoalkeeper, models.RawStats{
		Goals:  1,
		Played: true,
	})
	s.Equal(10.0, score)
}

func (s *RulesTestSuite) TestCompetitorScoreDefenderCleanSheet() {
	// 1 goal (6) + 2 assists (6) + 1 save (0.5) + clean sheet (4) = 16.5
	score := s.rules.CompetitorScore(models.PositionDefender, models.RawStats{
		Goals:      1,
		Assists:    2,
		Saves:      1,
		CleanSheet: true,
		Played:     true,
	})
	s.Equal(16.5, score)
}

func (s *RulesTestSuite) TestCompetitorScoreWingerNoCleanSheetBonus() {
	// Wingers never receive the clean sheet bonus
	score := s.rules.CompetitorScore(models.PositionWingerLeft, models.RawStats{
		Goals:      1,
		CleanSheet: true,
		Played:     true,
	})
	s.Equal(4.0, score)
}

func (s *RulesTestSuite) TestCompetitorScoreOwnGoalsCanGoNegative() {
	score := s.rules.CompetitorScore(models.PositionWingerRight, models.RawStats{
		OwnGoals: 2,
		Played:   true,
	})
	s.Equal(-4.0, score)
}

func (s *RulesTestSuite) TestRound1() {
	s.Equal(1.3, Round1(1.25))
	s.Equal(1.2, Round1(1.24))
	s.Equal(-1.3, Round1(-1.25))
	s.Equal(0.0, Round1(0))
}

func (s *RulesTestSuite) TestSquadSizes() {
	s.Equal(5, s.rules.StartingSize())
	s.Equal(3, s.rules.BenchSize())
}
