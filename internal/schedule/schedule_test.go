package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/gaffer/internal/models"
)

// fixedClock returns a preset time, so gate behavior is deterministic
type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type ScheduleTestSuite struct {
	suite.Suite
	gameweeks []models.Gameweek
	calendar  *Calendar
}

func (s *ScheduleTestSuite) SetupTest() {
	s.gameweeks = []models.Gameweek{
		{
			Number:     1,
			DeadlineAt: time.Date(2025, 8, 15, 11, 0, 0, 0, time.UTC),
			EndsAt:     time.Date(2025, 8, 17, 22, 0, 0, 0, time.UTC),
		},
		{
			Number:     2,
			DeadlineAt: time.Date(2025, 8, 22, 11, 0, 0, 0, time.UTC),
			EndsAt:     time.Date(2025, 8, 24, 22, 0, 0, 0, time.UTC),
		},
	}

	calendar, err := NewCalendar(s.gameweeks)
	s.Require().NoError(err)
	s.calendar = calendar
}

func TestScheduleTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleTestSuite))
}

func (s *ScheduleTestSuite) gateAt(now time.Time) *Gate {
	gate, err := NewGate(s.calendar, &fixedClock{now: now})
	s.Require().NoError(err)
	return gate
}

func (s *ScheduleTestSuite) TestEmptyCalendarRejected() {
	_, err := NewCalendar(nil)
	s.ErrorIs(err, ErrEmptyCalendar)
}

func (s *ScheduleTestSuite) TestDuplicateGameweekNumberRejected() {
	dup := append([]models.Gameweek{}, s.gameweeks...)
	dup[1].Number = 1

	_, err := NewCalendar(dup)
	s.ErrorIs(err, ErrInvalidGameweek)
}

func (s *ScheduleTestSuite) TestDeadlineAfterEndRejected() {
	bad := append([]models.Gameweek{}, s.gameweeks...)
	bad[0].DeadlineAt = bad[0].EndsAt.Add(time.Hour)

	_, err := NewCalendar(bad)
	s.ErrorIs(err, ErrInvalidGameweek)
}

func (s *ScheduleTestSuite) TestOverlappingGameweeksRejected() {
	bad := append([]models.Gameweek{}, s.gameweeks...)
	bad[1].DeadlineAt = bad[0].EndsAt.Add(-time.Hour)

	_, err := NewCalendar(bad)
	s.ErrorIs(err, ErrInvalidGameweek)
}

func (s *ScheduleTestSuite) TestOpenBeforeFirstDeadline() {
	gate := s.gateAt(time.Date(2025, 8, 10, 10, 0, 0, 0, time.UTC))

	status := gate.Status()
	s.False(status.Locked)
	s.Equal(ReasonWindowOpen, status.Reason)
	s.Equal(1, status.CurrentPeriod)
	s.Equal(s.gameweeks[0].DeadlineAt, status.NextTransition)
}

func (s *ScheduleTestSuite) TestLockedWhileGameweekRuns() {
	gate := s.gateAt(time.Date(2025, 8, 16, 12, 0, 0, 0, time.UTC))

	status := gate.Status()
	s.True(status.Locked)
	s.Equal(ReasonPeriodRunning, status.Reason)
	s.Equal(1, status.CurrentPeriod)
	s.Equal(s.gameweeks[0].EndsAt, status.NextTransition)
}

func (s *ScheduleTestSuite) TestLockedExactlyAtDeadline() {
	gate := s.gateAt(s.gameweeks[0].DeadlineAt)

	s.True(gate.Locked())
}

func (s *ScheduleTestSuite) TestOpenBetweenGameweeks() {
	gate := s.gateAt(time.Date(2025, 8, 19, 9, 0, 0, 0, time.UTC))

	status := gate.Status()
	s.False(status.Locked)
	s.Equal(2, status.CurrentPeriod)
	s.Equal(s.gameweeks[1].DeadlineAt, status.NextTransition)
}

func (s *ScheduleTestSuite) TestLockedAfterSeasonEnds() {
	gate := s.gateAt(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))

	status := gate.Status()
	s.True(status.Locked)
	s.Equal(ReasonSeasonComplete, status.Reason)
	s.Equal(2, status.CurrentPeriod)
	s.True(status.NextTransition.IsZero())
}

func (s *ScheduleTestSuite) TestLastEndedGameweek() {
	_, ended := s.calendar.LastEndedGameweek(time.Date(2025, 8, 10, 10, 0, 0, 0, time.UTC))
	s.False(ended)

	number, ended := s.calendar.LastEndedGameweek(time.Date(2025, 8, 19, 9, 0, 0, 0, time.UTC))
	s.True(ended)
	s.Equal(1, number)

	// A gameweek counts as ended at its exact end instant
	number, ended = s.calendar.LastEndedGameweek(s.gameweeks[0].EndsAt)
	s.True(ended)
	s.Equal(1, number)

	number, ended = s.calendar.LastEndedGameweek(time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC))
	s.True(ended)
	s.Equal(2, number)
}

func (s *ScheduleTestSuite) TestHasGameweek() {
	s.True(s.calendar.HasGameweek(1))
	s.True(s.calendar.HasGameweek(2))
	s.False(s.calendar.HasGameweek(3))
}
