// Package schedule holds the competition calendar and the window gate that
// decides whether roster mutation is currently permitted. The gate is a pure
// function of an injected clock, so lock behavior is testable without
// waiting for real time.
package schedule

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/KirkDiggler/gaffer/internal/common/clock"
	"github.com/KirkDiggler/gaffer/internal/models"
)

// Define errors
var (
	ErrEmptyCalendar   = errors.New("calendar requires at least one gameweek")
	ErrInvalidGameweek = errors.New("invalid gameweek definition")
	ErrNilClock        = errors.New("clock cannot be nil")
)

// Window state reasons reported by Status
const (
	ReasonWindowOpen     = "transfer window open"
	ReasonPeriodRunning  = "gameweek in progress"
	ReasonSeasonComplete = "season complete"
)

// Calendar is the fixed list of gameweeks for a season
type Calendar struct {
	gameweeks []models.Gameweek
}

// NewCalendar validates and orders the season's gameweeks. Numbers must be
// unique, deadlines must precede their gameweek's end, and gameweeks must
// not overlap.
func NewCalendar(gameweeks []models.Gameweek) (*Calendar, error) {
	if len(gameweeks) == 0 {
		return nil, ErrEmptyCalendar
	}

	ordered := append([]models.Gameweek(nil), gameweeks...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Number < ordered[j].Number
	})

	for i, gw := range ordered {
		if gw.Number <= 0 {
			return nil, fmt.Errorf("%w: gameweek number %d", ErrInvalidGameweek, gw.Number)
		}
		if !gw.DeadlineAt.Before(gw.EndsAt) {
			return nil, fmt.Errorf("%w: gameweek %d deadline not before end", ErrInvalidGameweek, gw.Number)
		}
		if i > 0 {
			prev := ordered[i-1]
			if gw.Number == prev.Number {
				return nil, fmt.Errorf("%w: duplicate gameweek number %d", ErrInvalidGameweek, gw.Number)
			}
			if gw.DeadlineAt.Before(prev.EndsAt) {
				return nil, fmt.Errorf("%w: gameweek %d overlaps gameweek %d", ErrInvalidGameweek, gw.Number, prev.Number)
			}
		}
	}

	return &Calendar{gameweeks: ordered}, nil
}

// Gameweeks returns the ordered gameweeks
func (c *Calendar) Gameweeks() []models.Gameweek {
	return append([]models.Gameweek(nil), c.gameweeks...)
}

// HasGameweek reports whether the calendar defines the given number
func (c *Calendar) HasGameweek(number int) bool {
	for _, gw := range c.gameweeks {
		if gw.Number == number {
			return true
		}
	}
	return false
}

// LastEndedGameweek returns the number of the most recently ended gameweek
// at the given time, false when no gameweek has ended yet
func (c *Calendar) LastEndedGameweek(now time.Time) (int, bool) {
	number, ended := 0, false
	for _, gw := range c.gameweeks {
		if !gw.EndsAt.After(now) {
			number, ended = gw.Number, true
		}
	}
	return number, ended
}

// Gate reports the window state for a calendar at the injected clock's now
type Gate struct {
	calendar *Calendar
	clock    clock.Clock
}

// NewGate creates a window gate over the calendar
func NewGate(calendar *Calendar, clk clock.Clock) (*Gate, error) {
	if calendar == nil {
		return nil, ErrEmptyCalendar
	}
	if clk == nil {
		return nil, ErrNilClock
	}
	return &Gate{calendar: calendar, clock: clk}, nil
}

// Calendar returns the gate's calendar
func (g *Gate) Calendar() *Calendar {
	return g.calendar
}

// Status reports whether roster mutation is permitted right now, which
// gameweek mutations apply to, and when the state next changes.
//
// Before a gameweek's deadline the window is open and mutations target that
// gameweek. Between deadline and end the window is locked while matches run.
// After the final gameweek ends the window stays locked for the season.
func (g *Gate) Status() models.WindowStatus {
	now := g.clock.Now()

	for _, gw := range g.calendar.gameweeks {
		if now.Before(gw.DeadlineAt) {
			return models.WindowStatus{
				Locked:         false,
				Reason:         ReasonWindowOpen,
				CurrentPeriod:  gw.Number,
				NextTransition: gw.DeadlineAt,
			}
		}
		if now.Before(gw.EndsAt) {
			return models.WindowStatus{
				Locked:         true,
				Reason:         ReasonPeriodRunning,
				CurrentPeriod:  gw.Number,
				NextTransition: gw.EndsAt,
			}
		}
	}

	last := g.calendar.gameweeks[len(g.calendar.gameweeks)-1]
	return models.WindowStatus{
		Locked:         true,
		Reason:         ReasonSeasonComplete,
		CurrentPeriod:  last.Number,
		NextTransition: time.Time{},
	}
}

// Locked reports whether roster mutation is currently rejected
func (g *Gate) Locked() bool {
	return g.Status().Locked
}
