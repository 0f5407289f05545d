package models

import (
	"time"
)

// RankMetric selects which points total a ranking is ordered by
type RankMetric string

const (
	// RankMetricCumulative orders by season total points
	RankMetricCumulative RankMetric = "cumulative"

	// RankMetricPeriod orders by the most recent gameweek's points
	RankMetricPeriod RankMetric = "period"
)

// Valid reports whether m is a known metric
func (m RankMetric) Valid() bool {
	return m == RankMetricCumulative || m == RankMetricPeriod
}

// TeamStanding is one row of a ranking
type TeamStanding struct {
	// Rank is the 1-based position in the ordering
	Rank int

	// TeamID is the ranked team
	TeamID string

	// Name is the team's display name
	Name string

	// CumulativePoints is the team's season total
	CumulativePoints float64

	// PeriodPoints is the team's most recent gameweek score
	PeriodPoints float64

	// CreatedAt is when the team was created, the final tiebreak
	CreatedAt time.Time
}
