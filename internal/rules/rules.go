// Package rules holds the competition's fixed configuration — formation
// counts, position buckets, stat weight tables, budget and transfer
// parameters — and the pure squad-validation and scoring math built on it.
// Both team creation and every transfer validate through this package so no
// call site carries its own copy of the constants.
package rules

import (
	"errors"
	"fmt"
	"math"

	"github.com/KirkDiggler/gaffer/internal/models"
)

// Validation errors. Callers branch with errors.Is; the wrapped message
// carries the offending IDs or amounts.
var (
	ErrDuplicateCompetitor   = errors.New("duplicate competitor in squad")
	ErrCompetitorUnavailable = errors.New("competitor already owned")
	ErrFormationInvalid      = errors.New("starting formation invalid")
	ErrBenchInvalid          = errors.New("bench composition invalid")
	ErrCaptainInvalid        = errors.New("captain selection invalid")
	ErrBudgetExceeded        = errors.New("budget cap exceeded")
)

// UnlimitedFreeTransfers is the sentinel free-transfer count set by the
// transfer-relaxation chips
const UnlimitedFreeTransfers = 1 << 20

// StatWeights holds the per-stat point values for one position tier
type StatWeights struct {
	Goal   float64
	Assist float64
	Save   float64
}

// Ruleset is the single configuration structure consumed by squad
// validation and the scoring engine
type Ruleset struct {
	// InitialBudget is the budget every team starts with, in tenths
	InitialBudget int64

	// StartingCounts is the exact per-position requirement for the
	// starting five
	StartingCounts map[models.Position]int

	// BenchCounts is the exact per-bucket requirement for the bench three
	BenchCounts map[models.Bucket]int

	// FreeTransfersPerPeriod is the penalty-free allotment each gameweek
	FreeTransfersPerPeriod int

	// TransferPenalty is the point cost of each transfer beyond the
	// free allotment
	TransferPenalty float64

	// Weights maps each position to its stat weight tier
	Weights map[models.Position]StatWeights

	// CleanSheetBonus is awarded per clean sheet, by position
	CleanSheetBonus map[models.Position]float64

	// OwnGoalPenalty is subtracted per own goal, uniform across positions
	OwnGoalPenalty float64
}

// Default returns the competition's standard ruleset: an 8-player squad
// (five starters, three substitutes), a 100.0 budget, one free transfer per
// gameweek with a 4-point penalty thereafter, and three weight tiers
// (goalkeeper, defender, winger).
func Default() *Ruleset {
	return &Ruleset{
		InitialBudget: 1000,
		StartingCounts: map[models.Position]int{
			models.PositionGoalkeeper:  1,
			models.PositionDefender:    2,
			models.PositionWingerLeft:  1,
			models.PositionWingerRight: 1,
		},
		BenchCounts: map[models.Bucket]int{
			models.BucketDefensive: 1,
			models.BucketAttacking: 2,
		},
		FreeTransfersPerPeriod: 1,
		TransferPenalty:        4,
		Weights: map[models.Position]StatWeights{
			models.PositionGoalkeeper:  {Goal: 10, Assist: 4, Save: 2},
			models.PositionDefender:    {Goal: 6, Assist: 3, Save: 0.5},
			models.PositionWingerLeft:  {Goal: 4, Assist: 2, Save: 0},
			models.PositionWingerRight: {Goal: 4, Assist: 2, Save: 0},
		},
		CleanSheetBonus: map[models.Position]float64{
			models.PositionGoalkeeper: 4,
			models.PositionDefender:   4,
		},
		OwnGoalPenalty: 2,
	}
}

// StartingSize returns the number of starting slots
func (r *Ruleset) StartingSize() int {
	total := 0
	for _, n := range r.StartingCounts {
		total += n
	}
	return total
}

// BenchSize returns the number of bench slots
func (r *Ruleset) BenchSize() int {
	total := 0
	for _, n := range r.BenchCounts {
		total += n
	}
	return total
}

// SquadCandidate is a proposed squad handed to ValidateSquad. For team
// creation OwnerTeamID is empty; for a transfer it is the mutating team,
// which allows competitors the team already owns (self-swap).
type SquadCandidate struct {
	Starting      []*models.Competitor
	Bench         []*models.Competitor
	CaptainID     string
	ViceCaptainID string
	BudgetLimit   int64
	OwnerTeamID   string
}

// ValidateSquad applies the composition rules in order: uniqueness,
// availability, starting formation, bench buckets, leadership, budget.
// The first failure wins; nothing is mutated.
func (r *Ruleset) ValidateSquad(c *SquadCandidate) error {
	all := make([]*models.Competitor, 0, len(c.Starting)+len(c.Bench))
	all = append(all, c.Starting...)
	all = append(all, c.Bench...)

	// Rule 1: no duplicate competitors across starting and bench
	seen := make(map[string]struct{}, len(all))
	for _, comp := range all {
		if _, dup := seen[comp.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCompetitor, comp.ID)
		}
		seen[comp.ID] = struct{}{}
	}

	// Rule 2: every competitor is on the market or already ours
	for _, comp := range all {
		if comp.OwnerTeamID != "" && comp.OwnerTeamID != c.OwnerTeamID {
			return fmt.Errorf("%w: %s owned by team %s", ErrCompetitorUnavailable, comp.ID, comp.OwnerTeamID)
		}
	}

	// Rule 3: starting slots match the exact formation counts
	if len(c.Starting) != r.StartingSize() {
		return fmt.Errorf("%w: expected %d starters, got %d", ErrFormationInvalid, r.StartingSize(), len(c.Starting))
	}
	startingByPos := make(map[models.Position]int)
	for _, comp := range c.Starting {
		startingByPos[comp.Position]++
	}
	for pos, want := range r.StartingCounts {
		if startingByPos[pos] != want {
			return fmt.Errorf("%w: position %s requires %d, got %d", ErrFormationInvalid, pos, want, startingByPos[pos])
		}
	}

	// Rule 4: bench slots match the per-bucket counts
	if len(c.Bench) != r.BenchSize() {
		return fmt.Errorf("%w: expected %d substitutes, got %d", ErrBenchInvalid, r.BenchSize(), len(c.Bench))
	}
	benchByBucket := make(map[models.Bucket]int)
	for _, comp := range c.Bench {
		benchByBucket[comp.Position.Bucket()]++
	}
	for bucket, want := range r.BenchCounts {
		if benchByBucket[bucket] != want {
			return fmt.Errorf("%w: bucket %s requires %d, got %d", ErrBenchInvalid, bucket, want, benchByBucket[bucket])
		}
	}

	// Rule 5: captain and vice-captain are distinct squad members
	if c.CaptainID == "" || c.ViceCaptainID == "" {
		return fmt.Errorf("%w: captain and vice-captain are required", ErrCaptainInvalid)
	}
	if c.CaptainID == c.ViceCaptainID {
		return fmt.Errorf("%w: captain and vice-captain must differ: %s", ErrCaptainInvalid, c.CaptainID)
	}
	if _, ok := seen[c.CaptainID]; !ok {
		return fmt.Errorf("%w: captain %s is not in the squad", ErrCaptainInvalid, c.CaptainID)
	}
	if _, ok := seen[c.ViceCaptainID]; !ok {
		return fmt.Errorf("%w: vice-captain %s is not in the squad", ErrCaptainInvalid, c.ViceCaptainID)
	}

	// Rule 6: total price within the budget limit
	var totalCost int64
	for _, comp := range all {
		totalCost += comp.Price
	}
	if totalCost > c.BudgetLimit {
		return fmt.Errorf("%w: limit=%d cost=%d", ErrBudgetExceeded, c.BudgetLimit, totalCost)
	}

	return nil
}

// CompetitorScore converts a finalized stat line into a base point value
// for the given position, rounded to one decimal. Competitors that did not
// play contribute zero.
func (r *Ruleset) CompetitorScore(pos models.Position, stats models.RawStats) float64 {
	if !stats.Played {
		return 0
	}

	weights := r.Weights[pos]
	score := float64(stats.Goals)*weights.Goal +
		float64(stats.Assists)*weights.Assist +
		float64(stats.Saves)*weights.Save
	if stats.CleanSheet {
		score += r.CleanSheetBonus[pos]
	}
	score -= float64(stats.OwnGoals) * r.OwnGoalPenalty

	return Round1(score)
}

// Round1 rounds to one decimal place using standard rounding
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}
