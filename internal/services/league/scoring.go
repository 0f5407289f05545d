package league

import (
	"context"
	"sort"

	"github.com/KirkDiggler/gaffer/internal/models"
	competitorRepo "github.com/KirkDiggler/gaffer/internal/repositories/competitor"
	teamRepo "github.com/KirkDiggler/gaffer/internal/repositories/team"
	"github.com/KirkDiggler/gaffer/internal/rules"
)

// settleTeam computes a team's points for the closed gameweek against its
// prefetched squad and persists the settled record: points totals, reset
// transfer counters, and the chip transition from active to used.
func (s *service) settleTeam(ctx context.Context, team *models.Team, squad map[string]*models.Competitor, stats map[string]models.RawStats) (float64, error) {
	points := s.scoreTeam(team, squad, stats)

	team.LastPeriodPoints = points
	team.CumulativePoints = rules.Round1(team.CumulativePoints + points)

	// The new gameweek starts with the baseline transfer allotment
	team.Transfers = models.Transfers{
		Free: s.rules.FreeTransfersPerPeriod,
	}

	// An active chip has now served its one gameweek and can never be
	// activated again
	if team.Chips.Active != "" {
		team.Chips.Used[team.Chips.Active] = true
		team.Chips.Active = ""
		team.Chips.PriorFree = 0
		team.Chips.PriorCost = 0
	}

	team.UpdatedAt = s.clock.Now()

	if err := s.teamRepo.SaveTeam(ctx, &teamRepo.SaveTeamInput{Team: team}); err != nil {
		return 0, err
	}

	return points, nil
}

// scoreTeam converts a gameweek's raw statistics into the team's period
// points: position-weighted base scores, leadership multipliers, bench
// inclusion when boosted, minus the accumulated transfer penalty. Pure.
func (s *service) scoreTeam(team *models.Team, squad map[string]*models.Competitor, stats map[string]models.RawStats) float64 {
	captainMult, viceMult := leadershipMultipliers(team, stats)

	multiplier := func(id string) float64 {
		switch id {
		case team.CaptainID:
			return captainMult
		case team.ViceCaptainID:
			return viceMult
		default:
			return 1
		}
	}

	var total float64
	for _, id := range team.Starting {
		comp, ok := squad[id]
		if !ok {
			continue
		}
		base := s.rules.CompetitorScore(comp.Position, stats[id])
		total += rules.Round1(base * multiplier(id))
	}

	// Bench scores count toward the total only under an active bench boost
	if team.Chips.Active == models.ChipBenchBoost {
		for _, id := range team.Bench {
			comp, ok := squad[id]
			if !ok {
				continue
			}
			base := s.rules.CompetitorScore(comp.Position, stats[id])
			total += rules.Round1(base * multiplier(id))
		}
	}

	total -= team.Transfers.Cost

	return rules.Round1(total)
}

// leadershipMultipliers evaluates the captaincy rules for the gameweek.
// Precedence: triple-captain boost, then both leaders played (1.5x each),
// then the standard captain double, then vice-captain promotion when the
// captain sat out.
func leadershipMultipliers(team *models.Team, stats map[string]models.RawStats) (float64, float64) {
	captainPlayed := stats[team.CaptainID].Played
	vicePlayed := stats[team.ViceCaptainID].Played

	switch {
	case team.Chips.Active == models.ChipTripleCaptain:
		return 3, 1
	case captainPlayed && vicePlayed:
		return 1.5, 1.5
	case captainPlayed:
		return 2, 1
	case vicePlayed:
		return 1, 2
	default:
		return 1, 1
	}
}

// fetchScoredCompetitors retrieves the competitor records named by a
// gameweek's stat lines, ahead of the scored marker
func (s *service) fetchScoredCompetitors(ctx context.Context, stats map[string]models.RawStats) (map[string]*models.Competitor, error) {
	if len(stats) == 0 {
		return nil, nil
	}
	return s.fetchSquad(ctx, sortedStatIDs(stats))
}

// settleCompetitorTotals folds a gameweek's raw statistics into each
// prefetched competitor's season record
func (s *service) settleCompetitorTotals(ctx context.Context, comps map[string]*models.Competitor, stats map[string]models.RawStats) error {
	for _, id := range sortedStatIDs(stats) {
		comp, ok := comps[id]
		if !ok {
			continue
		}
		line := stats[id]

		comp.LastScore = s.rules.CompetitorScore(comp.Position, line)
		comp.Season.Goals += line.Goals
		comp.Season.Assists += line.Assists
		comp.Season.Saves += line.Saves
		comp.Season.OwnGoals += line.OwnGoals
		if line.CleanSheet {
			comp.Season.CleanSheets++
		}
		if line.Played {
			comp.Season.Appearances++
		}
		comp.Season.Points = rules.Round1(comp.Season.Points + comp.LastScore)

		if err := s.competitorRepo.SaveCompetitor(ctx, &competitorRepo.SaveCompetitorInput{
			Competitor: comp,
		}); err != nil {
			return err
		}
	}

	return nil
}

// sortedStatIDs returns the stat line keys in a stable order
func sortedStatIDs(stats map[string]models.RawStats) []string {
	ids := make([]string, 0, len(stats))
	for id := range stats {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
