package league

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/KirkDiggler/gaffer/internal/common/clock"
	"github.com/KirkDiggler/gaffer/internal/common/uuid"
	"github.com/KirkDiggler/gaffer/internal/models"
	competitorRepo "github.com/KirkDiggler/gaffer/internal/repositories/competitor"
	seasonRepo "github.com/KirkDiggler/gaffer/internal/repositories/season"
	teamRepo "github.com/KirkDiggler/gaffer/internal/repositories/team"
	"github.com/KirkDiggler/gaffer/internal/rules"
	"github.com/KirkDiggler/gaffer/internal/schedule"
)

// Config holds the dependencies for the league service
type Config struct {
	CompetitorRepo competitorRepo.Repository
	TeamRepo       teamRepo.Repository
	SeasonRepo     seasonRepo.Repository
	Gate           *schedule.Gate
	Rules          *rules.Ruleset
	Clock          clock.Clock
	UUID           uuid.UUID
}

// service implements the Service interface
type service struct {
	competitorRepo competitorRepo.Repository
	teamRepo       teamRepo.Repository
	seasonRepo     seasonRepo.Repository
	gate           *schedule.Gate
	rules          *rules.Ruleset
	clock          clock.Clock
	uuid           uuid.UUID
}

// New creates a new league service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.CompetitorRepo == nil {
		return nil, ErrNilCompetitorRepo
	}
	if cfg.TeamRepo == nil {
		return nil, ErrNilTeamRepo
	}
	if cfg.SeasonRepo == nil {
		return nil, ErrNilSeasonRepo
	}
	if cfg.Gate == nil {
		return nil, ErrNilGate
	}
	if cfg.Rules == nil {
		return nil, ErrNilRules
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		competitorRepo: cfg.CompetitorRepo,
		teamRepo:       cfg.TeamRepo,
		seasonRepo:     cfg.SeasonRepo,
		gate:           cfg.Gate,
		rules:          cfg.Rules,
		clock:          cfg.Clock,
		uuid:           cfg.UUID,
	}, nil
}

// CreateTeam assembles a participant's roster, validating composition and
// budget and claiming every competitor
func (s *service) CreateTeam(ctx context.Context, input *CreateTeamInput) (*CreateTeamOutput, error) {
	if input == nil || input.ParticipantID == "" || input.Name == "" {
		return nil, errors.New("input, participant ID and name are required")
	}

	// Reject a second team for the same participant
	existing, err := s.teamRepo.GetTeamByParticipant(ctx, &teamRepo.GetTeamByParticipantInput{
		ParticipantID: input.ParticipantID,
	})
	if err == nil && existing != nil {
		return nil, fmt.Errorf("%w: participant %s", ErrParticipantHasTeam, input.ParticipantID)
	}
	if err != nil && !errors.Is(err, teamRepo.ErrTeamNotFound) {
		return nil, err
	}

	squadIDs := make([]string, 0, len(input.StartingIDs)+len(input.BenchIDs))
	squadIDs = append(squadIDs, input.StartingIDs...)
	squadIDs = append(squadIDs, input.BenchIDs...)

	squad, err := s.fetchSquad(ctx, squadIDs)
	if err != nil {
		return nil, err
	}

	// Full composition, leadership and budget validation before anything
	// is claimed
	candidate := &rules.SquadCandidate{
		Starting:      pickCompetitors(squad, input.StartingIDs),
		Bench:         pickCompetitors(squad, input.BenchIDs),
		CaptainID:     input.CaptainID,
		ViceCaptainID: input.ViceCaptainID,
		BudgetLimit:   s.rules.InitialBudget,
	}
	if err := s.rules.ValidateSquad(candidate); err != nil {
		return nil, err
	}

	teamID := s.uuid.NewUUID()
	now := s.clock.Now()

	// Claim every competitor; a lost claim rolls back the ones already taken
	claimed := make([]string, 0, len(squadIDs))
	for _, id := range squadIDs {
		if err := s.competitorRepo.ClaimCompetitor(ctx, &competitorRepo.ClaimCompetitorInput{
			CompetitorID: id,
			TeamID:       teamID,
		}); err != nil {
			s.releaseClaims(ctx, teamID, claimed)
			return nil, err
		}
		claimed = append(claimed, id)
	}

	var totalCost int64
	for _, id := range squadIDs {
		totalCost += squad[id].Price
	}

	team := &models.Team{
		ID:            teamID,
		ParticipantID: input.ParticipantID,
		Name:          input.Name,
		Starting:      append([]string(nil), input.StartingIDs...),
		Bench:         append([]string(nil), input.BenchIDs...),
		CaptainID:     input.CaptainID,
		ViceCaptainID: input.ViceCaptainID,
		Budget:        s.rules.InitialBudget - totalCost,
		Transfers: models.Transfers{
			Free: s.rules.FreeTransfersPerPeriod,
		},
		Chips:     models.NewChipRecord(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.teamRepo.SaveTeam(ctx, &teamRepo.SaveTeamInput{Team: team}); err != nil {
		s.releaseClaims(ctx, teamID, claimed)
		return nil, err
	}

	return &CreateTeamOutput{Team: team}, nil
}

// GetTeam retrieves a team snapshot
func (s *service) GetTeam(ctx context.Context, input *GetTeamInput) (*GetTeamOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID are required")
	}

	team, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	return &GetTeamOutput{Team: team}, nil
}

// ListCompetitors lists the competitor pool with ownership status
func (s *service) ListCompetitors(ctx context.Context, input *ListCompetitorsInput) (*ListCompetitorsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.competitorRepo.ListCompetitors(ctx, &competitorRepo.ListCompetitorsInput{})
	if err != nil {
		return nil, err
	}

	competitors := out.Competitors
	if input.FreeAgentsOnly {
		free := make([]*models.Competitor, 0, len(competitors))
		for _, comp := range competitors {
			if !comp.Owned() {
				free = append(free, comp)
			}
		}
		competitors = free
	}

	// Stable listing order for callers
	sort.Slice(competitors, func(i, j int) bool {
		return competitors[i].ID < competitors[j].ID
	})

	return &ListCompetitorsOutput{Competitors: competitors}, nil
}

// Transfer swaps one competitor out of a team for one on the market. The
// window gate is consulted before any business rule so lock state is never
// bypassed.
func (s *service) Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	if input == nil || input.TeamID == "" || input.IncomingID == "" {
		return nil, errors.New("input, team ID and incoming competitor are required")
	}

	if err := s.checkWindow(ctx); err != nil {
		return nil, err
	}

	// Pure squad expansion is rejected; every buy names a sale
	if input.OutgoingID == "" {
		return nil, ErrOutgoingRequired
	}
	if input.IncomingID == input.OutgoingID {
		return nil, fmt.Errorf("%w: %s", rules.ErrDuplicateCompetitor, input.IncomingID)
	}

	team, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if !team.HasCompetitor(input.OutgoingID) {
		return nil, fmt.Errorf("%w: %s", ErrNotInSquad, input.OutgoingID)
	}
	if team.HasCompetitor(input.IncomingID) {
		return nil, fmt.Errorf("%w: %s", rules.ErrDuplicateCompetitor, input.IncomingID)
	}

	pair, err := s.fetchSquad(ctx, []string{input.IncomingID, input.OutgoingID})
	if err != nil {
		return nil, err
	}
	incoming := pair[input.IncomingID]
	outgoing := pair[input.OutgoingID]

	if incoming.Owned() {
		return nil, fmt.Errorf("%w: %s owned by team %s", rules.ErrCompetitorUnavailable, incoming.ID, incoming.OwnerTeamID)
	}
	if incoming.Position.Bucket() != outgoing.Position.Bucket() {
		return nil, fmt.Errorf("%w: %s is %s, %s is %s", ErrPositionMismatch,
			outgoing.ID, outgoing.Position, incoming.ID, incoming.Position)
	}

	cost := incoming.Price - outgoing.Price
	if cost > team.Budget {
		return nil, fmt.Errorf("%w: cost=%d budget=%d", rules.ErrBudgetExceeded, cost, team.Budget)
	}

	// Build the post-transfer roster and re-run the full composition
	// validation before committing anything
	updated := team.Clone()
	updated.ReplaceCompetitor(input.OutgoingID, input.IncomingID)
	updated.Budget -= cost

	candidateSquad, err := s.fetchSquad(ctx, updated.SquadIDs())
	if err != nil {
		return nil, err
	}
	if err := s.rules.ValidateSquad(&rules.SquadCandidate{
		Starting:      pickCompetitors(candidateSquad, updated.Starting),
		Bench:         pickCompetitors(candidateSquad, updated.Bench),
		CaptainID:     updated.CaptainID,
		ViceCaptainID: updated.ViceCaptainID,
		BudgetLimit:   s.rules.InitialBudget,
		OwnerTeamID:   team.ID,
	}); err != nil {
		return nil, err
	}

	// Transfer accounting: consume a free transfer or take the penalty
	var penalty float64
	if updated.Transfers.Free > 0 {
		if updated.Transfers.Free != rules.UnlimitedFreeTransfers {
			updated.Transfers.Free--
		}
	} else {
		penalty = s.rules.TransferPenalty
		updated.Transfers.Cost += penalty
	}
	updated.Transfers.Made++

	// Ownership swap: claim the incoming competitor first so a lost race
	// leaves the team untouched
	if err := s.competitorRepo.ClaimCompetitor(ctx, &competitorRepo.ClaimCompetitorInput{
		CompetitorID: input.IncomingID,
		TeamID:       team.ID,
	}); err != nil {
		return nil, err
	}

	if err := s.competitorRepo.ReleaseCompetitor(ctx, &competitorRepo.ReleaseCompetitorInput{
		CompetitorID: input.OutgoingID,
		TeamID:       team.ID,
	}); err != nil {
		s.releaseClaims(ctx, team.ID, []string{input.IncomingID})
		return nil, err
	}

	updated.UpdatedAt = s.clock.Now()
	if err := s.teamRepo.SaveTeam(ctx, &teamRepo.SaveTeamInput{Team: updated}); err != nil {
		// Undo the ownership swap
		s.releaseClaims(ctx, team.ID, []string{input.IncomingID})
		if claimErr := s.competitorRepo.ClaimCompetitor(ctx, &competitorRepo.ClaimCompetitorInput{
			CompetitorID: input.OutgoingID,
			TeamID:       team.ID,
		}); claimErr != nil {
			return nil, fmt.Errorf("failed to restore outgoing competitor after save failure: %w", claimErr)
		}
		return nil, err
	}

	return &TransferOutput{
		Team:        updated,
		PointsCost:  penalty,
		BudgetSpent: cost,
	}, nil
}

// ActivateChip puts a one-time power-up into effect for the current gameweek
func (s *service) ActivateChip(ctx context.Context, input *ActivateChipInput) (*ActivateChipOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID are required")
	}

	if err := s.checkWindow(ctx); err != nil {
		return nil, err
	}

	if !input.Chip.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownChip, input.Chip)
	}

	team, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	// Re-activating the already-active chip is an idempotent no-op
	if team.Chips.Active == input.Chip {
		return &ActivateChipOutput{Team: team}, nil
	}

	if team.Chips.Used[input.Chip] {
		return nil, fmt.Errorf("%w: %s", ErrChipAlreadyUsed, input.Chip)
	}
	if team.Chips.Active != "" {
		return nil, fmt.Errorf("%w: %s", ErrAnotherChipActive, team.Chips.Active)
	}

	switch input.Chip {
	case models.ChipTripleCaptain:
		if team.CaptainID == "" {
			return nil, fmt.Errorf("%w: %s requires a designated captain", ErrChipPrecondition, input.Chip)
		}
	case models.ChipBenchBoost:
		if len(team.Bench) != s.rules.BenchSize() {
			return nil, fmt.Errorf("%w: %s requires a fully populated bench", ErrChipPrecondition, input.Chip)
		}
		for _, id := range team.Bench {
			if id == "" {
				return nil, fmt.Errorf("%w: %s requires a fully populated bench", ErrChipPrecondition, input.Chip)
			}
		}
	}

	// Transfer-relaxation chips take effect immediately; the pre-activation
	// counters are kept so cancellation can restore them exactly
	if input.Chip.RelaxesTransfers() {
		team.Chips.PriorFree = team.Transfers.Free
		team.Chips.PriorCost = team.Transfers.Cost
		team.Transfers.Free = rules.UnlimitedFreeTransfers
		team.Transfers.Cost = 0
	}

	team.Chips.Active = input.Chip
	team.UpdatedAt = s.clock.Now()

	if err := s.teamRepo.SaveTeam(ctx, &teamRepo.SaveTeamInput{Team: team}); err != nil {
		return nil, err
	}

	return &ActivateChipOutput{Team: team}, nil
}

// CancelChip reverts a still-active transfer-relaxation chip, restoring the
// pre-activation transfer counters and leaving the chip unused
func (s *service) CancelChip(ctx context.Context, input *CancelChipInput) (*CancelChipOutput, error) {
	if input == nil || input.TeamID == "" {
		return nil, errors.New("input and team ID are required")
	}

	if err := s.checkWindow(ctx); err != nil {
		return nil, err
	}

	team, err := s.getTeam(ctx, input.TeamID)
	if err != nil {
		return nil, err
	}

	if team.Chips.Active == "" {
		return nil, ErrNoActiveChip
	}
	if !team.Chips.Active.Cancellable() {
		return nil, fmt.Errorf("%w: %s", ErrChipNotCancellable, team.Chips.Active)
	}

	team.Transfers.Free = team.Chips.PriorFree
	team.Transfers.Cost = team.Chips.PriorCost
	team.Chips.Active = ""
	team.Chips.PriorFree = 0
	team.Chips.PriorCost = 0
	team.UpdatedAt = s.clock.Now()

	if err := s.teamRepo.SaveTeam(ctx, &teamRepo.SaveTeamInput{Team: team}); err != nil {
		return nil, err
	}

	return &CancelChipOutput{Team: team}, nil
}

// ClosePeriod scores every team against a finalized gameweek's statistics,
// settles transfer counters and chip state, and accumulates competitor
// season totals. A period can only be closed once. Every read happens before
// the scored marker is written, so a transient repository failure leaves the
// period unmarked and the close retryable.
func (s *service) ClosePeriod(ctx context.Context, input *ClosePeriodInput) (*ClosePeriodOutput, error) {
	if input == nil || input.Period <= 0 {
		return nil, errors.New("input and period are required")
	}

	if !s.gate.Calendar().HasGameweek(input.Period) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPeriod, input.Period)
	}

	scored, err := s.fetchScoredCompetitors(ctx, input.Stats)
	if err != nil {
		return nil, err
	}

	teamsOut, err := s.teamRepo.ListTeams(ctx, &teamRepo.ListTeamsInput{})
	if err != nil {
		return nil, err
	}

	squads := make(map[string]map[string]*models.Competitor, len(teamsOut.Teams))
	for _, t := range teamsOut.Teams {
		squad, err := s.fetchSquad(ctx, t.SquadIDs())
		if err != nil {
			return nil, err
		}
		squads[t.ID] = squad
	}

	// The marker is set atomically between the reads and the writes, so a
	// concurrent close of the same period loses here, before it can
	// double-count
	if err := s.seasonRepo.MarkPeriodScored(ctx, &seasonRepo.MarkPeriodScoredInput{
		Period: input.Period,
	}); err != nil {
		return nil, err
	}

	if err := s.settleCompetitorTotals(ctx, scored, input.Stats); err != nil {
		return nil, err
	}

	// Team scoring has no cross-team dependency, so teams settle in parallel
	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		firstErr error
	)
	points := make(map[string]float64, len(teamsOut.Teams))

	for _, t := range teamsOut.Teams {
		wg.Add(1)
		go func(t *models.Team) {
			defer wg.Done()

			pts, err := s.settleTeam(ctx, t, squads[t.ID], input.Stats)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			points[t.ID] = pts
		}(t)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return &ClosePeriodOutput{Points: points}, nil
}

// GetRanking orders teams by the chosen metric, breaking ties by the other
// metric and then by earlier creation time
func (s *service) GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if !input.Metric.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMetric, input.Metric)
	}

	teamsOut, err := s.teamRepo.ListTeams(ctx, &teamRepo.ListTeamsInput{})
	if err != nil {
		return nil, err
	}

	teams := teamsOut.Teams
	sort.SliceStable(teams, func(i, j int) bool {
		a, b := teams[i], teams[j]
		primaryA, secondaryA := rankValues(a, input.Metric)
		primaryB, secondaryB := rankValues(b, input.Metric)
		if primaryA != primaryB {
			return primaryA > primaryB
		}
		if secondaryA != secondaryB {
			return secondaryA > secondaryB
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})

	standings := make([]*models.TeamStanding, 0, len(teams))
	for i, t := range teams {
		standings = append(standings, &models.TeamStanding{
			Rank:             i + 1,
			TeamID:           t.ID,
			Name:             t.Name,
			CumulativePoints: t.CumulativePoints,
			PeriodPoints:     t.LastPeriodPoints,
			CreatedAt:        t.CreatedAt,
		})
	}

	return &GetRankingOutput{Standings: standings}, nil
}

// GetWindowStatus reports whether roster mutation is currently permitted
func (s *service) GetWindowStatus(ctx context.Context, input *GetWindowStatusInput) (*GetWindowStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	return &GetWindowStatusOutput{Status: s.gate.Status()}, nil
}

// checkWindow rejects roster mutation while the gate is locked, and also
// while an ended gameweek is still awaiting its close. Without the second
// check a transfer penalty taken after a gameweek ends would accumulate into
// counters that settleTeam charges against the ended gameweek's score.
func (s *service) checkWindow(ctx context.Context) error {
	if status := s.gate.Status(); status.Locked {
		return fmt.Errorf("%w: %s", ErrWindowLocked, status.Reason)
	}

	prev, ok := s.gate.Calendar().LastEndedGameweek(s.clock.Now())
	if !ok {
		return nil
	}

	scored, err := s.seasonRepo.IsPeriodScored(ctx, &seasonRepo.IsPeriodScoredInput{
		Period: prev,
	})
	if err != nil {
		return err
	}
	if !scored {
		return fmt.Errorf("%w: gameweek %d awaiting scoring", ErrWindowLocked, prev)
	}

	return nil
}

// getTeam retrieves a team, mapping the repository sentinel
func (s *service) getTeam(ctx context.Context, teamID string) (*models.Team, error) {
	team, err := s.teamRepo.GetTeam(ctx, &teamRepo.GetTeamInput{TeamID: teamID})
	if err != nil {
		if errors.Is(err, teamRepo.ErrTeamNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTeamNotFound, teamID)
		}
		return nil, err
	}
	return team, nil
}

// fetchSquad retrieves a batch of competitors, mapping the repository
// sentinel
func (s *service) fetchSquad(ctx context.Context, ids []string) (map[string]*models.Competitor, error) {
	out, err := s.competitorRepo.GetCompetitors(ctx, &competitorRepo.GetCompetitorsInput{
		CompetitorIDs: ids,
	})
	if err != nil {
		if errors.Is(err, competitorRepo.ErrCompetitorNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrCompetitorNotFound, err)
		}
		return nil, err
	}
	return out.Competitors, nil
}

// releaseClaims best-effort returns claimed competitors to the market after
// a failed multi-claim operation
func (s *service) releaseClaims(ctx context.Context, teamID string, ids []string) {
	for _, id := range ids {
		// Nothing actionable on failure here; the claim belongs to a team
		// that was never persisted
		_ = s.competitorRepo.ReleaseCompetitor(ctx, &competitorRepo.ReleaseCompetitorInput{
			CompetitorID: id,
			TeamID:       teamID,
		})
	}
}

// pickCompetitors maps IDs to competitor records, preserving slot order
func pickCompetitors(squad map[string]*models.Competitor, ids []string) []*models.Competitor {
	picked := make([]*models.Competitor, 0, len(ids))
	for _, id := range ids {
		if comp, ok := squad[id]; ok {
			picked = append(picked, comp)
		}
	}
	return picked
}

// rankValues returns the primary and secondary sort keys for a metric
func rankValues(t *models.Team, metric models.RankMetric) (float64, float64) {
	if metric == models.RankMetricPeriod {
		return t.LastPeriodPoints, t.CumulativePoints
	}
	return t.CumulativePoints, t.LastPeriodPoints
}
