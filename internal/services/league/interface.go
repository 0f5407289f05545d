package league

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/gaffer/internal/services/league Service

// Service defines the interface for league operations
type Service interface {
	// CreateTeam assembles a participant's roster, validating composition
	// and budget and claiming every competitor
	CreateTeam(ctx context.Context, input *CreateTeamInput) (*CreateTeamOutput, error)

	// GetTeam retrieves a team snapshot
	GetTeam(ctx context.Context, input *GetTeamInput) (*GetTeamOutput, error)

	// ListCompetitors lists the competitor pool with ownership status
	ListCompetitors(ctx context.Context, input *ListCompetitorsInput) (*ListCompetitorsOutput, error)

	// Transfer swaps one competitor out of a team for one on the market
	Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error)

	// ActivateChip puts a one-time power-up into effect for the current gameweek
	ActivateChip(ctx context.Context, input *ActivateChipInput) (*ActivateChipOutput, error)

	// CancelChip reverts a still-active transfer-relaxation chip
	CancelChip(ctx context.Context, input *CancelChipInput) (*CancelChipOutput, error)

	// ClosePeriod scores every team against a finalized gameweek's statistics
	ClosePeriod(ctx context.Context, input *ClosePeriodInput) (*ClosePeriodOutput, error)

	// GetRanking orders teams by cumulative or period points
	GetRanking(ctx context.Context, input *GetRankingInput) (*GetRankingOutput, error)

	// GetWindowStatus reports whether roster mutation is currently permitted
	GetWindowStatus(ctx context.Context, input *GetWindowStatusInput) (*GetWindowStatusOutput, error)
}
