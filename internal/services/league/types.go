package league

import "github.com/KirkDiggler/gaffer/internal/models"

// CreateTeamInput contains parameters for creating a team
type CreateTeamInput struct {
	// ParticipantID is the opaque identity reference for the owner
	ParticipantID string

	// Name is the team's display name
	Name string

	// StartingIDs are the five starting competitor IDs in slot order
	StartingIDs []string

	// BenchIDs are the three substitute competitor IDs in slot order
	BenchIDs []string

	// CaptainID is the designated captain
	CaptainID string

	// ViceCaptainID is the designated vice-captain
	ViceCaptainID string
}

// CreateTeamOutput contains the result of creating a team
type CreateTeamOutput struct {
	Team *models.Team
}

// GetTeamInput contains parameters for retrieving a team
type GetTeamInput struct {
	TeamID string
}

// GetTeamOutput contains the retrieved team
type GetTeamOutput struct {
	Team *models.Team
}

// ListCompetitorsInput contains parameters for listing the competitor pool
type ListCompetitorsInput struct {
	// FreeAgentsOnly restricts the listing to unowned competitors
	FreeAgentsOnly bool
}

// ListCompetitorsOutput contains the competitor pool
type ListCompetitorsOutput struct {
	Competitors []*models.Competitor
}

// TransferInput contains parameters for a one-out/one-in roster change
type TransferInput struct {
	TeamID string

	// IncomingID is the competitor being bought
	IncomingID string

	// OutgoingID is the competitor being sold; mandatory, since the squad
	// size is fixed and pure expansion is rejected
	OutgoingID string
}

// TransferOutput contains the result of a committed transfer
type TransferOutput struct {
	// Team is the updated roster
	Team *models.Team

	// PointsCost is the point penalty this transfer added, zero when a
	// free transfer was consumed
	PointsCost float64

	// BudgetSpent is the price difference paid, negative when the swap
	// freed budget
	BudgetSpent int64
}

// ActivateChipInput contains parameters for activating a chip
type ActivateChipInput struct {
	TeamID string
	Chip   models.Chip
}

// ActivateChipOutput contains the result of activating a chip
type ActivateChipOutput struct {
	Team *models.Team
}

// CancelChipInput contains parameters for cancelling the active chip
type CancelChipInput struct {
	TeamID string
}

// CancelChipOutput contains the result of cancelling a chip
type CancelChipOutput struct {
	Team *models.Team
}

// ClosePeriodInput contains a finalized gameweek's statistics keyed by
// competitor ID
type ClosePeriodInput struct {
	Period int
	Stats  map[string]models.RawStats
}

// ClosePeriodOutput contains each team's points for the closed gameweek
type ClosePeriodOutput struct {
	Points map[string]float64
}

// GetRankingInput contains parameters for ranking teams
type GetRankingInput struct {
	Metric models.RankMetric
}

// GetRankingOutput contains the ordered standings
type GetRankingOutput struct {
	Standings []*models.TeamStanding
}

// GetWindowStatusInput contains parameters for the window status query
type GetWindowStatusInput struct{}

// GetWindowStatusOutput contains the current window state
type GetWindowStatusOutput struct {
	Status models.WindowStatus
}
