package competitor

import "github.com/KirkDiggler/gaffer/internal/models"

// SaveCompetitorInput contains parameters for saving a competitor
type SaveCompetitorInput struct {
	Competitor *models.Competitor
}

// GetCompetitorInput contains parameters for retrieving a competitor
type GetCompetitorInput struct {
	CompetitorID string
}

// GetCompetitorsInput contains parameters for retrieving a batch of competitors
type GetCompetitorsInput struct {
	CompetitorIDs []string
}

// GetCompetitorsOutput contains the retrieved competitors keyed by ID
type GetCompetitorsOutput struct {
	Competitors map[string]*models.Competitor
}

// ListCompetitorsInput contains parameters for listing the competitor pool
type ListCompetitorsInput struct{}

// ListCompetitorsOutput contains every competitor in the pool
type ListCompetitorsOutput struct {
	Competitors []*models.Competitor
}

// ClaimCompetitorInput contains parameters for claiming ownership
type ClaimCompetitorInput struct {
	CompetitorID string
	TeamID       string
}

// ReleaseCompetitorInput contains parameters for releasing ownership
type ReleaseCompetitorInput struct {
	CompetitorID string
	TeamID       string
}
