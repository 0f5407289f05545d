package competitor

import (
	"context"

	"github.com/KirkDiggler/gaffer/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gaffer/internal/repositories/competitor Repository

// Repository defines the interface for competitor data persistence. It is
// the single authority for the competitor -> owning-team mapping.
type Repository interface {
	// SaveCompetitor persists a competitor
	SaveCompetitor(ctx context.Context, input *SaveCompetitorInput) error

	// GetCompetitor retrieves a competitor by ID
	GetCompetitor(ctx context.Context, input *GetCompetitorInput) (*models.Competitor, error)

	// GetCompetitors retrieves a batch of competitors by ID
	GetCompetitors(ctx context.Context, input *GetCompetitorsInput) (*GetCompetitorsOutput, error)

	// ListCompetitors retrieves every competitor in the pool
	ListCompetitors(ctx context.Context, input *ListCompetitorsInput) (*ListCompetitorsOutput, error)

	// ClaimCompetitor atomically assigns ownership of an unowned competitor
	// to a team, failing with ErrCompetitorClaimed when another team owns it
	// or claims it concurrently
	ClaimCompetitor(ctx context.Context, input *ClaimCompetitorInput) error

	// ReleaseCompetitor atomically returns a team's competitor to the market
	ReleaseCompetitor(ctx context.Context, input *ReleaseCompetitorInput) error
}
