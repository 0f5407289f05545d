package season

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/gaffer/internal/repositories/season Repository

// Repository defines the interface for season bookkeeping. It records which
// gameweeks have already been scored so period close is applied exactly once.
type Repository interface {
	// MarkPeriodScored atomically records a gameweek as scored, failing
	// with ErrPeriodAlreadyScored when it was recorded before
	MarkPeriodScored(ctx context.Context, input *MarkPeriodScoredInput) error

	// IsPeriodScored reports whether a gameweek has been scored
	IsPeriodScored(ctx context.Context, input *IsPeriodScoredInput) (bool, error)
}
