package httpapi

import (
	"errors"
	"net/http"

	competitorRepo "github.com/KirkDiggler/gaffer/internal/repositories/competitor"
	seasonRepo "github.com/KirkDiggler/gaffer/internal/repositories/season"
	"github.com/KirkDiggler/gaffer/internal/rules"
	"github.com/KirkDiggler/gaffer/internal/services/league"
)

// statusFor maps service errors onto HTTP status codes. Validation failures
// are 422, ownership and period conflicts 409, the locked window 423, and
// missing references 404.
func statusFor(err error) int {
	switch {
	case errors.Is(err, league.ErrTeamNotFound),
		errors.Is(err, league.ErrCompetitorNotFound):
		return http.StatusNotFound

	case errors.Is(err, league.ErrWindowLocked):
		return http.StatusLocked

	case errors.Is(err, competitorRepo.ErrCompetitorClaimed),
		errors.Is(err, seasonRepo.ErrPeriodAlreadyScored),
		errors.Is(err, league.ErrParticipantHasTeam),
		errors.Is(err, league.ErrChipAlreadyUsed),
		errors.Is(err, league.ErrAnotherChipActive),
		errors.Is(err, rules.ErrCompetitorUnavailable):
		return http.StatusConflict

	case errors.Is(err, rules.ErrDuplicateCompetitor),
		errors.Is(err, rules.ErrFormationInvalid),
		errors.Is(err, rules.ErrBenchInvalid),
		errors.Is(err, rules.ErrCaptainInvalid),
		errors.Is(err, rules.ErrBudgetExceeded),
		errors.Is(err, league.ErrOutgoingRequired),
		errors.Is(err, league.ErrNotInSquad),
		errors.Is(err, league.ErrPositionMismatch),
		errors.Is(err, league.ErrChipPrecondition),
		errors.Is(err, league.ErrChipNotCancellable),
		errors.Is(err, league.ErrNoActiveChip):
		return http.StatusUnprocessableEntity

	case errors.Is(err, league.ErrUnknownChip),
		errors.Is(err, league.ErrUnknownPeriod),
		errors.Is(err, league.ErrUnknownMetric):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}
